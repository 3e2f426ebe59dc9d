package cli

import (
	"bufio"
	"ecschess/src"
	"ecschess/src/base"
	"ecschess/src/board"
	"ecschess/ui/gui/gbase"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/term"
)

type CLIProcessing struct {
	builder       *src.GameBuilder
	in            io.Reader
	out           io.Writer
	color         bool
	width, height float32
}

// NewCLI reads stdin and writes stdout; colors are used only when stdout
// is a terminal. width and height describe the virtual window clicks are
// resolved against.
func NewCLI(b *src.GameBuilder, width, height int) *CLIProcessing {
	color := term.IsTerminal(int(os.Stdout.Fd()))
	if color {
		EnableANSI()
	}
	return NewCLIWithIO(b, os.Stdin, os.Stdout, color, width, height)
}

func NewCLIWithIO(b *src.GameBuilder, in io.Reader, out io.Writer, color bool, width, height int) *CLIProcessing {
	return &CLIProcessing{builder: b, in: in, out: out, color: color, width: float32(width), height: float32(height)}
}

// line processing
// - "x y" simulates a left click at pixel x, y
// - a square like "e2" clicks the center of that square
// - "b" redraws the board, "q" quits
func (c *CLIProcessing) RunLineMode() error {
	if err := c.builder.Start(); err != nil {
		return err
	}
	c.draw()
	fmt.Fprintf(c.out, "Window %.0fx%.0f. Type 'x y' or a square (e2) to click, 'b' to redraw, 'q' to quit.\n", c.width, c.height)

	sc := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(c.out)
			return sc.Err()
		}
		err := c.handleLine(strings.TrimSpace(sc.Text()))
		if errors.Is(err, gbase.ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

func (c *CLIProcessing) draw() {
	PrintBoard(c.out, c.builder.Pieces(), c.color)
}

func (c *CLIProcessing) handleLine(line string) error {
	switch line {
	case "":
		return nil
	case "q", "quit", "exit":
		return gbase.ErrExit
	case "b", "board":
		c.draw()
		return nil
	}

	p, err := c.parsePoint(line)
	if err != nil {
		return err
	}
	sqLen := c.builder.Settings().SquareLength
	if sq, ok := board.SquareAt(p, c.width, c.height, sqLen); ok {
		fmt.Fprintf(c.out, "square %s\n", sq)
	} else {
		fmt.Fprintln(c.out, "no square")
	}
	return c.builder.Click(p.X(), p.Y(), c.width, c.height)
}

func (c *CLIProcessing) parsePoint(line string) (mgl32.Vec2, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		sq, err := base.SquareFromAlgebraic(fields[0])
		if err != nil {
			return mgl32.Vec2{}, err
		}
		return board.ScreenCenter(sq, c.width, c.height, c.builder.Settings().SquareLength), nil
	case 2:
		x, err := strconv.ParseFloat(fields[0], 32)
		if err != nil {
			return mgl32.Vec2{}, fmt.Errorf("invalid x %q", fields[0])
		}
		y, err := strconv.ParseFloat(fields[1], 32)
		if err != nil {
			return mgl32.Vec2{}, fmt.Errorf("invalid y %q", fields[1])
		}
		return mgl32.Vec2{float32(x), float32(y)}, nil
	default:
	}
	return mgl32.Vec2{}, fmt.Errorf("unknown command %q", line)
}
