package ui

import (
	"context"
	"ecschess/src"
	"ecschess/src/board"
	"ecschess/src/logx"
	clic "ecschess/ui/cli"
	"ecschess/ui/gui"
	"ecschess/ui/gui/gbase/gconf"
	"ecschess/ui/gui/ghelper/gdialog"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli/v3"
)

const logfile string = "ecschess.log"

// session is what every command action starts from.
type session struct {
	cfg     *gconf.Config
	opts    src.Options
	logger  *logx.Logx
	logFile *os.File
}

func (s *session) Close() {
	_ = s.logger.Sync()
	if s.logFile != nil {
		s.logFile.Close()
	}
}

func GetLogger(w io.Writer, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(w)
	return l
}

// LoadConfig reads the config file and applies flag overrides.
func LoadConfig(c *cli.Command) (*gconf.Config, src.Options, error) {
	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, src.Options{}, err
	}
	if c.IsSet("team") {
		cfg.PlayerTeam = c.String("team")
	}
	if c.IsSet("orientation") {
		cfg.Orientation = c.String("orientation")
	}
	if c.IsSet("layout") {
		cfg.Layout = c.String("layout")
	}
	if c.IsSet("square") {
		cfg.SquareLength = float32(c.Float("square"))
	}
	if c.IsSet("assets") {
		cfg.AssetsDir = c.String("assets")
	}
	if c.Bool("debug") {
		cfg.EnableDebug()
	}
	// strings are rejected, numbers are corrected
	if _, err := cfg.BuilderOptions(); err != nil {
		return nil, src.Options{}, fmt.Errorf("error config: %w", err)
	}
	cfg.Correct()
	opts, err := cfg.BuilderOptions()
	if err != nil {
		return nil, src.Options{}, fmt.Errorf("error config: %w", err)
	}
	return cfg, opts, nil
}

func newSession(c *cli.Command) (*session, error) {
	cfg, opts, err := LoadConfig(c)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, opts: opts}
	if !c.Bool("console") {
		s.logFile, err = os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("error open logfile: %w", err)
		}
	}
	s.logger = GetLogger(s.logFile, c)
	return s, nil
}

func RunGUI(c *cli.Command) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := gui.NewGUI(src.NewBuilderBoard(s.logger.Named("board"), s.opts), s.cfg, s.logger.Named("gui"))
	if err == nil {
		err = g.Run()
	}
	if err != nil {
		s.logger.Errorf("error GUI: %v", err)
		gdialog.ShowError("ECS Chess", err.Error())
	}
	return err
}

func RunCLI(c *cli.Command) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	cl := clic.NewCLI(src.NewBuilderBoard(s.logger.Named("board"), s.opts), s.cfg.WindowW, s.cfg.WindowH)
	return cl.RunLineMode()
}

// Locate prints the square under pixel x, y.
func Locate(out io.Writer, c *cli.Command) error {
	cfg, _, err := LoadConfig(c)
	if err != nil {
		return err
	}
	width, height := float32(cfg.WindowW), float32(cfg.WindowH)
	if c.IsSet("width") {
		width = float32(c.Float("width"))
	}
	if c.IsSet("height") {
		height = float32(c.Float("height"))
	}
	p := mgl32.Vec2{float32(c.Float("x")), float32(c.Float("y"))}
	if sq, ok := board.SquareAt(p, width, height, cfg.SquareLength); ok {
		fmt.Fprintf(out, "%s (file %d, rank %d)\n", sq, sq.File, sq.Rank)
		return nil
	}
	fmt.Fprintln(out, "no square")
	return nil
}

func PrintFEN(out io.Writer, c *cli.Command) error {
	_, opts, err := LoadConfig(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, board.FEN(opts.Board.Layout, opts.Board.Orientation))
	return nil
}

func PrintConfig(out io.Writer, c *cli.Command) error {
	cfg, _, err := LoadConfig(c)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	if c.Bool("save") {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("error save config: %w", err)
		}
		fmt.Fprintf(out, "saved %s\n", cfg.Path())
	}
	return nil
}

func NewCommand(out io.Writer) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: gconf.DefaultFile,
			Usage: "path to JSON config",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "enable debug mod",
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Value:   "info",
			Usage:   "logger level (debug, info, warn, error)",
		},
		&cli.BoolFlag{
			Name:    "console",
			Aliases: []string{"c"},
			Usage:   "log to stdout with console encoding",
		},
		&cli.StringFlag{
			Name:  "team",
			Usage: "player team (white, black)",
		},
		&cli.StringFlag{
			Name:  "orientation",
			Usage: "table to board mapping (white_bottom, table_order)",
		},
		&cli.StringFlag{
			Name:  "layout",
			Usage: "64 piece codes separated by spaces or commas",
		},
		&cli.FloatFlag{
			Name:  "square",
			Usage: "square side in pixels",
		},
		&cli.StringFlag{
			Name:  "assets",
			Usage: "assets directory holding pieces/*.png",
		},
	}

	return &cli.Command{
		Name:   "ecschess",
		Usage:  "chessboard on an entity-component-system",
		Flags:  flags,
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "open the board window",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
			{
				Name:  "cli",
				Usage: "terminal board, type pixels or squares to click",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
			{
				Name:  "locate",
				Usage: "print the square under a pixel",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "x", Required: true},
					&cli.FloatFlag{Name: "y", Required: true},
					&cli.FloatFlag{Name: "width", Usage: "window width, config value when unset"},
					&cli.FloatFlag{Name: "height", Usage: "window height, config value when unset"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return Locate(out, c)
				},
			},
			{
				Name:  "fen",
				Usage: "print the piece placement of the layout",
				Action: func(ctx context.Context, c *cli.Command) error {
					return PrintFEN(out, c)
				},
			},
			{
				Name:  "config",
				Usage: "print the effective config",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "save", Usage: "write it to the config path"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return PrintConfig(out, c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}
}

func RunECSChess() error {
	return NewCommand(os.Stdout).Run(context.Background(), os.Args)
}
