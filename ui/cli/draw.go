package cli

import (
	"ecschess/src/base"
	"fmt"
	"io"
)

// ANSI-code
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	whiteF  = "\033[97m"
	blackF  = "\033[30m"
)

func pieceGlyph(p base.Piece) string {
	white := map[base.PieceType]string{
		base.King: "♔", base.Queen: "♕", base.Rook: "♖",
		base.Bishop: "♗", base.Knight: "♘", base.Pawn: "♙",
	}
	black := map[base.PieceType]string{
		base.King: "♚", base.Queen: "♛", base.Rook: "♜",
		base.Bishop: "♝", base.Knight: "♞", base.Pawn: "♟",
	}
	if p.Team == base.White {
		return white[p.Type]
	}
	return black[p.Type]
}

// PrintBoard writes rank 8 first. Without color the squares are plain
// text and empty dark squares show a dot.
func PrintBoard(out io.Writer, pieces []base.Piece, color bool) {
	var grid [64]*base.Piece
	for i := range pieces {
		if pieces[i].Square.Valid() {
			grid[pieces[i].Square.Index()] = &pieces[i]
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "   a  b  c  d  e  f  g  h")
	for rank := base.BoardSide; rank >= 1; rank-- {
		fmt.Fprintf(out, "%d ", rank)
		for file := 1; file <= base.BoardSide; file++ {
			sq := base.Square{File: uint8(file), Rank: uint8(rank)}
			p := grid[sq.Index()]

			g := " "
			if p != nil {
				g = pieceGlyph(*p)
			} else if !color && sq.IsDark() {
				g = "."
			}
			if !color {
				fmt.Fprintf(out, " %s ", g)
				continue
			}

			bg := lightBg
			if sq.IsDark() {
				bg = darkBg
			}
			fg := blackF
			if p != nil && p.Team == base.White {
				fg = whiteF
			}
			fmt.Fprintf(out, "%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Fprintf(out, " %d\n", rank)
	}
	fmt.Fprintln(out, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(out)
}
