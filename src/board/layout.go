package board

import (
	"ecschess/src/base"
	"fmt"
	"strconv"
	"strings"

	"github.com/corentings/chess/v2"
)

// Layout is a board table read row by row, index 0 first.
type Layout [64]base.Code

// Classic is the standard starting setup with black on the first rows.
var Classic = Layout{
	1, 2, 3, 4, 5, 3, 2, 1,
	6, 6, 6, 6, 6, 6, 6, 6,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	7, 7, 7, 7, 7, 7, 7, 7,
	8, 9, 10, 11, 12, 10, 9, 8,
}

// ---- Orientation ----

// Orientation decides which rank the first table row lands on.
type Orientation uint8

const (
	// WhiteBottom puts table row 0 on rank 8, so the classic table has
	// white on ranks 1 and 2.
	WhiteBottom Orientation = iota
	// TableOrder puts table row 0 on rank 1.
	TableOrder
)

func (o Orientation) String() string {
	switch o {
	case WhiteBottom:
		return "white_bottom"
	case TableOrder:
		return "table_order"
	default:
		return ""
	}
}

func OrientationFromString(s string) (Orientation, error) {
	switch s {
	case "white_bottom", "":
		return WhiteBottom, nil
	case "table_order":
		return TableOrder, nil
	default:
	}
	return WhiteBottom, fmt.Errorf("unknown orientation %q", s)
}

// SquareOf maps a table index 0..63 to its board square.
func (o Orientation) SquareOf(index int) base.Square {
	file := index%base.BoardSide + 1
	rank := index/base.BoardSide + 1
	if o == WhiteBottom {
		rank = base.BoardSide + 1 - rank
	}
	return base.Square{File: uint8(file), Rank: uint8(rank)}
}

// Expand returns one piece per non-empty entry, in table order.
func Expand(l Layout, o Orientation) []base.Piece {
	pieces := make([]base.Piece, 0, 32)
	for i, code := range l {
		team, pt, ok := code.Decode()
		if !ok {
			continue
		}
		pieces = append(pieces, base.Piece{Team: team, Type: pt, Square: o.SquareOf(i)})
	}
	return pieces
}

// ParseLayout reads 64 codes separated by spaces, commas or newlines.
func ParseLayout(s string) (Layout, error) {
	var l Layout
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	if len(fields) != len(l) {
		return l, fmt.Errorf("error parse layout: want %d codes, got %d", len(l), len(fields))
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return l, fmt.Errorf("error parse layout code %d: %w", i, err)
		}
		if n < 0 || n > int(base.MaxCode) {
			return l, fmt.Errorf("error parse layout code %d: %d out of range", i, n)
		}
		l[i] = base.Code(n)
	}
	return l, nil
}

func (l Layout) String() string {
	var sb strings.Builder
	for i, c := range l {
		if i > 0 {
			if i%base.BoardSide == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	return sb.String()
}

// ---- FEN ----

var chessTypes = map[base.PieceType]chess.PieceType{
	base.Rook:   chess.Rook,
	base.Knight: chess.Knight,
	base.Bishop: chess.Bishop,
	base.Queen:  chess.Queen,
	base.King:   chess.King,
	base.Pawn:   chess.Pawn,
}

// FEN returns the piece placement field for the expanded layout.
func FEN(l Layout, o Orientation) string {
	m := make(map[chess.Square]chess.Piece)
	for _, p := range Expand(l, o) {
		color := chess.White
		if p.Team == base.Black {
			color = chess.Black
		}
		sq := chess.Square(int(p.Square.File-1) + base.BoardSide*int(p.Square.Rank-1))
		m[sq] = chess.NewPiece(chessTypes[p.Type], color)
	}
	return chess.NewBoard(m).String()
}
