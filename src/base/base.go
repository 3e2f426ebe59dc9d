package base

import "fmt"

const BoardSide = 8

// ---- Team ----

type Team uint8

const (
	White Team = iota
	Black
)

func (t Team) String() string {
	switch t {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Name is the lowercase form used by asset paths and config files.
func (t Team) Name() string {
	switch t {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return ""
	}
}

func TeamFromString(s string) (Team, error) {
	switch s {
	case "white", "White", "w":
		return White, nil
	case "black", "Black", "b":
		return Black, nil
	default:
	}
	return White, fmt.Errorf("unknown team %q", s)
}

// ---- Piece type ----

type PieceType uint8

const (
	Rook PieceType = iota
	Knight
	Bishop
	Queen
	King
	Pawn
)

func (pt PieceType) String() string {
	switch pt {
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Pawn:
		return "Pawn"
	default:
		return "Unknown"
	}
}

func (pt PieceType) Name() string {
	switch pt {
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Pawn:
		return "pawn"
	default:
		return ""
	}
}

// Letter is the english FEN letter, uppercase.
func (pt PieceType) Letter() byte {
	switch pt {
	case Rook:
		return 'R'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	case Pawn:
		return 'P'
	default:
		return '?'
	}
}

// ---- Piece codes ----

// Code is one entry of a board layout table.
// 0 = empty, 1..6 black rook/knight/bishop/queen/king/pawn,
// 7 white pawn, 8..12 white rook/knight/bishop/queen/king.
type Code uint8

const (
	EmptyCode Code = 0
	MaxCode   Code = 12
)

// Decode returns the team and piece type of a layout code.
// ok is false for empty and unknown codes.
func (c Code) Decode() (team Team, pt PieceType, ok bool) {
	if c == EmptyCode || c > MaxCode {
		return White, Rook, false
	}
	team = White
	if c < 7 {
		team = Black
	}
	switch c {
	case 1, 8:
		pt = Rook
	case 2, 9:
		pt = Knight
	case 3, 10:
		pt = Bishop
	case 4, 11:
		pt = Queen
	case 5, 12:
		pt = King
	case 6, 7:
		pt = Pawn
	}
	return team, pt, true
}

// EncodeCode is the inverse of Code.Decode.
func EncodeCode(team Team, pt PieceType) Code {
	if team == Black {
		switch pt {
		case Rook:
			return 1
		case Knight:
			return 2
		case Bishop:
			return 3
		case Queen:
			return 4
		case King:
			return 5
		case Pawn:
			return 6
		}
		return EmptyCode
	}
	switch pt {
	case Pawn:
		return 7
	case Rook:
		return 8
	case Knight:
		return 9
	case Bishop:
		return 10
	case Queen:
		return 11
	case King:
		return 12
	}
	return EmptyCode
}

// ---- Square ----

// Square is a (file, rank) pair, both 1..8.
type Square struct {
	File uint8
	Rank uint8
}

func NewSquare(file, rank int) (Square, bool) {
	if file < 1 || file > BoardSide || rank < 1 || rank > BoardSide {
		return Square{}, false
	}
	return Square{File: uint8(file), Rank: uint8(rank)}, true
}

func (s Square) Valid() bool {
	return s.File >= 1 && s.File <= BoardSide && s.Rank >= 1 && s.Rank <= BoardSide
}

// Index is 0..63 with a1 = 0 and h8 = 63.
func (s Square) Index() int {
	return int(s.Rank-1)*BoardSide + int(s.File-1)
}

// IsDark reports the color of the square: a1 is dark.
func (s Square) IsDark() bool {
	return s.File%2 == s.Rank%2
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.File-1, s.Rank)
}

func SquareFromAlgebraic(pos string) (Square, error) {
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return Square{}, fmt.Errorf("invalid square %q", pos)
	}
	return Square{File: pos[0] - 'a' + 1, Rank: pos[1] - '0'}, nil
}

// ---- Piece ----

type Piece struct {
	Team   Team
	Type   PieceType
	Square Square
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Team, p.Type, p.Square)
}

// ImagePath follows the pieces/{team}_{type}.png convention.
func ImagePath(team Team, pt PieceType) string {
	return fmt.Sprintf("pieces/%s_%s.png", team.Name(), pt.Name())
}
