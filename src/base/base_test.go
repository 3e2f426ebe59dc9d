package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeDecode(t *testing.T) {
	cases := []struct {
		code Code
		team Team
		pt   PieceType
	}{
		{1, Black, Rook}, {2, Black, Knight}, {3, Black, Bishop},
		{4, Black, Queen}, {5, Black, King}, {6, Black, Pawn},
		{7, White, Pawn}, {8, White, Rook}, {9, White, Knight},
		{10, White, Bishop}, {11, White, Queen}, {12, White, King},
	}
	for _, c := range cases {
		team, pt, ok := c.code.Decode()
		require.True(t, ok, "code %d", c.code)
		assert.Equal(t, c.team, team, "code %d", c.code)
		assert.Equal(t, c.pt, pt, "code %d", c.code)
		assert.Equal(t, c.code, EncodeCode(team, pt))
	}
}

func TestCodeDecodeNotPiece(t *testing.T) {
	for _, c := range []Code{EmptyCode, 13, 99, 255} {
		_, _, ok := c.Decode()
		assert.False(t, ok, "code %d", c)
	}
}

func TestSquare(t *testing.T) {
	sq, ok := NewSquare(1, 1)
	require.True(t, ok)
	assert.Equal(t, "a1", sq.String())
	assert.Equal(t, 0, sq.Index())
	assert.True(t, sq.IsDark())

	sq, ok = NewSquare(8, 8)
	require.True(t, ok)
	assert.Equal(t, "h8", sq.String())
	assert.Equal(t, 63, sq.Index())
	assert.True(t, sq.IsDark())

	sq, _ = NewSquare(8, 1)
	assert.False(t, sq.IsDark())

	for _, bad := range [][2]int{{0, 1}, {1, 0}, {9, 1}, {1, 9}, {-1, 4}} {
		_, ok := NewSquare(bad[0], bad[1])
		assert.False(t, ok, "%v", bad)
	}
	assert.Equal(t, "-", Square{}.String())
}

func TestSquareFromAlgebraic(t *testing.T) {
	sq, err := SquareFromAlgebraic("e4")
	require.NoError(t, err)
	assert.Equal(t, Square{File: 5, Rank: 4}, sq)

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		_, err := SquareFromAlgebraic(bad)
		assert.Error(t, err, bad)
	}
}

func TestTeamFromString(t *testing.T) {
	team, err := TeamFromString("black")
	require.NoError(t, err)
	assert.Equal(t, Black, team)

	team, err = TeamFromString("White")
	require.NoError(t, err)
	assert.Equal(t, White, team)

	_, err = TeamFromString("red")
	assert.Error(t, err)
}

func TestImagePath(t *testing.T) {
	assert.Equal(t, "pieces/white_knight.png", ImagePath(White, Knight))
	assert.Equal(t, "pieces/black_queen.png", ImagePath(Black, Queen))
}

func TestPieceString(t *testing.T) {
	p := Piece{Team: White, Type: Pawn, Square: Square{File: 5, Rank: 2}}
	assert.Equal(t, "White Pawn at e2", p.String())
}
