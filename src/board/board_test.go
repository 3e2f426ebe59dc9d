package board

import (
	"ecschess/src/base"
	"ecschess/src/ecs"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestExpandEveryIndex(t *testing.T) {
	for _, o := range []Orientation{WhiteBottom, TableOrder} {
		pieces := Expand(Classic, o)
		bySquare := make(map[base.Square]base.Piece)
		for _, p := range pieces {
			_, dup := bySquare[p.Square]
			require.False(t, dup, "duplicate square %s", p.Square)
			bySquare[p.Square] = p
		}

		for i, code := range Classic {
			sq := o.SquareOf(i)
			p, ok := bySquare[sq]
			if code == base.EmptyCode {
				assert.False(t, ok, "index %d should be empty", i)
				continue
			}
			require.True(t, ok, "index %d should hold a piece", i)
			team, pt, _ := code.Decode()
			assert.Equal(t, team, p.Team)
			assert.Equal(t, pt, p.Type)
			assert.Equal(t, uint8(i%8+1), p.Square.File)
		}
		assert.Len(t, pieces, 32)
	}
}

func TestOrientationRanks(t *testing.T) {
	assert.Equal(t, base.Square{File: 1, Rank: 8}, WhiteBottom.SquareOf(0))
	assert.Equal(t, base.Square{File: 8, Rank: 1}, WhiteBottom.SquareOf(63))
	assert.Equal(t, base.Square{File: 1, Rank: 1}, TableOrder.SquareOf(0))
	assert.Equal(t, base.Square{File: 8, Rank: 8}, TableOrder.SquareOf(63))

	o, err := OrientationFromString("table_order")
	require.NoError(t, err)
	assert.Equal(t, TableOrder, o)
	_, err = OrientationFromString("upside_down")
	assert.Error(t, err)
}

func TestFENClassic(t *testing.T) {
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", FEN(Classic, WhiteBottom))
	assert.Equal(t, "RNBQKBNR/PPPPPPPP/8/8/8/8/pppppppp/rnbqkbnr", FEN(Classic, TableOrder))
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout(Classic.String())
	require.NoError(t, err)
	assert.Equal(t, Classic, l)

	_, err = ParseLayout("1 2 3")
	assert.Error(t, err)

	bad := Classic
	s := bad.String()
	_, err = ParseLayout(s[:len(s)-1] + "13")
	assert.Error(t, err)

	_, err = ParseLayout(s[:len(s)-1] + "x")
	assert.Error(t, err)
}

func TestSquareAtCorner(t *testing.T) {
	c := Corner(640, 960, 80)
	assert.Equal(t, mgl32.Vec2{0, 800}, c)

	sq, ok := SquareAt(mgl32.Vec2{40, 760}, 640, 960, 80)
	require.True(t, ok)
	assert.Equal(t, base.Square{File: 1, Rank: 1}, sq)

	assert.Equal(t, mgl32.Vec2{80, 720}, Corner(800, 800, 80))
	sq, ok = SquareAt(mgl32.Vec2{120, 680}, 800, 800, 80)
	require.True(t, ok)
	assert.Equal(t, base.Square{File: 1, Rank: 1}, sq)

	sq, ok = SquareAt(mgl32.Vec2{680, 120}, 800, 800, 80)
	require.True(t, ok)
	assert.Equal(t, base.Square{File: 8, Rank: 8}, sq)
}

func TestSquareAtOutside(t *testing.T) {
	for _, p := range []mgl32.Vec2{
		{80, 400},  // left edge belongs to no square
		{79, 400},  // left of board
		{721, 400}, // right of board
		{400, 79},  // above board
		{400, 721}, // below board
		{-500, -500},
		{5000, 5000},
	} {
		_, ok := SquareAt(p, 800, 800, 80)
		assert.False(t, ok, "%v", p)
	}
	_, ok := SquareAt(mgl32.Vec2{400, 400}, 800, 800, 0)
	assert.False(t, ok)
}

func TestSquareAtInverseOfPlacement(t *testing.T) {
	for _, dims := range [][2]float32{{800, 800}, {1280, 720}, {640, 640}} {
		for i := 0; i < 64; i++ {
			for _, o := range []Orientation{WhiteBottom, TableOrder} {
				sq := o.SquareOf(i)
				center := ScreenCenter(sq, dims[0], dims[1], 80)
				got, ok := SquareAt(center, dims[0], dims[1], 80)
				require.True(t, ok, "%s in %v", sq, dims)
				assert.Equal(t, sq, got)
			}
		}
	}
}

func TestSquareAtNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	cases := []struct {
		name string
		p    mgl32.Vec2
		l    float32
	}{
		{"nan point", mgl32.Vec2{nan, nan}, 80},
		{"nan x", mgl32.Vec2{nan, 400}, 80},
		{"nan y", mgl32.Vec2{400, nan}, 80},
		{"inf point", mgl32.Vec2{inf, -inf}, 80},
		{"nan square", mgl32.Vec2{400, 400}, nan},
		{"inf square", mgl32.Vec2{400, 400}, inf},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sq, ok := SquareAt(c.p, 800, 800, c.l)
			assert.False(t, ok)
			assert.False(t, sq.Valid())
		})
	}
}

func newWorld(t *testing.T, s Settings) ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	ecs.SetResource(w, SettingsComponent, s)
	require.NoError(t, SpawnBoard(w))
	require.NoError(t, SpawnPieces(w))
	return w
}

func TestSpawnSystems(t *testing.T) {
	w := newWorld(t, DefaultSettings())
	assert.Equal(t, 64, TileQuery.Count(w))
	assert.Equal(t, 32, PieceQuery.Count(w))
	assert.Equal(t, 96, SpriteQuery.Count(w))

	TileQuery.Each(w, func(e *donburi.Entry) {
		tile, s := TileComponent.Get(e), SpriteComponent.Get(e)
		want := LightColor
		if tile.Square.IsDark() {
			want = DarkColor
		}
		assert.Equal(t, want, s.Color, tile.Square.String())
	})

	_, p, ok := PieceAt(w, base.Square{File: 5, Rank: 1})
	require.True(t, ok)
	assert.Equal(t, base.Piece{Team: base.White, Type: base.King, Square: base.Square{File: 5, Rank: 1}}, p)

	e, _, ok := PieceAt(w, base.Square{File: 4, Rank: 8})
	require.True(t, ok)
	assert.Equal(t, "pieces/black_queen.png", SpriteComponent.Get(e).Image)
	assert.Equal(t, mgl32.Vec3{-40, 280, 0}, TransformComponent.Get(e).Translation)

	_, _, ok = PieceAt(w, base.Square{File: 4, Rank: 4})
	assert.False(t, ok)
}

func TestSpawnWithoutSettings(t *testing.T) {
	w := ecs.NewWorld()
	assert.ErrorIs(t, SpawnBoard(w), ErrNoSettings)
	assert.ErrorIs(t, SpawnPieces(w), ErrNoSettings)
}
