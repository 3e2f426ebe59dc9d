package board

import (
	"ecschess/src/base"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const DefaultSquareLength float32 = 80

// ValidSquareLength reports whether l is a positive finite length.
func ValidSquareLength(l float32) bool {
	return l > 0 && !math.IsInf(float64(l), 0)
}

// Corner is the screen position of the bottom-left board corner for a
// centered board. Screen coordinates start top-left and grow downwards.
func Corner(width, height, squareLen float32) mgl32.Vec2 {
	side := squareLen * base.BoardSide
	return mgl32.Vec2{(width - side) / 2, (height + side) / 2}
}

// SquareAt maps a screen point to the board square under it.
func SquareAt(p mgl32.Vec2, width, height, squareLen float32) (base.Square, bool) {
	if !ValidSquareLength(squareLen) {
		return base.Square{}, false
	}
	c := Corner(width, height, squareLen)
	file := math.Ceil(float64((p.X() - c.X()) / squareLen))
	rank := math.Ceil(float64((c.Y() - p.Y()) / squareLen))
	// written positively so NaN falls through to no-match
	if !(file >= 1 && file <= base.BoardSide && rank >= 1 && rank <= base.BoardSide) {
		return base.Square{}, false
	}
	return base.Square{File: uint8(file), Rank: uint8(rank)}, true
}

// WorldPosition is the center of sq in world space: origin at the board
// center, y up.
func WorldPosition(sq base.Square, squareLen float32) mgl32.Vec2 {
	return mgl32.Vec2{
		squareLen*float32(sq.File) - squareLen*4.5,
		squareLen*float32(sq.Rank) - squareLen*4.5,
	}
}

// WorldToScreen converts a world point for a camera centered in the window.
func WorldToScreen(world mgl32.Vec2, width, height float32) mgl32.Vec2 {
	return mgl32.Vec2{width/2 + world.X(), height/2 - world.Y()}
}

func ScreenCenter(sq base.Square, width, height, squareLen float32) mgl32.Vec2 {
	return WorldToScreen(WorldPosition(sq, squareLen), width, height)
}
