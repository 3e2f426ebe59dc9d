// Package input holds the events and resources the host loop feeds into
// the world every frame.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

type ButtonState uint8

const (
	Pressed ButtonState = iota
	Released
)

// MouseButtonInput is sent once per button transition.
type MouseButtonInput struct {
	Button MouseButton
	State  ButtonState
}

// PrimaryWindow is present while the main window exists.
type PrimaryWindow struct {
	Width  float32
	Height float32
}

func (w PrimaryWindow) Contains(p mgl32.Vec2) bool {
	return p.X() >= 0 && p.Y() >= 0 && p.X() < w.Width && p.Y() < w.Height
}

// Cursor is present while the pointer is over the primary window.
type Cursor struct {
	Position mgl32.Vec2
}

var (
	PrimaryWindowComponent = donburi.NewComponentType[PrimaryWindow]()
	CursorComponent        = donburi.NewComponentType[Cursor]()

	MouseButtonEvents = events.NewEventType[MouseButtonInput]()
)
