package input

import (
	"ecschess/src/ecs"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is a snapshot of the host window and pointer for one tick.
type Frame struct {
	HasWindow   bool
	Width       int
	Height      int
	CursorX     int
	CursorY     int
	Transitions []MouseButtonInput
}

// Apply publishes the frame as world resources and events. The Cursor
// resource is dropped while the pointer is outside the window.
func Apply(w ecs.World, f Frame) {
	if !f.HasWindow {
		ecs.RemoveResource(w, PrimaryWindowComponent)
		ecs.RemoveResource(w, CursorComponent)
		return
	}
	win := PrimaryWindow{Width: float32(f.Width), Height: float32(f.Height)}
	ecs.SetResource(w, PrimaryWindowComponent, win)

	pos := mgl32.Vec2{float32(f.CursorX), float32(f.CursorY)}
	if win.Contains(pos) {
		ecs.SetResource(w, CursorComponent, Cursor{Position: pos})
	} else {
		ecs.RemoveResource(w, CursorComponent)
	}
	for _, ev := range f.Transitions {
		MouseButtonEvents.Publish(w, ev)
	}
}
