package input

import (
	"ecschess/src/ecs"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func collect(w ecs.World) []MouseButtonInput {
	var got []MouseButtonInput
	MouseButtonEvents.Subscribe(w, func(w donburi.World, ev MouseButtonInput) { got = append(got, ev) })
	MouseButtonEvents.ProcessEvents(w)
	return got
}

func TestApplyFrame(t *testing.T) {
	w := ecs.NewWorld()
	press := MouseButtonInput{Button: MouseRight, State: Pressed}
	release := MouseButtonInput{Button: MouseLeft, State: Released}
	Apply(w, Frame{HasWindow: true, Width: 800, Height: 600, CursorX: 10, CursorY: 20, Transitions: []MouseButtonInput{press, release}})

	win, ok := ecs.Resource(w, PrimaryWindowComponent)
	require.True(t, ok)
	assert.Equal(t, PrimaryWindow{Width: 800, Height: 600}, *win)
	c, ok := ecs.Resource(w, CursorComponent)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{10, 20}, c.Position)
	assert.Equal(t, []MouseButtonInput{press, release}, collect(w))
}

func TestApplyCursorOutside(t *testing.T) {
	w := ecs.NewWorld()
	Apply(w, Frame{HasWindow: true, Width: 800, Height: 600, CursorX: 10, CursorY: 20})
	Apply(w, Frame{HasWindow: true, Width: 800, Height: 600, CursorX: 800, CursorY: 20})
	_, ok := ecs.Resource(w, CursorComponent)
	assert.False(t, ok)
}

func TestApplyNoWindow(t *testing.T) {
	w := ecs.NewWorld()
	Apply(w, Frame{HasWindow: true, Width: 800, Height: 600})
	Apply(w, Frame{})
	_, ok := ecs.Resource(w, PrimaryWindowComponent)
	assert.False(t, ok)
	_, ok = ecs.Resource(w, CursorComponent)
	assert.False(t, ok)
}

func TestWindowContains(t *testing.T) {
	win := PrimaryWindow{Width: 10, Height: 10}
	assert.True(t, win.Contains(mgl32.Vec2{0, 0}))
	assert.True(t, win.Contains(mgl32.Vec2{9.9, 9.9}))
	assert.False(t, win.Contains(mgl32.Vec2{10, 5}))
	assert.False(t, win.Contains(mgl32.Vec2{-1, 5}))
	assert.Equal(t, "left", MouseLeft.String())
}
