package ecs

import (
	"errors"
	"testing"

	"ecschess/src/logx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type pos struct{ X, Y int }

var (
	posComponent  = donburi.NewComponentType[pos]()
	tickComponent = donburi.NewComponentType[uint64]()
	posEvents     = events.NewEventType[pos]()
)

func TestSpawn(t *testing.T) {
	w := NewWorld()
	e := Spawn(w, posComponent)
	posComponent.SetValue(e, pos{1, 2})

	assert.True(t, e.HasComponent(posComponent))
	assert.False(t, e.HasComponent(tickComponent))
	assert.Equal(t, pos{1, 2}, *posComponent.Get(e))
	assert.Equal(t, 1, w.Len())
}

func TestResources(t *testing.T) {
	w := NewWorld()
	_, ok := Resource(w, posComponent)
	assert.False(t, ok)

	SetResource(w, posComponent, pos{3, 4})
	SetResource(w, posComponent, pos{5, 6})
	r, ok := Resource(w, posComponent)
	require.True(t, ok)
	assert.Equal(t, pos{5, 6}, *r)
	assert.Equal(t, 1, w.Len())

	// pointer stays live until the resource is replaced or removed
	r.X = 7
	r, _ = Resource(w, posComponent)
	assert.Equal(t, 7, r.X)

	RemoveResource(w, posComponent)
	_, ok = Resource(w, posComponent)
	assert.False(t, ok)
	assert.Equal(t, 0, w.Len())
	RemoveResource(w, posComponent)
}

func TestAppSchedule(t *testing.T) {
	app := NewApp(logx.NewNop())
	var calls []string
	var got []pos
	app.AddStartupSystem("subscribe", func(w World) error {
		calls = append(calls, "subscribe")
		posEvents.Subscribe(w, func(w donburi.World, p pos) { got = append(got, p) })
		return nil
	}).AddSystem("tick", func(w World) error {
		calls = append(calls, "tick")
		posEvents.ProcessEvents(w)
		return nil
	})

	posEvents.Publish(app.World(), pos{1, 1})
	require.NoError(t, app.Update())
	posEvents.Publish(app.World(), pos{2, 2})
	require.NoError(t, app.Update())
	require.NoError(t, app.Update())

	assert.Equal(t, []string{"subscribe", "tick", "tick", "tick"}, calls)
	assert.Equal(t, []pos{{1, 1}, {2, 2}}, got)
	assert.Equal(t, uint64(3), app.Frame())
}

func TestAppDropsUnprocessedEvents(t *testing.T) {
	app := NewApp(logx.NewNop())
	require.NoError(t, app.Update())

	posEvents.Publish(app.World(), pos{1, 1})
	require.NoError(t, app.Update())

	// subscribed after the frame ended, nothing is left to deliver
	var got []pos
	posEvents.Subscribe(app.World(), func(w donburi.World, p pos) { got = append(got, p) })
	posEvents.ProcessEvents(app.World())
	assert.Empty(t, got)
}

func TestAppSystemError(t *testing.T) {
	boom := errors.New("boom")
	app := NewApp(logx.NewNop())
	app.AddStartupSystem("broken", func(w World) error { return boom })

	err := app.Update()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, uint64(0), app.Frame())
}
