package ecs

import (
	"ecschess/src/logx"
	"fmt"

	"github.com/yohamta/donburi/features/events"
)

// System is a startup or per-frame hook.
type System func(w World) error

type namedSystem struct {
	name string
	run  System
}

// App runs startup systems once and update systems every frame.
type App struct {
	world   World
	startup []namedSystem
	update  []namedSystem
	started bool
	frame   uint64
	logger  logx.Logger
}

func NewApp(logger logx.Logger) *App {
	return &App{world: NewWorld(), logger: logger}
}

func (a *App) World() World {
	return a.world
}

func (a *App) Frame() uint64 {
	return a.frame
}

func (a *App) AddStartupSystem(name string, s System) *App {
	a.startup = append(a.startup, namedSystem{name: name, run: s})
	return a
}

func (a *App) AddSystem(name string, s System) *App {
	a.update = append(a.update, namedSystem{name: name, run: s})
	return a
}

// Startup runs the startup systems in registration order. It is a no-op
// after the first successful call.
func (a *App) Startup() error {
	if a.started {
		return nil
	}
	for _, s := range a.startup {
		a.logger.Debugf("startup system %s", s.name)
		if err := s.run(a.world); err != nil {
			return fmt.Errorf("error startup system %s: %w", s.name, err)
		}
	}
	a.started = true
	return nil
}

// Update runs one frame. Events published before the call are delivered
// to their subscribers by the end of it, never in a later frame.
func (a *App) Update() error {
	if err := a.Startup(); err != nil {
		return err
	}
	defer events.ProcessAllEvents(a.world)
	a.frame++
	for _, s := range a.update {
		if err := s.run(a.world); err != nil {
			return fmt.Errorf("error system %s: %w", s.name, err)
		}
	}
	return nil
}
