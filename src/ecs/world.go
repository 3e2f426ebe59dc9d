package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// World is the donburi world the systems run against.
type World = donburi.World

func NewWorld() World {
	return donburi.NewWorld()
}

// Spawn creates an entity carrying components and returns its entry.
func Spawn(w World, components ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(components...))
}

// ---- Resources ----

// A resource is a singleton entity that holds nothing but its component.

func resourceEntry[T any](w World, c *donburi.ComponentType[T]) (*donburi.Entry, bool) {
	return donburi.NewQuery(filter.Contains(c)).First(w)
}

// SetResource stores v, creating the singleton on first use.
func SetResource[T any](w World, c *donburi.ComponentType[T], v T) {
	entry, ok := resourceEntry(w, c)
	if !ok {
		entry = Spawn(w, c)
	}
	c.SetValue(entry, v)
}

func Resource[T any](w World, c *donburi.ComponentType[T]) (*T, bool) {
	entry, ok := resourceEntry(w, c)
	if !ok {
		return nil, false
	}
	return c.Get(entry), true
}

func RemoveResource[T any](w World, c *donburi.ComponentType[T]) {
	if entry, ok := resourceEntry(w, c); ok {
		w.Remove(entry.Entity())
	}
}
