package sapling

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AddEvent is published when World.Create makes a new entity.
type AddEvent struct {
	World  *World
	Entity donburi.Entity
}

// SwitchEvent is published on both worlds when the Loop switches from one
// to the other. From is nil for the first world a Loop starts with.
type SwitchEvent struct {
	From, To *World
}

// CameraDraw is published by CameraProcessor once per frame after the
// window has been cleared. Subscribe to CameraDrawEventType to render custom
// objects alongside cameras.
type CameraDraw struct {
	World  *World
	Window *Window
}

// Donburi event types for sapling's lifecycle events. Events published while
// a world's dispatch is disabled stay queued until it is enabled again.
var (
	AddEventType        = events.NewEventType[AddEvent]()
	SwitchInEventType   = events.NewEventType[SwitchEvent]()
	SwitchOutEventType  = events.NewEventType[SwitchEvent]()
	CameraDrawEventType = events.NewEventType[CameraDraw]()
)

// AddHandler is implemented by components that react to their entity being
// created in a world.
type AddHandler interface {
	OnAdd(entry *donburi.Entry, w *World)
}

// SwitchInHandler is implemented by components that react to their world
// becoming the Loop's current world.
type SwitchInHandler interface {
	OnSwitchIn(from, to *World)
}

// SwitchOutHandler is implemented by components that react to their world
// being replaced as the Loop's current world.
type SwitchOutHandler interface {
	OnSwitchOut(from, to *World)
}

// CameraDrawHandler is implemented by components that render on CameraDraw.
type CameraDrawHandler interface {
	OnCameraDraw()
}

// handlerOf returns the value whose methods should receive events: the
// stored value itself for pointer components (*Sprite), otherwise a pointer
// into component storage.
func handlerOf[T any](v *T) any {
	switch any(*v).(type) {
	case AddHandler, SwitchInHandler, SwitchOutHandler, CameraDrawHandler:
		return *v
	}
	return v
}

// Listen routes lifecycle events of w to every component of type ct that
// implements AddHandler, SwitchInHandler, SwitchOutHandler or
// CameraDrawHandler. Listening twice to the same type is a no-op.
//
// NewWorld already listens to the component types defined by sapling.
func Listen[T any](w *World, ct *donburi.ComponentType[T]) {
	if w.listening[ct] {
		return
	}
	w.listening[ct] = true

	AddEventType.Subscribe(w.World, func(_ donburi.World, e AddEvent) {
		if !w.Valid(e.Entity) {
			return
		}
		entry := w.Entry(e.Entity)
		if !entry.HasComponent(ct) {
			return
		}
		if h, ok := handlerOf(ct.Get(entry)).(AddHandler); ok {
			h.OnAdd(entry, w)
		}
	})
	SwitchInEventType.Subscribe(w.World, func(_ donburi.World, e SwitchEvent) {
		ct.Each(w.World, func(entry *donburi.Entry) {
			if h, ok := handlerOf(ct.Get(entry)).(SwitchInHandler); ok {
				h.OnSwitchIn(e.From, e.To)
			}
		})
	})
	SwitchOutEventType.Subscribe(w.World, func(_ donburi.World, e SwitchEvent) {
		ct.Each(w.World, func(entry *donburi.Entry) {
			if h, ok := handlerOf(ct.Get(entry)).(SwitchOutHandler); ok {
				h.OnSwitchOut(e.From, e.To)
			}
		})
	})
	CameraDrawEventType.Subscribe(w.World, func(_ donburi.World, _ CameraDraw) {
		ct.Each(w.World, func(entry *donburi.Entry) {
			if h, ok := handlerOf(ct.Get(entry)).(CameraDrawHandler); ok {
				h.OnCameraDraw()
				w.stats.cameraCount++
			}
		})
	})
}
