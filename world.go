package sapling

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Processor runs once per Loop iteration over a world.
//
// Returning a *SwitchWorld (see Switch) or ErrQuit stops the current
// iteration and is handled by the Loop; any other error aborts the Loop.
type Processor interface {
	Process(w *World, dt float64) error
}

// Drawer is implemented by processors that render. The Loop calls Draw on
// every Drawer of the current world once per frame, in processor order.
type Drawer interface {
	Draw(w *World, screen *ebiten.Image)
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(w *World, dt float64) error

// Process calls f(w, dt).
func (f ProcessorFunc) Process(w *World, dt float64) error {
	return f(w, dt)
}

type registeredProcessor struct {
	p        Processor
	priority int
}

// World pairs a donburi.World with ordered processors and lifecycle event
// dispatch.
//
// Dispatch starts disabled: events published by a world that is not the
// Loop's current one wait in their queues and are delivered when the Loop
// switches to it. Queued events are delivered grouped by kind: adds first,
// then switch-outs, then switch-ins.
type World struct {
	donburi.World

	processors      []registeredProcessor
	dispatchEnabled bool
	listening       map[any]bool
	stats           frameStats
}

// NewWorld creates an empty world listening to sapling's component types.
func NewWorld() *World {
	w := &World{
		World:     donburi.NewWorld(),
		listening: make(map[any]bool),
	}
	Listen(w, SpriteComponent)
	Listen(w, AdvancedSpriteComponent)
	Listen(w, CameraComponent)
	return w
}

// NewWorldHandle returns a handle whose load creates a new World and runs
// populate on it, in order. Clearing the handle discards the world; the
// next Get builds a fresh one.
func NewWorldHandle(populate ...func(w *World) error) *Handle[*World] {
	return NewHandle(func() (*World, error) {
		w := NewWorld()
		for i, fn := range populate {
			if err := fn(w); err != nil {
				return nil, fmt.Errorf("sapling: populate world (step %d): %w", i, err)
			}
		}
		return w, nil
	})
}

// Create makes a new entity with the given component types and publishes
// an AddEvent for it. The event is delivered at the end of the next Process
// (or when dispatch gets enabled), so component values set right after
// Create are visible to AddHandlers.
func (w *World) Create(components ...donburi.IComponentType) donburi.Entity {
	e := w.World.Create(components...)
	AddEventType.Publish(w.World, AddEvent{World: w, Entity: e})
	return e
}

// AddProcessor registers p. Processors run in ascending priority; equal
// priorities run in registration order.
func (w *World) AddProcessor(p Processor, priority int) {
	w.processors = append(w.processors, registeredProcessor{p: p, priority: priority})
	sort.SliceStable(w.processors, func(i, j int) bool {
		return w.processors[i].priority < w.processors[j].priority
	})
}

// RemoveProcessor unregisters p. Unknown processors are ignored, as are
// processors of uncomparable types such as ProcessorFunc.
func (w *World) RemoveProcessor(p Processor) {
	if p == nil || !reflect.TypeOf(p).Comparable() {
		return
	}
	for i, rp := range w.processors {
		if rp.p == p {
			w.processors = append(w.processors[:i], w.processors[i+1:]...)
			return
		}
	}
}

// Processors returns the registered processors in execution order.
func (w *World) Processors() []Processor {
	ps := make([]Processor, len(w.processors))
	for i, rp := range w.processors {
		ps[i] = rp.p
	}
	return ps
}

// DispatchEnabled reports whether events are delivered as they are published.
func (w *World) DispatchEnabled() bool {
	return w.dispatchEnabled
}

// SetDispatchEnabled enables or disables event delivery. Enabling delivers
// everything queued while disabled.
func (w *World) SetDispatchEnabled(enabled bool) {
	w.dispatchEnabled = enabled
	w.flush()
}

// flush delivers queued lifecycle events when dispatch is enabled.
func (w *World) flush() {
	if !w.dispatchEnabled {
		return
	}
	AddEventType.ProcessEvents(w.World)
	SwitchOutEventType.ProcessEvents(w.World)
	SwitchInEventType.ProcessEvents(w.World)
}

// Process runs every processor with dt seconds elapsed. The first error
// stops the iteration and is returned.
func (w *World) Process(dt float64) error {
	defer w.flush()
	for _, rp := range w.processors {
		if err := rp.p.Process(w, dt); err != nil {
			return err
		}
	}
	return nil
}

// Draw calls every Drawer processor.
func (w *World) Draw(screen *ebiten.Image) {
	w.stats.cameraCount = 0
	for _, rp := range w.processors {
		if d, ok := rp.p.(Drawer); ok {
			d.Draw(w, screen)
		}
	}
}

// dispatchSwitch publishes a switch event on w and delivers it if enabled.
func (w *World) dispatchSwitch(kind *events.EventType[SwitchEvent], from, to *World) {
	kind.Publish(w.World, SwitchEvent{From: from, To: to})
	w.flush()
}

// SwitchWorld is returned by a processor to make the Loop switch to the
// world in Handle at the end of the iteration.
type SwitchWorld struct {
	Handle *Handle[*World]
	// ClearCurrent clears the handle of the world being left.
	ClearCurrent bool
	// ClearNext clears Handle before loading it, giving a fresh world.
	ClearNext bool
}

func (s *SwitchWorld) Error() string {
	return "sapling: switch world"
}

// Switch returns a *SwitchWorld error for handle.
func Switch(handle *Handle[*World], clearCurrent, clearNext bool) error {
	return &SwitchWorld{Handle: handle, ClearCurrent: clearCurrent, ClearNext: clearNext}
}
