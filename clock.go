package sapling

// ClockID identifies a scheduled clock callback.
type ClockID uint32

type scheduled struct {
	id ClockID
	fn func(dt float64)
}

// Clock runs scheduled callbacks once per tick with the elapsed time in
// seconds. The Loop ticks DefaultClock every Update; animated sprites
// schedule themselves on it while unpaused.
type Clock struct {
	entries []scheduled
	nextID  ClockID
	ticking bool
	removed map[ClockID]bool
}

// NewClock returns an empty clock.
func NewClock() *Clock {
	return &Clock{}
}

var defaultClock = NewClock()

// DefaultClock returns the process-wide clock ticked by Loop.
func DefaultClock() *Clock {
	return defaultClock
}

// Schedule registers fn to run on every Tick and returns its ID.
func (c *Clock) Schedule(fn func(dt float64)) ClockID {
	c.nextID++
	c.entries = append(c.entries, scheduled{id: c.nextID, fn: fn})
	return c.nextID
}

// Unschedule removes the callback with the given ID. Unknown IDs are ignored.
// It is safe to call from within a callback.
func (c *Clock) Unschedule(id ClockID) {
	if c.ticking {
		if c.removed == nil {
			c.removed = make(map[ClockID]bool)
		}
		c.removed[id] = true
		return
	}
	for i, e := range c.entries {
		if e.id == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of scheduled callbacks.
func (c *Clock) Len() int {
	n := 0
	for _, e := range c.entries {
		if !c.removed[e.id] {
			n++
		}
	}
	return n
}

// Tick runs every callback scheduled before the tick started, in
// scheduling order.
func (c *Clock) Tick(dt float64) {
	c.ticking = true
	n := len(c.entries)
	for i := 0; i < n; i++ {
		e := c.entries[i]
		if c.removed[e.id] {
			continue
		}
		e.fn(dt)
	}
	c.ticking = false

	if len(c.removed) > 0 {
		kept := c.entries[:0]
		for _, e := range c.entries {
			if !c.removed[e.id] {
				kept = append(kept, e)
			}
		}
		c.entries = kept
		c.removed = nil
	}
}
