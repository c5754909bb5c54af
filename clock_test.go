package sapling

import "testing"

func TestClockTick(t *testing.T) {
	c := NewClock()
	var total float64
	c.Schedule(func(dt float64) { total += dt })
	c.Tick(0.5)
	c.Tick(0.25)
	assertNear(t, "total", total, 0.75)
}

func TestClockUnschedule(t *testing.T) {
	c := NewClock()
	calls := 0
	id := c.Schedule(func(float64) { calls++ })
	c.Tick(1)
	c.Unschedule(id)
	c.Tick(1)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	c.Unschedule(999) // unknown IDs are ignored
}

func TestClockUnscheduleDuringTick(t *testing.T) {
	c := NewClock()
	var order []string
	var idB ClockID
	c.Schedule(func(float64) {
		order = append(order, "a")
		c.Unschedule(idB)
	})
	idB = c.Schedule(func(float64) { order = append(order, "b") })

	c.Tick(1)
	if len(order) != 1 || order[0] != "a" {
		t.Errorf("order = %v, want [a]", order)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestClockScheduleDuringTick(t *testing.T) {
	c := NewClock()
	added := 0
	c.Schedule(func(float64) {
		c.Schedule(func(float64) { added++ })
	})
	c.Tick(1)
	if added != 0 {
		t.Errorf("callback scheduled during tick ran in the same tick")
	}
	c.Tick(1)
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
}
