package sapling

import (
	"math"
	"testing"
)

func TestFPSCounter(t *testing.T) {
	resetGlobals(t)
	b := NewBatch()
	NewSprite(newTestTexture(4, 4), b)
	f := NewFPSCounter(b)

	if f.Z() != math.MaxInt32 {
		t.Errorf("Z() = %d, want MaxInt32", f.Z())
	}
	items := b.Items()
	if items[len(items)-1] != Drawable(f) {
		t.Error("counter is not drawn last")
	}
	if DefaultClock().Len() != 1 {
		t.Errorf("clock entries = %d, want 1", DefaultClock().Len())
	}

	DefaultClock().Tick(0.3)
	DefaultClock().Tick(0.3)
	assertNear(t, "elapsed after refresh", f.elapsed, 0)

	f.Delete()
	if b.Len() != 1 || DefaultClock().Len() != 0 {
		t.Errorf("after Delete: batch=%d clock=%d, want 1 0", b.Len(), DefaultClock().Len())
	}
}
