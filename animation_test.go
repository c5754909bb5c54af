package sapling

import (
	"testing"
	"time"
)

func testAnimation(durations ...int) *Animation {
	frames := make([]AnimationFrame, len(durations))
	for i, d := range durations {
		frames[i] = AnimationFrame{Image: newTestTexture(8+i, 4), Duration: d}
	}
	return NewAnimation(frames...)
}

func TestAnimationSize(t *testing.T) {
	a := NewAnimation(
		AnimationFrame{Image: newTestTexture(8, 20), Duration: 100},
		AnimationFrame{Image: newTestTexture(16, 4), Duration: 100},
	)
	if a.Width() != 16 || a.Height() != 20 {
		t.Errorf("size = %dx%d, want 16x20", a.Width(), a.Height())
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestAnimationTotalDuration(t *testing.T) {
	a := testAnimation(200, 300, 50)
	if got := a.TotalDuration(); got != 550 {
		t.Errorf("TotalDuration() = %d, want 550", got)
	}
}

func TestAnimationFramePeriod(t *testing.T) {
	f := AnimationFrame{Duration: 250}
	if f.Period() != 250*time.Millisecond {
		t.Errorf("Period() = %v, want 250ms", f.Period())
	}
}

func TestAnimationPlayerAdvance(t *testing.T) {
	p := NewAnimationPlayer(testAnimation(200, 300))
	p.Advance(0.1)
	if p.Index() != 0 {
		t.Errorf("after 100ms: Index() = %d, want 0", p.Index())
	}
	p.Advance(0.1)
	if p.Index() != 1 {
		t.Errorf("after 200ms: Index() = %d, want 1", p.Index())
	}
	p.Advance(0.29)
	if p.Index() != 1 {
		t.Errorf("after 490ms: Index() = %d, want 1", p.Index())
	}
	p.Advance(0.02)
	if p.Index() != 0 {
		t.Errorf("after 510ms: Index() = %d, want 0 (looped)", p.Index())
	}
}

func TestAnimationPlayerSkipsFrames(t *testing.T) {
	p := NewAnimationPlayer(testAnimation(100, 100, 100, 100))
	p.Advance(0.25)
	if p.Index() != 2 {
		t.Errorf("Index() = %d, want 2", p.Index())
	}
}

func TestAnimationPlayerNoLoop(t *testing.T) {
	p := NewAnimationPlayer(testAnimation(100, 100))
	p.Loop = false
	p.Advance(1)
	if !p.Finished {
		t.Error("Finished = false, want true")
	}
	if p.Index() != 1 {
		t.Errorf("Index() = %d, want 1 (last frame)", p.Index())
	}
	p.Restart()
	if p.Finished || p.Index() != 0 {
		t.Errorf("after Restart: Finished=%t Index=%d", p.Finished, p.Index())
	}
}

func TestAnimationPlayerZeroDuration(t *testing.T) {
	p := NewAnimationPlayer(testAnimation(0, 0, 100))
	p.Advance(0.001)
	if p.Index() != 1 {
		t.Errorf("Index() = %d, want 1", p.Index())
	}
	p.Advance(0.001)
	if p.Index() != 2 {
		t.Errorf("Index() = %d, want 2", p.Index())
	}
}
