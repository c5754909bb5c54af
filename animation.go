package sapling

import "time"

// DefaultFrameDuration is the duration, in milliseconds, given to a
// spritesheet frame that does not declare one.
const DefaultFrameDuration = 1000

// AnimationFrame is one timed image of an Animation.
type AnimationFrame struct {
	Image Image
	// Duration is the display time in milliseconds.
	Duration int
}

// Period returns the frame duration as a time.Duration.
func (f AnimationFrame) Period() time.Duration {
	return time.Duration(f.Duration) * time.Millisecond
}

// Animation is an ordered sequence of timed frames.
type Animation struct {
	Frames []AnimationFrame
}

// NewAnimation builds an animation from frames in the given order.
func NewAnimation(frames ...AnimationFrame) *Animation {
	return &Animation{Frames: frames}
}

// Len returns the number of frames.
func (a *Animation) Len() int { return len(a.Frames) }

// Width returns the widest frame width.
func (a *Animation) Width() int {
	w := 0
	for _, f := range a.Frames {
		w = max(w, f.Image.Width())
	}
	return w
}

// Height returns the tallest frame height.
func (a *Animation) Height() int {
	h := 0
	for _, f := range a.Frames {
		h = max(h, f.Image.Height())
	}
	return h
}

// TotalDuration returns the sum of all frame durations in milliseconds.
func (a *Animation) TotalDuration() int {
	total := 0
	for _, f := range a.Frames {
		total += f.Duration
	}
	return total
}

// AnimationPlayer tracks playback position within an Animation.
// It does nothing on its own; Advance is called by the owning Sprite's
// clock callback while the sprite is not paused.
type AnimationPlayer struct {
	anim    *Animation
	index   int
	elapsed float64 // ms spent on the current frame
	// Loop restarts from the first frame after the last one. Defaults to true.
	Loop bool
	// Finished is set when a non-looping animation reaches its last frame.
	Finished bool
}

// NewAnimationPlayer returns a looping player positioned at the first frame.
func NewAnimationPlayer(anim *Animation) *AnimationPlayer {
	return &AnimationPlayer{anim: anim, Loop: true}
}

// Animation returns the animation being played.
func (p *AnimationPlayer) Animation() *Animation { return p.anim }

// Index returns the current frame index.
func (p *AnimationPlayer) Index() int { return p.index }

// Frame returns the current frame.
func (p *AnimationPlayer) Frame() AnimationFrame { return p.anim.Frames[p.index] }

// Restart rewinds to the first frame.
func (p *AnimationPlayer) Restart() {
	p.index = 0
	p.elapsed = 0
	p.Finished = false
}

// Advance moves playback forward by dt seconds, skipping as many frames as
// dt covers. Frames with a non-positive duration are shown for one call.
func (p *AnimationPlayer) Advance(dt float64) {
	if p.Finished || len(p.anim.Frames) == 0 {
		return
	}
	p.elapsed += dt * 1000
	for {
		d := float64(p.anim.Frames[p.index].Duration)
		if d > 0 && p.elapsed < d {
			return
		}
		if d > 0 {
			p.elapsed -= d
		} else {
			p.elapsed = 0
		}
		if p.index == len(p.anim.Frames)-1 {
			if !p.Loop {
				p.Finished = true
				return
			}
			p.index = 0
		} else {
			p.index++
		}
		if d <= 0 {
			return
		}
	}
}
