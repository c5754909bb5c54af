package sapling

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSCounter is a sprite displaying the current FPS and TPS. The text is
// redrawn about twice per second from DefaultClock.
type FPSCounter struct {
	*Sprite
	img     *ebiten.Image
	clock   *Clock
	clockID ClockID
	elapsed float64
}

// NewFPSCounter creates a counter drawn on top of everything else in batch.
// Its position is the top-left corner of the text.
func NewFPSCounter(batch *Batch) *FPSCounter {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	tex := NewTexture(img)
	tex.SetAnchor(Vec2{X: 0, Y: 32})

	f := &FPSCounter{Sprite: newSprite(tex), img: img, clock: DefaultClock()}
	f.self = f
	f.z = math.MaxInt32
	f.SetBatch(batch)
	f.refresh()
	f.clockID = f.clock.Schedule(f.update)
	return f
}

func (f *FPSCounter) update(dt float64) {
	f.elapsed += dt
	if f.elapsed < 0.5 {
		return
	}
	f.elapsed = 0
	f.refresh()
}

func (f *FPSCounter) refresh() {
	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Delete removes the counter from its batch and stops refreshing it.
func (f *FPSCounter) Delete() {
	if f.clockID != 0 {
		f.clock.Unschedule(f.clockID)
		f.clockID = 0
	}
	f.Sprite.Delete()
}
