package sapling

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable is anything a Batch can render.
type Drawable interface {
	// Draw renders onto target with transform applied on top of the
	// drawable's own placement.
	Draw(target *ebiten.Image, transform Matrix)
	// Z orders drawables within a batch; lower values draw first.
	Z() int
}

// Batch is an ordered collection of drawables rendered together by a Camera.
// Drawables are sorted by Z; equal Z values keep insertion order.
type Batch struct {
	items []Drawable
	dirty bool
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Add appends d to the batch.
func (b *Batch) Add(d Drawable) {
	b.items = append(b.items, d)
	b.dirty = true
}

// Remove drops d from the batch. Unknown drawables are ignored.
func (b *Batch) Remove(d Drawable) {
	for i, item := range b.items {
		if item == d {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of drawables.
func (b *Batch) Len() int {
	return len(b.items)
}

// Items returns the drawables in draw order. The returned slice MUST NOT be mutated.
func (b *Batch) Items() []Drawable {
	b.sort()
	return b.items
}

// MarkDirty forces a re-sort before the next draw. Sprites call it when
// their Z changes.
func (b *Batch) MarkDirty() {
	b.dirty = true
}

func (b *Batch) sort() {
	if !b.dirty {
		return
	}
	sort.SliceStable(b.items, func(i, j int) bool {
		return b.items[i].Z() < b.items[j].Z()
	})
	b.dirty = false
}

// Draw renders every drawable onto target in Z order and returns how many
// were submitted.
func (b *Batch) Draw(target *ebiten.Image, transform Matrix) int {
	b.sort()
	for _, d := range b.items {
		d.Draw(target, transform)
	}
	return len(b.items)
}
