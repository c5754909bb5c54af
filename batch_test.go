package sapling

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingDrawable struct {
	name string
	z    int
	log  *[]string
	last Matrix
}

func (d *recordingDrawable) Draw(_ *ebiten.Image, transform Matrix) {
	*d.log = append(*d.log, d.name)
	d.last = transform
}

func (d *recordingDrawable) Z() int { return d.z }

func TestBatchDrawOrder(t *testing.T) {
	var log []string
	b := NewBatch()
	b.Add(&recordingDrawable{name: "front", z: 10, log: &log})
	b.Add(&recordingDrawable{name: "back", z: -1, log: &log})
	b.Add(&recordingDrawable{name: "mid1", z: 0, log: &log})
	b.Add(&recordingDrawable{name: "mid2", z: 0, log: &log})

	n := b.Draw(ebiten.NewImage(4, 4), IdentityMatrix)
	if n != 4 {
		t.Errorf("Draw() = %d, want 4", n)
	}
	want := []string{"back", "mid1", "mid2", "front"}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("order = %v, want %v", log, want)
		}
	}
}

func TestBatchRemove(t *testing.T) {
	var log []string
	b := NewBatch()
	a := &recordingDrawable{name: "a", log: &log}
	c := &recordingDrawable{name: "c", log: &log}
	b.Add(a)
	b.Add(c)
	b.Remove(a)
	b.Remove(a)
	if b.Len() != 1 || b.Items()[0] != Drawable(c) {
		t.Errorf("items = %v, want [c]", b.Items())
	}
}

func TestBatchPassesTransform(t *testing.T) {
	var log []string
	d := &recordingDrawable{name: "d", log: &log}
	b := NewBatch()
	b.Add(d)
	m := Translation(3, 4)
	b.Draw(ebiten.NewImage(4, 4), m)
	assertMatrix(t, "transform", d.last, m)
}

func TestBatchResortsOnZChange(t *testing.T) {
	b := NewBatch()
	s1 := NewSprite(newTestTexture(4, 4), b)
	s2 := NewSprite(newTestTexture(4, 4), b)
	if b.Items()[0] != Drawable(s1) {
		t.Fatal("insertion order not kept")
	}
	s1.SetZ(5)
	if b.Items()[0] != Drawable(s2) {
		t.Error("SetZ did not re-sort the batch")
	}
}
