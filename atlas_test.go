package sapling

import (
	"errors"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTextureBinAdd(t *testing.T) {
	bin := NewTextureBin(64, 64)
	tex, err := bin.Add(ebiten.NewImage(16, 8), 1)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width() != 16 || tex.Height() != 8 {
		t.Errorf("size = %dx%d, want 16x8", tex.Width(), tex.Height())
	}
	if got, want := tex.Ebiten().Bounds(), image.Rect(1, 1, 17, 9); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
	if len(bin.Atlases()) != 1 || bin.Atlases()[0].Len() != 1 {
		t.Errorf("atlases = %d, want 1 page with 1 image", len(bin.Atlases()))
	}
}

func TestTextureBinShelfPacking(t *testing.T) {
	bin := NewTextureBin(64, 64)
	a, _ := bin.Add(ebiten.NewImage(30, 10), 0)
	b, _ := bin.Add(ebiten.NewImage(30, 10), 0)
	c, _ := bin.Add(ebiten.NewImage(30, 10), 0)

	if a.Ebiten().Bounds().Min != image.Pt(0, 0) {
		t.Errorf("a at %v, want (0,0)", a.Ebiten().Bounds().Min)
	}
	if b.Ebiten().Bounds().Min != image.Pt(30, 0) {
		t.Errorf("b at %v, want (30,0)", b.Ebiten().Bounds().Min)
	}
	// Third image does not fit the first shelf.
	if c.Ebiten().Bounds().Min != image.Pt(0, 10) {
		t.Errorf("c at %v, want (0,10)", c.Ebiten().Bounds().Min)
	}
}

func TestTextureBinOpensNewPage(t *testing.T) {
	bin := NewTextureBin(32, 32)
	for i := 0; i < 5; i++ {
		if _, err := bin.Add(ebiten.NewImage(16, 16), 0); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(bin.Atlases()); n != 2 {
		t.Errorf("pages = %d, want 2", n)
	}
	if bin.Atlases()[0].Len() != 4 || bin.Atlases()[1].Len() != 1 {
		t.Errorf("page counts = %d, %d, want 4, 1",
			bin.Atlases()[0].Len(), bin.Atlases()[1].Len())
	}
}

func TestTextureBinTooLarge(t *testing.T) {
	bin := NewTextureBin(32, 32)
	if bin.Fits(32, 32, 1) {
		t.Error("Fits(32, 32, border 1) = true, want false")
	}
	if !bin.Fits(32, 32, 0) {
		t.Error("Fits(32, 32, border 0) = false, want true")
	}
	_, err := bin.Add(ebiten.NewImage(40, 8), 0)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("error = %v, want ErrTooLarge", err)
	}
	if len(bin.Atlases()) != 0 {
		t.Error("oversized image opened a page")
	}
}

func TestDefaultTextureBin(t *testing.T) {
	resetGlobals(t)
	bin := DefaultTextureBin()
	if bin != DefaultTextureBin() {
		t.Error("DefaultTextureBin is not a singleton")
	}
	w, h := bin.PageSize()
	if w != DefaultAtlasWidth || h != DefaultAtlasHeight {
		t.Errorf("PageSize() = %dx%d, want %dx%d", w, h, DefaultAtlasWidth, DefaultAtlasHeight)
	}
}

func TestAtlasRegionStaysInsideImage(t *testing.T) {
	bin := NewTextureBin(64, 64)
	tex, err := bin.Add(ebiten.NewImage(16, 16), 2)
	if err != nil {
		t.Fatal(err)
	}
	r, err := tex.Region(0, 0, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if r.Ebiten().Bounds() != tex.Ebiten().Bounds() {
		t.Errorf("full region = %v, want %v", r.Ebiten().Bounds(), tex.Ebiten().Bounds())
	}
	if _, err := tex.Region(0, 0, 17, 16); !errors.Is(err, ErrRegionOutOfBounds) {
		t.Errorf("error = %v, want ErrRegionOutOfBounds", err)
	}
}
