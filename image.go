package sapling

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Source is anything a Sprite can display: an Image or an *Animation.
type Source interface {
	Width() int
	Height() int
}

// Image is a rectangular picture with an anchor point.
//
// Coordinates passed to Region and the anchor use a bottom-left origin with
// Y increasing upward, the convention of most spritesheet exporters' "origin"
// fields. Metadata authored with a top-left origin must be converted by the
// caller.
type Image interface {
	Source
	// Region returns the w x h sub-image whose bottom-left corner is (x, y).
	Region(x, y, w, h int) (Image, error)
	// Anchor returns the rendering reference point.
	Anchor() Vec2
	// SetAnchor moves the rendering reference point.
	SetAnchor(anchor Vec2)
	// Ebiten returns the backing image.
	Ebiten() *ebiten.Image
}

// Texture is the Image implementation backed by an *ebiten.Image, which may
// itself be a sub-image of an atlas page.
type Texture struct {
	img    *ebiten.Image
	anchor Vec2
}

// NewTexture wraps img. The anchor starts at (0, 0).
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.img.Bounds().Dx() }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.img.Bounds().Dy() }

// Anchor returns the rendering reference point.
func (t *Texture) Anchor() Vec2 { return t.anchor }

// SetAnchor moves the rendering reference point.
func (t *Texture) SetAnchor(anchor Vec2) { t.anchor = anchor }

// Ebiten returns the backing image.
func (t *Texture) Ebiten() *ebiten.Image { return t.img }

// Region returns the w x h sub-image whose bottom-left corner is (x, y).
// The region shares pixels with t; its anchor starts at (0, 0).
func (t *Texture) Region(x, y, w, h int) (Image, error) {
	tw, th := t.Width(), t.Height()
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > tw || y+h > th {
		return nil, fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d image",
			ErrRegionOutOfBounds, w, h, x, y, tw, th)
	}
	b := t.img.Bounds()
	top := b.Min.Y + th - y - h
	r := image.Rect(b.Min.X+x, top, b.Min.X+x+w, top+h)
	return &Texture{img: t.img.SubImage(r).(*ebiten.Image)}, nil
}

// anchorOffset returns the translation that places the anchor at the origin
// in Ebitengine's top-left pixel space.
func anchorOffset(img Image) (float64, float64) {
	a := img.Anchor()
	return -a.X, -(float64(img.Height()) - a.Y)
}
