package sapling

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Default atlas page dimensions used by DefaultTextureBin.
const (
	DefaultAtlasWidth  = 2048
	DefaultAtlasHeight = 2048
)

// shelf is one horizontal strip of an atlas page. Images are placed left to
// right; a shelf is as tall as the first image placed on it.
type shelf struct {
	y, height int
	cursor    int
}

// TextureAtlas is one page of a TextureBin. Packed images are copied into
// Page and returned as sub-images of it.
type TextureAtlas struct {
	// Page is the shared page image.
	Page    *ebiten.Image
	width   int
	height  int
	shelves []shelf
	count   int
}

func newTextureAtlas(width, height int) *TextureAtlas {
	return &TextureAtlas{
		Page:   ebiten.NewImage(width, height),
		width:  width,
		height: height,
	}
}

// Len returns the number of images packed into the page.
func (a *TextureAtlas) Len() int { return a.count }

// allocate reserves a w x h rectangle and returns its top-left corner.
func (a *TextureAtlas) allocate(w, h int) (x, y int, ok bool) {
	for i := range a.shelves {
		s := &a.shelves[i]
		if h <= s.height && s.cursor+w <= a.width {
			x = s.cursor
			s.cursor += w
			return x, s.y, true
		}
	}
	top := 0
	if n := len(a.shelves); n > 0 {
		top = a.shelves[n-1].y + a.shelves[n-1].height
	}
	if w > a.width || top+h > a.height {
		return 0, 0, false
	}
	a.shelves = append(a.shelves, shelf{y: top, height: h, cursor: w})
	return 0, top, true
}

// add copies img into the page, leaving border transparent pixels on every
// side. It reports false when the page has no room.
func (a *TextureAtlas) add(img *ebiten.Image, border int) (*Texture, bool) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	x, y, ok := a.allocate(w+2*border, h+2*border)
	if !ok {
		return nil, false
	}
	x += border
	y += border

	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendCopy}
	op.GeoM.Translate(float64(x), float64(y))
	a.Page.DrawImage(img, op)
	a.count++

	sub := a.Page.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image)
	return NewTexture(sub), true
}

// TextureBin packs images into as many fixed-size atlas pages as needed.
type TextureBin struct {
	pageWidth  int
	pageHeight int
	atlases    []*TextureAtlas
}

// NewTextureBin creates a bin whose pages are pageWidth x pageHeight pixels.
func NewTextureBin(pageWidth, pageHeight int) *TextureBin {
	return &TextureBin{pageWidth: pageWidth, pageHeight: pageHeight}
}

var defaultBin *TextureBin

// DefaultTextureBin returns the process-wide bin used by image handles that
// do not name their own.
func DefaultTextureBin() *TextureBin {
	if defaultBin == nil {
		defaultBin = NewTextureBin(DefaultAtlasWidth, DefaultAtlasHeight)
	}
	return defaultBin
}

// PageSize returns the page dimensions.
func (b *TextureBin) PageSize() (width, height int) {
	return b.pageWidth, b.pageHeight
}

// Atlases returns the pages opened so far. The returned slice MUST NOT be mutated.
func (b *TextureBin) Atlases() []*TextureAtlas {
	return b.atlases
}

// Fits reports whether a w x h image surrounded by border pixels fits a page.
func (b *TextureBin) Fits(w, h, border int) bool {
	return w+2*border <= b.pageWidth && h+2*border <= b.pageHeight
}

// Add packs img into the first page with room, opening a new page if none
// has any. The returned texture shares the page's pixels.
func (b *TextureBin) Add(img *ebiten.Image, border int) (*Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if !b.Fits(w, h, border) {
		return nil, fmt.Errorf("%w: %dx%d (border %d) in %dx%d page",
			ErrTooLarge, w, h, border, b.pageWidth, b.pageHeight)
	}
	for _, a := range b.atlases {
		if tex, ok := a.add(img, border); ok {
			return tex, nil
		}
	}
	a := newTextureAtlas(b.pageWidth, b.pageHeight)
	b.atlases = append(b.atlases, a)
	debugf("atlas: opened page %d (%dx%d)", len(b.atlases)-1, b.pageWidth, b.pageHeight)
	tex, _ := a.add(img, border)
	return tex, nil
}
