package sapling

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// imageCache maps absolute file paths to decoded images. Not synchronized:
// resources are loaded from the game loop goroutine.
var imageCache = make(map[string]Image)

// ClearImageCache forgets every cached image. Images already packed into
// atlas pages stay there; the pages are not freed.
func ClearImageCache() {
	clear(imageCache)
	debugf("image cache cleared")
}

func decodeImageFile(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sapling: open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: image %s: %w", ErrDecode, path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// ImageOption configures an ImageFileHandle.
type ImageOption func(*ImageFileHandle)

// WithoutAtlas keeps the image in its own texture instead of packing it
// into an atlas page.
func WithoutAtlas() ImageOption {
	return func(h *ImageFileHandle) { h.Atlas = false }
}

// WithBorder sets the transparent border kept around the image inside an
// atlas page.
func WithBorder(border int) ImageOption {
	return func(h *ImageFileHandle) { h.Border = border }
}

// WithTextureBin packs the image into bin instead of DefaultTextureBin.
func WithTextureBin(bin *TextureBin) ImageOption {
	return func(h *ImageFileHandle) { h.Bin = bin }
}

// ImageFileHandle lazily loads an image file.
//
// Loads go through a process-wide cache keyed by absolute path: when the
// path was loaded before, by this or any other handle, the cached image is
// returned as is and this handle's Atlas, Border and Bin are ignored.
type ImageFileHandle struct {
	*Handle[Image]
	Filename string
	// Atlas packs the image into Bin when it fits. Defaults to true.
	Atlas bool
	// Border is the padding kept around the image in the atlas. Defaults to 1.
	Border int
	// Bin receives the packed image. Nil means DefaultTextureBin.
	Bin *TextureBin
}

// NewImageFileHandle creates a handle for the image at filename.
func NewImageFileHandle(filename string, opts ...ImageOption) *ImageFileHandle {
	h := &ImageFileHandle{
		Filename: filename,
		Atlas:    true,
		Border:   1,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.Handle = NewHandle(h.load)
	return h
}

func (h *ImageFileHandle) load() (Image, error) {
	path, err := filepath.Abs(h.Filename)
	if err != nil {
		return nil, fmt.Errorf("sapling: resolve %s: %w", h.Filename, err)
	}
	if img, ok := imageCache[path]; ok {
		return img, nil
	}

	decoded, err := decodeImageFile(path)
	if err != nil {
		return nil, err
	}

	var img Image = NewTexture(decoded)
	bin := h.Bin
	if bin == nil {
		bin = DefaultTextureBin()
	}
	w, ht := decoded.Bounds().Dx(), decoded.Bounds().Dy()
	packed := h.Atlas && bin.Fits(w, ht, h.Border)
	if packed {
		tex, err := bin.Add(decoded, h.Border)
		if err != nil {
			return nil, err
		}
		img = tex
	}

	imageCache[path] = img
	debugf("image %s loaded (%dx%d, atlas=%t)", path, w, ht, packed)
	return img, nil
}
