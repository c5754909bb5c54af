package sapling

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font wraps an Ebitengine text/v2 face source parsed from a TTF/OTF file.
type Font struct {
	Filename string
	source   *text.GoTextFaceSource
}

// LoadFont parses TrueType or OpenType font data.
func LoadFont(data []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: font: %w", ErrDecode, err)
	}
	return &Font{source: source}, nil
}

// Source returns the underlying face source.
func (f *Font) Source() *text.GoTextFaceSource {
	return f.source
}

// Face returns a face of the given size in pixels.
func (f *Font) Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: size}
}

// LineHeight returns the distance between baselines for the given size.
func (f *Font) LineHeight(size float64) float64 {
	m := f.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Measure returns the rendered size of s at the given size.
func (f *Font) Measure(s string, size float64) (width, height float64) {
	return text.Measure(s, f.Face(size), f.LineHeight(size))
}

// FontFileHandle lazily loads a font file.
type FontFileHandle struct {
	*Handle[*Font]
	Filename string
}

// NewFontFileHandle creates a handle for the font file at filename.
func NewFontFileHandle(filename string) *FontFileHandle {
	h := &FontFileHandle{Filename: filename}
	h.Handle = NewHandle(h.load)
	return h
}

func (h *FontFileHandle) load() (*Font, error) {
	data, err := os.ReadFile(h.Filename)
	if err != nil {
		return nil, fmt.Errorf("sapling: read font %s: %w", h.Filename, err)
	}
	f, err := LoadFont(data)
	if err != nil {
		return nil, fmt.Errorf("sapling: %s: %w", h.Filename, err)
	}
	f.Filename = h.Filename
	debugf("font %s loaded", h.Filename)
	return f, nil
}
