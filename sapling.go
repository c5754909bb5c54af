package sapling

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, anchors and offsets.
type Vec2 struct {
	X, Y float64
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendErase                     // destination-out (punch transparent holes)
	BlendNone                      // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// Sentinel errors. Callers match them with errors.Is; the returned errors
// usually wrap one of these with the offending path or value.
var (
	// ErrNoWindow is returned when a camera or processor needs a window
	// and none has been opened.
	ErrNoWindow = errors.New("sapling: unable to find an open window")
	// ErrMalformedMetadata is returned for spritesheet metadata that cannot
	// be decoded or holds invalid values.
	ErrMalformedMetadata = errors.New("sapling: malformed spritesheet metadata")
	// ErrMissingImage is returned when spritesheet metadata has no meta.image.
	ErrMissingImage = errors.New("sapling: spritesheet metadata has no meta.image")
	// ErrRegionOutOfBounds is returned when a region does not lie inside its source image.
	ErrRegionOutOfBounds = errors.New("sapling: region out of bounds")
	// ErrTooLarge is returned when an image can never fit an atlas page.
	ErrTooLarge = errors.New("sapling: image too large for atlas")
	// ErrDecode is returned when an image, audio or font file cannot be decoded.
	ErrDecode = errors.New("sapling: unable to decode resource")
	// ErrQuit stops the Loop when returned from a processor.
	ErrQuit = errors.New("sapling: quit")
)
