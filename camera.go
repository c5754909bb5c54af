package sapling

import (
	"image"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Donburi component types for cameras.
var (
	CameraComponent          = donburi.NewComponentType[*Camera]()
	CameraTransformComponent = donburi.NewComponentType[*CameraTransform2D]()
)

// Camera renders a Batch into a window with its own projection, view and
// viewport.
type Camera struct {
	Batch  *Batch
	Window *Window
	// Projection maps world units to viewport pixels.
	Projection Matrix
	// View positions the world, applied before Projection. Identity by
	// default; CameraTransformProcessor rewrites it from a CameraTransform2D.
	View Matrix
	// Viewport is the window rectangle rendered into, top-left origin.
	Viewport image.Rectangle

	// DrawCount is the number of drawables submitted by the last draw.
	DrawCount int
}

type cameraConfig struct {
	window     *Window
	projection *Matrix
	viewport   *image.Rectangle
}

// CameraOption configures NewCamera.
type CameraOption func(*cameraConfig)

// WithWindow renders into window instead of the default window.
func WithWindow(window *Window) CameraOption {
	return func(c *cameraConfig) { c.window = window }
}

// WithProjection sets the projection instead of the window's.
func WithProjection(m Matrix) CameraOption {
	return func(c *cameraConfig) { c.projection = &m }
}

// WithViewport sets the viewport instead of the window's full area.
func WithViewport(r image.Rectangle) CameraOption {
	return func(c *cameraConfig) { c.viewport = &r }
}

// NewCamera creates a camera for batch. Unless overridden by options the
// camera uses DefaultWindow and copies that window's projection and viewport.
// It fails with ErrNoWindow when no window is open.
func NewCamera(batch *Batch, opts ...CameraOption) (*Camera, error) {
	var cfg cameraConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.window == nil {
		w, err := DefaultWindow()
		if err != nil {
			return nil, err
		}
		cfg.window = w
	}

	c := &Camera{
		Batch:      batch,
		Window:     cfg.window,
		Projection: cfg.window.Projection,
		View:       IdentityMatrix,
		Viewport:   cfg.window.Viewport,
	}
	if cfg.projection != nil {
		c.Projection = *cfg.projection
	}
	if cfg.viewport != nil {
		c.Viewport = *cfg.viewport
	}
	return c, nil
}

// OnCameraDraw applies projection, viewport and view to the window and
// draws the batch.
func (c *Camera) OnCameraDraw() {
	if c == nil {
		return
	}
	c.Window.Projection = c.Projection
	c.Window.Viewport = c.Viewport
	c.Window.View = c.View

	c.DrawCount = 0
	target := c.Window.Target()
	if target == nil || c.Batch == nil {
		return
	}
	c.DrawCount = c.Batch.Draw(target, c.Window.Transform())
}

// scrollAnim holds active scroll-to tweens for X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// CameraTransform2D drives a Camera's view from a position, zoom and
// rotation. Put it on the same entity as a CameraComponent and register a
// CameraTransformProcessor to apply it every tick.
type CameraTransform2D struct {
	// X and Y are the world position shown at the viewport center.
	X, Y float64
	// Zoom is the scale factor (1 = none, >1 zooms in).
	Zoom float64
	// Rotation in radians, clockwise.
	Rotation float64

	// BoundsEnabled clamps the position so the visible area stays in Bounds.
	BoundsEnabled bool
	Bounds        image.Rectangle

	followTarget  *Sprite
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	scroll *scrollAnim
}

// NewCameraTransform2D returns a transform centered on (0, 0) at zoom 1.
func NewCameraTransform2D() *CameraTransform2D {
	return &CameraTransform2D{Zoom: 1}
}

// Follow makes the camera track target with the given offset and lerp
// factor. A lerp of 1 snaps immediately; lower values smooth the motion.
func (t *CameraTransform2D) Follow(target *Sprite, offsetX, offsetY, lerp float64) {
	t.followTarget = target
	t.followOffsetX = offsetX
	t.followOffsetY = offsetY
	t.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (t *CameraTransform2D) Unfollow() {
	t.followTarget = nil
}

// ScrollTo animates the position to (x, y) over duration seconds.
func (t *CameraTransform2D) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	t.scroll = &scrollAnim{
		tweenX: gween.New(float32(t.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(t.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (t *CameraTransform2D) Scrolling() bool {
	return t.scroll != nil
}

// Update advances follow and scroll animations by dt seconds and clamps to
// bounds. viewport is the area the camera renders into.
func (t *CameraTransform2D) Update(dt float64, viewport image.Rectangle) {
	if t.followTarget != nil {
		t.X += (t.followTarget.X + t.followOffsetX - t.X) * t.followLerp
		t.Y += (t.followTarget.Y + t.followOffsetY - t.Y) * t.followLerp
	}

	if t.scroll != nil {
		if !t.scroll.doneX {
			val, done := t.scroll.tweenX.Update(float32(dt))
			t.X = float64(val)
			t.scroll.doneX = done
		}
		if !t.scroll.doneY {
			val, done := t.scroll.tweenY.Update(float32(dt))
			t.Y = float64(val)
			t.scroll.doneY = done
		}
		if t.scroll.doneX && t.scroll.doneY {
			t.scroll = nil
		}
	}

	if t.BoundsEnabled {
		t.clampToBounds(viewport)
	}
}

// clampToBounds restricts the position so the visible area stays within
// Bounds. Bounds smaller than the visible area center the camera.
func (t *CameraTransform2D) clampToBounds(viewport image.Rectangle) {
	halfW := float64(viewport.Dx()) / (2 * t.Zoom)
	halfH := float64(viewport.Dy()) / (2 * t.Zoom)
	b := t.Bounds

	minX := float64(b.Min.X) + halfW
	maxX := float64(b.Max.X) - halfW
	minY := float64(b.Min.Y) + halfH
	maxY := float64(b.Max.Y) - halfH

	if minX > maxX {
		t.X = float64(b.Min.X+b.Max.X) / 2
	} else {
		t.X = math.Max(minX, math.Min(t.X, maxX))
	}
	if minY > maxY {
		t.Y = float64(b.Min.Y+b.Max.Y) / 2
	} else {
		t.Y = math.Max(minY, math.Min(t.Y, maxY))
	}
}

// ViewMatrix returns the view for a viewport of the given size:
//
//	Translate(w/2, h/2) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
func (t *CameraTransform2D) ViewMatrix(viewport image.Rectangle) Matrix {
	cx := float64(viewport.Dx()) / 2
	cy := float64(viewport.Dy()) / 2
	return Translation(cx, cy).
		Mul(Scaling(t.Zoom, t.Zoom)).
		Mul(Rotation(-t.Rotation)).
		Mul(Translation(-t.X, -t.Y))
}

// WorldToScreen converts world coordinates to viewport-local coordinates.
func (t *CameraTransform2D) WorldToScreen(viewport image.Rectangle, wx, wy float64) (sx, sy float64) {
	return t.ViewMatrix(viewport).Apply(wx, wy)
}

// ScreenToWorld converts viewport-local coordinates to world coordinates.
func (t *CameraTransform2D) ScreenToWorld(viewport image.Rectangle, sx, sy float64) (wx, wy float64) {
	return t.ViewMatrix(viewport).Invert().Apply(sx, sy)
}
