package sapling

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig configures NewWindow.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// Window is the render target cameras draw into.
//
// Ebitengine owns a single OS window; a Window tracks its logical size and
// the projection, view and viewport most recently applied by a Camera. The
// Loop binds the frame's screen image to it before drawing.
type Window struct {
	Title string

	// Projection maps world units to viewport pixels.
	Projection Matrix
	// View positions the world; applied before Projection.
	View Matrix
	// Viewport is the screen rectangle drawn into, top-left origin.
	Viewport image.Rectangle

	width, height int
	screen        *ebiten.Image
	closed        bool
	screenshots   []string
}

// windows lists open windows in opening order.
var windows []*Window

// NewWindow opens a window. The first open window is the default window used
// by cameras and processors that are not given one.
func NewWindow(cfg WindowConfig) *Window {
	w := &Window{
		Title:      cfg.Title,
		Projection: IdentityMatrix,
		View:       IdentityMatrix,
		Viewport:   image.Rect(0, 0, cfg.Width, cfg.Height),
		width:      cfg.Width,
		height:     cfg.Height,
	}
	windows = append(windows, w)
	return w
}

// DefaultWindow returns the first open window, or ErrNoWindow.
func DefaultWindow() (*Window, error) {
	if len(windows) == 0 {
		return nil, ErrNoWindow
	}
	return windows[0], nil
}

// Windows returns the open windows. The returned slice MUST NOT be mutated.
func Windows() []*Window {
	return windows
}

// Close unregisters the window. Closing twice is a no-op.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	for i, o := range windows {
		if o == w {
			windows = append(windows[:i], windows[i+1:]...)
			break
		}
	}
}

// Closed reports whether Close was called.
func (w *Window) Closed() bool { return w.closed }

// Size returns the logical window size.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SetSize changes the logical size. A viewport covering the whole window
// keeps covering it.
func (w *Window) SetSize(width, height int) {
	if w.Viewport == image.Rect(0, 0, w.width, w.height) {
		w.Viewport = image.Rect(0, 0, width, height)
	}
	w.width, w.height = width, height
}

// Bind sets the screen image of the current frame.
func (w *Window) Bind(screen *ebiten.Image) {
	w.screen = screen
}

// Screen returns the bound screen image, or nil outside of a frame.
func (w *Window) Screen() *ebiten.Image {
	return w.screen
}

// Clear clears the bound screen image.
func (w *Window) Clear() {
	if w.screen != nil {
		w.screen.Clear()
	}
}

// Target returns the bound screen clipped to the viewport, or nil when no
// screen is bound or the viewport lies outside it.
func (w *Window) Target() *ebiten.Image {
	if w.screen == nil {
		return nil
	}
	r := w.Viewport.Intersect(w.screen.Bounds())
	if r.Empty() {
		return nil
	}
	return w.screen.SubImage(r).(*ebiten.Image)
}

// Transform returns the full world-to-screen matrix: view, then projection,
// then the viewport offset.
func (w *Window) Transform() Matrix {
	vp := Translation(float64(w.Viewport.Min.X), float64(w.Viewport.Min.Y))
	return vp.Mul(w.Projection).Mul(w.View)
}
