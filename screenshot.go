package sapling

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultScreenshotDir is where the Loop writes screenshots when
// LoopConfig.ScreenshotDir is empty.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the window. The Loop writes it as a
// timestamped PNG once the current frame has been drawn.
func (w *Window) Screenshot(label string) {
	w.screenshots = append(w.screenshots, label)
}

// Capture reads the window's viewport from the bound screen. It returns nil
// outside of a frame or when the viewport is off screen.
func (w *Window) Capture() *image.NRGBA {
	target := w.Target()
	if target == nil {
		return nil
	}
	size := target.Bounds().Size()
	frame := image.NewRGBA(image.Rectangle{Max: size})
	target.ReadPixels(frame.Pix)
	return straightAlpha(frame)
}

// straightAlpha converts Ebitengine's premultiplied pixels for PNG encoding.
func straightAlpha(src *image.RGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

// flushScreenshots writes one PNG per queued label into dir. The queue is
// kept until a screen is bound.
func (w *Window) flushScreenshots(dir string) {
	if len(w.screenshots) == 0 || w.screen == nil {
		return
	}
	labels := w.screenshots
	w.screenshots = w.screenshots[:0]

	img := w.Capture()
	if img == nil {
		debugf("screenshot: window viewport %v is off screen", w.Viewport)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		debugf("screenshot: %v", err)
		return
	}
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		path := filepath.Join(dir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writeScreenshot(path, img); err != nil {
			debugf("screenshot: %v", err)
			continue
		}
		debugf("screenshot %s written", path)
	}
}

func writeScreenshot(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sapling: screenshot %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("sapling: screenshot %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.' and maps every
// other rune to '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < 0x80 && (r == '-' || r == '.' ||
			'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			return r
		}
		return '_'
	}, label)
}
