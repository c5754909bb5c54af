package sapling

import (
	"image"
	"image/color"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"boss-fight.v2", "boss-fight.v2"},
		{"level 1/intro", "level_1_intro"},
		{"über", "_ber"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	resetGlobals(t)
	w := NewWindow(WindowConfig{Width: 8, Height: 8})
	w.Screenshot("a")
	w.Screenshot("b")
	if len(w.screenshots) != 2 {
		t.Fatalf("queue = %v, want 2 labels", w.screenshots)
	}

	// Nothing is captured outside a frame; the queue waits for one.
	w.flushScreenshots(t.TempDir())
	if len(w.screenshots) != 2 {
		t.Errorf("queue = %v after flush without screen", w.screenshots)
	}
	if w.Capture() != nil {
		t.Error("Capture() without a bound screen is not nil")
	}
}

func TestStraightAlpha(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetRGBA(1, 0, color.RGBA{R: 64, G: 32, B: 0, A: 128})

	got := straightAlpha(src)
	want := []color.NRGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 127, G: 63, B: 0, A: 128},
		{},
	}
	for x, w := range want {
		if c := got.NRGBAAt(x, 0); c != w {
			t.Errorf("pixel %d = %v, want %v", x, c, w)
		}
	}
}
