package sapling

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn and returns what it wrote to stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugModeToggle(t *testing.T) {
	resetGlobals(t)
	if DebugMode() {
		t.Fatal("DebugMode() = true by default")
	}
	SetDebugMode(true)
	if !DebugMode() {
		t.Error("DebugMode() = false after SetDebugMode(true)")
	}
}

func TestDebugfSilentByDefault(t *testing.T) {
	resetGlobals(t)
	out := captureStderr(t, func() { debugf("hello %d", 1) })
	if out != "" {
		t.Errorf("release mode wrote %q", out)
	}
}

func TestDebugModeLogsResourceLoads(t *testing.T) {
	resetGlobals(t)
	SetDebugMode(true)
	path := writePNG(t, t.TempDir(), "dbg.png", 4, 4)

	out := captureStderr(t, func() {
		if _, err := NewImageFileHandle(path, WithoutAtlas()).Get(); err != nil {
			t.Error(err)
		}
	})
	if !strings.Contains(out, "[sapling] image") || !strings.Contains(out, "atlas=false") {
		t.Errorf("expected image load line in stderr, got: %q", out)
	}
}

func TestFrameStatsDebugLog(t *testing.T) {
	resetGlobals(t)
	SetDebugMode(true)
	out := captureStderr(t, func() {
		frameStats{cameraCount: 3}.debugLog()
	})
	if !strings.Contains(out, "cameras: 3") {
		t.Errorf("expected camera count in stats line, got: %q", out)
	}
}

func TestLoopSwitchLogsInDebugMode(t *testing.T) {
	resetGlobals(t)
	SetDebugMode(true)
	l := NewLoop(LoopConfig{Width: 16, Height: 16})
	out := captureStderr(t, func() {
		if err := l.Switch(NewWorldHandle(), false, true); err != nil {
			t.Error(err)
		}
	})
	if !strings.Contains(out, "switched world") {
		t.Errorf("expected switch line in stderr, got: %q", out)
	}
}
