package sapling

import (
	"fmt"
	"os"
	"time"
)

// debugMode gates every diagnostic line sapling writes. sapling is
// single-threaded, so a plain bool is enough.
var debugMode bool

// SetDebugMode enables or disables debug output. When enabled, resource
// loads, world switches and per-frame timing stats are printed to stderr.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// DebugMode reports whether debug output is enabled.
func DebugMode() bool {
	return debugMode
}

func debugf(format string, args ...any) {
	if !debugMode {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sapling] "+format+"\n", args...)
}

// frameStats holds per-frame timing and draw metrics.
// Only populated when debug mode is on.
type frameStats struct {
	processTime time.Duration
	drawTime    time.Duration
	cameraCount int
}

// debugLog prints timing stats to stderr.
func (s frameStats) debugLog() {
	if !debugMode {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[sapling] process: %v | draw: %v | cameras: %d\n",
		s.processTime, s.drawTime, s.cameraCount)
}
