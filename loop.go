package sapling

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoopConfig configures a Loop.
type LoopConfig struct {
	Title  string
	Width  int
	Height int
	// Interval is the minimum time between updates in seconds, i.e. an upper
	// bound on the tick rate (1.0/60, 1.0/75, ...). Zero keeps Ebitengine's
	// default of 60 ticks per second.
	Interval float64
	// Resizable lets the user resize the window; the logical size then
	// follows the outside size.
	Resizable bool
	// ScreenshotDir receives PNGs queued with Window.Screenshot. Defaults
	// to DefaultScreenshotDir.
	ScreenshotDir string
}

// TPS returns the tick rate implied by Interval.
func (c LoopConfig) TPS() int {
	if c.Interval <= 0 {
		return ebiten.DefaultTPS
	}
	return max(1, int(math.Round(1/c.Interval)))
}

// Loop runs worlds inside Ebitengine's game loop. It implements ebiten.Game.
//
// Each Update ticks DefaultClock and processes the current world. A
// processor returning *SwitchWorld switches worlds at the end of the tick;
// ErrQuit ends the game.
type Loop struct {
	Config LoopConfig

	window        *Window
	clock         *Clock
	current       *World
	currentHandle *Handle[*World]
}

// NewLoop creates a loop rendering into the default window, opening one
// from cfg if none is open yet.
func NewLoop(cfg LoopConfig) *Loop {
	w, err := DefaultWindow()
	if err != nil {
		w = NewWindow(WindowConfig{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height})
	}
	return &Loop{Config: cfg, window: w, clock: DefaultClock()}
}

// Window returns the window the loop draws into.
func (l *Loop) Window() *Window { return l.window }

// CurrentWorld returns the world being processed, or nil before Switch.
func (l *Loop) CurrentWorld() *World { return l.current }

// CurrentHandle returns the handle of the current world.
func (l *Loop) CurrentHandle() *Handle[*World] { return l.currentHandle }

// Switch makes the world in handle current.
//
// The current world, if any, receives a switch-out event and has its
// dispatch disabled; its handle is cleared when clearCurrent is set. When
// clearNext is set, handle is cleared before loading so a fresh world is
// built. The next world then receives a switch-in event and has its
// dispatch enabled, which also delivers events it queued meanwhile.
func (l *Loop) Switch(handle *Handle[*World], clearCurrent, clearNext bool) error {
	if clearNext {
		handle.Clear()
	}
	next, err := handle.Get()
	if err != nil {
		return fmt.Errorf("sapling: switch world: %w", err)
	}

	prev := l.current
	if prev != nil {
		prev.dispatchSwitch(SwitchOutEventType, prev, next)
		prev.SetDispatchEnabled(false)
		if clearCurrent && l.currentHandle != nil && l.currentHandle != handle {
			l.currentHandle.Clear()
		}
	}

	l.current = next
	l.currentHandle = handle
	next.dispatchSwitch(SwitchInEventType, prev, next)
	next.SetDispatchEnabled(true)
	debugf("switched world (clearCurrent=%t, clearNext=%t)", clearCurrent, clearNext)
	return nil
}

// Iteration runs a single tick of dt seconds. ErrQuit and processor errors
// are returned; world switches are performed here.
func (l *Loop) Iteration(dt float64) error {
	if l.current == nil {
		return nil
	}
	l.clock.Tick(dt)

	var t0 time.Time
	if debugMode {
		t0 = time.Now()
	}
	err := l.current.Process(dt)
	if debugMode {
		l.current.stats.processTime = time.Since(t0)
	}

	var sw *SwitchWorld
	if errors.As(err, &sw) {
		return l.Switch(sw.Handle, sw.ClearCurrent, sw.ClearNext)
	}
	return err
}

// Update implements ebiten.Game.
func (l *Loop) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	err := l.Iteration(1 / float64(tps))
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game. Ebitengine has a single screen, so every
// open window is bound to it for the duration of the frame.
func (l *Loop) Draw(screen *ebiten.Image) {
	for _, w := range windows {
		w.Bind(screen)
	}
	defer func() {
		for _, w := range windows {
			w.Bind(nil)
		}
	}()
	if l.current == nil {
		return
	}

	var t0 time.Time
	if debugMode {
		t0 = time.Now()
	}
	l.current.Draw(screen)
	if debugMode {
		l.current.stats.drawTime = time.Since(t0)
		l.current.stats.debugLog()
	}

	dir := l.Config.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	for _, w := range windows {
		w.flushScreenshots(dir)
	}
}

// Layout implements ebiten.Game.
func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	if l.Config.Resizable {
		l.window.SetSize(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	w, h := l.window.Size()
	return w, h
}

// Start switches to handle and runs the game until ErrQuit or an error.
func (l *Loop) Start(handle *Handle[*World]) error {
	if err := l.Switch(handle, false, false); err != nil {
		return err
	}
	return l.Run()
}

// Run applies Config to the Ebitengine window and blocks in ebiten.RunGame.
func (l *Loop) Run() error {
	w, h := l.window.Size()
	ebiten.SetWindowTitle(l.window.Title)
	ebiten.SetWindowSize(w, h)
	if l.Config.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(l.Config.TPS())
	return ebiten.RunGame(l)
}
