package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CameraProcessor renders every camera of its world.
//
// Process does nothing; the work happens in Draw, which the Loop calls once
// per frame: the window is cleared, then a CameraDraw event is broadcast and
// delivered immediately to all cameras of the world and to any custom
// CameraDrawEventType subscriber.
type CameraProcessor struct {
	Window *Window
}

// NewCameraProcessor creates a processor clearing window. A nil window
// selects DefaultWindow; with no window open it fails with ErrNoWindow.
func NewCameraProcessor(window *Window) (*CameraProcessor, error) {
	if window == nil {
		w, err := DefaultWindow()
		if err != nil {
			return nil, err
		}
		window = w
	}
	return &CameraProcessor{Window: window}, nil
}

// Process implements Processor.
func (p *CameraProcessor) Process(*World, float64) error {
	return nil
}

// Draw clears the window and renders all cameras.
func (p *CameraProcessor) Draw(w *World, _ *ebiten.Image) {
	p.Window.Clear()
	CameraDrawEventType.Publish(w.World, CameraDraw{World: w, Window: p.Window})
	CameraDrawEventType.ProcessEvents(w.World)
}

// CameraTransformProcessor advances every CameraTransform2D and writes its
// view matrix into the Camera on the same entity.
type CameraTransformProcessor struct{}

// Process implements Processor.
func (CameraTransformProcessor) Process(w *World, dt float64) error {
	CameraTransformComponent.Each(w.World, func(entry *donburi.Entry) {
		t := *CameraTransformComponent.Get(entry)
		if t == nil || !entry.HasComponent(CameraComponent) {
			return
		}
		cam := *CameraComponent.Get(entry)
		if cam == nil {
			return
		}
		t.Update(dt, cam.Viewport)
		cam.View = t.ViewMatrix(cam.Viewport)
	})
	return nil
}
