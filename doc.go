// Package sapling glues [Ebitengine] rendering and resources to [Donburi]
// worlds.
//
// Sapling provides lazy resource handles, spritesheet parsing, texture
// atlas packing, animated sprites, cameras with their own projection and
// viewport, and a game loop that switches between worlds while keeping
// every component informed through lifecycle events.
//
// # Quick start
//
// Open a window through a [Loop], build a world in a handle and start:
//
//	loop := sapling.NewLoop(sapling.LoopConfig{
//		Title: "My Game", Width: 640, Height: 480, Interval: 1.0 / 60,
//	})
//
//	level := sapling.NewWorldHandle(func(w *sapling.World) error {
//		batch := sapling.NewBatch()
//		cam, err := sapling.NewCamera(batch)
//		if err != nil {
//			return err
//		}
//		e := w.Create(sapling.CameraComponent)
//		sapling.CameraComponent.SetValue(w.Entry(e), cam)
//
//		p, err := sapling.NewCameraProcessor(nil)
//		if err != nil {
//			return err
//		}
//		w.AddProcessor(p, 0)
//
//		hero := sapling.NewSpritesheetFileHandle("assets/hero.json").MustGet()
//		e = w.Create(sapling.SpriteComponent)
//		sapling.SpriteComponent.SetValue(w.Entry(e), sapling.NewSprite(hero, batch))
//		return nil
//	})
//
//	if err := loop.Start(level); err != nil {
//		log.Fatal(err)
//	}
//
// # Resources
//
// A [Handle] loads its value on first use and caches it until cleared.
// [ImageFileHandle] decodes an image once per absolute path and packs it
// into a [TextureBin] page; [SpritesheetFileHandle] reads JSON or YAML
// metadata and returns an [Image] or an [*Animation]; [MediaFileHandle] and
// [FontFileHandle] cover audio and fonts.
//
// Image regions and anchors use a bottom-left origin, the convention of
// spritesheet exporters. Sapling converts to Ebitengine's top-left pixel
// space when drawing.
//
// # Worlds and lifecycle events
//
// A [World] embeds a donburi.World and runs ordered [Processor] values.
// Creating an entity with [World.Create] publishes an [AddEvent]; switching
// worlds through the [Loop] publishes switch-out and switch-in events.
// Components implementing [AddHandler], [SwitchInHandler],
// [SwitchOutHandler] or [CameraDrawHandler] receive them once their
// component type is registered with [Listen]. A world that is not current
// queues its events until it becomes current again.
//
// Animated sprites use these events to pause while their world is in the
// background.
//
// # Cameras
//
// A [Camera] renders a [Batch] into a [Window] through its own projection,
// view and viewport. [CameraProcessor] clears the window and broadcasts a
// [CameraDraw] event every frame. Pair a camera with a [CameraTransform2D]
// and a [CameraTransformProcessor] for follow, scroll-to (via [gween]) and
// bounds clamping.
//
// # Debug mode
//
// [SetDebugMode] prints resource loads, world switches and per-frame
// timings to stderr.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
// [gween]: https://github.com/tanema/gween
package sapling
