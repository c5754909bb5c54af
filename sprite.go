package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Donburi component types for sprites. Components hold pointers so the
// batch and the world share the same sprite.
var (
	SpriteComponent         = donburi.NewComponentType[*Sprite]()
	AdvancedSpriteComponent = donburi.NewComponentType[*AdvancedSprite]()
)

// Sprite displays an Image or an *Animation.
//
// Animated sprites are created paused so they do not advance before their
// world is running. They resume when their entity is added to the current
// world or their world is switched in, and pause again when it is switched
// out. Unpaused animations advance on DefaultClock.
type Sprite struct {
	X, Y           float64
	ScaleX, ScaleY float64
	// Rotation in radians, clockwise.
	Rotation float64
	Color    Color
	Blend    BlendMode
	Visible  bool

	z       int
	source  Source
	player  *AnimationPlayer
	paused  bool
	clock   *Clock
	clockID ClockID
	batch   *Batch
	self    Drawable
}

func newSprite(src Source) *Sprite {
	s := &Sprite{
		ScaleX:  1,
		ScaleY:  1,
		Color:   ColorWhite,
		Visible: true,
		clock:   DefaultClock(),
		paused:  true,
	}
	s.self = s
	s.setSource(src)
	if s.player == nil {
		s.paused = false
	}
	return s
}

// NewSprite creates a sprite showing src and adds it to batch when batch
// is not nil.
func NewSprite(src Source, batch *Batch) *Sprite {
	s := newSprite(src)
	s.SetBatch(batch)
	return s
}

func (s *Sprite) setSource(src Source) {
	s.source = src
	s.player = nil
	if anim, ok := src.(*Animation); ok && anim.Len() > 0 {
		s.player = NewAnimationPlayer(anim)
	}
	s.schedule()
}

// SetSource replaces what the sprite shows. The paused state is kept.
func (s *Sprite) SetSource(src Source) {
	s.unschedule()
	s.setSource(src)
}

// Source returns what the sprite shows.
func (s *Sprite) Source() Source { return s.source }

// Animated reports whether the sprite plays an animation.
func (s *Sprite) Animated() bool { return s.player != nil }

// Player returns the animation player, or nil for static images.
func (s *Sprite) Player() *AnimationPlayer { return s.player }

// Image returns the image currently displayed: the current frame for
// animations, the source itself otherwise.
func (s *Sprite) Image() Image {
	if s.player != nil {
		return s.player.Frame().Image
	}
	img, _ := s.source.(Image)
	return img
}

// Width returns the displayed width including scale.
func (s *Sprite) Width() float64 {
	if s.source == nil {
		return 0
	}
	return float64(s.source.Width()) * s.ScaleX
}

// Height returns the displayed height including scale.
func (s *Sprite) Height() float64 {
	if s.source == nil {
		return 0
	}
	return float64(s.source.Height()) * s.ScaleY
}

// Z returns the draw order within the batch.
func (s *Sprite) Z() int { return s.z }

// SetZ changes the draw order within the batch.
func (s *Sprite) SetZ(z int) {
	s.z = z
	if s.batch != nil {
		s.batch.MarkDirty()
	}
}

// SetPosition sets X and Y.
func (s *Sprite) SetPosition(x, y float64) {
	s.X = x
	s.Y = y
}

// Batch returns the batch the sprite belongs to, if any.
func (s *Sprite) Batch() *Batch { return s.batch }

// SetBatch moves the sprite to batch. A nil batch removes it from its
// current one.
func (s *Sprite) SetBatch(batch *Batch) {
	if s.batch == batch {
		return
	}
	if s.batch != nil {
		s.batch.Remove(s.self)
	}
	s.batch = batch
	if batch != nil {
		batch.Add(s.self)
	}
}

// Paused reports whether the animation clock is stopped.
func (s *Sprite) Paused() bool { return s.paused }

// SetPaused stops or resumes the animation clock.
func (s *Sprite) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	if paused {
		s.unschedule()
	} else {
		s.schedule()
	}
}

// SetClock moves the animation onto clock instead of DefaultClock.
func (s *Sprite) SetClock(clock *Clock) {
	s.unschedule()
	s.clock = clock
	s.schedule()
}

func (s *Sprite) schedule() {
	if s.player == nil {
		return
	}
	if s.clockID == 0 && !s.paused && s.clock != nil {
		s.clockID = s.clock.Schedule(s.player.Advance)
	}
}

func (s *Sprite) unschedule() {
	if s.clockID != 0 {
		s.clock.Unschedule(s.clockID)
		s.clockID = 0
	}
}

// Delete removes the sprite from its batch and stops its animation.
func (s *Sprite) Delete() {
	s.unschedule()
	s.SetBatch(nil)
}

// OnAdd resumes the animation when the sprite's entity is added to a world.
func (s *Sprite) OnAdd(_ *donburi.Entry, _ *World) {
	if s != nil && s.player != nil {
		s.SetPaused(false)
	}
}

// OnSwitchIn resumes the animation when the sprite's world becomes current.
func (s *Sprite) OnSwitchIn(_, _ *World) {
	if s != nil && s.player != nil {
		s.SetPaused(false)
	}
}

// OnSwitchOut pauses the animation when the sprite's world stops being current.
func (s *Sprite) OnSwitchOut(_, _ *World) {
	if s != nil && s.player != nil {
		s.SetPaused(true)
	}
}

// geom returns the placement of img under transform: anchor at (X, Y),
// then scale and rotation around the anchor.
func (s *Sprite) geom(img Image, transform Matrix) ebiten.GeoM {
	ax, ay := anchorOffset(img)
	local := localTransform(s.X, s.Y, s.ScaleX, s.ScaleY, s.Rotation, 0, 0)
	return transform.Mul(local).Mul(Translation(ax, ay)).GeoM()
}

func (s *Sprite) colorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := float32(s.Color.A)
	cs.Scale(float32(s.Color.R)*a, float32(s.Color.G)*a, float32(s.Color.B)*a, a)
	return cs
}

// Draw renders the current image onto target.
func (s *Sprite) Draw(target *ebiten.Image, transform Matrix) {
	if !s.Visible {
		return
	}
	img := s.Image()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{
		GeoM:       s.geom(img, transform),
		ColorScale: s.colorScale(),
		Blend:      s.Blend.EbitenBlend(),
	}
	target.DrawImage(img.Ebiten(), op)
}

// AdvancedSprite is a Sprite rendered through a custom Kage shader.
//
// The shader receives the current image as source image 0 and Uniforms as
// its uniform values. With a nil Program it draws like a plain Sprite.
type AdvancedSprite struct {
	*Sprite
	Program  *ebiten.Shader
	Uniforms map[string]any
}

// NewAdvancedSprite creates a shader-driven sprite showing src and adds it
// to batch when batch is not nil.
func NewAdvancedSprite(src Source, batch *Batch, program *ebiten.Shader) *AdvancedSprite {
	a := &AdvancedSprite{Sprite: newSprite(src), Program: program}
	a.self = a
	a.SetBatch(batch)
	return a
}

// Draw renders the current image through Program.
func (a *AdvancedSprite) Draw(target *ebiten.Image, transform Matrix) {
	if a.Program == nil {
		a.Sprite.Draw(target, transform)
		return
	}
	if !a.Visible {
		return
	}
	img := a.Image()
	if img == nil {
		return
	}
	op := &ebiten.DrawRectShaderOptions{
		GeoM:       a.geom(img, transform),
		ColorScale: a.colorScale(),
		Blend:      a.Blend.EbitenBlend(),
		Uniforms:   a.Uniforms,
	}
	op.Images[0] = img.Ebiten()
	target.DrawRectShader(img.Width(), img.Height(), a.Program, op)
}
