package sapling

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

var spriteIDCounter atomic.Uint32

func nextSpriteID() uint32 {
	return spriteIDCounter.Add(1)
}

// Sprite is a named, positioned image with optional per-trigger callbacks.
// Sprites are created through a Window and stay in its registry for the
// window's whole lifetime.
//
// All methods are safe for concurrent use.
type Sprite struct {
	ID   uint32
	Name string

	window *Window

	mu       sync.RWMutex
	image    *ebiten.Image
	rect     Rect
	visible  bool
	handlers [triggerCount]func()
	glide    *Glide // current position owner, nil when idle
}

func newSprite(w *Window, name string, img *ebiten.Image) *Sprite {
	s := &Sprite{
		ID:      nextSpriteID(),
		Name:    name,
		window:  w,
		image:   img,
		visible: true,
	}
	if img != nil {
		b := img.Bounds()
		s.rect = Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}
	}
	return s
}

// String returns a short description such as "Sprite(cat)".
func (s *Sprite) String() string {
	return fmt.Sprintf("Sprite(%s)", s.Name)
}

// Show makes the sprite visible from the next drawn frame on.
func (s *Sprite) Show() {
	s.mu.Lock()
	s.visible = true
	s.mu.Unlock()
}

// Hide stops the sprite from being drawn from the next frame on. The sprite
// keeps its position and keeps receiving events.
func (s *Sprite) Hide() {
	s.mu.Lock()
	s.visible = false
	s.mu.Unlock()
}

// Visible reports whether the sprite is drawn.
func (s *Sprite) Visible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// Image returns the sprite's image.
func (s *Sprite) Image() *ebiten.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.image
}

// Rect returns the sprite's current bounding rectangle.
func (s *Sprite) Rect() Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rect
}

// Position returns the top-left corner of the sprite's bounding rectangle.
func (s *Sprite) Position() Vec2 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Vec2{s.rect.X, s.rect.Y}
}

// MoveTo offsets the sprite by (x, y) relative to where it is now. Calls
// accumulate: MoveTo(1, 0) twice moves the sprite two pixels right.
func (s *Sprite) MoveTo(x, y int) {
	s.mu.Lock()
	s.rect = s.rect.Offset(float64(x), float64(y))
	s.mu.Unlock()
}

// On binds fn to trigger t, replacing any previous binding. A nil fn
// removes the binding.
func (s *Sprite) On(t Trigger, fn func()) error {
	if !t.Valid() {
		return errors.Wrapf(ErrUnknownTrigger, "bind trigger %d on %s", t, s)
	}
	s.mu.Lock()
	s.handlers[t] = fn
	s.mu.Unlock()
	return nil
}

// Off removes the callback bound to t, if any.
func (s *Sprite) Off(t Trigger) {
	if !t.Valid() {
		return
	}
	s.mu.Lock()
	s.handlers[t] = nil
	s.mu.Unlock()
}

// Bound reports whether a callback is bound to t.
func (s *Sprite) Bound(t Trigger) bool {
	if !t.Valid() {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handlers[t] != nil
}

// handler returns the callback bound to t, or nil.
func (s *Sprite) handler(t Trigger) func() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handlers[t]
}

// drawState returns what Draw needs under a single lock acquisition.
func (s *Sprite) drawState() (img *ebiten.Image, pos Vec2, visible bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.image, Vec2{s.rect.X, s.rect.Y}, s.visible
}
