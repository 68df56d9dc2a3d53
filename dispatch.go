package sapling

import "github.com/golang/glog"

// EventStore receives every trigger matched by a sprite dispatcher, bound or
// not. Set it with Window.SetEventStore to forward sprite input into an ECS.
type EventStore interface {
	EmitEvent(event TriggerEvent)
}

// TriggerEvent carries one matched trigger for the EventStore bridge.
type TriggerEvent struct {
	Trigger    Trigger
	SpriteID   uint32
	SpriteName string
	// X, Y is the pointer position for TriggerClick, zero otherwise.
	X, Y float64
}

// dispatch walks the frame's batch and fires the callback bound to each
// matching trigger. Every event is handled on its own: two key presses in
// one frame fire two callbacks. Matches without a binding are no-ops.
// It returns the number of callbacks fired.
func (s *Sprite) dispatch(batch Events, store EventStore) int {
	fired := 0
	for i := range batch {
		ev := &batch[i]
		switch ev.Type {
		case EventKeyDown:
			t, ok := triggerForKey(ev.Key)
			if !ok {
				continue
			}
			if s.fire(t, 0, 0, store) {
				fired++
			}
		case EventPointerDown:
			if !s.hit(ev.X, ev.Y) {
				continue
			}
			if s.fire(TriggerClick, ev.X, ev.Y, store) {
				fired++
			}
		}
	}
	return fired
}

// hit reports whether (x, y) lands inside the sprite's current bounds. A
// sprite without an image has no bounds to hit.
func (s *Sprite) hit(x, y float64) bool {
	s.mu.RLock()
	img, r := s.image, s.rect
	s.mu.RUnlock()
	if img == nil {
		if glog.V(2) {
			glog.Infof("sapling: %s has no image, skipping hit test", s)
		}
		return false
	}
	return r.Contains(x, y)
}

func (s *Sprite) fire(t Trigger, x, y float64, store EventStore) bool {
	if store != nil {
		store.EmitEvent(TriggerEvent{
			Trigger:    t,
			SpriteID:   s.ID,
			SpriteName: s.Name,
			X:          x,
			Y:          y,
		})
	}
	fn := s.handler(t)
	if fn == nil {
		return false
	}
	fn()
	return true
}
