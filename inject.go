package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// Injected events are queued and delivered, all together and ahead of host
// input, in the next tick's batch. They go through the same dispatch path as
// real input, which makes them usable for scripted tests and demos. The
// Inject methods are safe to call from any goroutine.

func (w *Window) inject(ev Event) {
	w.mu.Lock()
	w.injectQueue = append(w.injectQueue, ev)
	w.mu.Unlock()
}

// InjectKey queues a key press.
func (w *Window) InjectKey(key ebiten.Key) {
	w.inject(Event{Type: EventKeyDown, Key: key})
}

// InjectTrigger queues the key press bound to a key trigger. TriggerClick
// needs a position; use InjectClick for it.
func (w *Window) InjectTrigger(t Trigger) error {
	key, ok := keyForTrigger(t)
	if !ok {
		return errors.Wrapf(ErrUnknownTrigger, "inject %s: not a key trigger", t)
	}
	w.InjectKey(key)
	return nil
}

// InjectClick queues a left-button press at (x, y) in window coordinates.
func (w *Window) InjectClick(x, y float64) {
	w.inject(Event{Type: EventPointerDown, X: x, Y: y, Button: ebiten.MouseButtonLeft})
}

// InjectResize queues a window resize to width x height.
func (w *Window) InjectResize(width, height int) {
	w.inject(Event{Type: EventResize, Width: width, Height: height})
}

// InjectQuit queues a quit request; the loop stops on the next tick.
func (w *Window) InjectQuit() {
	w.inject(Event{Type: EventQuit})
}

// pendingInjections returns the number of queued events.
func (w *Window) pendingInjections() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.injectQueue)
}
