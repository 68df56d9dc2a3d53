package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventType identifies the kind of a frame input event.
type EventType uint8

const (
	EventKeyDown     EventType = iota // a key went down this frame
	EventPointerDown                  // a mouse button went down this frame
	EventResize                       // the window changed size
	EventQuit                         // the user asked to close the window
)

// Event is one discrete input event captured for a frame.
type Event struct {
	Type EventType

	// Key is set for EventKeyDown.
	Key ebiten.Key

	// X, Y and Button are set for EventPointerDown, in window coordinates.
	X, Y   float64
	Button ebiten.MouseButton

	// Width and Height are set for EventResize.
	Width, Height int
}

// Events is the batch of input events captured for a single frame. It is
// built once per tick and handed to every sprite's dispatcher in that tick.
type Events []Event

// Has reports whether the batch contains an event of type t.
func (e Events) Has(t EventType) bool {
	for i := range e {
		if e[i].Type == t {
			return true
		}
	}
	return false
}

// EventSource captures the host's pending input events. Poll appends this
// frame's events to buf and returns the extended slice. It is called once
// per tick from the frame loop.
type EventSource interface {
	Poll(buf Events) Events
}

// EventSourceFunc adapts a function to EventSource.
type EventSourceFunc func(buf Events) Events

// Poll calls f(buf).
func (f EventSourceFunc) Poll(buf Events) Events {
	return f(buf)
}

var pointerButtons = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// hostSource reads just-pressed keys, mouse presses and close requests from
// Ebitengine. Resizes are reported by Window.Layout, not here.
type hostSource struct {
	keys []ebiten.Key
}

func (h *hostSource) Poll(buf Events) Events {
	if ebiten.IsWindowBeingClosed() {
		buf = append(buf, Event{Type: EventQuit})
	}

	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		buf = append(buf, Event{Type: EventKeyDown, Key: k})
	}

	for _, b := range pointerButtons {
		if !inpututil.IsMouseButtonJustPressed(b) {
			continue
		}
		mx, my := ebiten.CursorPosition()
		buf = append(buf, Event{
			Type:   EventPointerDown,
			X:      float64(mx),
			Y:      float64(my),
			Button: b,
		})
	}
	return buf
}
