package sapling

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	events []TriggerEvent
}

func (r *recordingStore) EmitEvent(e TriggerEvent) {
	r.events = append(r.events, e)
}

func TestDispatchUnboundKeyIsNoop(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", solidImage(10, 10))
	s.MoveTo(4, 4)
	before := s.Rect()

	fired := s.dispatch(Events{{Type: EventKeyDown, Key: ebiten.KeyA}}, nil)

	assert.Zero(t, fired)
	assert.Equal(t, before, s.Rect())
	assert.True(t, s.Visible())
}

func TestDispatchKeyFiresMatchingTriggerOnly(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", nil)
	var a, b int
	require.NoError(t, s.On(TriggerA, func() { a++ }))
	require.NoError(t, s.On(TriggerB, func() { b++ }))

	fired := s.dispatch(Events{{Type: EventKeyDown, Key: ebiten.KeyA}}, nil)

	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, a)
	assert.Zero(t, b)
}

func TestDispatchEachKeyEventIndependently(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", nil)
	var space, left int
	require.NoError(t, s.On(TriggerSpace, func() { space++ }))
	require.NoError(t, s.On(TriggerLeft, func() { left++ }))

	batch := Events{
		{Type: EventKeyDown, Key: ebiten.KeySpace},
		{Type: EventKeyDown, Key: ebiten.KeyArrowLeft},
		{Type: EventKeyDown, Key: ebiten.KeySpace},
		{Type: EventKeyDown, Key: ebiten.KeyEnter}, // no trigger
	}
	fired := s.dispatch(batch, nil)

	assert.Equal(t, 3, fired)
	assert.Equal(t, 2, space)
	assert.Equal(t, 1, left)
}

func TestDispatchClick(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", solidImage(20, 10))
	s.MoveTo(100, 50)

	tests := []struct {
		name  string
		x, y  float64
		fires bool
	}{
		{"inside", 110, 55, true},
		{"top-left corner", 100, 50, true},
		{"right edge", 120, 55, false},
		{"old origin", 5, 5, false},
		{"far away", 400, 400, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := 0
			require.NoError(t, s.On(TriggerClick, func() { count++ }))
			s.dispatch(Events{{Type: EventPointerDown, X: tt.x, Y: tt.y}}, nil)
			if tt.fires {
				assert.Equal(t, 1, count)
			} else {
				assert.Zero(t, count)
			}
		})
	}
}

func TestDispatchClickOncePerEvent(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", solidImage(20, 20))
	count := 0
	require.NoError(t, s.On(TriggerClick, func() { count++ }))

	s.dispatch(Events{
		{Type: EventPointerDown, X: 5, Y: 5},
		{Type: EventKeyDown, Key: ebiten.KeyA},
		{Type: EventPointerDown, X: 6, Y: 6},
	}, nil)

	assert.Equal(t, 2, count)
}

func TestDispatchClickWithoutImage(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("ghost", nil)
	count := 0
	require.NoError(t, s.On(TriggerClick, func() { count++ }))

	assert.NotPanics(t, func() {
		s.dispatch(Events{{Type: EventPointerDown, X: 0, Y: 0}}, nil)
	})
	assert.Zero(t, count)
}

func TestDispatchIgnoresResizeAndQuit(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", solidImage(10, 10))
	fired := s.dispatch(Events{{Type: EventResize, Width: 10, Height: 10}, {Type: EventQuit}}, nil)
	assert.Zero(t, fired)
}

func TestDispatchEmitsToStore(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("cat", solidImage(10, 10))
	store := &recordingStore{}

	// Unbound triggers still reach the store.
	s.dispatch(Events{
		{Type: EventKeyDown, Key: ebiten.KeyDigit3},
		{Type: EventPointerDown, X: 2, Y: 3},
		{Type: EventPointerDown, X: 50, Y: 50}, // miss
	}, store)

	require.Len(t, store.events, 2)
	assert.Equal(t, TriggerEvent{Trigger: Trigger3, SpriteID: s.ID, SpriteName: "cat"}, store.events[0])
	assert.Equal(t, TriggerEvent{Trigger: TriggerClick, SpriteID: s.ID, SpriteName: "cat", X: 2, Y: 3}, store.events[1])
}

func TestCallbackMayMoveSprite(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", solidImage(10, 10))
	require.NoError(t, s.On(TriggerRight, func() { s.MoveTo(10, 0) }))

	s.dispatch(Events{{Type: EventKeyDown, Key: ebiten.KeyArrowRight}}, nil)

	assert.Equal(t, 10.0, s.Position().X)
}
