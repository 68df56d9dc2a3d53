package sapling

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpriteDefaults(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("box", solidImage(30, 20))

	assert.Equal(t, "box", s.Name)
	assert.NotZero(t, s.ID)
	assert.True(t, s.Visible())
	assert.Equal(t, Rect{0, 0, 30, 20}, s.Rect())
	assert.Equal(t, Vec2{0, 0}, s.Position())
	assert.Nil(t, s.Gliding())
	assert.Equal(t, "Sprite(box)", s.String())
}

func TestSpriteIDsUnique(t *testing.T) {
	w := newTestWindow(t)
	a := w.NewSprite("same", nil)
	b := w.NewSprite("same", nil)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRegistryOrderAndUniqueness(t *testing.T) {
	w := newTestWindow(t)
	var created []*Sprite
	for _, name := range []string{"a", "b", "a", "c"} {
		created = append(created, w.NewSprite(name, nil))
	}

	got := w.Sprites()
	require.Len(t, got, len(created))
	for i := range created {
		assert.Same(t, created[i], got[i], "index %d", i)
	}

	// Ticks, hides and moves never drop a sprite.
	created[1].Hide()
	created[2].MoveTo(5, 5)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.Update())
	}
	assert.Len(t, w.Sprites(), len(created))
}

func TestSpritesReturnsCopy(t *testing.T) {
	w := newTestWindow(t)
	w.NewSprite("a", nil)
	snap := w.Sprites()
	snap[0] = nil
	assert.NotNil(t, w.Sprites()[0])
}

func TestMoveToIsCumulative(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", solidImage(10, 10))
	s.MoveTo(3, 4)
	before := s.Position()

	s.MoveTo(7, -2)
	s.MoveTo(-1, 5)

	after := s.Position()
	assert.Equal(t, before.X+6, after.X)
	assert.Equal(t, before.Y+3, after.Y)
	assert.Equal(t, 10.0, s.Rect().Width, "size unchanged")
}

func TestMoveToScenario(t *testing.T) {
	w := newTestWindow(t)
	path := writeTestPNG(t, t.TempDir(), "cat.png", 16, 12)
	cat, err := w.AddSprite("cat", path, image.Point{})
	require.NoError(t, err)

	r0 := cat.Rect()
	cat.MoveTo(10, 0)
	r1 := cat.Rect()

	assert.Equal(t, r0.X+10, r1.X)
	assert.Equal(t, r0.Y, r1.Y)
}

func TestShowHideKeepsPosition(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", solidImage(5, 5))
	s.MoveTo(12, 34)
	pos := s.Position()

	s.Hide()
	assert.False(t, s.Visible())
	assert.Equal(t, pos, s.Position())

	s.Show()
	assert.True(t, s.Visible())
	assert.Equal(t, pos, s.Position())
}

func TestOnRejectsUnknownTrigger(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", nil)
	err := s.On(triggerCount, func() {})
	assert.True(t, errors.Is(err, ErrUnknownTrigger), "err = %v", err)
	assert.False(t, s.Bound(triggerCount))
}

func TestOnOffBound(t *testing.T) {
	w := newTestWindow(t)
	s := w.NewSprite("s", nil)

	assert.False(t, s.Bound(TriggerSpace))
	require.NoError(t, s.On(TriggerSpace, func() {}))
	assert.True(t, s.Bound(TriggerSpace))

	s.Off(TriggerSpace)
	assert.False(t, s.Bound(TriggerSpace))

	require.NoError(t, s.On(TriggerA, func() {}))
	require.NoError(t, s.On(TriggerA, nil))
	assert.False(t, s.Bound(TriggerA), "nil callback unbinds")
}
