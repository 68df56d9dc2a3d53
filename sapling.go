package sapling

import (
	"image/color"

	"github.com/pkg/errors"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBackground is the default window fill, a near-white RGB(250, 250, 250).
var ColorBackground = Color{250.0 / 255.0, 250.0 / 255.0, 250.0 / 255.0, 1}

// toRGBA converts c to a premultiplied color.RGBA, rounding to the nearest
// 8-bit value.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and top edges are inside, the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

var (
	// ErrUnknownTrigger is returned when binding a callback to a trigger
	// outside the supported set.
	ErrUnknownTrigger = errors.New("sapling: unknown trigger")

	// ErrAlreadyStarted is returned by Window.Start on a window that is
	// running or has already stopped.
	ErrAlreadyStarted = errors.New("sapling: window already started")

	// ErrInvalidSize is returned by AddSprite for a negative display size.
	ErrInvalidSize = errors.New("sapling: invalid sprite size")

	// ErrGlideSuperseded is reported by Glide.Wait when a newer glide on the
	// same sprite took over before this one finished.
	ErrGlideSuperseded = errors.New("sapling: glide superseded")
)
