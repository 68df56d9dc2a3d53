package sapling

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultGlideDuration is the length of a GlideTo animation.
	DefaultGlideDuration = time.Second
	// DefaultGlideFrames is the requested step count of a GlideTo animation.
	DefaultGlideFrames = 40
)

// Glide is a running linear slide of one sprite. It is created by
// Sprite.GlideTo and runs on its own goroutine; the handle lets callers
// cancel it or wait for it.
//
// A sprite has at most one glide writing its position. Starting a new glide
// supersedes the previous one, which stops before its next step.
type Glide struct {
	sprite *Sprite
	frames int
	delay  time.Duration

	tweenX, tweenY *gween.Tween
	lastX, lastY   float32

	cancel context.CancelFunc
	done   chan struct{}
	steps  atomic.Int32
	err    error // written before done is closed
}

// glideFrames clamps the requested frame count against the raw target
// values: frames = min(frames, x, y). A negative or zero result means the
// glide makes no steps.
func glideFrames(x, y, frames int) int {
	if x < frames {
		frames = x
	}
	if y < frames {
		frames = y
	}
	return frames
}

func newGlide(s *Sprite, x, y int, duration time.Duration, frames int) *Glide {
	n := glideFrames(x, y, frames)
	if n != frames {
		glog.V(1).Infof("sapling: %s glide to (%d, %d) clamped from %d to %d frames", s, x, y, frames, n)
	}
	g := &Glide{
		sprite: s,
		frames: n,
		done:   make(chan struct{}),
	}
	if n > 0 {
		g.delay = (duration / time.Duration(n)).Truncate(time.Millisecond)
		g.tweenX = gween.New(0, float32(x), float32(n), ease.Linear)
		g.tweenY = gween.New(0, float32(y), float32(n), ease.Linear)
	}
	return g
}

// Frames returns the number of steps the glide runs after clamping.
func (g *Glide) Frames() int {
	if g.frames < 0 {
		return 0
	}
	return g.frames
}

// Steps returns how many steps have been applied so far.
func (g *Glide) Steps() int {
	return int(g.steps.Load())
}

// Done returns a channel that is closed when the glide stops.
func (g *Glide) Done() <-chan struct{} {
	return g.done
}

// Cancel stops the glide before its next step. The sprite stays where the
// last applied step left it.
func (g *Glide) Cancel() {
	g.cancel()
}

// Wait blocks until the glide stops or ctx is done. It returns nil when every
// step ran, context.Canceled when the glide was cancelled, and
// ErrGlideSuperseded when a newer glide took over the sprite.
func (g *Glide) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return g.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run applies each step, then sleeps for the per-step delay.
func (g *Glide) run(ctx context.Context) {
	defer close(g.done)
	defer g.sprite.releaseGlide(g)

	if g.frames <= 0 {
		return
	}

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for i := 0; i < g.frames; i++ {
		if ctx.Err() != nil {
			g.err = g.stopErr(ctx)
			return
		}

		vx, _ := g.tweenX.Update(1)
		vy, _ := g.tweenY.Update(1)
		if !g.sprite.applyGlideStep(g, float64(vx)-float64(g.lastX), float64(vy)-float64(g.lastY)) {
			g.err = ErrGlideSuperseded
			return
		}
		g.lastX, g.lastY = vx, vy
		g.steps.Add(1)

		timer.Reset(g.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			g.err = g.stopErr(ctx)
			return
		}
	}
}

// stopErr tells a supersede apart from a plain cancel.
func (g *Glide) stopErr(ctx context.Context) error {
	if g.sprite.Gliding() != g {
		return ErrGlideSuperseded
	}
	return ctx.Err()
}

// GlideTo slides the sprite by (x, y) over DefaultGlideDuration in
// DefaultGlideFrames steps. It returns immediately.
func (s *Sprite) GlideTo(x, y int) *Glide {
	return s.GlideToOver(x, y, DefaultGlideDuration, DefaultGlideFrames)
}

// GlideToOver slides the sprite by (x, y) over duration in at most frames
// linear steps and returns immediately. The step count is clamped to
// min(frames, x, y); when that is not positive the glide finishes at once
// without moving. Any glide already running on the sprite is superseded.
func (s *Sprite) GlideToOver(x, y int, duration time.Duration, frames int) *Glide {
	g := newGlide(s, x, y, duration, frames)
	ctx, cancel := s.window.glideContext()
	g.cancel = cancel

	s.mu.Lock()
	prev := s.glide
	s.glide = g
	s.mu.Unlock()

	if prev != nil {
		prev.Cancel()
	}
	s.window.runGlide(ctx, g)
	return g
}

// Gliding returns the glide currently moving the sprite, or nil.
func (s *Sprite) Gliding() *Glide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.glide
}

// applyGlideStep offsets the sprite if g still owns its position.
func (s *Sprite) applyGlideStep(g *Glide, dx, dy float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.glide != g {
		return false
	}
	s.rect = s.rect.Offset(dx, dy)
	return true
}

func (s *Sprite) releaseGlide(g *Glide) {
	s.mu.Lock()
	if s.glide == g {
		s.glide = nil
	}
	s.mu.Unlock()
}
