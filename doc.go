// Package sapling is a beginner-sized 2D sprite layer for [Ebitengine].
//
// A program creates a [Window], adds image-backed sprites, moves or glides
// them and binds callbacks to keys and clicks. Ebitengine does the rendering,
// windowing, input polling and frame pacing; sapling only keeps the sprite
// registry and turns each frame's input into sprite callbacks.
//
// # Quick start
//
//	win := sapling.NewWindow(sapling.WindowConfig{Title: "Cat"})
//	cat, err := win.AddSprite("cat", "cat.png", image.Point{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	cat.On(sapling.TriggerRight, func() { cat.MoveTo(10, 0) })
//	cat.On(sapling.TriggerClick, func() { cat.GlideTo(100, 100) })
//	if err := win.Start(); err != nil {
//		log.Fatal(err)
//	}
//
// # Frame loop
//
// Each tick the window captures the frame's events into one batch, stops on
// a quit event, rebuilds the background on a resize, and hands the batch to
// every sprite in creation order. Draw then paints the background and every
// visible sprite in the same order.
//
// # Moving sprites
//
// [Sprite.MoveTo] offsets a sprite relative to where it is. [Sprite.GlideTo]
// does the same over time on its own goroutine and returns a [Glide] handle
// that can be cancelled or waited on. A sprite has one glide at a time:
// starting another supersedes the first.
//
// The glide step count is min(frames, x, y) of the raw target values, so
// GlideToOver(5, 100, time.Second, 40) takes 5 steps and a target with a
// zero or negative component does not move at all.
//
// # Testing
//
// [Window.InjectKey], [Window.InjectClick] and friends queue synthetic events
// for the next tick, and [TestRunner] scripts them from JSON. Pair them with
// [NoInput] to drive a window headlessly through [Window.Update].
//
// [Ebitengine]: https://ebitengine.org
package sapling
