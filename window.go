package sapling

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWidth         = 500
	defaultHeight        = 250
	defaultTPS           = 60
	defaultScreenshotDir = "screenshots"
)

// State is the lifecycle stage of a Window.
type State uint8

const (
	StateCreated State = iota // built, frame loop not started
	StateRunning              // inside Start
	StateStopped              // a quit event ended the loop
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// WindowConfig holds the settings for NewWindow. Zero fields take defaults.
type WindowConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size. Default 500x250.
	Width, Height int
	// Background is the fill color. Default RGB(250, 250, 250).
	Background Color
	// TPS is the target frame-loop rate. Default 60.
	TPS int
	// FixedSize disables user resizing.
	FixedSize bool
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame dispatch stats through glog.
	Debug bool
	// ScreenshotDir is where Screenshot writes PNGs. Default "screenshots".
	ScreenshotDir string
	// Source supplies host input. Nil reads Ebitengine input; NoInput
	// reads nothing so only injected events reach the sprites.
	Source EventSource
}

// NoInput is an EventSource that reports no host events.
var NoInput EventSource = EventSourceFunc(func(buf Events) Events { return buf })

// Window owns the background, the sprite registry and the frame loop. It
// implements ebiten.Game; Start runs it.
type Window struct {
	title     string
	tps       int
	fixedSize bool
	bgColor   Color
	source    EventSource

	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir string

	mu              sync.RWMutex
	state           State
	width, height   int
	layoutW         int // last size reported by the host, to detect resizes
	layoutH         int
	background      *ebiten.Image
	sprites         []*Sprite
	injectQueue     Events
	screenshotQueue []string
	store           EventStore
	updateFunc      func() error
	testRunner      *TestRunner
	debug           bool

	ctx    context.Context
	cancel context.CancelFunc
	glides errgroup.Group

	// Owned by the frame loop.
	batch   Events
	frameSp []*Sprite
	frame   uint64
	fps     *fpsOverlay
}

// NewWindow creates a window in StateCreated. Nothing is shown until Start.
func NewWindow(cfg WindowConfig) *Window {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = defaultTPS
	}
	if cfg.Background == (Color{}) {
		cfg.Background = ColorBackground
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = defaultScreenshotDir
	}
	if cfg.Source == nil {
		cfg.Source = &hostSource{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Window{
		title:         cfg.Title,
		tps:           cfg.TPS,
		fixedSize:     cfg.FixedSize,
		bgColor:       cfg.Background,
		source:        cfg.Source,
		ScreenshotDir: cfg.ScreenshotDir,
		width:         cfg.Width,
		height:        cfg.Height,
		layoutW:       cfg.Width,
		layoutH:       cfg.Height,
		debug:         cfg.Debug,
		ctx:           ctx,
		cancel:        cancel,
	}
	w.background = w.newBackground(cfg.Width, cfg.Height)
	if cfg.ShowFPS {
		w.fps = newFPSOverlay()
	}
	return w
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// State returns the window's lifecycle stage.
func (w *Window) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

// Size returns the current window size.
func (w *Window) Size() (width, height int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.width, w.height
}

// Background returns the current background image. It is replaced, not
// modified, when the window is resized.
func (w *Window) Background() *ebiten.Image {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.background
}

// SetEventStore sets the optional sink for matched sprite triggers.
func (w *Window) SetEventStore(store EventStore) {
	w.mu.Lock()
	w.store = store
	w.mu.Unlock()
}

// SetUpdateFunc sets a function called once per tick after sprite dispatch.
// A non-nil error ends the frame loop and is returned from Start.
func (w *Window) SetUpdateFunc(fn func() error) {
	w.mu.Lock()
	w.updateFunc = fn
	w.mu.Unlock()
}

// SetDebugMode enables or disables per-frame stats logging.
func (w *Window) SetDebugMode(enabled bool) {
	w.mu.Lock()
	w.debug = enabled
	w.mu.Unlock()
}

// --- Sprites ---

// AddSprite loads the image at path and registers a new sprite showing it
// at the window origin. A non-zero size scales the image; a zero width or
// height keeps the aspect ratio. Load failures are returned.
func (w *Window) AddSprite(name, path string, size image.Point) (*Sprite, error) {
	img, err := loadImage(path, size)
	if err != nil {
		return nil, errors.Wrapf(err, "sapling: add sprite %q", name)
	}
	return w.NewSprite(name, img), nil
}

// NewSprite registers a new sprite for an image that is already loaded.
func (w *Window) NewSprite(name string, img *ebiten.Image) *Sprite {
	s := newSprite(w, name, img)

	w.mu.Lock()
	w.sprites = append(w.sprites, s)
	n := len(w.sprites)
	debug := w.debug
	w.mu.Unlock()

	if debug {
		debugCheckSpriteCount(n)
	}
	glog.V(1).Infof("sapling: registered %s (id %d)", s, s.ID)
	return s
}

// Sprites returns every sprite created by the window, in creation order.
func (w *Window) Sprites() []*Sprite {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Sprite, len(w.sprites))
	copy(out, w.sprites)
	return out
}

// snapshotSprites copies the registry into the loop-owned buffer.
func (w *Window) snapshotSprites() []*Sprite {
	w.mu.RLock()
	w.frameSp = append(w.frameSp[:0], w.sprites...)
	w.mu.RUnlock()
	return w.frameSp
}

// --- Frame loop ---

// Start configures the host window and runs the frame loop until a quit
// event arrives. It may be called once.
func (w *Window) Start() error {
	w.mu.Lock()
	if w.state != StateCreated {
		w.mu.Unlock()
		return ErrAlreadyStarted
	}
	w.state = StateRunning
	width, height := w.width, w.height
	w.mu.Unlock()

	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(w.tps)
	if w.fixedSize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(w)
	w.stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "sapling: run frame loop")
	}
	return nil
}

// Wait blocks until every glide started on the window's sprites has
// returned. Glides are cancelled when the window stops.
func (w *Window) Wait() {
	_ = w.glides.Wait()
}

// stop moves the window to StateStopped and cancels running glides.
func (w *Window) stop() {
	w.mu.Lock()
	w.state = StateStopped
	w.mu.Unlock()
	w.cancel()
}

// Update runs one tick: capture the frame's events, stop on quit, rebuild
// the background on resize, then dispatch the batch to every sprite in
// registry order. Called by Ebitengine.
func (w *Window) Update() error {
	w.mu.RLock()
	runner, store, updateFn, debug := w.testRunner, w.store, w.updateFunc, w.debug
	w.mu.RUnlock()

	if runner != nil {
		runner.step(w)
	}

	var t0 time.Time
	if debug {
		t0 = time.Now()
	}

	w.batch = w.poll(w.batch[:0])
	if w.batch.Has(EventQuit) {
		glog.V(1).Infof("sapling: quit requested at frame %d", w.frame)
		w.stop()
		return ebiten.Termination
	}
	for i := range w.batch {
		if ev := &w.batch[i]; ev.Type == EventResize {
			w.resize(ev.Width, ev.Height)
		}
	}

	sprites := w.snapshotSprites()
	fired := 0
	for _, s := range sprites {
		fired += s.dispatch(w.batch, store)
	}

	if w.fps != nil {
		w.fps.update(1.0 / float64(w.tps))
	}
	if debug {
		w.debugLog(frameStats{
			frame:        w.frame,
			eventCount:   len(w.batch),
			spriteCount:  len(sprites),
			firedCount:   fired,
			dispatchTime: time.Since(t0),
		})
	}
	w.frame++

	if updateFn != nil {
		return updateFn()
	}
	return nil
}

// poll drains injected events, then appends the host's events.
func (w *Window) poll(buf Events) Events {
	w.mu.Lock()
	buf = append(buf, w.injectQueue...)
	w.injectQueue = w.injectQueue[:0]
	w.mu.Unlock()
	return w.source.Poll(buf)
}

// Draw paints the background, then every visible sprite in registry order.
// Called by Ebitengine.
func (w *Window) Draw(screen *ebiten.Image) {
	bg := w.Background()
	screen.DrawImage(bg, nil)

	var op ebiten.DrawImageOptions
	for _, s := range w.snapshotSprites() {
		img, pos, visible := s.drawState()
		if !visible || img == nil {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(img, &op)
	}

	if w.fps != nil {
		w.fps.draw(screen)
	}
	w.flushScreenshots(screen)
}

// Layout reports a host size change as a resize event for the next tick.
// Called by Ebitengine.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fixedSize {
		return w.width, w.height
	}
	if outsideWidth != w.layoutW || outsideHeight != w.layoutH {
		w.layoutW, w.layoutH = outsideWidth, outsideHeight
		w.injectQueue = append(w.injectQueue, Event{
			Type:   EventResize,
			Width:  outsideWidth,
			Height: outsideHeight,
		})
	}
	return outsideWidth, outsideHeight
}

// resize replaces the background with one of the new size.
func (w *Window) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	bg := w.newBackground(width, height)

	w.mu.Lock()
	old := w.background
	w.background = bg
	w.width, w.height = width, height
	w.mu.Unlock()

	if old != nil {
		old.Deallocate()
	}
	glog.V(1).Infof("sapling: background rebuilt at %dx%d", width, height)
}

func (w *Window) newBackground(width, height int) *ebiten.Image {
	bg := ebiten.NewImage(width, height)
	bg.Fill(w.bgColor.toRGBA())
	return bg
}

// --- Glides ---

// glideContext derives a cancellable context for a glide from the window's
// lifetime.
func (w *Window) glideContext() (context.Context, context.CancelFunc) {
	return context.WithCancel(w.ctx)
}

func (w *Window) runGlide(ctx context.Context, g *Glide) {
	w.glides.Go(func() error {
		defer g.cancel()
		g.run(ctx)
		return nil
	})
}
