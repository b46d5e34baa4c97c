package willowgui

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional ECS integration.
// When set on a System, every dispatched event is forwarded after bubbling.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries dispatched event data for an EventSink.
type InteractionEvent struct {
	Type EventType
	// NodeID and NodeName identify the target; zero for TouchCancel.
	NodeID   uint32
	NodeName string
	// ElementID is the target's Props.ID.
	ElementID  string
	Identifier int
	PageX      float64
	PageY      float64
}

// Options configures a System.
type Options struct {
	// Width and Height are the viewport size in page units.
	Width  float64
	Height float64
	// PixelRatio is device pixels per page unit. Zero means 1.
	PixelRatio float64
	// Debug enables tree-shape warnings and per-frame stats.
	Debug bool
	// ScreenshotDir is where Screenshot writes PNG files. Empty means
	// "screenshots".
	ScreenshotDir string
}

// System owns the layers, the viewport, and the pointer dispatch state.
type System struct {
	width      float64
	height     float64
	pixelRatio float64

	// layers is kept sorted by ascending priority.
	layers []*Layer

	sessions  sessionTracker
	mouseDown bool

	sink  EventSink
	debug bool

	// Input polling
	device  inputDevice
	pointer pointerTracker

	// Synthetic input and scripted tests
	injectQueue     []syntheticEvent
	injectedTouches []PointerInput
	testRunner      *TestRunner

	// Screenshots
	ScreenshotDir   string
	screenshotQueue []string

	animations []animation
	renderer   *EbitenRenderer
}

// animation is advanced once per Update until it reports done.
type animation interface {
	advance(dt float32) (done bool)
}

// NewSystem creates a system with the given viewport. Input is polled from
// ebiten on every Update.
func NewSystem(opts Options) *System {
	pr := opts.PixelRatio
	if pr <= 0 {
		pr = 1
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	return &System{
		width:         opts.Width,
		height:        opts.Height,
		pixelRatio:    pr,
		debug:         opts.Debug,
		device:        ebitenDevice{},
		ScreenshotDir: dir,
	}
}

// CreateLayer adds a named layer. Returns a *ConfigError wrapping
// ErrLayerExists when the name is taken.
func (s *System) CreateLayer(name string, opts LayerOptions) (*Layer, error) {
	if s.Layer(name) != nil {
		return nil, configError(name, ErrLayerExists)
	}
	l := newLayer(s, name, opts)
	s.layers = append(s.layers, l)
	slices.SortStableFunc(s.layers, func(a, b *Layer) int {
		return a.priority - b.priority
	})
	Logger().Debug("layer created", "layer", name, "priority", opts.Priority, "ratio", l.screenRatio)
	return l, nil
}

// Layer returns the layer with the given name, or nil.
func (s *System) Layer(name string) *Layer {
	for _, l := range s.layers {
		if l.name == name {
			return l
		}
	}
	return nil
}

// RemoveLayer removes the named layer and detaches its roots.
func (s *System) RemoveLayer(name string) {
	for i, l := range s.layers {
		if l.name != name {
			continue
		}
		for len(l.roots) > 0 {
			l.RemoveRoot(l.roots[len(l.roots)-1])
		}
		s.layers = slices.Delete(s.layers, i, i+1)
		return
	}
}

// Layers returns the layers in ascending priority. The returned slice MUST NOT be mutated.
func (s *System) Layers() []*Layer {
	return s.layers
}

// Viewport returns the viewport size in page units.
func (s *System) Viewport() (w, h float64) {
	return s.width, s.height
}

// PixelRatio returns device pixels per page unit.
func (s *System) PixelRatio() float64 {
	return s.pixelRatio
}

// SetViewport resizes the viewport and recomputes every layer's screen ratio
// and transforms.
func (s *System) SetViewport(w, h float64) {
	s.width, s.height = w, h
	for _, l := range s.layers {
		l.refresh()
	}
}

// SetEventSink sets the optional ECS bridge.
func (s *System) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings and per-frame draw stats are logged.
func (s *System) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update processes input and advances scroll animations. Injected events take
// precedence over device input for the frame.
func (s *System) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() && s.device != nil {
		s.pollInput()
	}
	s.advanceAnimations(dt)
}

// Draw renders every layer onto screen and captures queued screenshots.
func (s *System) Draw(screen *ebiten.Image) {
	if s.renderer == nil {
		s.renderer = NewEbitenRenderer(s.pixelRatio)
	}
	s.renderer.reset(screen)
	s.Render(s.renderer)
	if s.debug {
		s.debugLog(s.renderer.stats)
	}
	s.flushScreenshots(screen)
}

// Render draws every layer in ascending priority through r.
func (s *System) Render(r Renderer) {
	for _, l := range s.layers {
		l.render(r)
	}
}

func (s *System) startAnimation(a animation) {
	s.animations = append(s.animations, a)
}

func (s *System) advanceAnimations(dt float32) {
	live := s.animations[:0]
	for _, a := range s.animations {
		if !a.advance(dt) {
			live = append(live, a)
		}
	}
	clear(s.animations[len(live):])
	s.animations = live
}

// emit forwards e to the event sink.
func (s *System) emit(e *Event) {
	if s.sink == nil {
		return
	}
	ie := InteractionEvent{Type: e.Type}
	if e.Target != nil {
		ie.NodeID = e.Target.ID
		ie.NodeName = e.Target.Name
		ie.ElementID = e.Target.props.ID
	}
	if t := e.primary(); t != nil {
		ie.Identifier = t.Identifier
		ie.PageX = t.PageX
		ie.PageY = t.PageY
	}
	s.sink.EmitEvent(ie)
}
