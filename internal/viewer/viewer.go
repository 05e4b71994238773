// Package viewer assembles the transform engine, navigation, session and
// input router into an image viewer.
//
// The viewer renders nothing. A presentation layer feeds it input events
// and a container rectangle, and draws from State, Controls and
// Navigation.
package viewer

import (
	"log/slog"

	"github.com/llehouerou/peek/internal/frame"
	"github.com/llehouerou/peek/internal/gallery"
	"github.com/llehouerou/peek/internal/geom"
	"github.com/llehouerou/peek/internal/input"
	"github.com/llehouerou/peek/internal/listener"
	"github.com/llehouerou/peek/internal/navigation"
	"github.com/llehouerou/peek/internal/session"
	"github.com/llehouerou/peek/internal/zoompan"
)

// Options configures a Viewer.
type Options struct {
	ZoomStep float64
	MinZoom  float64
	MaxZoom  float64
	Loop     bool

	InitialIndex int

	CloseOnEscape            bool
	CloseOnOverlayClick      bool
	EnableKeyboardNavigation bool

	ShowControls   bool
	ShowNavigation bool
	ShowCounter    bool

	// IsOpen makes the viewer controlled: the caller owns the open state
	// and updates it with Sync. Nil leaves the viewer uncontrolled,
	// starting from DefaultOpen.
	IsOpen      *bool
	DefaultOpen bool

	OnClose       func()
	OnIndexChange func(index int)
	OnOpenChange  func(open bool)
	OnZoomChange  func(scale float64)

	// Scheduler paces drag and pinch updates. Nil applies them at once.
	Scheduler frame.Scheduler

	Logger *slog.Logger
}

// DefaultOptions returns the default configuration: an uncontrolled,
// closed viewer with every interaction enabled.
func DefaultOptions() Options {
	return Options{
		ZoomStep:                 zoompan.DefaultZoomStep,
		MinZoom:                  zoompan.DefaultMinZoom,
		MaxZoom:                  zoompan.DefaultMaxZoom,
		CloseOnEscape:            true,
		CloseOnOverlayClick:      true,
		EnableKeyboardNavigation: true,
		ShowControls:             true,
		ShowNavigation:           true,
		ShowCounter:              true,
	}
}

// Viewer is one image viewer instance. It is not safe for concurrent use.
type Viewer struct {
	opts   Options
	images []gallery.Image
	log    *slog.Logger

	engine  *zoompan.Engine
	nav     *navigation.Controller
	session *session.Controller
	router  *input.Router
	bus     *listener.Bus

	container *geom.Rect
	loading   bool

	unsubKey       func()
	unsubGesture   []func()
	touchListening bool
}

// New creates a viewer over images.
func New(images []gallery.Image, opts Options) *Viewer {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	v := &Viewer{
		opts:    opts,
		images:  images,
		log:     log,
		bus:     listener.NewBus(),
		loading: true,
	}

	v.engine = zoompan.New(zoompan.Options{
		ZoomStep:     opts.ZoomStep,
		MinZoom:      opts.MinZoom,
		MaxZoom:      opts.MaxZoom,
		Scheduler:    opts.Scheduler,
		OnZoomChange: opts.OnZoomChange,
	})

	v.nav = navigation.New(len(images), opts.InitialIndex, opts.Loop)
	v.nav.OnChange(v.indexChanged)

	if opts.IsOpen != nil {
		v.session = session.NewControlled(*opts.IsOpen)
	} else {
		v.session = session.NewUncontrolled(opts.DefaultOpen)
	}
	v.session.OnReset(v.resetView)
	v.session.OnOpenChange(v.openChanged)
	v.session.OnClose(func() {
		if v.opts.OnClose != nil {
			v.opts.OnClose()
		}
	})

	v.router = input.New(input.Options{
		CloseOnEscape:       opts.CloseOnEscape,
		CloseOnOverlayClick: opts.CloseOnOverlayClick,
		KeyboardNavigation:  opts.EnableKeyboardNavigation,
	}, v.session, v.nav, v.engine)

	if v.session.IsOpen() {
		v.installKeys()
	}
	return v
}

// Images returns the gallery.
func (v *Viewer) Images() []gallery.Image {
	return v.images
}

// SetImages replaces the gallery. The index is re-clamped; if it moves the
// view resets as for any navigation.
func (v *Viewer) SetImages(images []gallery.Image) {
	v.images = images
	v.nav.SetTotal(len(images))
}

// CurrentImage returns the displayed image, if any.
func (v *Viewer) CurrentImage() (gallery.Image, bool) {
	i := v.nav.Index()
	if i < 0 || i >= len(v.images) {
		return gallery.Image{}, false
	}
	return v.images[i], true
}

// IsGallery reports whether there is more than one image.
func (v *Viewer) IsGallery() bool {
	return len(v.images) > 1
}

// Engine exposes the transform engine.
func (v *Viewer) Engine() *zoompan.Engine {
	return v.engine
}

// Listeners exposes the global listener bus, for inspection.
func (v *Viewer) Listeners() *listener.Bus {
	return v.bus
}

// Mode returns the session ownership mode.
func (v *Viewer) Mode() session.Mode {
	return v.session.Mode()
}

// IsOpen reports whether the viewer is shown.
func (v *Viewer) IsOpen() bool {
	return v.session.IsOpen()
}

// Sync supplies the caller-owned open state of a controlled viewer.
func (v *Viewer) Sync(isOpen bool) {
	v.session.Sync(isOpen)
}

// Open shows an uncontrolled viewer.
func (v *Viewer) Open() {
	v.session.Open()
}

// OpenAt shows an uncontrolled viewer at index i (clamped).
func (v *Viewer) OpenAt(i int) {
	v.nav.SetIndex(i)
	v.session.Open()
}

// Close requests the viewer to close. A controlled viewer only reports the
// request through OnClose.
func (v *Viewer) Close() {
	v.session.RequestClose()
}

// SetInitialIndex follows an externally supplied index: it is applied when
// it differs from the current index and lies inside the gallery.
func (v *Viewer) SetInitialIndex(i int) {
	v.opts.InitialIndex = i
	if i != v.nav.Index() && i >= 0 && i < len(v.images) {
		v.nav.SetIndex(i)
	}
}

// Index returns the current index.
func (v *Viewer) Index() int {
	return v.nav.Index()
}

// Next shows the next image.
func (v *Viewer) Next() {
	v.nav.Next()
}

// Previous shows the previous image.
func (v *Viewer) Previous() {
	v.nav.Previous()
}

// SetIndex jumps to image i (clamped).
func (v *Viewer) SetIndex(i int) {
	v.nav.SetIndex(i)
}

// First jumps to the first image.
func (v *Viewer) First() {
	v.nav.First()
}

// Last jumps to the last image.
func (v *Viewer) Last() {
	v.nav.Last()
}

// SetLoop changes the wrap policy.
func (v *Viewer) SetLoop(loop bool) {
	v.opts.Loop = loop
	v.nav.SetLoop(loop)
}

// Loop reports whether navigation wraps.
func (v *Viewer) Loop() bool {
	return v.nav.Loop()
}

// ZoomIn zooms in by one step.
func (v *Viewer) ZoomIn() {
	v.engine.ZoomIn()
}

// ZoomOut zooms out by one step.
func (v *Viewer) ZoomOut() {
	v.engine.ZoomOut()
}

// ResetZoom returns to the unzoomed, centered view.
func (v *Viewer) ResetZoom() {
	v.engine.Reset()
}

// SetZoom sets an absolute, recentered zoom.
func (v *Viewer) SetZoom(scale float64) {
	v.engine.SetZoom(scale)
}

// Loading reports whether the current image is still loading.
func (v *Viewer) Loading() bool {
	return v.loading
}

// ImageLoaded signals that image index finished loading. Signals for an
// image that is no longer current are ignored.
func (v *Viewer) ImageLoaded(index int) {
	if index != v.nav.Index() {
		return
	}
	v.loading = false
}

// ImageFailed signals that image index could not be loaded. It only stops
// the loading indicator.
func (v *Viewer) ImageFailed(index int, err error) {
	if index != v.nav.Index() {
		return
	}
	v.log.Debug("image failed", slog.Int("index", index), slog.Any("err", err))
	v.loading = false
}

// SetContainer records the container rectangle used to anchor zoom
// gestures.
func (v *Viewer) SetContainer(r geom.Rect) {
	v.container = &r
}

// ClearContainer forgets the container; zoom gestures then only scale.
func (v *Viewer) ClearContainer() {
	v.container = nil
}

// Container returns the container rectangle, if known.
func (v *Viewer) Container() (geom.Rect, bool) {
	if v.container == nil {
		return geom.Rect{}, false
	}
	return *v.container, true
}

func (v *Viewer) indexChanged(i int) {
	v.log.Debug("index change", slog.Int("index", i))
	v.abortGesture()
	v.engine.Reset()
	v.loading = true
	if v.opts.OnIndexChange != nil {
		v.opts.OnIndexChange(i)
	}
}

func (v *Viewer) resetView() {
	v.abortGesture()
	v.engine.Reset()
}

func (v *Viewer) openChanged(open bool) {
	v.log.Debug("open change", slog.Bool("open", open), slog.String("mode", v.session.Mode().String()))
	if open {
		v.installKeys()
	} else {
		v.removeKeys()
		v.abortGesture()
	}
	if v.opts.OnOpenChange != nil {
		v.opts.OnOpenChange(open)
	}
}
