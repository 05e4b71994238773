// Package app is the terminal front end: it feeds bubbletea input to the
// viewer and draws the viewer state with the image protocol, the control
// bar, the status line and the thumbnail strip.
package app

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/config"
	"github.com/llehouerou/peek/internal/frame"
	"github.com/llehouerou/peek/internal/gallery"
	"github.com/llehouerou/peek/internal/imageload"
	"github.com/llehouerou/peek/internal/state"
	"github.com/llehouerou/peek/internal/ui/gallerylist"
	"github.com/llehouerou/peek/internal/ui/imageview"
	"github.com/llehouerou/peek/internal/ui/thumbstrip"
	"github.com/llehouerou/peek/internal/viewer"
)

// Options are the start-up choices made on the command line.
type Options struct {
	// Index is the image shown first.
	Index int
	// Loop forces looping on, whatever the config says.
	Loop bool

	// Protocol draws the images. Nil shows the text interface only.
	Protocol imageview.Protocol
	// RenderCache keeps fitted frames on disk. May be nil.
	RenderCache *imageview.Cache

	// State keeps the resume position of Gallery. Nil disables it.
	State   state.Interface
	Gallery string

	// Changes signals that the scanned directories changed and Rescan
	// rebuilds the gallery. Nil disables live reload.
	Changes <-chan struct{}
	Rescan  func(ctx context.Context) ([]gallery.Image, error)

	Logger *slog.Logger
}

// Model is the bubbletea model of the viewer screen.
type Model struct {
	cfg    *config.Config
	images []gallery.Image
	log    *slog.Logger

	// Handle owns the open state and index; Viewer is controlled by it.
	Handle *viewer.Handle
	Viewer *viewer.Viewer

	ticker        *frame.Ticker
	frameInterval time.Duration
	framePending  bool

	Images   *imageload.Cache
	Renderer *imageview.Renderer
	cellW    int
	cellH    int

	// entry is the decoded current image, zero while it loads.
	entry        imageload.Entry
	loadErr      error
	shown        int
	pendingImage string

	Thumbs     thumbstrip.Model
	showThumbs bool
	List       gallerylist.Model
	Popups     PopupManager

	state   state.Interface
	gallery string
	changes <-chan struct{}
	rescan  func(ctx context.Context) ([]gallery.Image, error)

	lastClick click
	now       func() time.Time

	Width    int
	Height   int
	ErrorMsg string
	quitting bool
}

// New creates the model for images.
func New(cfg *config.Config, images []gallery.Image, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	vc := cfg.GetViewerConfig()

	hopts := viewer.DefaultHandleOptions()
	hopts.DefaultOpen = true
	hopts.DefaultIndex = opts.Index
	hopts.TotalImages = len(images)
	hopts.ZoomStep = vc.ZoomStep
	hopts.MinZoom = vc.MinZoom
	hopts.MaxZoom = vc.MaxZoom
	hopts.Loop = vc.Loop || opts.Loop
	handle := viewer.NewHandle(hopts)

	ticker := frame.NewTicker()
	base := viewer.DefaultOptions()
	base.CloseOnEscape = vc.CloseOnEscape
	base.CloseOnOverlayClick = vc.CloseOnOverlayClick
	base.EnableKeyboardNavigation = vc.KeyboardNavigation
	base.ShowControls = vc.ShowControls
	base.ShowNavigation = vc.ShowNavigation
	base.ShowCounter = vc.ShowCounter
	base.Scheduler = ticker
	base.Logger = log
	v := viewer.New(images, handle.Props().Options(base))

	bg := imageview.ParseBackground(cfg.GetBackground())
	cellW, cellH := imageview.CellSize()

	m := Model{
		cfg:           cfg,
		images:        images,
		log:           log,
		Handle:        handle,
		Viewer:        v,
		ticker:        ticker,
		frameInterval: time.Second / time.Duration(cfg.GetFrameRate()),
		Images:        imageload.NewCache(imageload.DefaultCapacity),
		Renderer:      imageview.NewRenderer(opts.Protocol, opts.RenderCache, bg, log),
		cellW:         cellW,
		cellH:         cellH,
		shown:         v.Index(),
		Thumbs:        thumbstrip.New(),
		showThumbs:    cfg.ThumbnailsEnabled(),
		List:          gallerylist.New(),
		Popups:        NewPopupManager(),
		state:         opts.State,
		gallery:       opts.Gallery,
		changes:       opts.Changes,
		rescan:        opts.Rescan,
		now:           time.Now,
	}
	m.Thumbs.SetImages(images)
	m.Thumbs.SetCurrent(m.shown)
	m.List.SetImages(images)
	m.List.SetCurrent(m.shown)
	return m
}

// Init loads the first image and its neighbours.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCurrent(), m.prefetch(), waitForChange(m.changes))
}

// loadCurrent decodes the current image off the UI goroutine.
func (m Model) loadCurrent() tea.Cmd {
	img, ok := m.Viewer.CurrentImage()
	if !ok {
		return nil
	}
	return m.Images.Load(m.Viewer.Index(), img.Src)
}

// prefetch warms the cache with the images on either side.
func (m Model) prefetch() tea.Cmd {
	i := m.Viewer.Index()
	var srcs []string
	for _, j := range []int{i + 1, i - 1} {
		if j >= 0 && j < len(m.images) {
			srcs = append(srcs, m.images[j].Src)
		}
	}
	return m.Images.Prefetch(srcs...)
}
