package viewer

import (
	"github.com/llehouerou/peek/internal/geom"
	"github.com/llehouerou/peek/internal/navigation"
	"github.com/llehouerou/peek/internal/zoompan"
)

// HandleOptions configures a Handle.
type HandleOptions struct {
	DefaultOpen  bool
	DefaultIndex int
	// TotalImages bounds the tracked index. Values below 1 mean 1.
	TotalImages int

	ZoomStep float64
	MinZoom  float64
	MaxZoom  float64
	Loop     bool

	OnOpenChange  func(open bool)
	OnIndexChange func(index int)
}

// DefaultHandleOptions returns the handle defaults.
func DefaultHandleOptions() HandleOptions {
	return HandleOptions{
		TotalImages: 1,
		ZoomStep:    zoompan.DefaultZoomStep,
		MinZoom:     zoompan.DefaultMinZoom,
		MaxZoom:     zoompan.DefaultMaxZoom,
	}
}

// Handle drives a controlled viewer from outside: it owns the open state,
// the index and a tracked zoom value, and hands them to the viewer as
// Props.
type Handle struct {
	opts HandleOptions
	open bool
	nav  *navigation.Controller
	zoom float64
}

// NewHandle creates a handle.
func NewHandle(opts HandleOptions) *Handle {
	h := &Handle{
		opts: opts,
		open: opts.DefaultOpen,
		nav:  navigation.New(max(opts.TotalImages, 1), opts.DefaultIndex, opts.Loop),
		zoom: 1,
	}
	h.nav.OnChange(func(i int) {
		h.zoom = 1
		if h.opts.OnIndexChange != nil {
			h.opts.OnIndexChange(i)
		}
	})
	return h
}

// IsOpen reports the open state the handle holds.
func (h *Handle) IsOpen() bool {
	return h.open
}

// Index returns the tracked index.
func (h *Handle) Index() int {
	return h.nav.Index()
}

// Zoom returns the tracked zoom value.
func (h *Handle) Zoom() float64 {
	return h.zoom
}

// Open opens the viewer at the current index.
func (h *Handle) Open() {
	h.setOpen(true)
}

// OpenAt opens the viewer at index i (clamped).
func (h *Handle) OpenAt(i int) {
	h.nav.SetIndex(i)
	h.setOpen(true)
}

// Close closes the viewer and resets the tracked zoom.
func (h *Handle) Close() {
	h.zoom = 1
	h.setOpen(false)
}

// Toggle opens a closed viewer and closes an open one.
func (h *Handle) Toggle() {
	if h.open {
		h.Close()
		return
	}
	h.Open()
}

// SetIndex jumps to i (clamped). A change resets the tracked zoom.
func (h *Handle) SetIndex(i int) {
	h.nav.SetIndex(i)
}

// Next advances, wrapping when looping.
func (h *Handle) Next() {
	h.nav.Next()
}

// Previous goes back, wrapping when looping.
func (h *Handle) Previous() {
	h.nav.Previous()
}

// SetLoop changes the wrap policy handed to the viewer.
func (h *Handle) SetLoop(loop bool) {
	h.opts.Loop = loop
	h.nav.SetLoop(loop)
}

// Loop reports whether navigation wraps.
func (h *Handle) Loop() bool {
	return h.opts.Loop
}

// SetTotal changes the number of images the index is bounded by.
func (h *Handle) SetTotal(n int) {
	h.opts.TotalImages = max(n, 1)
	h.nav.SetTotal(h.opts.TotalImages)
}

// SetZoom sets the tracked zoom, clamped to the zoom range.
func (h *Handle) SetZoom(z float64) {
	if !geom.Finite(z) {
		return
	}
	h.zoom = geom.Clamp(z, h.opts.MinZoom, h.opts.MaxZoom)
}

// ZoomIn adds one step to the tracked zoom.
func (h *Handle) ZoomIn() {
	h.SetZoom(h.zoom + h.opts.ZoomStep)
}

// ZoomOut subtracts one step from the tracked zoom.
func (h *Handle) ZoomOut() {
	h.SetZoom(h.zoom - h.opts.ZoomStep)
}

// ResetZoom sets the tracked zoom back to 1.
func (h *Handle) ResetZoom() {
	h.zoom = 1
}

// Props returns the values a controlled viewer takes from the handle.
func (h *Handle) Props() Props {
	return Props{
		IsOpen:        h.open,
		OnClose:       h.Close,
		InitialIndex:  h.nav.Index(),
		OnIndexChange: h.SetIndex,
		OnZoomChange:  h.SetZoom,
		ZoomStep:      h.opts.ZoomStep,
		MinZoom:       h.opts.MinZoom,
		MaxZoom:       h.opts.MaxZoom,
		Loop:          h.opts.Loop,
	}
}

func (h *Handle) setOpen(open bool) {
	if h.open == open {
		return
	}
	h.open = open
	if h.opts.OnOpenChange != nil {
		h.opts.OnOpenChange(open)
	}
}

// Props are the caller-supplied values of a controlled viewer.
type Props struct {
	IsOpen        bool
	OnClose       func()
	InitialIndex  int
	OnIndexChange func(index int)
	OnZoomChange  func(scale float64)

	ZoomStep float64
	MinZoom  float64
	MaxZoom  float64
	Loop     bool
}

// Options merges p into base, producing the options of a controlled
// viewer.
func (p Props) Options(base Options) Options {
	open := p.IsOpen
	base.IsOpen = &open
	base.OnClose = p.OnClose
	base.InitialIndex = p.InitialIndex
	base.OnIndexChange = p.OnIndexChange
	base.OnZoomChange = p.OnZoomChange
	base.ZoomStep = p.ZoomStep
	base.MinZoom = p.MinZoom
	base.MaxZoom = p.MaxZoom
	base.Loop = p.Loop
	return base
}

// Apply brings a controlled viewer up to date with p: open state, index
// and loop policy.
func (v *Viewer) Apply(p Props) {
	v.Sync(p.IsOpen)
	v.SetInitialIndex(p.InitialIndex)
	if p.Loop != v.Loop() {
		v.SetLoop(p.Loop)
	}
}
