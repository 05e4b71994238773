// Package input routes discrete key presses and overlay clicks to the
// session, navigation and zoom controllers.
package input

import "github.com/llehouerou/peek/internal/keymap"

// Target tags the layer a click landed on.
type Target int

const (
	// TargetBackground is the overlay itself.
	TargetBackground Target = iota
	// TargetContent is anything drawn on top of the overlay: the image,
	// controls, navigation or counter.
	TargetContent
)

// Session is the part of the session controller the router needs.
type Session interface {
	IsOpen() bool
	RequestClose()
}

// Navigator is the part of the navigation controller the router needs.
type Navigator interface {
	Total() int
	Next()
	Previous()
}

// Zoomer is the part of the transform engine the router needs.
type Zoomer interface {
	ZoomIn()
	ZoomOut()
	Reset()
}

// Options gates the optional routes.
type Options struct {
	CloseOnEscape       bool
	CloseOnOverlayClick bool
	KeyboardNavigation  bool
}

// DefaultOptions enables every route.
func DefaultOptions() Options {
	return Options{
		CloseOnEscape:       true,
		CloseOnOverlayClick: true,
		KeyboardNavigation:  true,
	}
}

// Router is the viewer's dispatch table. It does nothing while the session
// is closed.
type Router struct {
	opts    Options
	session Session
	nav     Navigator
	zoom    Zoomer
	keys    *keymap.Resolver
}

// New creates a router over the viewer key bindings.
func New(opts Options, s Session, n Navigator, z Zoomer) *Router {
	return &Router{
		opts:    opts,
		session: s,
		nav:     n,
		zoom:    z,
		keys:    keymap.ForContext(keymap.ContextViewer),
	}
}

// Options returns the router configuration.
func (r *Router) Options() Options {
	return r.opts
}

// Resolve returns the viewer action bound to key, or "" if none.
func (r *Router) Resolve(key string) keymap.Action {
	return r.keys.Resolve(key)
}

// HandleKey dispatches key and reports whether it was consumed.
func (r *Router) HandleKey(key string) bool {
	if !r.session.IsOpen() {
		return false
	}

	switch r.keys.Resolve(key) {
	case keymap.ActionClose:
		if !r.opts.CloseOnEscape {
			return false
		}
		r.session.RequestClose()
	case keymap.ActionPrevious:
		if !r.navigable() {
			return false
		}
		r.nav.Previous()
	case keymap.ActionNext:
		if !r.navigable() {
			return false
		}
		r.nav.Next()
	case keymap.ActionZoomIn:
		r.zoom.ZoomIn()
	case keymap.ActionZoomOut:
		r.zoom.ZoomOut()
	case keymap.ActionResetZoom:
		r.zoom.Reset()
	default:
		return false
	}
	return true
}

// OverlayClick closes the session when the click landed on the background
// layer itself. Clicks on content never close.
func (r *Router) OverlayClick(target Target) bool {
	if !r.session.IsOpen() || !r.opts.CloseOnOverlayClick || target != TargetBackground {
		return false
	}
	r.session.RequestClose()
	return true
}

func (r *Router) navigable() bool {
	return r.opts.KeyboardNavigation && r.nav.Total() > 1
}
