// Package zoompan is the transform engine: it owns the viewport transform
// (scale + translation) and turns wheel, drag, pinch, double-click and
// discrete zoom requests into transform updates.
//
// All translation math uses offsets relative to the container center,
// because the transform origin is the center of the container. The scale is
// clamped to [MinZoom, MaxZoom] after every mutation; the translation is left
// unconstrained (see geom.Constrain for edge clamping).
package zoompan

import (
	"github.com/llehouerou/peek/internal/frame"
	"github.com/llehouerou/peek/internal/geom"
)

const (
	DefaultZoomStep = 0.5
	DefaultMinZoom  = 0.5
	DefaultMaxZoom  = 4.0

	// wheelStepFactor scales ZoomStep for a single wheel notch. Continuous
	// input zooms in half steps, discrete controls in full steps.
	wheelStepFactor = 0.5

	// doubleClickZoom is the target scale of a double click on an unzoomed
	// image, capped by MaxZoom.
	doubleClickZoom = 2.0
)

// Options configures an Engine.
type Options struct {
	ZoomStep float64
	MinZoom  float64
	MaxZoom  float64

	// Scheduler drives coalescing of drag and pinch moves. Nil applies
	// every move immediately.
	Scheduler frame.Scheduler

	// OnZoomChange is called whenever the scale value changes.
	OnZoomChange func(scale float64)
}

// DefaultOptions returns the default zoom configuration.
func DefaultOptions() Options {
	return Options{
		ZoomStep: DefaultZoomStep,
		MinZoom:  DefaultMinZoom,
		MaxZoom:  DefaultMaxZoom,
	}
}

// Engine maintains a single transform and the state of the active gesture.
// It is not safe for concurrent use; all calls are expected to come from the
// goroutine that receives input events.
type Engine struct {
	opts      Options
	transform geom.Transform
	gesture   Gesture
	moves     *frame.Coalescer[[]geom.Position]
}

// New creates an engine at the identity transform.
func New(opts Options) *Engine {
	e := &Engine{
		opts:      opts,
		transform: geom.Identity,
		gesture:   neutralGesture(),
	}
	e.moves = frame.New(opts.Scheduler, e.applyMove)
	return e
}

// Transform returns the current transform.
func (e *Engine) Transform() geom.Transform {
	return e.transform
}

// Scale returns the current scale.
func (e *Engine) Scale() float64 {
	return e.transform.Scale
}

// Options returns the engine configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// CanZoomIn reports whether ZoomIn would change the scale.
func (e *Engine) CanZoomIn() bool {
	return e.transform.Scale < e.opts.MaxZoom
}

// CanZoomOut reports whether ZoomOut would change the scale.
func (e *Engine) CanZoomOut() bool {
	return e.transform.Scale > e.opts.MinZoom
}

// IsReset reports whether the scale is exactly 1.
func (e *Engine) IsReset() bool {
	return e.transform.Scale == 1
}

// ZoomIn adds one zoom step, keeping the translation.
func (e *Engine) ZoomIn() {
	e.setScale(e.transform.Scale + e.opts.ZoomStep)
}

// ZoomOut subtracts one zoom step, keeping the translation.
func (e *Engine) ZoomOut() {
	e.setScale(e.transform.Scale - e.opts.ZoomStep)
}

// Reset returns to scale 1 with no translation, whatever the bounds.
func (e *Engine) Reset() {
	e.store(geom.Identity)
}

// SetZoom sets an absolute scale and recenters the image.
func (e *Engine) SetZoom(scale float64) {
	if !geom.Finite(scale) {
		return
	}
	e.set(geom.Transform{Scale: e.clamp(scale)})
}

// Wheel zooms half a step per notch toward the cursor. A positive deltaY
// (scrolling down) zooms out. With a container rect, the point under the
// cursor stays fixed; without one only the scale changes.
func (e *Engine) Wheel(deltaY float64, cursor geom.Position, rect *geom.Rect) {
	step := e.opts.ZoomStep * wheelStepFactor
	if deltaY > 0 {
		step = -step
	}
	newScale := e.clamp(e.transform.Scale + step)

	if rect == nil {
		e.setScale(newScale)
		return
	}
	e.set(anchorZoom(e.transform, newScale, rect.Offset(cursor)))
}

// DoubleClick toggles between the identity transform and a 2x zoom (capped
// by MaxZoom) anchored at the clicked point.
func (e *Engine) DoubleClick(pos geom.Position, rect *geom.Rect) {
	if e.transform.Scale > 1 {
		e.Reset()
		return
	}

	target := e.clamp(min(doubleClickZoom, e.opts.MaxZoom))
	if rect == nil {
		e.setScale(target)
		return
	}

	offset := rect.Offset(pos)
	e.set(geom.Transform{
		Scale:      target,
		TranslateX: -offset.X * (target - 1),
		TranslateY: -offset.Y * (target - 1),
	})
}

// anchorZoom rescales t to newScale so that the point at offset (relative
// to the container center) keeps its screen position:
//
//	t' = t*d - offset*(d-1), with d = newScale/oldScale
func anchorZoom(t geom.Transform, newScale float64, offset geom.Position) geom.Transform {
	d := scaleRatio(newScale, t.Scale)
	return geom.Transform{
		Scale:      newScale,
		TranslateX: t.TranslateX*d - offset.X*(d-1),
		TranslateY: t.TranslateY*d - offset.Y*(d-1),
	}
}

// scaleRatio returns newScale/oldScale, or 1 when the ratio is undefined.
func scaleRatio(newScale, oldScale float64) float64 {
	if oldScale == 0 {
		return 1
	}
	d := newScale / oldScale
	if !geom.Finite(d) {
		return 1
	}
	return d
}

func (e *Engine) clamp(scale float64) float64 {
	return geom.Clamp(scale, e.opts.MinZoom, e.opts.MaxZoom)
}

func (e *Engine) setScale(scale float64) {
	t := e.transform
	t.Scale = scale
	e.set(t)
}

// set clamps the scale of t and stores it.
func (e *Engine) set(t geom.Transform) {
	t.Scale = e.clamp(t.Scale)
	e.store(t)
}

// store replaces the transform. Non-finite values are dropped so a bad
// input can never poison later updates.
func (e *Engine) store(t geom.Transform) {
	if !geom.Finite(t.Scale) || !geom.Finite(t.TranslateX) || !geom.Finite(t.TranslateY) {
		return
	}
	prev := e.transform.Scale
	e.transform = t
	if prev != t.Scale && e.opts.OnZoomChange != nil {
		e.opts.OnZoomChange(t.Scale)
	}
}
