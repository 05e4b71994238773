package zoompan

import (
	"github.com/llehouerou/peek/internal/geom"
)

// GestureKind is the state of the gesture machine.
type GestureKind int

const (
	Idle GestureKind = iota
	Dragging
	Pinching
)

func (k GestureKind) String() string {
	switch k {
	case Dragging:
		return "dragging"
	case Pinching:
		return "pinching"
	default:
		return "idle"
	}
}

// Gesture is the ephemeral state of the active drag or pinch. It lives
// between gesture start and end and is reset to neutral afterwards.
type Gesture struct {
	Kind GestureKind

	// Pinch: captured once at pinch start. Every move recomputes from
	// these values so successive estimates never accumulate drift.
	StartDistance  float64
	StartScale     float64
	StartTransform geom.Transform
	PinchCenter    *geom.Position

	// Last is the reference point for the next drag delta.
	Last *geom.Position

	rect *geom.Rect
}

func neutralGesture() Gesture {
	return Gesture{StartScale: 1}
}

// Gesture returns a copy of the active gesture state.
func (e *Engine) Gesture() Gesture {
	return e.gesture
}

// Active reports whether a drag or pinch is in progress.
func (e *Engine) Active() bool {
	return e.gesture.Kind != Idle
}

// Dragging reports whether a drag is in progress.
func (e *Engine) Dragging() bool {
	return e.gesture.Kind == Dragging
}

// BeginDrag starts a pointer drag at pos. Dragging only takes effect on a
// zoomed image; it reports whether the drag started.
func (e *Engine) BeginDrag(pos geom.Position) bool {
	if e.transform.Scale <= 1 {
		return false
	}
	e.moves.Cancel()
	e.gesture = neutralGesture()
	e.gesture.Kind = Dragging
	e.gesture.Last = &pos
	return true
}

// MoveDrag queues a pointer sample. Samples are coalesced to one update per
// frame; the translation follows the latest sample.
func (e *Engine) MoveDrag(pos geom.Position) {
	if e.gesture.Kind != Dragging {
		return
	}
	e.moves.Push([]geom.Position{pos})
}

// EndDrag applies any sample still waiting for a frame and returns to idle.
func (e *Engine) EndDrag() {
	e.moves.Flush()
	e.gesture = neutralGesture()
}

// TouchStart begins a touch gesture from the touches currently down. Two
// touches start a pinch; one touch starts a drag when the image is zoomed.
// rect is the container, used to anchor the pinch; it may be nil.
func (e *Engine) TouchStart(touches []geom.Position, rect *geom.Rect) {
	switch {
	case len(touches) == 2:
		// the pending sample belongs to the previous gesture
		e.moves.Flush()
		center := geom.Midpoint(touches)
		e.gesture = Gesture{
			Kind:           Pinching,
			StartDistance:  geom.Distance(touches),
			StartScale:     e.transform.Scale,
			StartTransform: e.transform,
			PinchCenter:    &center,
			rect:           copyRect(rect),
		}
	case len(touches) == 1 && e.transform.Scale > 1:
		e.moves.Flush()
		last := touches[0]
		e.gesture = neutralGesture()
		e.gesture.Kind = Dragging
		e.gesture.Last = &last
	}
}

// TouchMove queues a touch snapshot for the next frame.
func (e *Engine) TouchMove(touches []geom.Position) {
	if e.gesture.Kind == Idle || len(touches) == 0 {
		return
	}
	snapshot := make([]geom.Position, len(touches))
	copy(snapshot, touches)
	e.moves.Push(snapshot)
}

// TouchEnd handles a lifted touch given the touches still down. With none
// left the gesture resets; with one left a pinch, or any touch on a zoomed
// image, becomes a drag from that touch.
func (e *Engine) TouchEnd(remaining []geom.Position) {
	switch len(remaining) {
	case 0:
		e.moves.Flush()
		e.gesture = neutralGesture()
	case 1:
		e.moves.Flush()
		if e.gesture.Kind != Pinching && e.transform.Scale <= 1 {
			e.gesture = neutralGesture()
			return
		}
		last := remaining[0]
		e.gesture = neutralGesture()
		e.gesture.Kind = Dragging
		e.gesture.Last = &last
	}
}

// Cancel abandons the active gesture. A move already scheduled for the next
// frame will apply nothing.
func (e *Engine) Cancel() {
	e.moves.Cancel()
	e.gesture = neutralGesture()
}

func (e *Engine) applyMove(touches []geom.Position) {
	g := &e.gesture
	switch {
	case g.Kind == Pinching && len(touches) == 2:
		e.set(e.pinch(touches))
	case g.Kind == Dragging && len(touches) >= 1 && g.Last != nil:
		pos := touches[0]
		delta := pos.Sub(*g.Last)
		t := e.transform
		t.TranslateX += delta.X
		t.TranslateY += delta.Y
		e.set(t)
		g.Last = &pos
	}
}

// pinch computes the transform for the current touch pair from the values
// captured at pinch start: the scale follows the distance ratio, the
// translation is anchored at the start midpoint and follows its drift.
func (e *Engine) pinch(touches []geom.Position) geom.Transform {
	g := e.gesture
	start := g.StartTransform

	scale := e.transform.Scale
	if g.StartDistance > 0 {
		if s := geom.Distance(touches) / g.StartDistance * g.StartScale; geom.Finite(s) {
			scale = e.clamp(s)
		}
	}

	if g.rect == nil || g.PinchCenter == nil {
		t := e.transform
		t.Scale = scale
		return t
	}

	t := anchorZoom(start, scale, g.rect.Offset(*g.PinchCenter))
	drift := geom.Midpoint(touches).Sub(*g.PinchCenter)
	t.TranslateX += drift.X
	t.TranslateY += drift.Y
	return t
}

func copyRect(r *geom.Rect) *geom.Rect {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
