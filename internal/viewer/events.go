package viewer

import (
	"log/slog"

	"github.com/llehouerou/peek/internal/geom"
	"github.com/llehouerou/peek/internal/input"
	"github.com/llehouerou/peek/internal/listener"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// HandleKey delivers a key press. It reports whether the key was consumed.
// Keys only reach the viewer while it is open.
func (v *Viewer) HandleKey(key string) bool {
	return v.bus.Dispatch(listener.Event{Kind: listener.KeyDown, Key: key})
}

// OverlayClick delivers a click on the overlay. Only a click whose target
// is the background layer itself closes the viewer.
func (v *Viewer) OverlayClick(target input.Target) bool {
	return v.router.OverlayClick(target)
}

// Wheel delivers a wheel notch at cursor.
func (v *Viewer) Wheel(deltaY float64, cursor geom.Position) bool {
	if !v.IsOpen() {
		return false
	}
	v.engine.Wheel(deltaY, cursor, v.container)
	return true
}

// DoubleClick delivers a double click on the image.
func (v *Viewer) DoubleClick(pos geom.Position) bool {
	if !v.IsOpen() {
		return false
	}
	v.engine.DoubleClick(pos, v.container)
	return true
}

// PointerDown delivers a button press on the image. A left press on a
// zoomed image starts a drag and installs the move and release listeners.
func (v *Viewer) PointerDown(pos geom.Position, button Button) bool {
	if !v.IsOpen() || button != ButtonLeft {
		return false
	}
	if !v.engine.BeginDrag(pos) {
		return false
	}
	v.removeGestureListeners()
	v.unsubGesture = []func(){
		v.bus.Subscribe(listener.PointerMove, func(ev listener.Event) bool {
			v.engine.MoveDrag(ev.Position)
			return true
		}),
		v.bus.Subscribe(listener.PointerUp, func(listener.Event) bool {
			v.engine.EndDrag()
			v.removeGestureListeners()
			return true
		}),
	}
	v.log.Debug("gesture listeners installed", slog.String("gesture", "drag"))
	return true
}

// PointerMove delivers pointer motion. It only has an effect during a drag.
func (v *Viewer) PointerMove(pos geom.Position) bool {
	return v.bus.Dispatch(listener.Event{Kind: listener.PointerMove, Position: pos})
}

// PointerUp delivers a button release. It ends an active drag.
func (v *Viewer) PointerUp(pos geom.Position) bool {
	return v.bus.Dispatch(listener.Event{Kind: listener.PointerUp, Position: pos})
}

// TouchStart delivers the touches down after a new touch landed on the
// image.
func (v *Viewer) TouchStart(touches []geom.Position) bool {
	if !v.IsOpen() {
		return false
	}
	v.engine.TouchStart(touches, v.container)
	if v.touchListening {
		return true
	}
	v.removeGestureListeners()
	v.touchListening = true
	v.unsubGesture = []func(){
		v.bus.Subscribe(listener.TouchMove, func(ev listener.Event) bool {
			v.engine.TouchMove(ev.Touches)
			return true
		}),
		v.bus.Subscribe(listener.TouchEnd, func(ev listener.Event) bool {
			v.engine.TouchEnd(ev.Touches)
			if len(ev.Touches) == 0 {
				v.removeGestureListeners()
			}
			return true
		}),
	}
	v.log.Debug("gesture listeners installed", slog.String("gesture", "touch"))
	return true
}

// TouchMove delivers the current touches.
func (v *Viewer) TouchMove(touches []geom.Position) bool {
	return v.bus.Dispatch(listener.Event{Kind: listener.TouchMove, Touches: touches})
}

// TouchEnd delivers the touches still down after one was lifted.
func (v *Viewer) TouchEnd(remaining []geom.Position) bool {
	return v.bus.Dispatch(listener.Event{Kind: listener.TouchEnd, Touches: remaining})
}

func (v *Viewer) installKeys() {
	if v.unsubKey != nil {
		return
	}
	v.unsubKey = v.bus.Subscribe(listener.KeyDown, func(ev listener.Event) bool {
		return v.router.HandleKey(ev.Key)
	})
	v.log.Debug("key listener installed")
}

func (v *Viewer) removeKeys() {
	if v.unsubKey == nil {
		return
	}
	v.unsubKey()
	v.unsubKey = nil
	v.log.Debug("key listener removed")
}

// abortGesture drops the active gesture, including a move still waiting
// for its frame, and removes the gesture listeners.
func (v *Viewer) abortGesture() {
	v.engine.Cancel()
	v.removeGestureListeners()
}

func (v *Viewer) removeGestureListeners() {
	if v.unsubGesture == nil {
		return
	}
	for _, unsub := range v.unsubGesture {
		unsub()
	}
	v.unsubGesture = nil
	v.touchListening = false
	v.log.Debug("gesture listeners removed")
}
