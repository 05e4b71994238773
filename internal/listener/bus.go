// Package listener implements the subscribe-on-activation /
// unsubscribe-on-deactivation contract for global input listeners.
//
// Handlers only receive events while subscribed. The viewer subscribes its
// key handler when a session opens and its move/up handlers when a gesture
// starts, and removes them at the matching close or gesture end. Live
// counts are exposed so the symmetry can be checked.
package listener

import (
	"github.com/llehouerou/peek/internal/geom"
)

// Kind identifies a class of global input event.
type Kind string

const (
	KeyDown     Kind = "keydown"
	PointerMove Kind = "pointermove"
	PointerUp   Kind = "pointerup"
	TouchMove   Kind = "touchmove"
	TouchEnd    Kind = "touchend"
)

// Event is a global input event.
type Event struct {
	Kind     Kind
	Key      string          // KeyDown
	Position geom.Position   // PointerMove, PointerUp
	Touches  []geom.Position // TouchMove, TouchEnd: touches still down
}

// Handler receives events of the kind it subscribed to. It returns true if
// the event was consumed.
type Handler func(Event) bool

type entry struct {
	id      uint64
	handler Handler
}

// Bus dispatches global events to the handlers currently subscribed.
type Bus struct {
	handlers map[Kind][]entry
	nextID   uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]entry)}
}

// Subscribe registers h for events of kind k and returns the function that
// removes it. Calling the returned function more than once is harmless.
func (b *Bus) Subscribe(k Kind, h Handler) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.handlers[k] = append(b.handlers[k], entry{id: id, handler: h})

	done := false
	return func() {
		if done {
			return
		}
		done = true
		b.remove(k, id)
	}
}

func (b *Bus) remove(k Kind, id uint64) {
	entries := b.handlers[k]
	for i, e := range entries {
		if e.id == id {
			b.handlers[k] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(b.handlers[k]) == 0 {
		delete(b.handlers, k)
	}
}

// Dispatch delivers ev to every handler subscribed to its kind, in
// subscription order, and reports whether any handler consumed it.
// Handlers may unsubscribe themselves (or others) while being dispatched.
func (b *Bus) Dispatch(ev Event) bool {
	entries := b.handlers[ev.Kind]
	if len(entries) == 0 {
		return false
	}
	snapshot := make([]entry, len(entries))
	copy(snapshot, entries)

	consumed := false
	for _, e := range snapshot {
		if !b.live(ev.Kind, e.id) {
			continue
		}
		if e.handler(ev) {
			consumed = true
		}
	}
	return consumed
}

func (b *Bus) live(k Kind, id uint64) bool {
	for _, e := range b.handlers[k] {
		if e.id == id {
			return true
		}
	}
	return false
}

// Active returns the number of handlers subscribed to k.
func (b *Bus) Active(k Kind) int {
	return len(b.handlers[k])
}

// Len returns the total number of live subscriptions.
func (b *Bus) Len() int {
	n := 0
	for _, entries := range b.handlers {
		n += len(entries)
	}
	return n
}
