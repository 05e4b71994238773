// Package session owns the open/closed state of a viewer.
//
// Ownership is fixed at construction. A Controlled session reflects the
// value its caller supplies and never changes it on its own; an
// Uncontrolled session keeps its own flag.
package session

// Mode names the ownership variant of a session.
type Mode int

const (
	ModeUncontrolled Mode = iota
	ModeControlled
)

func (m Mode) String() string {
	if m == ModeControlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Ownership is the tagged variant holding the open state: *Controlled or
// *Uncontrolled.
type Ownership interface {
	mode() Mode
	open() bool
}

// Controlled holds the last value supplied by the caller through Sync.
type Controlled struct {
	Value bool
}

func (*Controlled) mode() Mode   { return ModeControlled }
func (c *Controlled) open() bool { return c.Value }

// Uncontrolled is the session's own open flag.
type Uncontrolled struct {
	Open bool
}

func (*Uncontrolled) mode() Mode   { return ModeUncontrolled }
func (u *Uncontrolled) open() bool { return u.Open }

// Controller coordinates open/close requests with the reset hooks that must
// run on every close.
type Controller struct {
	own Ownership

	onClose      func()
	onOpenChange []func(open bool)
	resets       []func()
}

// NewControlled creates a session whose open state is owned by the caller.
func NewControlled(isOpen bool) *Controller {
	return &Controller{own: &Controlled{Value: isOpen}}
}

// NewUncontrolled creates a session that manages its own open flag.
func NewUncontrolled(defaultOpen bool) *Controller {
	return &Controller{own: &Uncontrolled{Open: defaultOpen}}
}

// Mode returns the ownership variant chosen at construction.
func (c *Controller) Mode() Mode {
	return c.own.mode()
}

// Ownership exposes the variant for inspection.
func (c *Controller) Ownership() Ownership {
	return c.own
}

// IsOpen returns the displayed open state.
func (c *Controller) IsOpen() bool {
	return c.own.open()
}

// OnClose sets the close callback. In controlled mode it is the only effect
// of a close request; in uncontrolled mode it is informational.
func (c *Controller) OnClose(fn func()) {
	c.onClose = fn
}

// OnOpenChange registers fn to run whenever the displayed state changes.
func (c *Controller) OnOpenChange(fn func(open bool)) {
	c.onOpenChange = append(c.onOpenChange, fn)
}

// OnReset registers fn to run on every close.
func (c *Controller) OnReset(fn func()) {
	c.resets = append(c.resets, fn)
}

// Sync supplies the caller's value to a controlled session. It reports
// whether the displayed state changed. Uncontrolled sessions ignore it.
func (c *Controller) Sync(isOpen bool) bool {
	ctl, ok := c.own.(*Controlled)
	if !ok || ctl.Value == isOpen {
		return false
	}
	ctl.Value = isOpen
	if !isOpen {
		c.reset()
	}
	c.notify(isOpen)
	return true
}

// Open opens an uncontrolled session. It reports whether the state changed;
// a controlled session can only be opened by its caller.
func (c *Controller) Open() bool {
	u, ok := c.own.(*Uncontrolled)
	if !ok || u.Open {
		return false
	}
	u.Open = true
	c.notify(true)
	return true
}

// RequestClose asks for the session to close.
//
// Uncontrolled: the flag is cleared, then OnClose runs.
// Controlled: only OnClose runs; the session stays open until the caller
// syncs false.
//
// Reset hooks run in both modes so a reopened viewer starts unzoomed.
func (c *Controller) RequestClose() {
	changed := false
	if u, ok := c.own.(*Uncontrolled); ok && u.Open {
		u.Open = false
		changed = true
	}
	c.reset()
	if c.onClose != nil {
		c.onClose()
	}
	if changed {
		c.notify(false)
	}
}

func (c *Controller) reset() {
	for _, fn := range c.resets {
		fn()
	}
}

func (c *Controller) notify(open bool) {
	for _, fn := range c.onOpenChange {
		fn(open)
	}
}
