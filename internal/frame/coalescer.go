// Package frame coalesces high-frequency input into at most one update per
// display frame.
//
// A Coalescer holds a single pending sample. Pushing replaces the sample and
// asks the Scheduler for a flush only when none is outstanding, so the
// buffer never grows past one entry no matter how fast input arrives.
package frame

// Scheduler arranges for fn to run once, on the next frame.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Schedule implements Scheduler.
func (f SchedulerFunc) Schedule(fn func()) { f(fn) }

// Immediate runs scheduled callbacks synchronously. Coalescing degrades to
// applying every sample, which is what tests and headless callers want.
var Immediate Scheduler = SchedulerFunc(func(fn func()) { fn() })

// Coalescer buffers the latest sample of type T and applies it once per
// scheduled frame.
type Coalescer[T any] struct {
	sched Scheduler
	apply func(T)

	pending    T
	hasPending bool
	scheduled  bool

	// gen invalidates flushes scheduled before the last Cancel.
	gen uint64
}

// New creates a coalescer that hands the latest sample to apply on each
// frame. A nil scheduler means Immediate.
func New[T any](sched Scheduler, apply func(T)) *Coalescer[T] {
	if sched == nil {
		sched = Immediate
	}
	return &Coalescer[T]{sched: sched, apply: apply}
}

// Push records v as the latest sample, replacing any sample still pending
// in this frame.
func (c *Coalescer[T]) Push(v T) {
	c.pending = v
	c.hasPending = true
	if c.scheduled {
		return
	}
	c.scheduled = true
	gen := c.gen
	c.sched.Schedule(func() { c.fire(gen) })
}

// Flush applies the pending sample now, if there is one. A flush that was
// already scheduled becomes a no-op for this sample.
func (c *Coalescer[T]) Flush() {
	if !c.hasPending {
		return
	}
	v := c.take()
	c.apply(v)
}

// Cancel drops the pending sample. A flush scheduled before Cancel will not
// apply anything when it fires.
func (c *Coalescer[T]) Cancel() {
	c.gen++
	c.scheduled = false
	c.take()
}

// Pending reports whether a sample is waiting for the next frame.
func (c *Coalescer[T]) Pending() bool {
	return c.hasPending
}

func (c *Coalescer[T]) fire(gen uint64) {
	if gen != c.gen {
		return
	}
	c.scheduled = false
	if !c.hasPending {
		return
	}
	v := c.take()
	c.apply(v)
}

func (c *Coalescer[T]) take() T {
	v := c.pending
	var zero T
	c.pending = zero
	c.hasPending = false
	return v
}
