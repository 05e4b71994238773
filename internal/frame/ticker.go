package frame

// Ticker is a Scheduler driven by an external frame clock: callbacks
// scheduled between two ticks run together on the next Tick.
//
// The queue is bounded by the number of coalescers sharing the ticker, since
// each coalescer keeps at most one flush outstanding.
type Ticker struct {
	queue []func()
}

// NewTicker creates an idle ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Schedule implements Scheduler.
func (t *Ticker) Schedule(fn func()) {
	t.queue = append(t.queue, fn)
}

// Due reports whether callbacks are waiting for a tick.
func (t *Ticker) Due() bool {
	return len(t.queue) > 0
}

// Tick runs every callback scheduled so far. Callbacks scheduled while the
// tick runs wait for the next one.
func (t *Ticker) Tick() {
	queue := t.queue
	t.queue = nil
	for _, fn := range queue {
		fn()
	}
}
