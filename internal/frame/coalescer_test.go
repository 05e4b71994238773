package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_LastSampleWins(t *testing.T) {
	ticker := NewTicker()
	var applied []int
	c := New(ticker, func(v int) { applied = append(applied, v) })

	c.Push(1)
	c.Push(2)
	c.Push(3)

	assert.Empty(t, applied, "nothing applies before the frame")
	assert.True(t, c.Pending())

	ticker.Tick()

	assert.Equal(t, []int{3}, applied)
	assert.False(t, c.Pending())
}

func TestCoalescer_SchedulesOncePerFrame(t *testing.T) {
	scheduled := 0
	var queued []func()
	sched := SchedulerFunc(func(fn func()) {
		scheduled++
		queued = append(queued, fn)
	})
	c := New(sched, func(int) {})

	for i := range 100 {
		c.Push(i)
	}
	assert.Equal(t, 1, scheduled, "a burst must keep a single flush in flight")

	for _, fn := range queued {
		fn()
	}
	c.Push(7)
	assert.Equal(t, 2, scheduled, "a new frame is requested after the flush")
}

func TestCoalescer_CancelMakesScheduledFlushNoop(t *testing.T) {
	ticker := NewTicker()
	applied := 0
	c := New(ticker, func(int) { applied++ })

	c.Push(1)
	c.Cancel()
	ticker.Tick()

	assert.Zero(t, applied)
	assert.False(t, c.Pending())
}

func TestCoalescer_PushAfterCancelReschedules(t *testing.T) {
	ticker := NewTicker()
	var applied []int
	c := New(ticker, func(v int) { applied = append(applied, v) })

	c.Push(1)
	c.Cancel()
	c.Push(2)
	ticker.Tick()

	// the stale callback is dropped, the fresh one applies
	assert.Equal(t, []int{2}, applied)
}

func TestCoalescer_Flush(t *testing.T) {
	ticker := NewTicker()
	var applied []int
	c := New(ticker, func(v int) { applied = append(applied, v) })

	c.Flush()
	assert.Empty(t, applied, "flush without a sample is a no-op")

	c.Push(5)
	c.Flush()
	require.Equal(t, []int{5}, applied)

	ticker.Tick()
	assert.Equal(t, []int{5}, applied, "the scheduled flush finds nothing left")
}

func TestCoalescer_NilSchedulerIsImmediate(t *testing.T) {
	var applied []int
	c := New(nil, func(v int) { applied = append(applied, v) })

	c.Push(1)
	c.Push(2)

	assert.Equal(t, []int{1, 2}, applied)
	assert.False(t, c.Pending())
}

func TestTicker(t *testing.T) {
	ticker := NewTicker()
	assert.False(t, ticker.Due())

	calls := 0
	ticker.Schedule(func() {
		calls++
		// scheduled during a tick: runs on the next one
		ticker.Schedule(func() { calls += 10 })
	})
	require.True(t, ticker.Due())

	ticker.Tick()
	assert.Equal(t, 1, calls)
	assert.True(t, ticker.Due())

	ticker.Tick()
	assert.Equal(t, 11, calls)
	assert.False(t, ticker.Due())
}
