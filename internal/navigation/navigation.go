// Package navigation tracks the current position in an image sequence.
package navigation

import "github.com/llehouerou/peek/internal/geom"

// Controller owns the current index into a sequence of Total images.
// When Total > 0 the index always satisfies 0 <= index < Total; with an
// empty sequence every operation is a no-op and the index stays 0.
type Controller struct {
	index int
	total int
	loop  bool

	onChange func(index int)
}

// New creates a controller positioned at initial (clamped).
func New(total, initial int, loop bool) *Controller {
	c := &Controller{total: max(total, 0), loop: loop}
	c.index = c.clamp(initial)
	return c
}

// OnChange registers fn to be called with the new index whenever the
// index actually changes.
func (c *Controller) OnChange(fn func(index int)) {
	c.onChange = fn
}

// Index returns the current index.
func (c *Controller) Index() int {
	return c.index
}

// Total returns the number of images.
func (c *Controller) Total() int {
	return c.total
}

// Loop reports whether navigation wraps around the ends.
func (c *Controller) Loop() bool {
	return c.loop
}

// SetLoop changes the wrap policy.
func (c *Controller) SetLoop(loop bool) {
	c.loop = loop
}

// CanGoNext reports whether Next would move.
func (c *Controller) CanGoNext() bool {
	if c.total == 0 {
		return false
	}
	return c.loop || c.index < c.total-1
}

// CanGoPrevious reports whether Previous would move.
func (c *Controller) CanGoPrevious() bool {
	if c.total == 0 {
		return false
	}
	return c.loop || c.index > 0
}

// Next advances by one, wrapping to the first image when looping.
func (c *Controller) Next() {
	switch {
	case c.total == 0:
	case c.index < c.total-1:
		c.set(c.index + 1)
	case c.loop:
		c.set(0)
	}
}

// Previous moves back by one, wrapping to the last image when looping.
func (c *Controller) Previous() {
	switch {
	case c.total == 0:
	case c.index > 0:
		c.set(c.index - 1)
	case c.loop:
		c.set(c.total - 1)
	}
}

// SetIndex jumps to i, clamped to the sequence bounds.
func (c *Controller) SetIndex(i int) {
	if c.total == 0 {
		return
	}
	c.set(c.clamp(i))
}

// First jumps to the first image.
func (c *Controller) First() {
	c.SetIndex(0)
}

// Last jumps to the last image.
func (c *Controller) Last() {
	c.SetIndex(c.total - 1)
}

// SetTotal changes the sequence length and re-clamps the index.
func (c *Controller) SetTotal(n int) {
	c.total = max(n, 0)
	if c.total == 0 {
		c.set(0)
		return
	}
	c.set(c.clamp(c.index))
}

func (c *Controller) clamp(i int) int {
	if c.total == 0 {
		return 0
	}
	return geom.ClampInt(i, 0, c.total-1)
}

func (c *Controller) set(i int) {
	if i == c.index {
		return
	}
	c.index = i
	if c.onChange != nil {
		c.onChange(i)
	}
}
