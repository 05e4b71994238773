package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/peek/internal/session"
)

func newHandle(total int) *Handle {
	opts := DefaultHandleOptions()
	opts.TotalImages = total
	return NewHandle(opts)
}

func TestHandle_OpenAt(t *testing.T) {
	var opens []bool
	var indexes []int
	opts := DefaultHandleOptions()
	opts.TotalImages = 5
	opts.OnOpenChange = func(open bool) { opens = append(opens, open) }
	opts.OnIndexChange = func(i int) { indexes = append(indexes, i) }
	h := NewHandle(opts)

	h.OpenAt(2)

	assert.True(t, h.IsOpen())
	assert.Equal(t, 2, h.Index())
	assert.Equal(t, []bool{true}, opens)
	assert.Equal(t, []int{2}, indexes)

	h.OpenAt(42)
	assert.Equal(t, 4, h.Index(), "index is clamped")
	assert.Equal(t, []int{2, 4}, indexes)
	assert.Equal(t, []bool{true}, opens, "already open")
}

func TestHandle_CloseAndToggle(t *testing.T) {
	h := newHandle(3)
	h.Toggle()
	assert.True(t, h.IsOpen())

	h.ZoomIn()
	require.InDelta(t, 1.5, h.Zoom(), 1e-9)

	h.Toggle()
	assert.False(t, h.IsOpen())
	assert.Equal(t, 1.0, h.Zoom(), "closing resets the tracked zoom")
}

func TestHandle_IndexChangeResetsZoom(t *testing.T) {
	h := newHandle(3)
	h.SetZoom(3)

	h.Next()
	assert.Equal(t, 1, h.Index())
	assert.Equal(t, 1.0, h.Zoom())

	h.SetZoom(2)
	h.SetIndex(1)
	assert.Equal(t, 2.0, h.Zoom(), "no change, no reset")
}

func TestHandle_NavigationBounds(t *testing.T) {
	h := newHandle(3)
	h.Previous()
	assert.Equal(t, 0, h.Index())

	h.SetIndex(2)
	h.Next()
	assert.Equal(t, 2, h.Index())

	opts := DefaultHandleOptions()
	opts.TotalImages = 3
	opts.Loop = true
	looping := NewHandle(opts)
	looping.Previous()
	assert.Equal(t, 2, looping.Index())
	looping.Next()
	assert.Equal(t, 0, looping.Index())
}

func TestHandle_ZeroTotalMeansOne(t *testing.T) {
	h := newHandle(0)
	h.OpenAt(5)
	assert.Equal(t, 0, h.Index())

	h.SetTotal(4)
	h.SetIndex(3)
	assert.Equal(t, 3, h.Index())

	h.SetTotal(-2)
	assert.Equal(t, 0, h.Index())
}

func TestHandle_Zoom(t *testing.T) {
	h := newHandle(1)
	for range 10 {
		h.ZoomIn()
	}
	assert.Equal(t, 4.0, h.Zoom())
	for range 10 {
		h.ZoomOut()
	}
	assert.Equal(t, 0.5, h.Zoom())

	h.SetZoom(100)
	assert.Equal(t, 4.0, h.Zoom())
	h.ResetZoom()
	assert.Equal(t, 1.0, h.Zoom())
}

func TestHandle_DrivesControlledViewer(t *testing.T) {
	h := newHandle(4)
	v := New(images(4), h.Props().Options(DefaultOptions()))
	require.Equal(t, session.ModeControlled, v.Mode())
	assert.False(t, v.IsOpen())

	h.OpenAt(2)
	v.Apply(h.Props())
	assert.True(t, v.IsOpen())
	assert.Equal(t, 2, v.Index())
	assert.Equal(t, 1, v.Listeners().Len(), "key listener installed on open")

	// navigating inside the viewer reports back to the handle
	v.HandleKey("right")
	assert.Equal(t, 3, h.Index())

	// zooming inside the viewer is tracked by the handle
	v.HandleKey("+")
	assert.InDelta(t, 1.5, h.Zoom(), 1e-9)

	// escape asks the handle to close; the viewer follows once applied
	v.HandleKey("esc")
	assert.False(t, h.IsOpen())
	assert.True(t, v.IsOpen())
	v.Apply(h.Props())
	assert.False(t, v.IsOpen())
	assert.Zero(t, v.Listeners().Len())
}

func TestHandle_LoopPropagates(t *testing.T) {
	opts := DefaultHandleOptions()
	opts.TotalImages = 2
	opts.Loop = true
	h := NewHandle(opts)
	v := New(images(2), h.Props().Options(DefaultOptions()))
	assert.True(t, v.Loop())

	base := h.Props()
	base.Loop = false
	v.Apply(base)
	assert.False(t, v.Loop())

	h.SetLoop(false)
	assert.False(t, h.Loop())
	h.SetIndex(0)
	h.Previous()
	assert.Equal(t, 0, h.Index(), "no wrap once looping is off")
	v.Apply(h.Props())
	assert.False(t, v.Loop())
}
