package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 2, 1, 3, 2},
		{"below", 0, 1, 3, 1},
		{"above", 5, 1, 3, 3},
		{"at lower bound", 1, 1, 3, 1},
		{"at upper bound", 3, 1, 3, 3},
		{"inverted range yields hi", 2, 4, 0.5, 0.5},
		{"negative range", -10, -5, -1, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Clamp(tt.v, tt.lo, tt.hi), 1e-12)
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-1, 0, 2))
	assert.Equal(t, 2, ClampInt(10, 0, 2))
	assert.Equal(t, 1, ClampInt(1, 0, 2))
	// empty range [0, -1] collapses to the upper bound
	assert.Equal(t, -1, ClampInt(0, 0, -1))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance([]Position{{0, 0}, {3, 4}}), 1e-12)
	assert.InDelta(t, 0.0, Distance([]Position{{1, 1}}), 1e-12)
	assert.InDelta(t, 0.0, Distance(nil), 1e-12)
	// only the first two points count
	assert.InDelta(t, 10.0, Distance([]Position{{0, 0}, {0, 10}, {100, 100}}), 1e-12)
}

func TestMidpoint(t *testing.T) {
	assert.Equal(t, Position{X: 50, Y: 50}, Midpoint([]Position{{0, 0}, {100, 100}}))
	assert.Equal(t, Position{X: 7, Y: 9}, Midpoint([]Position{{7, 9}}))
	assert.Equal(t, Position{}, Midpoint(nil))
}

func TestRect_Offset(t *testing.T) {
	r := Rect{Left: 100, Top: 50, Width: 200, Height: 100}

	assert.Equal(t, Position{X: 200, Y: 100}, r.Center())
	assert.Equal(t, Position{}, r.Offset(Position{X: 200, Y: 100}))
	assert.Equal(t, Position{X: -100, Y: -50}, r.Offset(Position{X: 100, Y: 50}))
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Width: 10, Height: 10}

	assert.True(t, r.Contains(Position{X: 0, Y: 0}))
	assert.True(t, r.Contains(Position{X: 9.9, Y: 9.9}))
	assert.False(t, r.Contains(Position{X: 10, Y: 5}))
	assert.False(t, r.Contains(Position{X: -1, Y: 5}))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(1))
	assert.False(t, Finite(math.NaN()))
	assert.False(t, Finite(math.Inf(1)))
	assert.False(t, Finite(math.Inf(-1)))
}

func TestConstrain(t *testing.T) {
	container := Size{Width: 800, Height: 600}
	image := Size{Width: 400, Height: 300}

	t.Run("image smaller than container is centered", func(t *testing.T) {
		got := Constrain(Transform{Scale: 1, TranslateX: 120, TranslateY: -80}, container, image)
		assert.Equal(t, Transform{Scale: 1}, got)
	})

	t.Run("zoomed image is limited to its overflow", func(t *testing.T) {
		// 400*3 = 1200 wide -> max translate (1200-800)/2 = 200
		// 300*3 = 900 tall  -> max translate (900-600)/2 = 150
		got := Constrain(Transform{Scale: 3, TranslateX: 500, TranslateY: -500}, container, image)
		assert.InDelta(t, 200.0, got.TranslateX, 1e-9)
		assert.InDelta(t, -150.0, got.TranslateY, 1e-9)
		assert.InDelta(t, 3.0, got.Scale, 1e-9)
	})

	t.Run("translation within bounds is kept", func(t *testing.T) {
		got := Constrain(Transform{Scale: 3, TranslateX: 50, TranslateY: 20}, container, image)
		assert.InDelta(t, 50.0, got.TranslateX, 1e-9)
		assert.InDelta(t, 20.0, got.TranslateY, 1e-9)
	})
}

func TestFit(t *testing.T) {
	tests := []struct {
		name      string
		image     Size
		container Size
		want      Size
	}{
		{"wide image", Size{400, 100}, Size{200, 200}, Size{200, 50}},
		{"tall image", Size{100, 400}, Size{200, 200}, Size{50, 200}},
		{"upscales small image", Size{10, 10}, Size{100, 50}, Size{50, 50}},
		{"empty image", Size{0, 10}, Size{100, 100}, Size{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.image, tt.container)
			assert.InDelta(t, tt.want.Width, got.Width, 1e-9)
			assert.InDelta(t, tt.want.Height, got.Height, 1e-9)
		})
	}
}
