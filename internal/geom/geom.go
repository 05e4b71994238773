// Package geom provides the small numeric helpers shared by the viewer
// engine: clamping, two-point distance and midpoint, and rectangle math.
package geom

import "math"

// Position is a point in screen coordinates.
type Position struct {
	X float64
	Y float64
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned rectangle in screen coordinates, as returned by a
// container's bounding box.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Position {
	return Position{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Offset returns p relative to the center of r. Anchor math works in this
// center-relative space because the transform origin is the container center.
func (r Rect) Offset(p Position) Position {
	return p.Sub(r.Center())
}

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rect) Contains(p Position) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width &&
		p.Y >= r.Top && p.Y < r.Top+r.Height
}

// Clamp limits v to [lo, hi]. When lo > hi the result is hi, matching
// min(max(v, lo), hi).
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// ClampInt limits v to [lo, hi] with the same semantics as Clamp.
func ClampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Distance returns the distance between the first two points.
// Fewer than two points yield 0.
func Distance(points []Position) float64 {
	if len(points) < 2 {
		return 0
	}
	d := points[0].Sub(points[1])
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// Midpoint returns the midpoint of the first two points. With a single point
// it returns that point, and with none the origin.
func Midpoint(points []Position) Position {
	switch len(points) {
	case 0:
		return Position{}
	case 1:
		return points[0]
	}
	return Position{
		X: (points[0].X + points[1].X) / 2,
		Y: (points[0].Y + points[1].Y) / 2,
	}
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
