package imageview

import "github.com/llehouerou/peek/internal/geom"

const (
	defaultCellW = 8
	defaultCellH = 16
)

// Viewport maps the terminal cells of the image area to pixels. The
// engine works in pixels, so mouse cells are converted here before they
// reach it.
type Viewport struct {
	// Origin of the area, 0-based terminal cell coordinates.
	Col, Row int
	// Size of the area in cells.
	Cols, Rows int
	// Cell size in pixels.
	CellW, CellH int
}

// PixelSize returns the canvas size in pixels.
func (v Viewport) PixelSize() (w, h int) {
	return max(v.Cols, 0) * v.CellW, max(v.Rows, 0) * v.CellH
}

// Rect returns the area in terminal pixel coordinates.
func (v Viewport) Rect() geom.Rect {
	w, h := v.PixelSize()
	return geom.Rect{
		Left:   float64(v.Col * v.CellW),
		Top:    float64(v.Row * v.CellH),
		Width:  float64(w),
		Height: float64(h),
	}
}

// Contains reports whether the 0-based cell (col, row) lies in the area.
func (v Viewport) Contains(col, row int) bool {
	return col >= v.Col && col < v.Col+v.Cols && row >= v.Row && row < v.Row+v.Rows
}

// CellCenter returns the pixel position of the centre of cell (col, row).
func (v Viewport) CellCenter(col, row int) geom.Position {
	return geom.Position{
		X: (float64(col) + 0.5) * float64(v.CellW),
		Y: (float64(row) + 0.5) * float64(v.CellH),
	}
}
