package app

import (
	"github.com/llehouerou/peek/internal/geom"
	"github.com/llehouerou/peek/internal/ui"
	"github.com/llehouerou/peek/internal/ui/imageview"
	"github.com/llehouerou/peek/internal/ui/thumbstrip"
)

// The open viewer stacks, top to bottom: status line, image, control bar,
// thumbnail strip.

func (m Model) controlsHeight() int {
	if m.Viewer.Controls().Visible || m.Viewer.Navigation().Visible {
		return ui.ControlsHeight
	}
	return 0
}

// stripHeight is 0 when the strip is off, there is nothing to strip, or
// the image would get too small.
func (m Model) stripHeight() int {
	if !m.showThumbs || !m.Viewer.IsGallery() {
		return 0
	}
	if m.Height-ui.StatusHeight-m.controlsHeight()-thumbstrip.Height < ui.MinImageRows {
		return 0
	}
	return thumbstrip.Height
}

// imageViewport is the screen area the image is drawn in.
func (m Model) imageViewport() imageview.Viewport {
	rows := m.Height - ui.StatusHeight - m.controlsHeight() - m.stripHeight()
	return imageview.Viewport{
		Col:   0,
		Row:   ui.StatusHeight,
		Cols:  max(m.Width, 0),
		Rows:  max(rows, 0),
		CellW: m.cellW,
		CellH: m.cellH,
	}
}

func (m Model) controlsRow() int {
	vp := m.imageViewport()
	return vp.Row + vp.Rows
}

func (m Model) stripRow() int {
	return m.controlsRow() + m.controlsHeight()
}

// imageBox returns where the current image is drawn, in terminal pixels.
func (m Model) imageBox() (geom.Rect, bool) {
	if m.entry.Image == nil {
		return geom.Rect{}, false
	}
	vp := m.imageViewport()
	w, h := vp.PixelSize()
	fit := geom.Fit(
		geom.Size{Width: float64(m.entry.Width()), Height: float64(m.entry.Height())},
		geom.Size{Width: float64(w), Height: float64(h)},
	)
	t := m.Viewer.State().Transform
	dw, dh := fit.Width*t.Scale, fit.Height*t.Scale
	c := vp.Rect().Center()
	return geom.Rect{
		Left:   c.X + t.TranslateX - dw/2,
		Top:    c.Y + t.TranslateY - dh/2,
		Width:  dw,
		Height: dh,
	}, true
}

// resize propagates the terminal size to the components.
func (m *Model) resize() {
	m.Popups.SetSize(m.Width, m.Height)
	m.Thumbs.SetSize(m.Width, thumbstrip.Height)
	m.List.SetSize(m.Width, m.Height-ui.StatusHeight)
	m.Viewer.SetContainer(m.imageViewport().Rect())
}

// ImageViewport is the area images are drawn in at the current terminal
// size.
func (m Model) ImageViewport() imageview.Viewport {
	return m.imageViewport()
}
