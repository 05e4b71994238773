package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/input"
	"github.com/llehouerou/peek/internal/keymap"
	"github.com/llehouerou/peek/internal/ui"
	"github.com/llehouerou/peek/internal/ui/controls"
	"github.com/llehouerou/peek/internal/viewer"
)

// handleMouse maps terminal mouse events onto the viewer. Cell
// coordinates become pixel positions at the cell centre.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.Popups.ActivePopup() != PopupNone {
		// a drag begun before the popup opened still has to end
		if msg.Action == tea.MouseActionRelease {
			m.Viewer.PointerUp(m.imageViewport().CellCenter(msg.X, msg.Y))
		}
		return
	}
	if !m.Viewer.IsOpen() {
		m.handleListMouse(msg)
		return
	}

	vp := m.imageViewport()
	pos := vp.CellCenter(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			if vp.Contains(msg.X, msg.Y) {
				delta := 1.0
				if msg.Button == tea.MouseButtonWheelUp {
					delta = -1
				}
				m.Viewer.Wheel(delta, pos)
			}
		case tea.MouseButtonLeft:
			m.handlePress(msg.X, msg.Y)
		default:
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.Viewer.PointerMove(pos)
		}
	case tea.MouseActionRelease:
		m.Viewer.PointerUp(pos)
	}
}

// handlePress dispatches a left press by the screen area it lands in.
func (m *Model) handlePress(col, row int) {
	vp := m.imageViewport()

	switch {
	case vp.Contains(col, row):
		now := m.now()
		pos := vp.CellCenter(col, row)
		if m.lastClick.isDouble(col, row, now) {
			m.lastClick = click{}
			m.Viewer.DoubleClick(pos)
			return
		}
		m.lastClick = click{col: col, row: row, at: now}
		if box, ok := m.imageBox(); ok && box.Contains(pos) {
			m.Viewer.PointerDown(pos, viewer.ButtonLeft)
			return
		}
		m.Viewer.OverlayClick(input.TargetBackground)

	case m.controlsHeight() > 0 && row == m.controlsRow():
		bar := controls.Render(m.Viewer.Controls(), m.Viewer.Navigation(), m.Width)
		if a, ok := bar.HitTest(col); ok {
			m.runControl(a)
		}

	case m.stripHeight() > 0 && row >= m.stripRow():
		if i, ok := m.Thumbs.HitTest(col, row-m.stripRow()); ok {
			m.Handle.SetIndex(i)
		}
	}
}

func (m *Model) runControl(a keymap.Action) {
	switch a {
	case keymap.ActionZoomIn:
		m.Viewer.ZoomIn()
	case keymap.ActionZoomOut:
		m.Viewer.ZoomOut()
	case keymap.ActionResetZoom:
		m.Viewer.ResetZoom()
	case keymap.ActionPrevious:
		m.Viewer.Previous()
	case keymap.ActionNext:
		m.Viewer.Next()
	case keymap.ActionClose:
		m.Viewer.Close()
	}
}

// handleListMouse selects with a click and opens with a double click.
func (m *Model) handleListMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.List.Move(-1)
	case tea.MouseButtonWheelDown:
		m.List.Move(1)
	case tea.MouseButtonLeft:
		i, ok := m.List.HitTest(msg.Y - ui.StatusHeight)
		if !ok {
			return
		}
		now := m.now()
		if m.lastClick.isDouble(msg.X, msg.Y, now) && i == m.List.Selected() {
			m.lastClick = click{}
			m.Handle.OpenAt(i)
			return
		}
		m.lastClick = click{col: msg.X, row: msg.Y, at: now}
		m.List.Move(i - m.List.Selected())
	default:
	}
}
