package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/ui/controls"
	"github.com/llehouerou/peek/internal/ui/imageview"
	"github.com/llehouerou/peek/internal/ui/render"
	"github.com/llehouerou/peek/internal/ui/statusbar"
	"github.com/llehouerou/peek/internal/ui/styles"
)

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return m.pendingImage
	}
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	var view string
	if m.Viewer.IsOpen() {
		view = m.renderViewer()
	} else {
		view = m.renderGallery()
	}

	view = m.Popups.RenderOverlay(view)

	// Ensure view is exactly terminal height (pad or truncate if needed)
	view = enforceHeight(view, m.Height)

	// Image data goes out before the text, the placement after it so the
	// image is drawn over the blank area.
	if m.pendingImage != "" {
		view = m.pendingImage + view
	}
	view += m.imagePlacement()

	return view
}

func (m Model) imagePlacement() string {
	if !m.Viewer.IsOpen() || m.Popups.ActivePopup() != PopupNone {
		return ""
	}
	return m.Renderer.Placement(m.imageViewport())
}

func (m Model) renderViewer() string {
	lines := []string{statusbar.Render(m.statusInfo(), m.Width)}

	vp := m.imageViewport()
	if vp.Rows > 0 {
		lines = append(lines, m.renderImageArea(vp.Cols, vp.Rows))
	}
	if m.controlsHeight() > 0 {
		lines = append(lines, controls.Render(m.Viewer.Controls(), m.Viewer.Navigation(), m.Width).View)
	}
	if m.stripHeight() > 0 {
		lines = append(lines, m.Thumbs.View())
	}
	return strings.Join(lines, "\n")
}

// renderImageArea is the text under the image: blank when the image is
// drawn, otherwise a centred note saying why it is not.
func (m Model) renderImageArea(cols, rows int) string {
	var note string
	switch {
	case m.loadErr != nil:
		note = errmsg.Format(errmsg.OpImageLoad, m.loadErr)
	case m.Viewer.Loading():
		note = "Loading…"
	case m.Renderer.Protocol() == nil:
		note = m.Viewer.Announcement()
		if note == "" {
			note = m.entry.Path
		}
	}
	if note == "" {
		return imageview.Blank(cols, rows)
	}

	s := styles.T().S()
	style := s.Muted
	if m.loadErr != nil {
		style = s.Error
	}
	return lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center,
		style.Render(render.Truncate(note, cols)))
}

func (m Model) statusInfo() statusbar.Info {
	info := statusbar.Info{
		Title:   m.title(),
		Counter: m.Viewer.Counter(),
		Zoom:    m.Viewer.Controls().CurrentZoom,
		Loading: m.Viewer.Loading(),
		Loop:    m.Viewer.Loop(),
		Err:     m.ErrorMsg,
	}
	if m.entry.Image != nil {
		info.Width = m.entry.Width()
		info.Height = m.entry.Height()
		info.Format = m.entry.Format
		info.Size = m.entry.Size
	}
	return info
}

func (m Model) title() string {
	if t := m.Viewer.Title(); t != "" {
		return t
	}
	if img, ok := m.Viewer.CurrentImage(); ok {
		return img.Label()
	}
	return "peek"
}

func (m Model) renderGallery() string {
	s := styles.T().S()
	left := styles.BoldGradient("peek", styles.T().Primary, styles.T().Secondary)
	right := s.Muted.Render("enter: open · ?: help · q: quit")
	if m.ErrorMsg != "" {
		right = s.Error.Render(render.Truncate(m.ErrorMsg, m.Width-6))
	}
	return render.Row(left, right, m.Width) + "\n" + m.List.View()
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == targetHeight {
		return view
	}
	if len(lines) < targetHeight {
		for len(lines) < targetHeight {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}
