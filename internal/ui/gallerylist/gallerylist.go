// Package gallerylist shows the gallery as a scrollable list while the
// viewer is closed.
package gallerylist

import (
	"fmt"
	"strings"

	"github.com/llehouerou/peek/internal/gallery"
	"github.com/llehouerou/peek/internal/ui"
	"github.com/llehouerou/peek/internal/ui/cursor"
	"github.com/llehouerou/peek/internal/ui/render"
	"github.com/llehouerou/peek/internal/ui/styles"
)

// Model is the gallery list.
type Model struct {
	ui.Base
	images  []gallery.Image
	cursor  cursor.Cursor
	current int
}

// New creates an empty list.
func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin), current: -1}
}

// SetImages replaces the listed images, keeping the cursor in bounds.
func (m *Model) SetImages(images []gallery.Image) {
	m.images = images
	m.cursor.ClampToBounds(len(images))
	m.cursor.EnsureVisible(len(images), m.ListHeight(ui.PanelOverhead))
}

// SetCurrent marks image i as the one last shown and moves the cursor to
// it.
func (m *Model) SetCurrent(i int) {
	m.current = i
	m.cursor.Jump(i, len(m.images), m.ListHeight(ui.PanelOverhead))
}

// Selected returns the index under the cursor.
func (m Model) Selected() int {
	return m.cursor.Pos()
}

// Move moves the cursor by delta rows.
func (m *Model) Move(delta int) {
	m.cursor.Move(delta, len(m.images), m.ListHeight(ui.PanelOverhead))
}

// First moves the cursor to the top.
func (m *Model) First() {
	m.cursor.JumpStart()
}

// Last moves the cursor to the bottom.
func (m *Model) Last() {
	m.cursor.JumpEnd(len(m.images), m.ListHeight(ui.PanelOverhead))
}

// HandleKey handles paging keys. It reports whether the key was used.
func (m *Model) HandleKey(key string) bool {
	return m.cursor.HandleKey(key, len(m.images), m.ListHeight(ui.PanelOverhead))
}

// HitTest maps a click on screen row to an image index.
func (m Model) HitTest(row int) (int, bool) {
	// border + header + separator sit above the first item
	i := row - 1 - ui.HeaderHeight
	if i < 0 || i >= m.ListHeight(ui.PanelOverhead) {
		return 0, false
	}
	start, end := m.cursor.VisibleRange(len(m.images), m.ListHeight(ui.PanelOverhead))
	if start+i >= end {
		return 0, false
	}
	return start + i, true
}

// View renders the list in a panel filling the component size.
func (m Model) View() string {
	width := m.Width() - ui.BorderHeight
	height := m.ListHeight(ui.PanelOverhead)
	if width <= 0 || height <= 0 {
		return ""
	}

	t := styles.T()
	s := t.S()

	header := render.Row(
		s.Title.Render("Gallery"),
		s.Muted.Render(fmt.Sprintf("%d images", len(m.images))),
		width,
	)
	lines := []string{header, s.Subtle.Render(render.Separator(width))}

	numWidth := len(fmt.Sprint(len(m.images)))
	start, end := m.cursor.VisibleRange(len(m.images), height)
	for i := start; i < end; i++ {
		num := fmt.Sprintf("%*d  ", numWidth, i+1)
		label := render.TruncateAndPad(num+m.images[i].Label(), width)
		switch {
		case i == m.cursor.Pos():
			lines = append(lines, s.Cursor.Render(label))
		case i == m.current:
			lines = append(lines, s.Current.Render(label))
		default:
			lines = append(lines, s.Base.Render(label))
		}
	}
	if len(m.images) == 0 {
		lines = append(lines, s.Muted.Render(render.TruncateAndPad("No images", width)))
	}
	for len(lines) < height+ui.HeaderHeight {
		lines = append(lines, render.EmptyLine(width))
	}

	return s.Panel.
		Width(width).
		Height(height + ui.HeaderHeight).
		Render(strings.Join(lines, "\n"))
}
