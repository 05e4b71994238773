// Package thumbstrip renders a row of gallery thumbnails centred on the
// current image.
package thumbstrip

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/peek/internal/gallery"
	"github.com/llehouerou/peek/internal/imageload"
	"github.com/llehouerou/peek/internal/ui"
	"github.com/llehouerou/peek/internal/ui/render"
	"github.com/llehouerou/peek/internal/ui/styles"
)

// Slot geometry, in cells.
const (
	ThumbCols = 10
	ThumbRows = 3
	Spacing   = 1

	// Height is the strip height: thumbnails plus a label line.
	Height = ThumbRows + 1
)

// ThumbMsg carries a rendered thumbnail.
type ThumbMsg struct {
	Src   string
	Lines []string
	Err   error
}

// Model is the thumbnail strip. Thumbnails are decoded off the UI
// goroutine and kept as rendered lines.
type Model struct {
	ui.Base
	images  []gallery.Image
	current int
	thumbs  map[string][]string
	failed  map[string]bool
	pending map[string]bool
}

// New creates an empty strip.
func New() Model {
	return Model{
		thumbs:  make(map[string][]string),
		failed:  make(map[string]bool),
		pending: make(map[string]bool),
	}
}

// SetImages replaces the gallery.
func (m *Model) SetImages(images []gallery.Image) {
	m.images = images
}

// SetCurrent moves the highlighted slot.
func (m *Model) SetCurrent(i int) {
	m.current = i
}

// Current returns the highlighted index.
func (m Model) Current() int {
	return m.current
}

// visibleSlots returns how many thumbnails fit the width.
func (m Model) visibleSlots() int {
	return max((m.Width()+Spacing)/(ThumbCols+Spacing), 0)
}

// Visible returns the [start, end) range of images currently shown.
func (m Model) Visible() (start, end int) {
	return Window(m.current, len(m.images), m.visibleSlots())
}

// Request returns a command loading the visible thumbnails that are
// neither cached nor already requested.
func (m *Model) Request() tea.Cmd {
	start, end := m.Visible()
	var cmds []tea.Cmd
	for i := start; i < end; i++ {
		src := m.images[i].ThumbnailSrc()
		if _, ok := m.thumbs[src]; ok || m.pending[src] || m.failed[src] {
			continue
		}
		m.pending[src] = true
		cmds = append(cmds, loadThumb(src))
	}
	return tea.Batch(cmds...)
}

func loadThumb(src string) tea.Cmd {
	return func() tea.Msg {
		e, err := imageload.Decode(src)
		if err != nil {
			return ThumbMsg{Src: src, Err: err}
		}
		return ThumbMsg{Src: src, Lines: HalfBlocks(e.Image, ThumbCols, ThumbRows)}
	}
}

// Update stores loaded thumbnails.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ThumbMsg); ok {
		delete(m.pending, msg.Src)
		if msg.Err != nil {
			m.failed[msg.Src] = true
			return nil
		}
		m.thumbs[msg.Src] = msg.Lines
	}
	return nil
}

// HitTest returns the image index under the strip-relative cell
// (col, row).
func (m Model) HitTest(col, row int) (int, bool) {
	if row < 0 || row >= Height || col < 0 {
		return 0, false
	}
	start, end := m.Visible()
	left := m.leftPad(end - start)
	col -= left
	if col < 0 {
		return 0, false
	}
	slot := col / (ThumbCols + Spacing)
	if col%(ThumbCols+Spacing) >= ThumbCols || start+slot >= end {
		return 0, false
	}
	return start + slot, true
}

func (m Model) leftPad(slots int) int {
	used := slots*(ThumbCols+Spacing) - Spacing
	return max((m.Width()-used)/2, 0)
}

// View renders the strip.
func (m Model) View() string {
	if m.Width() == 0 || len(m.images) == 0 {
		return ""
	}
	t := styles.T()
	start, end := m.Visible()

	rows := make([]strings.Builder, Height)
	pad := strings.Repeat(" ", m.leftPad(end-start))
	for r := range rows {
		rows[r].WriteString(pad)
	}

	gap := strings.Repeat(" ", Spacing)
	for i := start; i < end; i++ {
		lines := m.slotLines(m.images[i].ThumbnailSrc())
		for r, line := range lines {
			if i > start {
				rows[r].WriteString(gap)
			}
			rows[r].WriteString(line)
		}

		label := render.TruncateAndPad(m.images[i].Label(), ThumbCols)
		style := t.S().Muted
		if i == m.current {
			style = t.S().Cursor.Foreground(t.Primary).Bold(true)
		}
		if i > start {
			rows[ThumbRows].WriteString(gap)
		}
		rows[ThumbRows].WriteString(style.Render(label))
	}

	out := make([]string, Height)
	for r := range rows {
		out[r] = rows[r].String()
	}
	return lipgloss.NewStyle().Width(m.Width()).MaxWidth(m.Width()).Render(strings.Join(out, "\n"))
}

func (m Model) slotLines(src string) []string {
	if lines, ok := m.thumbs[src]; ok && len(lines) == ThumbRows {
		return lines
	}
	mark := "…"
	if m.failed[src] {
		mark = "×"
	}
	style := styles.T().S().Subtle
	lines := make([]string, ThumbRows)
	for r := range lines {
		text := strings.Repeat(" ", ThumbCols)
		if r == ThumbRows/2 {
			text = render.Pad(strings.Repeat(" ", (ThumbCols-1)/2)+mark, ThumbCols)
		}
		lines[r] = style.Render(text)
	}
	return lines
}
