// Package helpbindings is the help popup: the key bindings of the active
// contexts and the mouse gestures, scrollable when taller than the screen.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/peek/internal/keymap"
	"github.com/llehouerou/peek/internal/ui"
	"github.com/llehouerou/peek/internal/ui/action"
	"github.com/llehouerou/peek/internal/ui/popup"
	"github.com/llehouerou/peek/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Close asks the app to hide the popup.
type Close struct{}

func (Close) ActionType() string { return "helpbindings.close" }

// ActionMsg wraps a for delivery to the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helpbindings", Action: a}
}

// sections lists the binding contexts in display order.
var sections = []struct {
	context string
	label   string
}{
	{keymap.ContextViewer, "Viewer"},
	{keymap.ContextGlobal, "Global"},
	{keymap.ContextGallery, "Gallery list"},
}

// mouseHelp describes the pointer gestures of the open viewer.
var mouseHelp = [][2]string{
	{"wheel", "Zoom at the pointer"},
	{"double click", "Zoom in / reset"},
	{"drag", "Pan a zoomed image"},
	{"click outside", "Close viewer"},
}

// chrome is the popup space taken by the title, footer and box frame.
const chrome = 4 + popup.FrameHeight + 2

// Model is the help popup.
type Model struct {
	ui.Base
	contexts []string
	lines    []string
	offset   int
}

// New creates an empty help popup.
func New() Model {
	return Model{}
}

// AllContexts lists every binding context, in display order.
func AllContexts() []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.context
	}
	return out
}

// SetContexts chooses the binding contexts shown and scrolls to the top.
// The mouse section is shown along with the viewer bindings.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.lines = buildLines(contexts)
	m.offset = 0
}

func buildLines(contexts []string) []string {
	type row struct{ keys, desc string }
	type block struct {
		label string
		rows  []row
	}

	var blocks []block
	for _, s := range sections {
		if !slices.Contains(contexts, s.context) {
			continue
		}
		b := block{label: s.label}
		for _, kb := range keymap.ByContext(s.context) {
			b.rows = append(b.rows, row{strings.Join(kb.Keys, ", "), kb.Description})
		}
		blocks = append(blocks, b)
		if s.context == keymap.ContextViewer {
			mouse := block{label: "Mouse"}
			for _, h := range mouseHelp {
				mouse.rows = append(mouse.rows, row{h[0], h[1]})
			}
			blocks = append(blocks, mouse)
		}
	}

	keyW := 0
	for _, b := range blocks {
		for _, r := range b.rows {
			keyW = max(keyW, runewidth.StringWidth(r.keys))
		}
	}

	t := styles.T()
	header := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s := t.S()

	var lines []string
	for i, b := range blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, header.Render(b.label), s.Subtle.Render(strings.Repeat("─", keyW+16)))
		for _, r := range b.rows {
			lines = append(lines, keyStyle.Render(runewidth.FillRight(r.keys, keyW))+"  "+s.Base.Render(r.desc))
		}
	}
	return lines
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scroll(1)
	case "k", "up":
		m.scroll(-1)
	case "pgdown", "ctrl+d":
		m.scroll(m.visibleHeight())
	case "pgup", "ctrl+u":
		m.scroll(-m.visibleHeight())
	}
	return m, nil
}

func (m *Model) scroll(delta int) {
	m.offset = max(0, min(m.offset+delta, m.maxOffset()))
}

// View implements popup.Popup. The lines keep the width of the widest one
// so the box does not resize while scrolling.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	width := 0
	for _, line := range m.lines {
		width = max(width, lipgloss.Width(line))
	}
	end := min(m.offset+m.visibleHeight(), len(m.lines))
	visible := make([]string, 0, end-m.offset)
	for _, line := range m.lines[m.offset:end] {
		visible = append(visible, line+strings.Repeat(" ", width-lipgloss.Width(line)))
	}

	footer := "?/esc close"
	if m.maxOffset() > 0 {
		footer = "j/k scroll · " + footer
	}

	s := styles.T().S()
	return s.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Muted.Render(footer)
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 3)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
