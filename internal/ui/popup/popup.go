// Package popup draws bordered boxes over the main view.
package popup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/peek/internal/ui/styles"
)

// Popup is a modal component. View renders the content only; the app
// draws it with Box and Overlay.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Frame is the room the border and padding take around the content.
const (
	FrameWidth  = 6
	FrameHeight = 4
)

// screenMargin is kept free around a box on each axis.
const screenMargin = 4

// Size bounds a box. A zero MaxWidth fits the content.
type Size struct {
	MaxWidth int
}

var (
	SizeAuto   = Size{}
	SizePrompt = Size{MaxWidth: 48}
)

// ContentWidth is the widest content a box of this size holds on a
// screenW-wide screen.
func (s Size) ContentWidth(screenW int) int {
	w := screenW - screenMargin
	if s.MaxWidth > 0 {
		w = min(w, s.MaxWidth)
	}
	return max(w-FrameWidth, 0)
}

// Box renders content in a rounded, padded border that fits the screen.
// Lines too wide for it wrap; lines past the screen height are dropped.
func Box(content string, screenW, screenH int, size Size) string {
	lines := strings.Split(content, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	w = min(w, size.ContentWidth(screenW))
	h := min(len(lines), max(screenH-screenMargin-FrameHeight, 0))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(1, 2).
		Width(w + 4).
		MaxHeight(h + FrameHeight).
		Render(strings.Join(lines[:h], "\n"))
}

// Overlay draws box centred over base, a screen of width by height cells.
// The base shows through on either side of the box.
func Overlay(base, box string, width, height int) string {
	boxLines := strings.Split(box, "\n")
	boxW := 0
	for _, line := range boxLines {
		boxW = max(boxW, ansi.StringWidth(line))
	}
	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxW)/2, 0)

	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range boxLines {
		row := top + i
		if row >= len(lines) {
			break
		}
		lines[row] = splice(lines[row], line, left, width)
	}
	return strings.Join(lines, "\n")
}

// splice writes over into line starting at cell col. line is padded to
// width first. A wide character cut by either edge becomes spaces.
func splice(line, over string, col, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	end := col + ansi.StringWidth(over)

	prefix := ansi.Cut(line, 0, col)
	if gap := col - ansi.StringWidth(prefix); gap > 0 {
		prefix += strings.Repeat(" ", gap)
	}

	var suffix string
	if end < width {
		suffix = ansi.Cut(line, end, width)
		if gap := width - end - ansi.StringWidth(suffix); gap > 0 {
			suffix = strings.Repeat(" ", gap) + suffix
		}
	}
	return prefix + over + suffix
}
