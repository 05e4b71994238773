// Package controls renders the viewer's zoom and navigation buttons and
// maps clicks on them back to actions.
package controls

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/peek/internal/keymap"
	"github.com/llehouerou/peek/internal/ui/styles"
	"github.com/llehouerou/peek/internal/viewer"
)

// Button is one clickable segment of the bar, spanning [Start, End)
// columns.
type Button struct {
	Action  keymap.Action
	Label   string
	Enabled bool
	Start   int
	End     int
}

// Bar is a rendered control bar.
type Bar struct {
	View    string
	Buttons []Button
}

// HitTest returns the action of the enabled button at column col.
func (b Bar) HitTest(col int) (keymap.Action, bool) {
	for _, btn := range b.Buttons {
		if col >= btn.Start && col < btn.End {
			return btn.Action, btn.Enabled
		}
	}
	return "", false
}

// ZoomLabel formats a scale as a percentage.
func ZoomLabel(scale float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(scale*100)))
}

// Render lays out the bar centred in width columns. Hidden groups are
// skipped; disabled buttons are drawn dimmed and ignore clicks.
func Render(c viewer.ControlsProps, n viewer.NavigationProps, width int) Bar {
	type part struct {
		text   string
		button *Button
	}
	var parts []part
	add := func(label string, action keymap.Action, enabled bool) {
		parts = append(parts, part{text: label, button: &Button{Action: action, Label: label, Enabled: enabled}})
	}
	text := func(s string) { parts = append(parts, part{text: s}) }

	if n.Visible {
		add("‹", keymap.ActionPrevious, n.CanGoPrevious)
		text("  ")
	}
	if c.Visible {
		add("[−]", keymap.ActionZoomOut, c.CanZoomOut)
		text(" " + ZoomLabel(c.CurrentZoom) + " ")
		add("[+]", keymap.ActionZoomIn, c.CanZoomIn)
		text(" ")
		add("[1:1]", keymap.ActionResetZoom, c.CanReset)
	}
	if n.Visible {
		text("  ")
		add("›", keymap.ActionNext, n.CanGoNext)
	}
	if len(parts) > 0 {
		text("   ")
	}
	add("✕", keymap.ActionClose, true)

	total := 0
	for _, p := range parts {
		total += lipgloss.Width(p.text)
	}
	col := max((width-total)/2, 0)

	t := styles.T()
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", col))
	var buttons []Button
	for _, p := range parts {
		w := lipgloss.Width(p.text)
		if p.button == nil {
			sb.WriteString(t.S().Muted.Render(p.text))
		} else {
			style := t.S().Subtle
			if p.button.Enabled {
				style = t.S().Title
			}
			sb.WriteString(style.Render(p.text))
			p.button.Start, p.button.End = col, col+w
			buttons = append(buttons, *p.button)
		}
		col += w
	}
	return Bar{View: sb.String(), Buttons: buttons}
}
