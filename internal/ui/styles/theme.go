// Package styles holds the colour palette shared by the peek screens.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the colour palette with its derived styles.
type Theme struct {
	Primary   lipgloss.Color // wordmark start, current image
	Secondary lipgloss.Color // wordmark end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color // captions, hints
	FgSubtle lipgloss.Color // separators

	BgCursor lipgloss.Color

	Border       lipgloss.Color // popups
	BorderActive lipgloss.Color // the gallery panel

	Error lipgloss.Color

	styles *Styles
}

// Styles are the lipgloss styles built from a Theme.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Current lipgloss.Style // the image shown in the viewer
	Cursor  lipgloss.Style
	Error   lipgloss.Style
	Panel   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border:       lipgloss.Color("#585858"),
	BorderActive: lipgloss.Color("#a78bfa"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles of the theme, built on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Current: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderActive),
	}
}
