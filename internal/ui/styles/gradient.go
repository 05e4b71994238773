package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor stands in for colours that are not "#rrggbb", such as
// ANSI indexes, which cannot be blended.
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// BoldGradient renders text in bold, each grapheme coloured along an HCL
// blend from one colour to the other.
func BoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	c1, c2 := toColorful(from), toColorful(to)
	last := float64(len(clusters) - 1)

	var b strings.Builder
	for i, cluster := range clusters {
		hex := c1.BlendHcl(c2, float64(i)/last).Clamped().Hex()
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex)).Render(cluster))
	}
	return b.String()
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
