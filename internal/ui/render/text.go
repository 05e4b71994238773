// Package render lays out single lines of terminal text: file names and
// captions truncated to a width, padded cells and split rows.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Sanitize makes a file name or caption safe to print. Invalid UTF-8 and
// control characters other than tab are dropped; no-break spaces become
// plain spaces.
func Sanitize(s string) string {
	if printable(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r == utf8.RuneError, r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

func printable(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError || r == '\u00a0' || (r != '\t' && unicode.IsControl(r)) {
			return false
		}
	}
	return true
}

// Truncate sanitizes s and cuts it to maxWidth cells, ending with an
// ellipsis when something was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, Ellipsis)
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s in exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row puts left and right at the two ends of a width-cell line. Styled
// text is measured without its escapes. At least one space separates the
// two, so an overfull row is wider than width.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator is a horizontal rule.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// EmptyLine is a blank line of width cells.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
