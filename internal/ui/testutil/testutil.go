// Package testutil holds helpers for testing the terminal views: escape
// stripping, width measurement and a popup driver.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes every escape sequence from s: styling as well as
// Kitty and Sixel image data.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters (CJK, emoji) and ignoring escape sequences.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// Lines splits the stripped output into lines.
func Lines(output string) []string {
	return strings.Split(StripANSI(output), "\n")
}

// AssertContains returns an error message if output doesn't contain substr,
// or empty string if it does. Useful for test assertions.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains returns an error message if output contains substr,
// or empty string if it doesn't. Useful for test assertions.
func AssertNotContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}
