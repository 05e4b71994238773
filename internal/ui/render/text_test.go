package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "beach.jpg", "beach.jpg"},
		{"keeps tab", "a\tb", "a\tb"},
		{"drops newline", "two\nlines.png", "twolines.png"},
		{"drops escape", "\x1b[31mred.png", "[31mred.png"},
		{"drops invalid bytes", "caf\xe9.png", "caf.png"},
		{"no-break space", "a\u00a0b", "a b"},
		{"wide runes kept", "写真.png", "写真.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "img.png", 10, "img.png"},
		{"exact", "img.png", 7, "img.png"},
		{"cut", "holiday-photo.png", 8, "holiday…"},
		{"zero width", "img.png", 0, ""},
		{"wide runes", "写真写真.png", 5, "写真…"},
		{"sanitized first", "a\nb", 5, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, in := range []string{"", "a.png", "a-very-long-file-name.png", "写真.png"} {
		got := TruncateAndPad(in, 10)
		if w := runewidth.StringWidth(got); w != 10 {
			t.Errorf("TruncateAndPad(%q, 10) is %d cells wide", in, w)
		}
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 12); got != "left   right" {
		t.Errorf("Row() = %q", got)
	}
	if got := Row("left", "right", 5); got != "left right" {
		t.Errorf("overfull Row() = %q, want one space between", got)
	}
}

func TestSeparatorAndEmptyLine(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := EmptyLine(2); got != "  " {
		t.Errorf("EmptyLine(2) = %q", got)
	}
	if Separator(-1) != "" || EmptyLine(-1) != "" {
		t.Error("negative widths should give empty strings")
	}
}
