// Package statusbar renders the one-line summary above the image: title on
// the left, image facts or the last error on the right.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/peek/internal/ui/controls"
	"github.com/llehouerou/peek/internal/ui/render"
	"github.com/llehouerou/peek/internal/ui/styles"
)

// Info is what the status line shows.
type Info struct {
	Title   string
	Counter string // "3 / 12", empty for a single image

	Width, Height int // pixels, 0 when unknown
	Format        string
	Size          int64
	Zoom          float64
	Loading       bool
	Loop          bool

	// Err is a formatted error message. It replaces the image facts until
	// cleared.
	Err string
}

// Facts returns the right-hand summary, such as
// "1920×1080 · PNG · 2.3 MB · 150% · 3 / 12".
func (i Info) Facts() string {
	var parts []string
	if i.Loading {
		parts = append(parts, "loading…")
	} else if i.Width > 0 && i.Height > 0 {
		parts = append(parts, fmt.Sprintf("%d×%d", i.Width, i.Height))
	}
	if i.Format != "" && !i.Loading {
		parts = append(parts, strings.ToUpper(i.Format))
	}
	if i.Size > 0 && !i.Loading {
		//nolint:gosec // file sizes are non-negative
		parts = append(parts, humanize.Bytes(uint64(i.Size)))
	}
	if i.Zoom > 0 {
		parts = append(parts, controls.ZoomLabel(i.Zoom))
	}
	if i.Counter != "" {
		counter := i.Counter
		if i.Loop {
			counter += " ↻"
		}
		parts = append(parts, counter)
	}
	return strings.Join(parts, " · ")
}

// Render lays the line out in width columns. The title is truncated first;
// the right side is only cut when it alone exceeds the width.
func Render(i Info, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()

	right := i.Facts()
	rightStyle := t.S().Muted
	if i.Err != "" {
		right = i.Err
		rightStyle = t.S().Error
	}
	right = render.Truncate(right, width)
	rightW := runewidth.StringWidth(right)

	titleW := width - rightW - 2
	var left string
	if titleW > 0 {
		left = styles.BoldGradient(render.Truncate(i.Title, titleW), t.Primary, t.Secondary)
	}
	return render.Row(left, rightStyle.Render(right), width)
}
