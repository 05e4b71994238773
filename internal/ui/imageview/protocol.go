// Package imageview draws the viewer's current image into a terminal region
// through the Kitty or Sixel graphics protocols.
package imageview

import "image"

// Protocol abstracts the terminal image display protocol (Kitty or Sixel).
type Protocol interface {
	// Name identifies the protocol in logs and the status line.
	Name() string

	// Prepare encodes the image and returns any one-time terminal command.
	// Kitty: transmits to terminal memory, returns escape sequences.
	// Sixel: encodes and caches internally, returns empty string.
	Prepare(img image.Image, id uint32) (string, error)

	// Place returns the escape sequence to display the image at (row, col),
	// 1-based, spanning width x height cells.
	Place(id uint32, row, col, width, height int) string

	// Delete returns the escape sequence to remove the image.
	Delete(id uint32) string
}

// Blank returns a block of spaces of the given cell size, used as the
// layout stand-in for the image so lipgloss never measures escapes.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := make([]byte, width)
	for i := range line {
		line[i] = ' '
	}
	out := make([]byte, 0, (width+1)*height)
	for i := range height {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, line...)
	}
	return string(out)
}
