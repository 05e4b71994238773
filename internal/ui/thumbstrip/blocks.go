package thumbstrip

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

const halfBlock = "▀"

// HalfBlocks renders img into cols x rows cells. Each cell shows two
// vertically stacked pixels: the upper half as foreground, the lower as
// background. The image keeps its aspect ratio and is centred; the rest is
// left blank.
func HalfBlocks(img image.Image, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	lines := make([]string, rows)
	blank := strings.Repeat(" ", cols)
	for i := range lines {
		lines[i] = blank
	}
	if img == nil || img.Bounds().Empty() {
		return lines
	}

	//nolint:gosec // cell counts are small
	thumb := resize.Thumbnail(uint(cols), uint(rows*2), img, resize.Bilinear)
	b := thumb.Bounds()
	padLeft := (cols - b.Dx()) / 2
	padTop := (rows - (b.Dy()+1)/2) / 2

	for row := range (b.Dy() + 1) / 2 {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", padLeft))
		y := b.Min.Y + row*2
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(thumb, x, y))
			if y+1 < b.Max.Y {
				style = style.Background(hexColor(thumb, x, y+1))
			}
			sb.WriteString(style.Render(halfBlock))
		}
		sb.WriteString(strings.Repeat(" ", cols-padLeft-b.Dx()))
		if padTop+row < rows {
			lines[padTop+row] = sb.String()
		}
	}
	return lines
}

func hexColor(img image.Image, x, y int) lipgloss.Color {
	c, _ := colorful.MakeColor(img.At(x, y))
	return lipgloss.Color(c.Hex())
}
