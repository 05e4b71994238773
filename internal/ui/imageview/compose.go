package imageview

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/peek/internal/geom"
)

// ParseBackground parses a "#rrggbb" canvas colour, falling back to black.
func ParseBackground(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Compose draws img on a w x h canvas filled with bg. The image is first
// fitted to the canvas ("contain"), then scaled by t.Scale about the canvas
// centre and moved by the translation, in canvas pixels. Only the visible
// part of the source is resampled, so deep zooms stay cheap.
func Compose(img image.Image, t geom.Transform, w, h int, bg color.Color) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	canvas := imaging.New(w, h, bg)
	if img == nil {
		return canvas
	}

	b := img.Bounds()
	srcW, srcH := float64(b.Dx()), float64(b.Dy())
	fit := geom.Fit(geom.Size{Width: srcW, Height: srcH}, geom.Size{Width: float64(w), Height: float64(h)})
	dw, dh := fit.Width*t.Scale, fit.Height*t.Scale
	if dw <= 0 || dh <= 0 || !geom.Finite(dw) || !geom.Finite(dh) {
		return canvas
	}

	// displayed image box on the canvas
	x0 := float64(w)/2 + t.TranslateX - dw/2
	y0 := float64(h)/2 + t.TranslateY - dh/2

	vx0, vy0 := math.Max(x0, 0), math.Max(y0, 0)
	vx1, vy1 := math.Min(x0+dw, float64(w)), math.Min(y0+dh, float64(h))
	if vx1 <= vx0 || vy1 <= vy0 {
		return canvas
	}
	dst := image.Rect(
		int(math.Round(vx0)), int(math.Round(vy0)),
		int(math.Round(vx1)), int(math.Round(vy1)),
	)
	if dst.Empty() {
		return canvas
	}

	src := image.Rect(
		b.Min.X+int(math.Floor((vx0-x0)/dw*srcW)),
		b.Min.Y+int(math.Floor((vy0-y0)/dh*srcH)),
		b.Min.X+int(math.Ceil((vx1-x0)/dw*srcW)),
		b.Min.Y+int(math.Ceil((vy1-y0)/dh*srcH)),
	).Intersect(b)
	if src.Empty() {
		return canvas
	}

	visible := imaging.Crop(img, src)
	visible = imaging.Resize(visible, dst.Dx(), dst.Dy(), imaging.Linear)
	return imaging.Overlay(canvas, visible, dst.Min, 1)
}
