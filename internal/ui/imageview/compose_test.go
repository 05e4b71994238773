package imageview

import (
	"image"
	"image/color"
	"testing"

	"github.com/llehouerou/peek/internal/geom"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// halves returns a w x h image whose left half is red and right half blue.
func halves(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if x < w/2 {
				img.SetNRGBA(x, y, red)
			} else {
				img.SetNRGBA(x, y, blue)
			}
		}
	}
	return img
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func checkPixel(t *testing.T, img *image.NRGBA, x, y int, want color.NRGBA) {
	t.Helper()
	if got := img.NRGBAAt(x, y); got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

func TestCompose_FitsAndCenters(t *testing.T) {
	out := Compose(solid(100, 50, red), geom.Identity, 200, 200, color.Black)

	if out.Bounds() != image.Rect(0, 0, 200, 200) {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	// fitted to 200x100, centered vertically
	checkPixel(t, out, 100, 100, red)
	checkPixel(t, out, 0, 60, red)
	checkPixel(t, out, 100, 10, black)
	checkPixel(t, out, 100, 190, black)
}

func TestCompose_ZoomShowsCenter(t *testing.T) {
	out := Compose(halves(100, 100), geom.Transform{Scale: 2}, 100, 100, color.Black)

	// the middle half of the source fills the canvas
	checkPixel(t, out, 10, 50, red)
	checkPixel(t, out, 90, 50, blue)
	checkPixel(t, out, 0, 0, red)
	checkPixel(t, out, 99, 99, blue)
}

func TestCompose_TranslationMovesImage(t *testing.T) {
	// moving right by half the canvas reveals the left edge of the image
	out := Compose(halves(100, 100), geom.Transform{Scale: 2, TranslateX: 50}, 100, 100, color.Black)
	checkPixel(t, out, 10, 50, red)
	checkPixel(t, out, 90, 50, red)

	out = Compose(halves(100, 100), geom.Transform{Scale: 2, TranslateX: -50}, 100, 100, color.Black)
	checkPixel(t, out, 10, 50, blue)
	checkPixel(t, out, 90, 50, blue)
}

func TestCompose_ZoomOutLeavesBorder(t *testing.T) {
	out := Compose(solid(100, 100, red), geom.Transform{Scale: 0.5}, 100, 100, color.Black)
	checkPixel(t, out, 50, 50, red)
	checkPixel(t, out, 10, 10, black)
	checkPixel(t, out, 90, 90, black)
}

func TestCompose_OffCanvas(t *testing.T) {
	tests := []struct {
		name string
		t    geom.Transform
	}{
		{"far right", geom.Transform{Scale: 1, TranslateX: 1000}},
		{"far left", geom.Transform{Scale: 1, TranslateX: -1000}},
		{"far down", geom.Transform{Scale: 1, TranslateY: 1000}},
		{"zero scale", geom.Transform{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Compose(solid(10, 10, red), tt.t, 40, 40, color.Black)
			checkPixel(t, out, 20, 20, black)
		})
	}
}

func TestCompose_Degenerate(t *testing.T) {
	if out := Compose(solid(4, 4, red), geom.Identity, 0, 10, color.Black); !out.Bounds().Empty() {
		t.Errorf("zero-width canvas should be empty, got %v", out.Bounds())
	}
	out := Compose(nil, geom.Identity, 4, 4, ParseBackground("#0000ff"))
	checkPixel(t, out, 1, 1, blue)
}

func TestParseBackground(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", red},
		{"#000000", black},
		{"not a colour", black},
		{"", black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := color.NRGBAModel.Convert(ParseBackground(tt.in)).(color.NRGBA)
			if got != tt.want {
				t.Errorf("ParseBackground(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
