package geom

// Transform is a 2D viewport transform: a uniform scale about the container
// center followed by a translation in screen pixels.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Identity is the unzoomed, centered transform.
var Identity = Transform{Scale: 1}

// Size is a width/height pair in screen pixels.
type Size struct {
	Width  float64
	Height float64
}

// Constrain keeps a scaled image from being panned past its edges.
// An axis where the scaled image fits inside the container is centered;
// otherwise the translation is limited so the image edge never moves inside
// the container edge. The engine never calls this itself; it is offered to
// presentation layers that want edge clamping.
func Constrain(t Transform, container, image Size) Transform {
	scaledW := image.Width * t.Scale
	scaledH := image.Height * t.Scale

	if scaledW <= container.Width {
		t.TranslateX = 0
	} else {
		maxX := (scaledW - container.Width) / 2
		t.TranslateX = Clamp(t.TranslateX, -maxX, maxX)
	}

	if scaledH <= container.Height {
		t.TranslateY = 0
	} else {
		maxY := (scaledH - container.Height) / 2
		t.TranslateY = Clamp(t.TranslateY, -maxY, maxY)
	}

	return t
}

// Fit returns the largest size with the aspect ratio of image that fits in
// container ("contain" sizing). A zero-sized image yields a zero size.
func Fit(image, container Size) Size {
	if image.Width <= 0 || image.Height <= 0 {
		return Size{}
	}
	ratio := min(container.Width/image.Width, container.Height/image.Height)
	return Size{Width: image.Width * ratio, Height: image.Height * ratio}
}
