package ui

// Base stores the size given to a component. Embed it to get SetSize and
// the size accessors.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int {
	return b.width
}

func (b Base) Height() int {
	return b.height
}

// ListHeight is the number of rows left for items once overhead rows
// (borders, headers) are taken.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
