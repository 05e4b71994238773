// Package ui holds the sizes and helpers shared by the peek components.
package ui

// Rows of the viewer screen.
const (
	StatusHeight   = 1 // title and facts above the image
	ControlsHeight = 1 // zoom and navigation bar below it

	// MinImageRows is the smallest image area worth drawing.
	MinImageRows = 2
)

// Rows of the gallery panel.
const (
	// ScrollMargin is how many rows stay visible past the cursor.
	ScrollMargin = 3

	BorderHeight = 2 // top and bottom border
	HeaderHeight = 2 // title and separator

	// PanelOverhead is the rows of a panel not available to its list.
	PanelOverhead = BorderHeight + HeaderHeight
)
