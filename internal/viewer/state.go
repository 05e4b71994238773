package viewer

import (
	"fmt"

	"github.com/llehouerou/peek/internal/gallery"
	"github.com/llehouerou/peek/internal/geom"
)

// State is a snapshot of everything a presentation layer draws from.
type State struct {
	Open          bool
	Transform     geom.Transform
	Index         int
	Total         int
	CanGoNext     bool
	CanGoPrevious bool
	Loading       bool
	Dragging      bool
	Image         gallery.Image
	HasImage      bool
}

// State returns the current snapshot.
func (v *Viewer) State() State {
	img, ok := v.CurrentImage()
	return State{
		Open:          v.IsOpen(),
		Transform:     v.engine.Transform(),
		Index:         v.nav.Index(),
		Total:         v.nav.Total(),
		CanGoNext:     v.nav.CanGoNext(),
		CanGoPrevious: v.nav.CanGoPrevious(),
		Loading:       v.loading,
		Dragging:      v.engine.Dragging(),
		Image:         img,
		HasImage:      ok,
	}
}

// ControlsProps is the data a zoom control bar needs. A button is enabled
// when its Can field is true.
type ControlsProps struct {
	Visible     bool
	CurrentZoom float64
	MinZoom     float64
	MaxZoom     float64
	CanZoomIn   bool
	CanZoomOut  bool
	CanReset    bool
}

// Controls returns the zoom control data.
func (v *Viewer) Controls() ControlsProps {
	scale := v.engine.Scale()
	return ControlsProps{
		Visible:     v.opts.ShowControls,
		CurrentZoom: scale,
		MinZoom:     v.opts.MinZoom,
		MaxZoom:     v.opts.MaxZoom,
		CanZoomIn:   scale < v.opts.MaxZoom,
		CanZoomOut:  scale > v.opts.MinZoom,
		CanReset:    scale != 1,
	}
}

// NavigationProps is the data previous/next controls need.
type NavigationProps struct {
	Visible       bool
	Index         int
	Total         int
	CanGoNext     bool
	CanGoPrevious bool
}

// Navigation returns the navigation control data. Navigation controls are
// only shown for galleries.
func (v *Viewer) Navigation() NavigationProps {
	return NavigationProps{
		Visible:       v.opts.ShowNavigation && v.IsGallery(),
		Index:         v.nav.Index(),
		Total:         v.nav.Total(),
		CanGoNext:     v.nav.CanGoNext(),
		CanGoPrevious: v.nav.CanGoPrevious(),
	}
}

// Counter returns the "current / total" label, or "" when the counter is
// hidden or there is a single image.
func (v *Viewer) Counter() string {
	if !v.opts.ShowCounter || !v.IsGallery() {
		return ""
	}
	return fmt.Sprintf("%d / %d", v.nav.Index()+1, v.nav.Total())
}

// Title returns the title of the current image, if it has one.
func (v *Viewer) Title() string {
	img, ok := v.CurrentImage()
	if !ok {
		return ""
	}
	return img.Title
}

// Announcement is the assistive text for the current image, such as
// "Image 2 of 5. A red door".
func (v *Viewer) Announcement() string {
	img, _ := v.CurrentImage()
	var s string
	if v.IsGallery() {
		s = fmt.Sprintf("Image %d of %d", v.nav.Index()+1, v.nav.Total())
	}
	if img.Alt != "" {
		if s != "" {
			s += ". "
		}
		s += img.Alt
	}
	return s
}
