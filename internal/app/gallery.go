package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/gallery"
	"github.com/llehouerou/peek/internal/state"
)

// rescanTimeout bounds a gallery rescan.
const rescanTimeout = 30 * time.Second

// GalleryChangedMsg reports that the watched directories changed.
type GalleryChangedMsg struct{}

// GalleryScannedMsg carries a rebuilt gallery.
type GalleryScannedMsg struct {
	Images []gallery.Image
	Err    error
}

// waitForChange blocks on the watcher until the next change.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return GalleryChangedMsg{}
	}
}

func rescanCmd(rescan func(ctx context.Context) ([]gallery.Image, error)) tea.Cmd {
	if rescan == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rescanTimeout)
		defer cancel()
		images, err := rescan(ctx)
		return GalleryScannedMsg{Images: images, Err: err}
	}
}

// handleScanned swaps in a rebuilt gallery, staying on the current image
// when it still exists.
func (m *Model) handleScanned(msg GalleryScannedMsg) {
	if msg.Err == nil && len(msg.Images) == 0 {
		msg.Err = errors.New("every image was removed")
	}
	if msg.Err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpGalleryScan, msg.Err)
		return
	}

	next := m.Viewer.Index()
	if cur, ok := m.Viewer.CurrentImage(); ok {
		next = min(next, len(msg.Images)-1)
		for i, img := range msg.Images {
			if img.Src == cur.Src {
				next = i
				break
			}
		}
	}

	// edited files must be decoded again
	m.Images.Clear()

	m.images = msg.Images
	m.Viewer.SetImages(msg.Images)
	m.Handle.SetTotal(len(msg.Images))
	m.Handle.SetIndex(next)
	m.Thumbs.SetImages(msg.Images)
	m.List.SetImages(msg.Images)
	m.ErrorMsg = ""

	// force a reload so a rewritten current file is shown fresh
	m.shown = -1
}

// ResumeIndex finds where to reopen a gallery: the saved image if it is
// still there, otherwise the saved index clamped to the gallery.
func ResumeIndex(images []gallery.Image, p *state.Position) int {
	if p == nil || len(images) == 0 {
		return 0
	}
	for i, img := range images {
		if img.Src == p.Src {
			return i
		}
	}
	return max(0, min(p.Index, len(images)-1))
}

// savePosition records the current image as the resume point.
func (m *Model) savePosition() {
	if m.state == nil || m.gallery == "" {
		return
	}
	img, ok := m.Viewer.CurrentImage()
	if !ok {
		return
	}
	m.state.SavePosition(state.Position{
		Gallery:   m.gallery,
		Src:       img.Src,
		Index:     m.Viewer.Index(),
		Loop:      m.Handle.Loop(),
		UpdatedAt: m.now(),
	})
}
