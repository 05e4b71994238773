package app

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/keymap"
)

var (
	globalKeys  = keymap.ForContext(keymap.ContextGlobal)
	galleryKeys = keymap.ForContext(keymap.ContextGallery)
)

// handleKey routes a key press: popups first, then the open viewer, then
// the application keys. It reports whether the program should quit.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return cmd, false
	}

	key := msg.String()
	if m.Viewer.IsOpen() && m.Viewer.HandleKey(key) {
		return nil, false
	}

	switch globalKeys.Resolve(key) {
	case keymap.ActionQuit:
		return nil, true
	case keymap.ActionHelp:
		m.Popups.ShowHelp(m.helpContexts())
	case keymap.ActionToggleThumbnails:
		m.showThumbs = !m.showThumbs
	case keymap.ActionReopen:
		if !m.Handle.IsOpen() {
			m.Handle.OpenAt(m.List.Selected())
		}
	case keymap.ActionFirst:
		m.first()
	case keymap.ActionLast:
		m.last()
	case keymap.ActionJump:
		return m.Popups.ShowJump(len(m.images)), false
	case keymap.ActionToggleLoop:
		m.Handle.SetLoop(!m.Handle.Loop())
		m.savePosition()
	default:
		if !m.Viewer.IsOpen() {
			m.handleGalleryKey(key)
		}
	}
	return nil, false
}

func (m *Model) handleGalleryKey(key string) {
	switch galleryKeys.Resolve(key) {
	case keymap.ActionMoveUp:
		m.List.Move(-1)
	case keymap.ActionMoveDown:
		m.List.Move(1)
	case keymap.ActionSelect:
		m.Handle.OpenAt(m.List.Selected())
	default:
		m.List.HandleKey(key)
	}
}

func (m *Model) first() {
	if m.Viewer.IsOpen() {
		m.Handle.SetIndex(0)
		return
	}
	m.List.First()
}

func (m *Model) last() {
	if m.Viewer.IsOpen() {
		m.Handle.SetIndex(len(m.images) - 1)
		return
	}
	m.List.Last()
}

// jumpTo opens the viewer at the 1-based image number typed in the
// prompt.
func (m *Model) jumpTo(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > len(m.images) {
		m.ErrorMsg = fmt.Sprintf("No image %s (1-%d)", text, len(m.images))
		return
	}
	m.ErrorMsg = ""
	m.Handle.OpenAt(n - 1)
}

func (m Model) helpContexts() []string {
	if m.Viewer.IsOpen() {
		return []string{keymap.ContextViewer, keymap.ContextGlobal}
	}
	return []string{keymap.ContextGlobal, keymap.ContextGallery}
}
