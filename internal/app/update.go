package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/imageload"
	"github.com/llehouerou/peek/internal/ui/action"
	"github.com/llehouerou/peek/internal/ui/helpbindings"
	"github.com/llehouerou/peek/internal/ui/textinput"
	"github.com/llehouerou/peek/internal/ui/thumbstrip"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.pendingImage = ""

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		cmd = m.Thumbs.Request()

	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			m.quitting = true
			m.pendingImage = m.Renderer.Clear()
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case FrameMsg:
		m.framePending = false
		m.ticker.Tick()

	case imageload.LoadedMsg:
		m.handleLoaded(msg)

	case imageload.FailedMsg:
		m.handleFailed(msg)

	case thumbstrip.ThumbMsg:
		if msg.Err != nil {
			m.log.Debug(errmsg.FormatWith(errmsg.OpThumbnailRender, msg.Src, msg.Err))
		}
		m.Thumbs.Update(msg)
		cmd = m.Thumbs.Request()

	case action.Msg:
		m.handleAction(msg)

	case GalleryChangedMsg:
		m.log.Debug("gallery changed, rescanning")
		cmd = rescanCmd(m.rescan)

	case GalleryScannedMsg:
		m.handleScanned(msg)
		cmd = waitForChange(m.changes)

	default:
		cmd = m.Popups.Update(msg)
	}

	return m, tea.Batch(cmd, m.sync())
}

func (m *Model) handleLoaded(msg imageload.LoadedMsg) {
	if msg.Index != m.Viewer.Index() {
		return
	}
	m.entry = msg.Entry
	m.loadErr = nil
	m.Viewer.ImageLoaded(msg.Index)
}

func (m *Model) handleFailed(msg imageload.FailedMsg) {
	if msg.Index != m.Viewer.Index() {
		return
	}
	m.entry = imageload.Entry{}
	m.loadErr = msg.Err
	m.log.Debug("image load failed", slog.String("src", msg.Src), slog.Any("err", msg.Err))
	m.Viewer.ImageFailed(msg.Index, msg.Err)
}

func (m *Model) handleAction(msg action.Msg) {
	if msg.Action == nil {
		return
	}
	m.log.Debug("popup action", slog.String("source", msg.Source), slog.String("action", msg.Action.ActionType()))
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popups.HideHelp()
	case textinput.Result:
		if _, ok := a.Context.(jumpContext); ok {
			m.Popups.HideJump()
			if !a.Canceled {
				m.jumpTo(a.Text)
			}
		}
	}
}

// sync brings the controlled viewer up to date with the handle, loads a
// newly current image and prepares the frame to draw.
func (m *Model) sync() tea.Cmd {
	m.Viewer.Apply(m.Handle.Props())
	m.resize()

	var cmds []tea.Cmd
	if i := m.Viewer.Index(); i != m.shown {
		m.shown = i
		m.entry = imageload.Entry{}
		m.loadErr = nil
		m.ErrorMsg = ""
		m.Thumbs.SetCurrent(i)
		m.List.SetCurrent(i)
		m.savePosition()
		cmds = append(cmds, m.loadCurrent(), m.prefetch(), m.Thumbs.Request())
	}

	if m.ticker.Due() && !m.framePending {
		m.framePending = true
		cmds = append(cmds, frameCmd(m.frameInterval))
	}

	m.pendingImage += m.renderImage()
	return tea.Batch(cmds...)
}

// renderImage returns the commands replacing the drawn frame, or removing
// it when the viewer is closed or a popup covers it.
func (m *Model) renderImage() string {
	if !m.Viewer.IsOpen() || m.Popups.ActivePopup() != PopupNone || m.entry.Image == nil {
		return m.Renderer.Clear()
	}
	out, err := m.Renderer.Render(m.entry, m.Viewer.State().Transform, m.imageViewport())
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpImageRender, err)
	}
	return out
}
