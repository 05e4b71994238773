package app

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/ui/helpbindings"
	"github.com/llehouerou/peek/internal/ui/popup"
	"github.com/llehouerou/peek/internal/ui/textinput"
)

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupJump
)

// jumpContext tags the "go to image" prompt result.
type jumpContext struct{}

// PopupManager manages the modal popups.
type PopupManager struct {
	help     helpbindings.Model
	showHelp bool
	jump     textinput.Model
	showJump bool

	width  int
	height int
}

// NewPopupManager creates a PopupManager with initialized components.
func NewPopupManager() PopupManager {
	return PopupManager{
		help: helpbindings.New(),
		jump: textinput.New(),
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.help.SetSize(width, height)
	if p.showJump {
		p.jump.SetSize(p.promptWidth(), height)
	}
}

func (p *PopupManager) promptWidth() int {
	return popup.SizePrompt.ContentWidth(p.width)
}

// ActivePopup returns which popup is currently active (if any).
func (p *PopupManager) ActivePopup() PopupType {
	if p.showHelp {
		return PopupHelp
	}
	if p.showJump {
		return PopupJump
	}
	return PopupNone
}

// ShowHelp displays the help popup with the given contexts.
func (p *PopupManager) ShowHelp(contexts []string) {
	p.help.SetContexts(contexts)
	p.help.SetSize(p.width, p.height)
	p.showHelp = true
}

// HideHelp hides the help popup.
func (p *PopupManager) HideHelp() {
	p.showHelp = false
}

// ShowJump opens the "go to image" prompt. Only digits can be typed.
func (p *PopupManager) ShowJump(total int) tea.Cmd {
	p.jump.Start(jumpTitle(total), "", jumpContext{}, p.promptWidth(), p.height)
	p.jump.SetAccept(isDigit)
	p.showJump = true
	return p.jump.Init()
}

// HideJump closes the prompt.
func (p *PopupManager) HideJump() {
	p.showJump = false
	p.jump.Reset()
}

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *PopupManager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch p.ActivePopup() {
	case PopupHelp:
		_, cmd := p.help.Update(msg)
		return true, cmd
	case PopupJump:
		_, cmd := p.jump.Update(msg)
		return true, cmd
	case PopupNone:
	}
	return false, nil
}

// Update forwards non-key messages, such as the cursor blink, to the
// prompt.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	if !p.showJump {
		return nil
	}
	_, cmd := p.jump.Update(msg)
	return cmd
}

// RenderOverlay renders the active popup on top of the base view.
func (p *PopupManager) RenderOverlay(base string) string {
	var content string
	size := popup.SizeAuto
	switch p.ActivePopup() {
	case PopupHelp:
		content = p.help.View()
	case PopupJump:
		content = p.jump.View()
		size = popup.SizePrompt
	case PopupNone:
		return base
	}
	if content == "" {
		return base
	}
	return popup.Overlay(base, popup.Box(content, p.width, p.height, size), p.width, p.height)
}

func jumpTitle(total int) string {
	if total <= 1 {
		return "Go to image"
	}
	return "Go to image (1-" + strconv.Itoa(total) + ")"
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
