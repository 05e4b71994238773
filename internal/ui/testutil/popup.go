package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/ui/action"
	"github.com/llehouerou/peek/internal/ui/popup"
)

// namedKeys maps the key names used by bubbletea's KeyMsg.String to their
// key types.
var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"backspace": tea.KeyBackspace,
	"tab":       tea.KeyTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+u":    tea.KeyCtrlU,
}

// KeyMsg builds the key press whose String() is name. Unknown names are
// typed as runes.
func KeyMsg(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// PopupHarness drives a popup in tests and records the commands it
// returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness wraps p, recording its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the popup being driven.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

func (h *PopupHarness) View() string {
	return h.popup.View()
}

// Send delivers msg and returns the popup's command.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Press sends one key press per name, see KeyMsg.
func (h *PopupHarness) Press(names ...string) {
	for _, name := range names {
		h.Send(KeyMsg(name))
	}
}

// Type sends each rune of text as its own key press.
func (h *PopupHarness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Commands returns the commands recorded since creation or the last
// ClearCommands.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

func (h *PopupHarness) ClearCommands() {
	h.cmds = nil
}

// LastAction runs the most recent command and returns the action it
// reports, or nil when it reports none.
func (h *PopupHarness) LastAction() action.Action {
	msg, ok := ExecuteCmd(h.LastCommand()).(action.Msg)
	if !ok {
		return nil
	}
	return msg.Action
}

// ExecuteCmd runs cmd and returns its message; nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
