// Package textinput provides a single-line prompt popup built on the
// bubbles text input.
package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/peek/internal/ui"
	"github.com/llehouerou/peek/internal/ui/action"
	"github.com/llehouerou/peek/internal/ui/popup"
	"github.com/llehouerou/peek/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Result is the outcome of a prompt. Context is the value given to Start.
type Result struct {
	Text     string
	Context  any
	Canceled bool // closed with esc
}

func (Result) ActionType() string { return "textinput.result" }

// ActionMsg wraps a for delivery to the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "textinput", Action: a}
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model is a text prompt popup.
type Model struct {
	ui.Base
	title   string
	input   textinput.Model
	accept  func(rune) bool
	context any // passed through to Result action
}

// New creates a new text input model.
func New() Model {
	return Model{input: newInput()}
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.PromptStyle = styles.T().S().Muted
	ti.TextStyle = styles.T().S().Base
	return ti
}

// Start initializes the input with a title and optional initial text.
func (m *Model) Start(title, initialText string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input = newInput()
	m.input.SetValue(initialText)
	m.input.Focus()
	m.SetSize(width, height)
}

// SetAccept restricts typed characters to those accepted by f. Nil
// accepts everything printable.
func (m *Model) SetAccept(f func(rune) bool) {
	m.accept = f
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.context = nil
	m.accept = nil
	m.input = newInput()
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-len(m.input.Prompt)-4, 1)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true, Context: ctx})
			}
		case "enter":
			text := m.input.Value()
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Text: text, Context: ctx})
			}
		}
		if key.Type == tea.KeyRunes && m.accept != nil {
			for _, r := range key.Runes {
				if !m.accept(r) {
					return m, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	title := titleStyle().Render(m.title)
	hint := hintStyle().Render("Enter: confirm, Esc: cancel")
	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
