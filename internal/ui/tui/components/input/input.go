package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/forge/internal/ui/tui/theme"
)

// Model is a labeled single line text input
type Model struct {
	Label     string
	textInput textinput.Model
	theme     *theme.Theme
	width     int
}

// New creates a new input model
func New(thm *theme.Theme, label, placeholder string) *Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 500
	ti.Width = 60

	return &Model{
		Label:     label,
		textInput: ti,
		theme:     thm,
		width:     60,
	}
}

// SetWidth sets the width of the input
func (m *Model) SetWidth(width int) {
	m.width = width
	m.textInput.Width = width - 4 // Account for padding and borders
}

func (m *Model) Focus() tea.Cmd {
	return m.textInput.Focus()
}

func (m *Model) Blur() {
	m.textInput.Blur()
}

func (m *Model) Focused() bool {
	return m.textInput.Focused()
}

func (m *Model) SetCharLimit(n int) {
	m.textInput.CharLimit = n
}

// Value returns the current input value
func (m *Model) Value() string {
	return m.textInput.Value()
}

// SetValue sets the input value
func (m *Model) SetValue(value string) {
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
}

// Update forwards msg to the text input
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

// View renders the label and the bordered input
func (m *Model) View() string {
	var b strings.Builder

	if m.Label != "" {
		b.WriteString(m.theme.LabelStyle.Render(m.Label))
		b.WriteString("\n")
	}
	style := m.theme.InputStyle
	if m.Focused() {
		style = m.theme.FocusedInput
	}
	b.WriteString(style.Width(m.width).Render(m.textInput.View()))

	return b.String()
}
