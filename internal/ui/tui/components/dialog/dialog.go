package dialog

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/editor"
	"github.com/isaacphi/forge/internal/ui/tui/keymap"
	"github.com/isaacphi/forge/internal/ui/tui/theme"
)

// Dialog is a modal drawn over the current screen. It only sees key
// presses and answers with messages.
type Dialog interface {
	Kind() editor.DialogKind
	Update(msg tea.KeyMsg) tea.Cmd
	View() string
}

// CloseMsg dismisses the top dialog
type CloseMsg struct{}

// ConfirmMsg answers a confirm dialog
type ConfirmMsg struct {
	Yes bool
}

// Message shows an error until dismissed
type Message struct {
	dialog editor.Dialog
	keyMap *config.KeyMap
	theme  *theme.Theme
}

func NewMessage(d editor.Dialog, km *config.KeyMap, thm *theme.Theme) *Message {
	return &Message{dialog: d, keyMap: km, theme: thm}
}

func (m *Message) Kind() editor.DialogKind { return m.dialog.Kind }

func (m *Message) Update(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter || keymap.Matches(msg, m.keyMap, config.KeyActionBack) {
		return send(CloseMsg{})
	}
	return nil
}

func (m *Message) View() string {
	title := m.theme.ErrorStyle.Render(m.dialog.Title)
	return m.theme.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.NewStyle().Width(60).Render(m.dialog.Message),
		"",
		m.theme.FooterStyle.Render("enter to dismiss"),
	))
}

// Confirm asks a yes or no question
type Confirm struct {
	dialog editor.Dialog
	keyMap *config.KeyMap
	theme  *theme.Theme
}

func NewConfirm(d editor.Dialog, km *config.KeyMap, thm *theme.Theme) *Confirm {
	return &Confirm{dialog: d, keyMap: km, theme: thm}
}

func (c *Confirm) Kind() editor.DialogKind { return c.dialog.Kind }

// Target is the id the question is about
func (c *Confirm) Target() string { return c.dialog.Target }

func (c *Confirm) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keymap.Matches(msg, c.keyMap, config.KeyActionConfirm):
		return send(ConfirmMsg{Yes: true})
	case keymap.Matches(msg, c.keyMap, config.KeyActionBack), msg.String() == "n", msg.Type == tea.KeyEnter:
		return send(ConfirmMsg{Yes: false})
	}
	return nil
}

func (c *Confirm) View() string {
	return c.theme.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		c.theme.TitleStyle.Render(c.dialog.Title),
		"",
		c.dialog.Message,
		"",
		c.theme.FooterStyle.Render(keymap.Binding(c.keyMap, config.KeyActionConfirm, "").Help().Key+" to confirm, any of n/esc/enter to keep"),
	))
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
