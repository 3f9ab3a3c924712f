package jsoneditor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/editor"
	"github.com/isaacphi/forge/internal/ui/tui/keymap"
	"github.com/isaacphi/forge/internal/ui/tui/screens"
	"github.com/isaacphi/forge/internal/ui/tui/theme"
)

// Model edits the open session as raw JSON text
type Model struct {
	ctrl     *editor.Controller
	keyMap   *config.KeyMap
	theme    *theme.Theme
	textarea textarea.Model
	tabSize  int
	width    int
	height   int
}

func New(ctrl *editor.Controller, km *config.KeyMap, thm *theme.Theme, tabSize int) *Model {
	ta := textarea.New()
	ta.Placeholder = "{}"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	if tabSize < 1 {
		tabSize = 2
	}

	return &Model{
		ctrl:     ctrl,
		keyMap:   km,
		theme:    thm,
		textarea: ta,
		tabSize:  tabSize,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Load copies the session text into the editor
func (m *Model) Load() tea.Cmd {
	s := m.ctrl.Session()
	if s == nil {
		return nil
	}
	m.textarea.SetValue(s.Text)
	return m.textarea.Focus()
}

// Value returns the editor text
func (m *Model) Value() string {
	return m.textarea.Value()
}

// SetSize sets the size of the editor
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.textarea.SetWidth(width)
	m.textarea.SetHeight(max(height-2, 3))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keymap.Matches(keyMsg, m.keyMap, config.KeyActionSave):
			return m, send(screens.SaveMsg{})
		case keymap.Matches(keyMsg, m.keyMap, config.KeyActionSwitchMode):
			return m, send(screens.SwitchModeMsg{Mode: editor.ModeWizard})
		case keymap.Matches(keyMsg, m.keyMap, config.KeyActionBack):
			return m, send(screens.CancelMsg{})
		case keyMsg.Type == tea.KeyTab:
			m.textarea.InsertString(strings.Repeat(" ", m.tabSize))
			return m, m.sync()
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, tea.Batch(cmd, m.sync())
}

func (m *Model) sync() tea.Cmd {
	s := m.ctrl.Session()
	if s == nil || s.Text == m.textarea.Value() {
		return nil
	}
	if err := m.ctrl.SetText(m.textarea.Value()); err != nil {
		return send(screens.ErrorMsg{Err: err})
	}
	return nil
}

// GetKeyMap returns the JSON editor bindings
func (m *Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.keyMap)
	km.AddAction(keymap.SystemGroup, config.KeyActionSave, "save")
	km.AddAction(keymap.SystemGroup, config.KeyActionSwitchMode, "wizard")
	km.AddAction(keymap.SystemGroup, config.KeyActionBack, "cancel")
	return km
}

func (m *Model) View() string {
	status := m.theme.StatusStyle.Render("valid")
	if err := m.ctrl.Validate(); err != nil {
		status = m.theme.ErrorStyle.Render(err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.textarea.View(), status)
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
