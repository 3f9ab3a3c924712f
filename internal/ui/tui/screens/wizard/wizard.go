package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/editor"
	"github.com/isaacphi/forge/internal/ui/tui/components/input"
	"github.com/isaacphi/forge/internal/ui/tui/focus"
	"github.com/isaacphi/forge/internal/ui/tui/keymap"
	"github.com/isaacphi/forge/internal/ui/tui/screens"
	"github.com/isaacphi/forge/internal/ui/tui/screens/browser"
	"github.com/isaacphi/forge/internal/ui/tui/theme"
)

// Focus stops
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldProperties  = "properties"
)

// Model edits the open session field by field
type Model struct {
	ctrl        *editor.Controller
	keyMap      *config.KeyMap
	theme       *theme.Theme
	name        *input.Model
	description *input.Model
	focus       *focus.Manager
	cursor      int
	width       int
	height      int
}

func New(ctrl *editor.Controller, km *config.KeyMap, thm *theme.Theme) *Model {
	m := &Model{
		ctrl:        ctrl,
		keyMap:      km,
		theme:       thm,
		name:        input.New(thm, "Name", "get_weather"),
		description: input.New(thm, "Description", "What the tool does"),
		focus:       focus.New(),
	}
	m.name.SetCharLimit(64)
	m.focus.Register(FieldName, m.name)
	m.focus.Register(FieldDescription, m.description)
	m.focus.Register(FieldProperties, nil)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Load copies the session into the form and focuses the name
func (m *Model) Load() tea.Cmd {
	s := m.ctrl.Session()
	if s == nil {
		return nil
	}
	m.name.SetValue(s.Tool.Name)
	m.description.SetValue(s.Tool.Description)
	m.cursor = 0
	return m.focus.SetFocus(FieldName)
}

// SetSize sets the size of the wizard
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.name.SetWidth(min(width-4, 72))
	m.description.SetWidth(min(width-4, 72))
}

// Focused returns the focused field
func (m *Model) Focused() string {
	return m.focus.Current()
}

// Cursor returns the highlighted property name
func (m *Model) Cursor() (string, bool) {
	names := m.names()
	if len(names) == 0 {
		return "", false
	}
	m.cursor = min(m.cursor, len(names)-1)
	return names[m.cursor], true
}

// SelectProperty moves the cursor to name
func (m *Model) SelectProperty(name string) {
	for i, candidate := range m.names() {
		if candidate == name {
			m.cursor = i
			return
		}
	}
}

func (m *Model) names() []string {
	s := m.ctrl.Session()
	if s == nil {
		return nil
	}
	return s.Tool.Parameters.Names()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	switch {
	case keymap.Matches(keyMsg, m.keyMap, config.KeyActionSave):
		return m, send(screens.SaveMsg{})
	case keymap.Matches(keyMsg, m.keyMap, config.KeyActionSwitchMode):
		return m, send(screens.SwitchModeMsg{Mode: editor.ModeJSON})
	case keymap.Matches(keyMsg, m.keyMap, config.KeyActionBack):
		return m, send(screens.CancelMsg{})
	case keymap.Matches(keyMsg, m.keyMap, config.KeyActionNextField):
		return m, m.focus.Next()
	case keymap.Matches(keyMsg, m.keyMap, config.KeyActionPrevField):
		return m, m.focus.Prev()
	}

	if m.focus.Is(FieldProperties) {
		return m, m.updateProperties(keyMsg)
	}

	if keyMsg.Type == tea.KeyEnter {
		return m, m.focus.Next()
	}
	return m, m.updateInputs(msg)
}

// updateInputs feeds msg to the focused input and pushes its value into the
// session when it changed
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	s := m.ctrl.Session()
	if s == nil {
		return nil
	}

	var cmd tea.Cmd
	var err error
	switch m.focus.Current() {
	case FieldName:
		cmd = m.name.Update(msg)
		if v := m.name.Value(); v != s.Tool.Name {
			err = m.ctrl.SetName(v)
		}
	case FieldDescription:
		cmd = m.description.Update(msg)
		if v := m.description.Value(); v != s.Tool.Description {
			err = m.ctrl.SetDescription(v)
		}
	}
	if err != nil {
		return tea.Batch(cmd, sendErr(err))
	}
	return cmd
}

func (m *Model) updateProperties(msg tea.KeyMsg) tea.Cmd {
	names := m.names()
	switch {
	case keymap.Matches(msg, m.keyMap, config.KeyActionAddProperty):
		return send(screens.PropertyDialogMsg{})
	case keymap.Matches(msg, m.keyMap, config.KeyActionUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case keymap.Matches(msg, m.keyMap, config.KeyActionDown):
		if m.cursor < len(names)-1 {
			m.cursor++
		}
	case keymap.Matches(msg, m.keyMap, config.KeyActionEdit):
		if name, ok := m.Cursor(); ok {
			return send(screens.PropertyDialogMsg{Name: name})
		}
	case keymap.Matches(msg, m.keyMap, config.KeyActionDelete):
		if name, ok := m.Cursor(); ok {
			if err := m.ctrl.DeleteProperty(name); err != nil {
				return sendErr(err)
			}
		}
	case keymap.Matches(msg, m.keyMap, config.KeyActionToggleRequired):
		if name, ok := m.Cursor(); ok {
			if _, err := m.ctrl.ToggleRequired(name); err != nil {
				return sendErr(err)
			}
		}
	}
	return nil
}

// GetKeyMap returns the wizard bindings for the focused field
func (m *Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.keyMap)
	km.AddAction(keymap.NavigationGroup, config.KeyActionNextField, "next field")
	km.AddAction(keymap.NavigationGroup, config.KeyActionPrevField, "previous field")
	km.AddAction(keymap.SystemGroup, config.KeyActionSave, "save")
	km.AddAction(keymap.SystemGroup, config.KeyActionSwitchMode, "json")
	km.AddAction(keymap.SystemGroup, config.KeyActionBack, "cancel")
	if m.focus.Is(FieldProperties) {
		km.AddAction(keymap.ActionGroup, config.KeyActionAddProperty, "add")
		km.AddAction(keymap.ActionGroup, config.KeyActionEdit, "edit")
		km.AddAction(keymap.ActionGroup, config.KeyActionDelete, "delete")
		km.AddAction(keymap.ActionGroup, config.KeyActionToggleRequired, "required")
	}
	return km
}

func (m *Model) View() string {
	s := m.ctrl.Session()
	if s == nil {
		return ""
	}

	sections := []string{
		m.name.View(),
		m.description.View(),
		m.propertiesView(s),
	}
	if err := s.Tool.Validate(); err != nil {
		sections = append(sections, m.theme.ErrorStyle.Render(err.Error()))
	}
	for _, warning := range s.Tool.Warnings() {
		sections = append(sections, m.theme.FooterStyle.Render("warning: "+warning))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) propertiesView(s *editor.Session) string {
	var b strings.Builder

	label := m.theme.LabelStyle.Render("Properties")
	if m.focus.Is(FieldProperties) {
		label = m.theme.SelectedStyle.Render("> Properties")
	}
	b.WriteString(label)
	b.WriteString("\n")

	names := s.Tool.Parameters.Names()
	if len(names) == 0 {
		b.WriteString(m.theme.FooterStyle.Render("none yet, press a to add one"))
		return b.String()
	}
	for i, name := range names {
		line := browser.PropertyLine(name, s.Tool.Parameters.Properties[name], s.Tool.Parameters.IsRequired(name), m.theme)
		if m.focus.Is(FieldProperties) && i == m.cursor {
			line = m.theme.SelectedStyle.Render(">") + line[1:]
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func sendErr(err error) tea.Cmd {
	return send(screens.ErrorMsg{Err: err})
}
