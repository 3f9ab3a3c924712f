package focus

import tea "github.com/charmbracelet/bubbletea"

// FocusableComponent is satisfied by *textinput.Model and *textarea.Model
type FocusableComponent interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// Manager cycles focus through components in registration order. A nil
// component is a focus stop that the owner draws itself, such as a list.
type Manager struct {
	ids        []string
	components map[string]FocusableComponent
	current    int
}

// New creates a new focus manager
func New() *Manager {
	return &Manager{
		components: make(map[string]FocusableComponent),
	}
}

// Register adds a focus stop
func (m *Manager) Register(id string, component FocusableComponent) {
	m.ids = append(m.ids, id)
	m.components[id] = component
}

// SetFocus focuses a specific component
func (m *Manager) SetFocus(id string) tea.Cmd {
	for i, candidate := range m.ids {
		if candidate == id {
			return m.focusIndex(i)
		}
	}
	return nil
}

func (m *Manager) Next() tea.Cmd {
	if len(m.ids) == 0 {
		return nil
	}
	return m.focusIndex((m.current + 1) % len(m.ids))
}

func (m *Manager) Prev() tea.Cmd {
	if len(m.ids) == 0 {
		return nil
	}
	return m.focusIndex((m.current - 1 + len(m.ids)) % len(m.ids))
}

func (m *Manager) focusIndex(i int) tea.Cmd {
	m.BlurAll()
	m.current = i
	if comp := m.components[m.ids[i]]; comp != nil {
		return comp.Focus()
	}
	return nil
}

// BlurAll blurs all components
func (m *Manager) BlurAll() {
	for _, comp := range m.components {
		if comp != nil {
			comp.Blur()
		}
	}
}

// Current returns the ID of the focused stop
func (m *Manager) Current() string {
	if len(m.ids) == 0 {
		return ""
	}
	return m.ids[m.current]
}

// Is reports whether id has focus
func (m *Manager) Is(id string) bool {
	return m.Current() == id
}
