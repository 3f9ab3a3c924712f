package browser

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/editor"
	"github.com/isaacphi/forge/internal/repository"
	"github.com/isaacphi/forge/internal/ui/tui/keymap"
	"github.com/isaacphi/forge/internal/ui/tui/screens"
	"github.com/isaacphi/forge/internal/ui/tui/theme"
)

// Lister is the part of the tool service the browser reads from
type Lister interface {
	List(ctx context.Context) []repository.Entry
}

type toolItem struct {
	entry repository.Entry
}

func (i toolItem) Title() string { return i.entry.ID }

func (i toolItem) Description() string {
	if i.entry.Err != nil {
		return "invalid: " + i.entry.Err.Error()
	}
	if i.entry.Tool.Description == "" {
		return fmt.Sprintf("%d properties", len(i.entry.Tool.Parameters.Properties))
	}
	return i.entry.Tool.Description
}

func (i toolItem) FilterValue() string {
	if i.entry.Tool != nil {
		return i.entry.ID + " " + i.entry.Tool.Name
	}
	return i.entry.ID
}

// LoadedMsg carries the result of a directory scan
type LoadedMsg struct {
	Entries []repository.Entry
}

// Model lists the tools directory with a preview of the selected tool
type Model struct {
	ctx         context.Context
	tools       Lister
	keyMap      *config.KeyMap
	theme       *theme.Theme
	list        list.Model
	entries     []repository.Entry
	toolsDir    string
	defaultMode editor.Mode
	width       int
	height      int
}

func New(ctx context.Context, tools Lister, km *config.KeyMap, thm *theme.Theme, toolsDir string, defaultMode editor.Mode) *Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Tools"
	l.Styles.Title = thm.HeaderStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return &Model{
		ctx:         ctx,
		tools:       tools,
		keyMap:      km,
		theme:       thm,
		list:        l,
		toolsDir:    toolsDir,
		defaultMode: defaultMode,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.Load()
}

// Load rescans the tools directory
func (m *Model) Load() tea.Cmd {
	ctx, tools := m.ctx, m.tools
	return func() tea.Msg {
		return LoadedMsg{Entries: tools.List(ctx)}
	}
}

// SetSize sets the size of the browser
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(m.listWidth(), height)
}

func (m *Model) listWidth() int {
	return m.width * 2 / 5
}

// Filtering reports whether keys are going to the list filter
func (m *Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Entries returns the last loaded scan
func (m *Model) Entries() []repository.Entry {
	return m.entries
}

// Selected returns the highlighted entry
func (m *Model) Selected() (repository.Entry, bool) {
	item, ok := m.list.SelectedItem().(toolItem)
	if !ok {
		return repository.Entry{}, false
	}
	return item.entry, true
}

// Select highlights the entry with id, if present
func (m *Model) Select(id string) {
	for i, entry := range m.entries {
		if entry.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		selected, hadSelection := m.Selected()
		m.entries = msg.Entries
		items := make([]list.Item, len(msg.Entries))
		for i, entry := range msg.Entries {
			items[i] = toolItem{entry: entry}
		}
		cmd := m.list.SetItems(items)
		if hadSelection {
			m.Select(selected.ID)
		}
		return m, cmd

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case keymap.Matches(msg, m.keyMap, config.KeyActionNewTool):
			return m, send(screens.NewToolMsg{Mode: editor.ModeWizard})
		case keymap.Matches(msg, m.keyMap, config.KeyActionNewJSON):
			return m, send(screens.NewToolMsg{Mode: editor.ModeJSON})
		case keymap.Matches(msg, m.keyMap, config.KeyActionRefresh):
			return m, m.Load()
		case keymap.Matches(msg, m.keyMap, config.KeyActionEdit):
			if entry, ok := m.Selected(); ok {
				mode := m.defaultMode
				// Broken files can only be repaired as text
				if entry.Err != nil {
					mode = editor.ModeJSON
				}
				return m, send(screens.EditToolMsg{ID: entry.ID, Mode: mode})
			}
			return m, nil
		case keymap.Matches(msg, m.keyMap, config.KeyActionEditJSON):
			if entry, ok := m.Selected(); ok {
				return m, send(screens.EditToolMsg{ID: entry.ID, Mode: editor.ModeJSON})
			}
			return m, nil
		case keymap.Matches(msg, m.keyMap, config.KeyActionDelete):
			if entry, ok := m.Selected(); ok {
				return m, send(screens.DeleteToolMsg{ID: entry.ID})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// GetKeyMap returns the browser bindings
func (m *Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.keyMap)
	km.AddAction(keymap.NavigationGroup, config.KeyActionUp, "up")
	km.AddAction(keymap.NavigationGroup, config.KeyActionDown, "down")
	km.AddAction(keymap.ActionGroup, config.KeyActionNewTool, "new")
	km.AddAction(keymap.ActionGroup, config.KeyActionNewJSON, "new json")
	km.AddAction(keymap.ActionGroup, config.KeyActionEdit, "edit")
	km.AddAction(keymap.ActionGroup, config.KeyActionEditJSON, "edit json")
	km.AddAction(keymap.ActionGroup, config.KeyActionDelete, "delete")
	km.AddAction(keymap.ActionGroup, config.KeyActionRefresh, "refresh")
	return km
}

func (m *Model) View() string {
	listView := m.list.View()
	if len(m.entries) == 0 {
		listView = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.HeaderStyle.Render("Tools"),
			"",
			fmt.Sprintf("No tools in %s yet.", m.toolsDir),
			"Press n to create one.",
		)
	}
	listView = lipgloss.NewStyle().Width(m.listWidth()).Render(listView)

	previewWidth := m.width - m.listWidth() - 4
	if previewWidth < 10 {
		return listView
	}
	preview := m.theme.PreviewStyle.
		Width(previewWidth).
		Height(max(m.height-2, 1)).
		Render(m.preview())
	return lipgloss.JoinHorizontal(lipgloss.Top, listView, preview)
}

func (m *Model) preview() string {
	entry, ok := m.Selected()
	if !ok {
		return m.theme.FooterStyle.Render("Nothing selected")
	}
	if entry.Err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.ErrorStyle.Render("Cannot load "+entry.ID),
			entry.Err.Error(),
			"",
			"Press E to repair it in the JSON editor.",
		)
	}
	return RenderTool(*entry.Tool, m.theme)
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
