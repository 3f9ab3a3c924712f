package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/editor"
	"github.com/isaacphi/forge/internal/ui/tui/components/input"
	"github.com/isaacphi/forge/internal/ui/tui/focus"
	"github.com/isaacphi/forge/internal/ui/tui/keymap"
	"github.com/isaacphi/forge/internal/ui/tui/theme"
)

const (
	fieldFolder   = "folder"
	fieldFilename = "filename"
)

// SaveSubmitMsg carries the chosen location for a new tool
type SaveSubmitMsg struct {
	Target editor.SaveTarget
}

// NewFolderRequestMsg asks for the new folder dialog
type NewFolderRequestMsg struct{}

// NewFolderSubmitMsg carries the name of a folder to create
type NewFolderSubmitMsg struct {
	Name string
}

// Save picks a folder and filename for a new tool. The first folder entry
// is the tools directory itself.
type Save struct {
	keyMap   *config.KeyMap
	theme    *theme.Theme
	folders  []string
	cursor   int
	filename *input.Model
	focus    *focus.Manager
}

func NewSave(folders []string, filename string, km *config.KeyMap, thm *theme.Theme) *Save {
	s := &Save{
		keyMap:   km,
		theme:    thm,
		filename: input.New(thm, "Filename", "tool.json"),
		focus:    focus.New(),
	}
	s.SetFolders(folders, "")
	s.filename.SetValue(filename)
	s.filename.SetWidth(50)
	s.focus.Register(fieldFilename, s.filename)
	s.focus.Register(fieldFolder, nil)
	s.focus.SetFocus(fieldFilename)
	return s
}

func (s *Save) Kind() editor.DialogKind { return editor.DialogSave }

// SetFolders replaces the folder choices and selects one by name
func (s *Save) SetFolders(folders []string, selected string) {
	s.folders = append([]string{""}, folders...)
	s.cursor = 0
	for i, f := range s.folders {
		if f == selected {
			s.cursor = i
		}
	}
}

// Target returns the current choice
func (s *Save) Target() editor.SaveTarget {
	return editor.SaveTarget{
		Folder:   s.folders[s.cursor],
		Filename: strings.TrimSpace(s.filename.Value()),
	}
}

func (s *Save) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keymap.Matches(msg, s.keyMap, config.KeyActionBack):
		return send(CloseMsg{})
	case msg.Type == tea.KeyEnter, keymap.Matches(msg, s.keyMap, config.KeyActionSave):
		return send(SaveSubmitMsg{Target: s.Target()})
	case keymap.Matches(msg, s.keyMap, config.KeyActionNewFolder):
		return send(NewFolderRequestMsg{})
	case keymap.Matches(msg, s.keyMap, config.KeyActionNextField):
		return s.focus.Next()
	case keymap.Matches(msg, s.keyMap, config.KeyActionPrevField):
		return s.focus.Prev()
	}

	if s.focus.Is(fieldFolder) {
		switch {
		case keymap.Matches(msg, s.keyMap, config.KeyActionUp):
			s.cursor = max(s.cursor-1, 0)
		case keymap.Matches(msg, s.keyMap, config.KeyActionDown):
			s.cursor = min(s.cursor+1, len(s.folders)-1)
		}
		return nil
	}
	return s.filename.Update(msg)
}

func (s *Save) View() string {
	var b strings.Builder
	label := s.theme.LabelStyle.Render("Folder")
	if s.focus.Is(fieldFolder) {
		label = s.theme.SelectedStyle.Render("> Folder")
	}
	b.WriteString(label)
	for i, f := range s.folders {
		name := f + "/"
		if f == "" {
			name = "(tools directory)"
		}
		if i == s.cursor {
			b.WriteString("\n" + s.theme.SelectedStyle.Render("* "+name))
		} else {
			b.WriteString("\n  " + name)
		}
	}

	newFolder := keymap.Binding(s.keyMap, config.KeyActionNewFolder, "").Help().Key
	return s.theme.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.theme.TitleStyle.Render("Save new tool"),
		s.filename.View(),
		b.String(),
		"",
		s.theme.FooterStyle.Render("enter to save, tab to pick a folder, "+newFolder+" for a new folder"),
	))
}

// NewFolder asks for a folder name
type NewFolder struct {
	keyMap *config.KeyMap
	theme  *theme.Theme
	name   *input.Model
}

func NewNewFolder(km *config.KeyMap, thm *theme.Theme) *NewFolder {
	n := &NewFolder{
		keyMap: km,
		theme:  thm,
		name:   input.New(thm, "Folder name", "weather"),
	}
	n.name.SetWidth(40)
	n.name.Focus()
	return n
}

func (n *NewFolder) Kind() editor.DialogKind { return editor.DialogNewFolder }

func (n *NewFolder) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keymap.Matches(msg, n.keyMap, config.KeyActionBack):
		return send(CloseMsg{})
	case msg.Type == tea.KeyEnter:
		return send(NewFolderSubmitMsg{Name: strings.TrimSpace(n.name.Value())})
	}
	return n.name.Update(msg)
}

func (n *NewFolder) View() string {
	return n.theme.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		n.theme.TitleStyle.Render("New folder"),
		n.name.View(),
	))
}
