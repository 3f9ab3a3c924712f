package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/editor"
	"github.com/isaacphi/forge/internal/ui/tui/components/input"
	"github.com/isaacphi/forge/internal/ui/tui/focus"
	"github.com/isaacphi/forge/internal/ui/tui/keymap"
	"github.com/isaacphi/forge/internal/ui/tui/theme"
)

const fieldRequired = "required"

// PropertySubmitMsg carries a filled property form. Original is the name
// being edited, empty for a new property.
type PropertySubmitMsg struct {
	Original string
	Form     editor.PropertyForm
}

// Property edits a single property
type Property struct {
	original    string
	keyMap      *config.KeyMap
	theme       *theme.Theme
	name        *input.Model
	typ         *input.Model
	description *input.Model
	enum        *input.Model
	items       *input.Model
	required    bool
	focus       *focus.Manager
}

func NewProperty(original string, form editor.PropertyForm, km *config.KeyMap, thm *theme.Theme) *Property {
	types := strings.Join(domain.PropertyTypes, ", ")
	p := &Property{
		original:    original,
		keyMap:      km,
		theme:       thm,
		name:        input.New(thm, "Name", "location"),
		typ:         input.New(thm, "Type", types),
		description: input.New(thm, "Description", ""),
		enum:        input.New(thm, "Allowed values", "comma separated, optional"),
		items:       input.New(thm, "Item type", "arrays only"),
		required:    form.Required,
		focus:       focus.New(),
	}
	p.name.SetValue(form.Name)
	p.typ.SetValue(form.Type)
	p.description.SetValue(form.Description)
	p.enum.SetValue(form.Enum)
	p.items.SetValue(form.ItemsType)

	for _, in := range []*input.Model{p.name, p.typ, p.description, p.enum, p.items} {
		in.SetWidth(50)
		p.focus.Register(in.Label, in)
	}
	p.focus.Register(fieldRequired, nil)
	p.focus.SetFocus(p.name.Label)
	return p
}

func (p *Property) Kind() editor.DialogKind { return editor.DialogProperty }

// Form returns what has been typed so far
func (p *Property) Form() editor.PropertyForm {
	return editor.PropertyForm{
		Name:        strings.TrimSpace(p.name.Value()),
		Type:        strings.TrimSpace(p.typ.Value()),
		Description: p.description.Value(),
		Enum:        p.enum.Value(),
		ItemsType:   strings.TrimSpace(p.items.Value()),
		Required:    p.required,
	}
}

func (p *Property) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keymap.Matches(msg, p.keyMap, config.KeyActionBack):
		return send(CloseMsg{})
	case msg.Type == tea.KeyEnter, keymap.Matches(msg, p.keyMap, config.KeyActionSave):
		return send(PropertySubmitMsg{Original: p.original, Form: p.Form()})
	case keymap.Matches(msg, p.keyMap, config.KeyActionNextField), msg.Type == tea.KeyDown:
		return p.focus.Next()
	case keymap.Matches(msg, p.keyMap, config.KeyActionPrevField), msg.Type == tea.KeyUp:
		return p.focus.Prev()
	}

	if p.focus.Is(fieldRequired) {
		if keymap.Matches(msg, p.keyMap, config.KeyActionToggleRequired) {
			p.required = !p.required
		}
		return nil
	}
	for _, in := range []*input.Model{p.name, p.typ, p.description, p.enum, p.items} {
		if in.Focused() {
			return in.Update(msg)
		}
	}
	return nil
}

func (p *Property) View() string {
	title := "Add property"
	if p.original != "" {
		title = "Edit " + p.original
	}

	check := "[ ]"
	if p.required {
		check = "[x]"
	}
	required := check + " required"
	if p.focus.Is(fieldRequired) {
		required = p.theme.SelectedStyle.Render(required)
	}

	return p.theme.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		p.theme.TitleStyle.Render(title),
		p.name.View(),
		p.typ.View(),
		p.description.View(),
		p.enum.View(),
		p.items.View(),
		required,
		"",
		p.theme.FooterStyle.Render("enter to apply, esc to discard"),
	))
}
