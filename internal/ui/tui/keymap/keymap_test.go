package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/forge/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestBinding_UsesConfiguredKeys(t *testing.T) {
	km := &config.KeyMap{ToggleRequired: []string{" ", "x"}, Save: []string{"ctrl+s"}}

	b := Binding(km, config.KeyActionToggleRequired, "required")
	assert.Equal(t, []string{" ", "x"}, b.Keys())
	assert.Equal(t, "space/x", b.Help().Key)
	assert.Equal(t, "required", b.Help().Desc)

	assert.True(t, Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, km, config.KeyActionSave))
	assert.True(t, Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, km, config.KeyActionToggleRequired))
	assert.False(t, Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, km, config.KeyActionSave))
}

func TestKeyMap_GroupsAndMerge(t *testing.T) {
	cfg := &config.KeyMap{Quit: []string{"q"}, Up: []string{"up"}, NewTool: []string{"n"}}

	a := NewKeyMap(cfg)
	a.AddAction(SystemGroup, config.KeyActionQuit, "quit")
	b := NewKeyMap(cfg)
	b.AddAction(NavigationGroup, config.KeyActionUp, "up")
	b.AddAction(ActionGroup, config.KeyActionNewTool, "new")
	a.Merge(b)

	full := a.FullHelp()
	assert.Len(t, full, 3)
	assert.Len(t, a.ShortHelp(), 2)
}
