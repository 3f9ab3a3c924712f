package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/forge/internal/config"
)

const (
	SystemGroup = iota
	NavigationGroup
	ActionGroup
)

// KeyMap is a grouped set of bindings built from the configured keys. It
// satisfies help.KeyMap.
type KeyMap struct {
	Groups map[int][]key.Binding
	cfg    *config.KeyMap
}

// NewKeyMap creates an empty keymap that resolves actions against cfg
func NewKeyMap(cfg *config.KeyMap) KeyMap {
	return KeyMap{
		Groups: make(map[int][]key.Binding),
		cfg:    cfg,
	}
}

// Binding builds the binding for a configured action
func Binding(cfg *config.KeyMap, action, desc string) key.Binding {
	keys := cfg.GetKeys(action)
	helpKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		helpKeys = append(helpKeys, k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(helpKeys, "/"), desc),
	)
}

// Matches reports whether msg triggers the configured action
func Matches(msg tea.KeyMsg, cfg *config.KeyMap, action string) bool {
	return key.Matches(msg, Binding(cfg, action, ""))
}

// Add adds a key binding to the keymap
func (k *KeyMap) Add(group int, binding key.Binding) {
	k.Groups[group] = append(k.Groups[group], binding)
}

// AddAction adds the binding for a configured action
func (k *KeyMap) AddAction(group int, action, desc string) {
	k.Add(group, Binding(k.cfg, action, desc))
}

// Merge combines two keymaps
func (k *KeyMap) Merge(other KeyMap) {
	for group, bindings := range other.Groups {
		for _, binding := range bindings {
			k.Add(group, binding)
		}
	}
}

// ShortHelp returns the system group, for the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	var bindings []key.Binding
	bindings = append(bindings, k.Groups[ActionGroup]...)
	bindings = append(bindings, k.Groups[SystemGroup]...)
	return bindings
}

// FullHelp returns one column per group
func (k KeyMap) FullHelp() [][]key.Binding {
	var result [][]key.Binding
	for _, group := range []int{SystemGroup, NavigationGroup, ActionGroup} {
		if bindings := k.Groups[group]; len(bindings) > 0 {
			result = append(result, bindings)
		}
	}
	return result
}
