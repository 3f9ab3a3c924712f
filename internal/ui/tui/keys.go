package tui

import (
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/ui/tui/keymap"
	"github.com/isaacphi/forge/internal/ui/tui/screens"
)

// GetKeyMap returns all relevant keybindings for the current state
func (m *Model) GetKeyMap() keymap.KeyMap {
	keyMap := keymap.NewKeyMap(m.keyMap)

	// Dialogs describe their own keys
	if len(m.dialogs) > 0 {
		return keyMap
	}

	switch m.currentScreen {
	case screens.WizardScreen:
		keyMap.Merge(m.wizard.GetKeyMap())
	case screens.JSONScreen:
		keyMap.Merge(m.jsonEditor.GetKeyMap())
	default:
		keyMap.AddAction(keymap.SystemGroup, config.KeyActionQuit, "quit")
		keyMap.AddAction(keymap.SystemGroup, config.KeyActionToggleHelp, "toggle help")
		keyMap.Merge(m.browser.GetKeyMap())
	}
	return keyMap
}
