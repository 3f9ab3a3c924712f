package screens

import "github.com/isaacphi/forge/internal/editor"

// ScreenType represents a type of screen
type ScreenType int

const (
	BrowserScreen ScreenType = iota
	WizardScreen
	JSONScreen
)

func (s ScreenType) String() string {
	switch s {
	case WizardScreen:
		return "wizard"
	case JSONScreen:
		return "json"
	}
	return "browser"
}

// ForMode returns the editor screen for a session mode
func ForMode(mode editor.Mode) ScreenType {
	if mode == editor.ModeJSON {
		return JSONScreen
	}
	return WizardScreen
}

// RefreshMsg asks the browser to reload tools from disk
type RefreshMsg struct{}

// NewToolMsg opens an editor on a new tool
type NewToolMsg struct {
	Mode editor.Mode
}

// EditToolMsg opens an editor on a stored tool
type EditToolMsg struct {
	ID   string
	Mode editor.Mode
}

// DeleteToolMsg starts a delete of a stored tool
type DeleteToolMsg struct {
	ID string
}

// SaveMsg asks to save the open session
type SaveMsg struct{}

// CancelMsg discards the open session
type CancelMsg struct{}

// SwitchModeMsg moves the open session to another editor
type SwitchModeMsg struct {
	Mode editor.Mode
}

// PropertyDialogMsg opens the property dialog. Name is empty for a new
// property.
type PropertyDialogMsg struct {
	Name string
}

// ErrorMsg reports a failure to the user
type ErrorMsg struct {
	Err error
}
