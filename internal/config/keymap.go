package config

import "encoding/json"

// Key bindings
const (
	KeyActionQuit           = "quit"
	KeyActionToggleHelp     = "toggleHelp"
	KeyActionBack           = "back"
	KeyActionUp             = "up"
	KeyActionDown           = "down"
	KeyActionNewTool        = "newTool"
	KeyActionNewJSON        = "newJSON"
	KeyActionEdit           = "edit"
	KeyActionEditJSON       = "editJSON"
	KeyActionDelete         = "delete"
	KeyActionRefresh        = "refresh"
	KeyActionSave           = "save"
	KeyActionSwitchMode     = "switchMode"
	KeyActionAddProperty    = "addProperty"
	KeyActionToggleRequired = "toggleRequired"
	KeyActionNextField      = "nextField"
	KeyActionPrevField      = "prevField"
	KeyActionNewFolder      = "newFolder"
	KeyActionConfirm        = "confirm"
)

type KeyMap struct {
	Quit           []string `mapstructure:"quit" json:"quit" jsonschema:"description=Exit the application,default=ctrl+c"`
	ToggleHelp     []string `mapstructure:"toggleHelp" json:"toggleHelp" jsonschema:"description=Toggle help display,default=?"`
	Back           []string `mapstructure:"back" json:"back" jsonschema:"description=Close the current dialog or editor,default=esc"`
	Up             []string `mapstructure:"up" json:"up" jsonschema:"description=Move up,default=up"`
	Down           []string `mapstructure:"down" json:"down" jsonschema:"description=Move down,default=down"`
	NewTool        []string `mapstructure:"newTool" json:"newTool" jsonschema:"description=Create a tool with the wizard,default=n"`
	NewJSON        []string `mapstructure:"newJSON" json:"newJSON" jsonschema:"description=Create a tool in the JSON editor,default=N"`
	Edit           []string `mapstructure:"edit" json:"edit" jsonschema:"description=Edit the selected tool,default=enter"`
	EditJSON       []string `mapstructure:"editJSON" json:"editJSON" jsonschema:"description=Edit the selected tool as JSON,default=E"`
	Delete         []string `mapstructure:"delete" json:"delete" jsonschema:"description=Delete the selected tool,default=d"`
	Refresh        []string `mapstructure:"refresh" json:"refresh" jsonschema:"description=Reload tools from disk,default=r"`
	Save           []string `mapstructure:"save" json:"save" jsonschema:"description=Save the open tool,default=ctrl+s"`
	SwitchMode     []string `mapstructure:"switchMode" json:"switchMode" jsonschema:"description=Switch between wizard and JSON,default=ctrl+t"`
	AddProperty    []string `mapstructure:"addProperty" json:"addProperty" jsonschema:"description=Add a property in the wizard,default=a"`
	ToggleRequired []string `mapstructure:"toggleRequired" json:"toggleRequired" jsonschema:"description=Toggle whether a property is required,default=x"`
	NextField      []string `mapstructure:"nextField" json:"nextField" jsonschema:"description=Focus the next field,default=tab"`
	PrevField      []string `mapstructure:"prevField" json:"prevField" jsonschema:"description=Focus the previous field,default=shift+tab"`
	NewFolder      []string `mapstructure:"newFolder" json:"newFolder" jsonschema:"description=Create a folder in the save dialog,default=ctrl+n"`
	Confirm        []string `mapstructure:"confirm" json:"confirm" jsonschema:"description=Confirm a prompt,default=y"`

	keyCache map[string][]string
}

// Get key bindings for an action
func (k *KeyMap) GetKeys(action string) []string {
	// Initialize cache if needed
	if k.keyCache == nil {
		k.keyCache = make(map[string][]string)
		jsonBytes, err := json.Marshal(k)
		if err != nil {
			return nil
		}
		if err := json.Unmarshal(jsonBytes, &k.keyCache); err != nil {
			return nil
		}
	}

	return k.keyCache[action]
}
