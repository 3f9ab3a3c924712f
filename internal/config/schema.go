package config

import "time"

type Log struct {
	LogLevel string `mapstructure:"logLevel" json:"logLevel" validate:"oneof=DEBUG INFO WARN ERROR" jsonschema:"enum=DEBUG,enum=INFO,enum=WARN,enum=ERROR,default=INFO"`
	LogFile  string `mapstructure:"logFile" json:"logFile" jsonschema:"description=Log file path. Empty logs to the config directory and - logs to stderr"`
}

type Editor struct {
	DefaultMode   string        `mapstructure:"defaultMode" json:"defaultMode" validate:"oneof=wizard json" jsonschema:"enum=wizard,enum=json,default=wizard,description=Editor opened for new tools"`
	Watch         bool          `mapstructure:"watch" json:"watch" jsonschema:"default=true,description=Refresh the browser when files change on disk"`
	WatchDebounce time.Duration `mapstructure:"watchDebounce" json:"watchDebounce" validate:"gte=0" jsonschema:"type=string,default=200ms"`
	TabSize       int           `mapstructure:"tabSize" json:"tabSize" validate:"min=1,max=8" jsonschema:"default=2"`
}

type ConfigSchema struct {
	ToolsDir string `mapstructure:"toolsDir" json:"toolsDir" validate:"required" jsonschema:"required,description=Directory holding tool specification files"`
	Log      Log    `mapstructure:"log" json:"log"`
	Editor   Editor `mapstructure:"editor" json:"editor"`
	KeyMap   KeyMap `mapstructure:"keyMap" json:"keyMap"`

	// Internal fields for printing
	sources  map[string][]configSource
	warnings []string
}
