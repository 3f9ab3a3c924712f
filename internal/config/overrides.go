package config

// RuntimeOverrides holds configuration values that can be overridden at runtime
// via CLI flags or other means
type RuntimeOverrides struct {
	ToolsDir *string
	LogLevel *string
	LogFile  *string
}

func (o *RuntimeOverrides) apply(cfg *ConfigSchema) {
	if o == nil {
		return
	}
	if o.ToolsDir != nil {
		cfg.ToolsDir = *o.ToolsDir
		cfg.track("toolsdir", *o.ToolsDir, "command line flag")
	}
	if o.LogLevel != nil {
		cfg.Log.LogLevel = *o.LogLevel
		cfg.track("log.loglevel", *o.LogLevel, "command line flag")
	}
	if o.LogFile != nil {
		cfg.Log.LogFile = *o.LogFile
		cfg.track("log.logfile", *o.LogFile, "command line flag")
	}
}
