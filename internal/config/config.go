package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

/*
Config System Design:
This configuration system implements a hierarchical config with the following precedence
(highest to lowest priority):

1. Runtime overrides (command line flags)
2. Environment variables (FORGE_*, optionally loaded from .env)
3. Local project config (.forge/*.forge.{yaml,json})
4. Global user config ($XDG_CONFIG_HOME/forge/*.forge.{yaml,json})
5. Default values (embedded defaults.forge.yaml)

Files in each directory are merged alphabetically. Maps merge deeply,
lists combine without duplicates and scalars override.

Example:
~/.config/forge/a.forge.yaml:  { keyMap: { quit: ["ctrl+c"] } }
./.forge/b.forge.yaml:         { keyMap: { quit: ["ctrl+q"] } }
The result will be: { keyMap: { quit: ["ctrl+c", "ctrl+q"] } }
*/

const (
	AppName   = "forge"
	EnvPrefix = "FORGE"
	LocalDir  = ".forge"
)

//go:embed defaults.forge.yaml
var defaultsYAML []byte

// Config holds the internal viper instance while layers are merged
type Config struct {
	v        *viper.Viper
	sources  map[string][]configSource
	warnings []string
}

// envVarConfig defines an environment variable mapping
type envVarConfig struct {
	key      string // Key in the config
	envVar   string // Environment variable name
	isSecret bool   // Whether to redact when printing
}

// Friendly names on top of the generic FORGE_<KEY> mapping
var envVars = []envVarConfig{
	{key: "toolsdir", envVar: "FORGE_TOOLS_DIR"},
	{key: "log.loglevel", envVar: "FORGE_LOG_LEVEL"},
	{key: "log.logfile", envVar: "FORGE_LOG_FILE"},
}

type configSource struct {
	value  interface{}
	source string
}

// Dir returns the global configuration directory
func Dir() (string, error) {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, AppName), nil
}

// New loads, merges and validates the configuration
func New(overrides *RuntimeOverrides) (*ConfigSchema, error) {
	loadEnv()

	c, err := load()
	if err != nil {
		return nil, err
	}

	cfg, err := c.schema()
	if err != nil {
		return nil, err
	}
	overrides.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load() (*Config, error) {
	c := &Config{
		v:       viper.New(),
		sources: make(map[string][]configSource),
	}

	if err := c.loadDefaults(); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	globalDir, err := Dir()
	if err != nil {
		return nil, fmt.Errorf("error finding config directory: %w", err)
	}
	for _, dir := range []string{globalDir, LocalDir} {
		if err := c.loadDir(dir); err != nil {
			return nil, err
		}
	}

	c.applyEnv()
	return c, nil
}

// loadDefaults loads the default configuration from the embedded defaults file
func (c *Config) loadDefaults() error {
	c.v.SetConfigType("yaml")
	if err := c.v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return fmt.Errorf("could not read defaults: %w", err)
	}
	return nil
}

// findConfigFiles returns all *.forge.{yaml,json} files in a directory
func findConfigFiles(dir string) ([]string, error) {
	var files []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".forge.yaml") ||
			strings.HasSuffix(name, ".forge.yml") ||
			strings.HasSuffix(name, ".forge.json") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

func (c *Config) loadDir(dir string) error {
	files, err := findConfigFiles(dir)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	known := GetKnownKeys()
	for _, f := range files {
		v := viper.New()
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", f, err)
		}

		for _, key := range v.AllKeys() {
			if !IsKnownKey(known, key) {
				c.warnings = append(c.warnings, fmt.Sprintf("unknown key %q in %s", key, f))
			}
		}
		c.trackSources(v.AllSettings(), "", f)

		if err := c.mergeConfig(v.AllSettings()); err != nil {
			return fmt.Errorf("error merging config from %s: %w", f, err)
		}
	}
	return nil
}

// applyEnv maps FORGE_<KEY> (dots become underscores) and the friendly
// names in envVars onto known keys. It runs after the files so the
// environment wins.
func (c *Config) applyEnv() {
	for _, key := range c.v.AllKeys() {
		name := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if val, ok := os.LookupEnv(name); ok {
			c.v.Set(key, val)
			c.sources[key] = append(c.sources[key], configSource{value: val, source: name + " environment variable"})
		}
	}
	for _, env := range envVars {
		if val, ok := os.LookupEnv(env.envVar); ok {
			c.v.Set(env.key, val)
			display := interface{}(val)
			if env.isSecret {
				display = "[REDACTED]"
			}
			c.sources[env.key] = append(c.sources[env.key], configSource{value: display, source: env.envVar + " environment variable"})
		}
	}
}

func (c *Config) mergeConfig(settings map[string]interface{}) error {
	for key, value := range settings {
		existing := c.v.Get(key)
		if existing == nil {
			// Key doesn't exist, just set it
			c.v.Set(key, value)
			continue
		}

		// Handle different types
		switch existingVal := existing.(type) {
		case []interface{}:
			// For slices, append new values and remove duplicates
			newSlice, ok := value.([]interface{})
			if !ok {
				return fmt.Errorf("type mismatch for key %s: expected slice, got %T", key, value)
			}
			c.v.Set(key, combine(existingVal, newSlice))

		case map[string]interface{}:
			// For maps, recursively merge
			newMap, ok := value.(map[string]interface{})
			if !ok {
				return fmt.Errorf("type mismatch for key %s: expected map, got %T", key, value)
			}
			c.v.Set(key, mergeMapRecursive(existingVal, newMap))

		default:
			// For all other types, override
			c.v.Set(key, value)
		}
	}
	return nil
}

func combine(existing, added []interface{}) []interface{} {
	seen := make(map[interface{}]bool)
	combined := make([]interface{}, 0, len(existing)+len(added))
	for _, v := range append(existing, added...) {
		if !seen[v] {
			seen[v] = true
			combined = append(combined, v)
		}
	}
	return combined
}

func mergeMapRecursive(existing, new map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})

	// Copy existing map
	for k, v := range existing {
		result[k] = v
	}

	// Merge new map
	for k, v := range new {
		if existing[k] == nil {
			result[k] = v
			continue
		}

		switch existingVal := existing[k].(type) {
		case map[string]interface{}:
			if newVal, ok := v.(map[string]interface{}); ok {
				result[k] = mergeMapRecursive(existingVal, newVal)
			} else {
				result[k] = v
			}
		case []interface{}:
			if newVal, ok := v.([]interface{}); ok {
				result[k] = combine(existingVal, newVal)
			} else {
				result[k] = v
			}
		default:
			result[k] = v
		}
	}

	return result
}

// trackSources records the file each leaf value came from, keyed by the
// dotted lowercase path viper uses
func (c *Config) trackSources(settings map[string]interface{}, prefix, filename string) {
	for key, value := range settings {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			c.trackSources(nested, full, filename)
			continue
		}
		c.sources[full] = append(c.sources[full], configSource{
			value:  value,
			source: filename,
		})
	}
}

// schema decodes the merged settings into the typed config
func (c *Config) schema() (*ConfigSchema, error) {
	var cfg ConfigSchema
	if err := c.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.sources = c.sources
	cfg.warnings = c.warnings
	return &cfg, nil
}

// Validate validates the configuration against the schema
func (s *ConfigSchema) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}

// Warnings lists problems that did not stop the config from loading,
// such as unknown keys
func (s *ConfigSchema) Warnings() []string {
	return s.warnings
}

func (s *ConfigSchema) track(key string, value interface{}, source string) {
	if s.sources == nil {
		s.sources = make(map[string][]configSource)
	}
	s.sources[key] = append(s.sources[key], configSource{value: value, source: source})
}
