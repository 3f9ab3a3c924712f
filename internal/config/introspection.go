package config

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetKnownKeys returns all valid configuration keys based on the schema
func GetKnownKeys() map[string]bool {
	known := make(map[string]bool)
	addKnownKeys("", reflect.TypeOf(ConfigSchema{}), known)
	return known
}

// addKnownKeys recursively adds keys by examining struct fields
func addKnownKeys(prefix string, t reflect.Type, known map[string]bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		// Convert the key to lowercase since viper lowercases all keys
		key := strings.ToLower(tag)
		if prefix != "" {
			key = prefix + "." + key
		}
		known[key] = true

		switch field.Type.Kind() {
		case reflect.Struct:
			if field.Type.String() != "time.Duration" {
				addKnownKeys(key, field.Type, known)
			}
		case reflect.Map:
			known[key+".*"] = true
		}
	}
}

// matchesWildcard checks if a key matches a wildcard pattern
func matchesWildcard(pattern, key string) bool {
	// Convert both to lowercase for case-insensitive matching
	pattern = strings.ToLower(pattern)
	key = strings.ToLower(key)

	// Split into parts
	patternParts := strings.Split(pattern, ".")
	keyParts := strings.Split(key, ".")

	// Must have same number of parts
	if len(patternParts) != len(keyParts) {
		return false
	}

	// Check each part
	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != keyParts[i] {
			return false
		}
	}
	return true
}

// IsKnownKey checks if a key is known, including wildcard matches
func IsKnownKey(known map[string]bool, key string) bool {
	// Check direct match first
	if known[strings.ToLower(key)] {
		return true
	}

	// Check wildcard patterns
	for pattern := range known {
		if strings.Contains(pattern, "*") && matchesWildcard(pattern, key) {
			return true
		}
	}
	return false
}

// PrintConfig writes the configuration as YAML. With a prefix such as
// "editor" only that subtree is printed. Sources are listed after the
// values when requested.
func (s *ConfigSchema) PrintConfig(w io.Writer, includeSources bool, prefix string) error {
	// Convert to JSON for consistent key names
	jsonBytes, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(jsonBytes, &out); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	if prefix != "" {
		out, err = lookup(out, prefix)
		if err != nil {
			return err
		}
	}

	yamlBytes, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("error converting to YAML: %w", err)
	}

	// Redact sensitive values
	for _, line := range strings.Split(strings.TrimRight(string(yamlBytes), "\n"), "\n") {
		if parts := strings.SplitN(line, ":", 2); len(parts) == 2 && isSecretKey(parts[0]) {
			fmt.Fprintf(w, "%s: [REDACTED]\n", parts[0])
			continue
		}
		fmt.Fprintln(w, line)
	}

	if includeSources {
		s.printSources(w, strings.ToLower(prefix))
	}
	return nil
}

func lookup(v interface{}, prefix string) (interface{}, error) {
	for _, part := range strings.Split(prefix, ".") {
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no configuration under %q", prefix)
		}
		found := false
		for k, child := range m {
			if strings.EqualFold(k, part) {
				v, found = child, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no configuration under %q", prefix)
		}
	}
	return v, nil
}

func (s *ConfigSchema) printSources(w io.Writer, prefix string) {
	keys := make([]string, 0, len(s.sources))
	for key := range s.sources {
		if prefix == "" || key == prefix || strings.HasPrefix(key, prefix+".") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	fmt.Fprintln(w, "\n# sources (everything else is a default)")
	for _, key := range keys {
		list := s.sources[key]
		last := list[len(list)-1]
		value := last.value
		if isSecretKey(key) {
			value = "[REDACTED]"
		}
		fmt.Fprintf(w, "# %s = %v (%s)\n", key, value, last.source)
	}
}

func isSecretKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	// keymap entries are bindings, not credentials
	if strings.HasPrefix(key, "keymap") {
		return false
	}
	return strings.Contains(key, "key") ||
		strings.Contains(key, "secret") ||
		strings.Contains(key, "password") ||
		strings.Contains(key, "token")
}
