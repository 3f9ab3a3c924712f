package domain

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema returns the parameters as a plain JSON Schema object, the form
// consumed by LLM clients and argument validation.
func (p Parameters) Schema() map[string]any {
	props := make(map[string]any, len(p.Properties))
	for name, prop := range p.Properties {
		props[name] = prop.Schema()
	}
	schema := map[string]any{
		"type":       ParametersType,
		"properties": props,
	}
	if len(p.Required) > 0 {
		required := make([]any, len(p.Required))
		for i, name := range p.Required {
			required[i] = name
		}
		schema["required"] = required
	}
	return schema
}

func (p Property) Schema() map[string]any {
	schema := map[string]any{"type": p.Type}
	if p.Description != "" {
		schema["description"] = p.Description
	}
	if len(p.Enum) > 0 {
		schema["enum"] = p.Enum
	}
	if p.Items != nil {
		schema["items"] = p.Items.Schema()
	}
	return schema
}

// ValidateArguments checks a call's arguments the way an executing consumer
// would: every required name must be supplied and values must match the
// declared types and enums.
func (t Tool) ValidateArguments(args map[string]any) error {
	var missing []string
	for _, name := range t.Parameters.Required {
		if _, ok := args[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return NewValidationError("arguments", "missing required arguments: %s", strings.Join(missing, ", "))
	}

	if args == nil {
		args = map[string]any{}
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(t.Parameters.Schema()))
	if err != nil {
		return fmt.Errorf("failed to compile parameters schema for %q: %w", t.Name, err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("failed to validate arguments for %q: %w", t.Name, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			problems = append(problems, re.String())
		}
		return NewValidationError("arguments", "%s", strings.Join(problems, "; "))
	}
	return nil
}
