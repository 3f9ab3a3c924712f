package domain

import (
	"fmt"
	"slices"
)

// ToMap returns the property as a generic map, including name and required
// flag. PropertyFromMap is its inverse.
func (p Property) ToMap() map[string]any {
	m := map[string]any{
		"type":        p.Type,
		"name":        p.Name,
		"description": p.Description,
		"enum":        slices.Clone(p.Enum),
		"required":    p.Required,
	}
	if p.Items != nil {
		m["items"] = p.Items.ToMap()
	}
	return m
}

func PropertyFromMap(m map[string]any) (Property, error) {
	var p Property
	var err error
	if p.Type, err = stringField(m, "type"); err != nil {
		return Property{}, err
	}
	if p.Name, err = stringField(m, "name"); err != nil {
		return Property{}, err
	}
	if p.Description, err = stringField(m, "description"); err != nil {
		return Property{}, err
	}
	if v, ok := m["required"]; ok {
		b, ok := v.(bool)
		if !ok {
			return Property{}, NewValidationError("required", "expected boolean, got %T", v)
		}
		p.Required = b
	}

	switch enum := m["enum"].(type) {
	case nil:
	case []any:
		p.Enum = slices.Clone(enum)
	case []string:
		for _, v := range enum {
			p.Enum = append(p.Enum, v)
		}
	default:
		return Property{}, NewValidationError("enum", "expected list, got %T", enum)
	}

	if raw, ok := m["items"]; ok && raw != nil {
		im, ok := raw.(map[string]any)
		if !ok {
			return Property{}, NewValidationError("items", "expected object, got %T", raw)
		}
		items, err := PropertyFromMap(im)
		if err != nil {
			return Property{}, fmt.Errorf("items: %w", err)
		}
		p.Items = &items
	}
	return p, nil
}

func (p Parameters) ToMap() map[string]any {
	props := make(map[string]any, len(p.Properties))
	for name, prop := range p.Properties {
		props[name] = prop.ToMap()
	}
	required := slices.Clone(p.Required)
	if required == nil {
		required = []string{}
	}
	typ := p.Type
	if typ == "" {
		typ = ParametersType
	}
	return map[string]any{
		"type":       typ,
		"properties": props,
		"required":   required,
	}
}

func ParametersFromMap(m map[string]any) (Parameters, error) {
	params := NewParameters()
	if typ, err := stringField(m, "type"); err != nil {
		return Parameters{}, err
	} else if typ != "" {
		params.Type = typ
	}

	switch required := m["required"].(type) {
	case nil:
	case []string:
		for _, name := range required {
			params.setRequired(name, true)
		}
	case []any:
		for _, v := range required {
			name, ok := v.(string)
			if !ok {
				return Parameters{}, NewValidationError("required", "expected string, got %T", v)
			}
			params.setRequired(name, true)
		}
	default:
		return Parameters{}, NewValidationError("required", "expected list, got %T", required)
	}

	if raw, ok := m["properties"]; ok && raw != nil {
		props, ok := raw.(map[string]any)
		if !ok {
			return Parameters{}, NewValidationError("properties", "expected object, got %T", raw)
		}
		for name, v := range props {
			pm, ok := v.(map[string]any)
			if !ok {
				return Parameters{}, NewValidationError("properties."+name, "expected object, got %T", v)
			}
			prop, err := PropertyFromMap(pm)
			if err != nil {
				return Parameters{}, fmt.Errorf("property %q: %w", name, err)
			}
			prop.Name = name
			if prop.Required {
				params.setRequired(name, true)
			}
			prop.Required = params.IsRequired(name)
			params.Properties[name] = prop
		}
	}
	return params, nil
}

// ToMap returns the tool in the persisted envelope shape
func (t Tool) ToMap() map[string]any {
	return map[string]any{
		"type": ToolType,
		"function": map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"parameters":  t.Parameters.ToMap(),
		},
	}
}

func ToolFromMap(m map[string]any) (Tool, error) {
	if typ, err := stringField(m, "type"); err != nil {
		return Tool{}, err
	} else if typ != "" && typ != ToolType {
		return Tool{}, NewValidationError("type", "expected %q, got %q", ToolType, typ)
	}

	fn, ok := m["function"].(map[string]any)
	if !ok {
		return Tool{}, NewValidationError("function", "missing function definition")
	}

	t := NewTool("", "")
	var err error
	if t.Name, err = stringField(fn, "name"); err != nil {
		return Tool{}, err
	}
	if t.Description, err = stringField(fn, "description"); err != nil {
		return Tool{}, err
	}
	if raw, ok := fn["parameters"]; ok && raw != nil {
		pm, ok := raw.(map[string]any)
		if !ok {
			return Tool{}, NewValidationError("parameters", "expected object, got %T", raw)
		}
		if t.Parameters, err = ParametersFromMap(pm); err != nil {
			return Tool{}, err
		}
	}
	return t, nil
}

func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", NewValidationError(key, "expected string, got %T", v)
	}
	return s, nil
}
