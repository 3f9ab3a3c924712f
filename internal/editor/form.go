package editor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/isaacphi/forge/internal/domain"
)

// PropertyForm is the text a user types into the property dialog
type PropertyForm struct {
	Name        string
	Type        string
	Description string
	Enum        string // comma separated
	ItemsType   string // arrays only
	Required    bool
}

// FormFromProperty fills a form for editing an existing property
func FormFromProperty(p domain.Property) PropertyForm {
	form := PropertyForm{
		Name:        p.Name,
		Type:        p.Type,
		Description: p.Description,
		Required:    p.Required,
	}
	values := make([]string, 0, len(p.Enum))
	for _, v := range p.Enum {
		values = append(values, fmt.Sprint(v))
	}
	form.Enum = strings.Join(values, ", ")
	if p.Items != nil {
		form.ItemsType = p.Items.Type
	}
	return form
}

// Property parses the form. Enum values are typed according to Type, so
// "1, 2" on an integer property becomes two numbers.
func (f PropertyForm) Property() (domain.Property, error) {
	prop := domain.Property{
		Name:        strings.TrimSpace(f.Name),
		Type:        strings.TrimSpace(f.Type),
		Description: strings.TrimSpace(f.Description),
		Required:    f.Required,
	}
	if prop.Type == "" {
		prop.Type = "string"
	}
	if !slices.Contains(domain.PropertyTypes, prop.Type) {
		return domain.Property{}, domain.NewValidationError("type", "type %q must be one of %s", prop.Type, strings.Join(domain.PropertyTypes, ", "))
	}

	enum, err := parseEnum(prop.Type, f.Enum)
	if err != nil {
		return domain.Property{}, err
	}
	prop.Enum = enum

	if items := strings.TrimSpace(f.ItemsType); items != "" && prop.Type == "array" {
		prop.Items = &domain.Property{Type: items}
	}

	if err := prop.Validate(); err != nil {
		return domain.Property{}, err
	}
	return prop, nil
}

func parseEnum(typ, raw string) ([]any, error) {
	var values []any
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := parseLiteral(typ, part)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Numbers are kept as float64, the type encoding/json decodes them to, so a
// saved and reloaded property compares equal.
func parseLiteral(typ, s string) (any, error) {
	switch typ {
	case "integer":
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, domain.NewValidationError("enum", "enum value %q is not an integer", s)
		}
		return float64(n), nil
	case "number":
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, domain.NewValidationError("enum", "enum value %q is not a number", s)
		}
		return n, nil
	case "boolean":
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, domain.NewValidationError("enum", "enum value %q is not a boolean", s)
		}
		return b, nil
	case "array", "object":
		return nil, domain.NewValidationError("enum", "enum is not supported for %s properties", typ)
	}
	return s, nil
}
