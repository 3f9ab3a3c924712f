package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ToolNamePattern is the function-name charset accepted by LLM function calling APIs
var ToolNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks the tool before it is saved
func (t Tool) Validate() error {
	var problems []string
	field := ""

	if err := validatorInstance().Struct(t); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate tool: %w", err)
		}
		for _, fe := range fieldErrs {
			if field == "" {
				field = fieldName(fe)
			}
			problems = append(problems, describe(fe))
		}
	}

	for _, name := range t.Parameters.Required {
		if _, ok := t.Parameters.Properties[name]; !ok {
			problems = append(problems, fmt.Sprintf("required property %q is not defined", name))
		}
	}
	for _, name := range t.Parameters.Names() {
		prop := t.Parameters.Properties[name]
		if err := prop.checkValues(); err != nil {
			problems = append(problems, fmt.Sprintf("property %q: %v", name, err))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	if field == "" {
		field = "parameters"
	}
	return ValidationError{Field: field, Message: strings.Join(problems, "; ")}
}

// Warnings lists problems that do not block a save but that LLM providers
// may reject, such as a name outside the function-name charset.
func (t Tool) Warnings() []string {
	var warnings []string
	if t.Name != "" && !ToolNamePattern.MatchString(t.Name) {
		warnings = append(warnings, fmt.Sprintf("name %q should be 1-64 letters, digits, underscores or dashes", t.Name))
	}
	return warnings
}

// Validate checks a single property as entered in the property form
func (p Property) Validate() error {
	if err := validatorInstance().Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return ValidationError{Field: fieldName(fieldErrs[0]), Message: describe(fieldErrs[0])}
		}
		return fmt.Errorf("failed to validate property: %w", err)
	}
	if err := p.checkValues(); err != nil {
		return ValidationError{Field: "enum", Message: err.Error()}
	}
	return nil
}

// checkValues verifies enum literals and item types agree with the declared type
func (p Property) checkValues() error {
	for _, v := range p.Enum {
		if !literalMatches(p.Type, v) {
			return fmt.Errorf("enum value %v is not a valid %s", v, p.Type)
		}
	}
	if p.Items != nil {
		if p.Type != "array" {
			return fmt.Errorf("items is only allowed on array properties")
		}
		if !isPropertyType(p.Items.Type) {
			return fmt.Errorf("items type %q must be one of %s", p.Items.Type, strings.Join(PropertyTypes, ", "))
		}
	}
	return nil
}

func literalMatches(typ string, v any) bool {
	switch typ {
	case "string":
		_, ok := v.(string)
		return ok
	case "number":
		switch v.(type) {
		case float64, float32, int, int64:
			return true
		}
		return false
	case "integer":
		switch n := v.(type) {
		case int, int64:
			return true
		case float64:
			return n == float64(int64(n))
		}
		return false
	case "boolean":
		_, ok := v.(bool)
		return ok
	}
	return true
}

func isPropertyType(typ string) bool {
	for _, t := range PropertyTypes {
		if t == typ {
			return true
		}
	}
	return false
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func describe(fe validator.FieldError) string {
	name := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s cannot be empty", name)
	case "oneof":
		return fmt.Sprintf("%s %q must be one of %s", name, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eq":
		return fmt.Sprintf("%s must be %q", name, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
}
