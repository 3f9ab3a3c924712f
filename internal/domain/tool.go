package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

const (
	ToolType       = "function"
	ParametersType = "object"
)

// PropertyTypes lists the JSON Schema types a property may take
var PropertyTypes = []string{"string", "number", "integer", "boolean", "array", "object"}

// Document is the persisted shape of a tool specification
type Document struct {
	Type     string             `json:"type" jsonschema:"required,enum=function"`
	Function FunctionDefinition `json:"function" jsonschema:"required"`
}

type FunctionDefinition struct {
	Name        string     `json:"name" jsonschema:"required,pattern=^[a-zA-Z0-9_-]+$,maxLength=64,description=Unique function name"`
	Description string     `json:"description" jsonschema:"description=What the function does"`
	Parameters  Parameters `json:"parameters" jsonschema:"required"`
}

// Tool is an in-memory tool specification. Name doubles as the display key;
// the store identifies tools by path.
type Tool struct {
	Name        string     `validate:"required"`
	Description string
	Parameters  Parameters
}

type Parameters struct {
	Type       string              `json:"type" validate:"eq=object" jsonschema:"required,enum=object,default=object"`
	Properties map[string]Property `json:"properties" validate:"dive" jsonschema:"required,description=Properties of the parameter object"`
	Required   []string            `json:"required" jsonschema:"description=List of required property names"`
}

type Property struct {
	Name        string    `json:"-" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=string number integer boolean array object" jsonschema:"required,enum=string,enum=number,enum=integer,enum=boolean,enum=array,enum=object"`
	Description string    `json:"description" jsonschema:"description=Description of what the property does"`
	Enum        []any     `json:"enum,omitempty" jsonschema:"description=Allowed values for this property"`
	Items       *Property `json:"items,omitempty" validate:"-" jsonschema:"description=Schema for array items"`
	Required    bool      `json:"-"`
}

// NewTool returns a tool with an empty object parameter set
func NewTool(name, description string) Tool {
	return Tool{
		Name:        name,
		Description: description,
		Parameters:  NewParameters(),
	}
}

func NewParameters() Parameters {
	return Parameters{
		Type:       ParametersType,
		Properties: make(map[string]Property),
		Required:   []string{},
	}
}

// AddProperty inserts or overwrites a property. Required is kept as a set:
// the name is added when prop.Required is set and removed otherwise.
func (p *Parameters) AddProperty(name string, prop Property) {
	p.ensure()
	prop.Name = name
	p.Properties[name] = prop
	p.setRequired(name, prop.Required)
}

// RemoveProperty deletes a property and its required entry. It reports
// whether the property existed.
func (p *Parameters) RemoveProperty(name string) bool {
	p.ensure()
	if _, ok := p.Properties[name]; !ok {
		return false
	}
	delete(p.Properties, name)
	p.setRequired(name, false)
	return true
}

// RenameProperty moves a property to a new name, keeping its required flag
// and its position in the required list.
func (p *Parameters) RenameProperty(oldName, newName string) error {
	p.ensure()
	prop, ok := p.Properties[oldName]
	if !ok {
		return NotFoundError{Kind: "property", ID: oldName}
	}
	if newName == "" {
		return NewValidationError("name", "property name cannot be empty")
	}
	if oldName == newName {
		return nil
	}
	if _, exists := p.Properties[newName]; exists {
		return NewValidationError("name", "property %q already exists", newName)
	}

	delete(p.Properties, oldName)
	prop.Name = newName
	p.Properties[newName] = prop
	if i := slices.Index(p.Required, oldName); i >= 0 {
		p.Required[i] = newName
	}
	return nil
}

// SetRequired toggles required membership for an existing property
func (p *Parameters) SetRequired(name string, required bool) error {
	p.ensure()
	prop, ok := p.Properties[name]
	if !ok {
		return NotFoundError{Kind: "property", ID: name}
	}
	prop.Required = required
	p.Properties[name] = prop
	p.setRequired(name, required)
	return nil
}

// IsRequired reports whether name is in the required set
func (p Parameters) IsRequired(name string) bool {
	return slices.Contains(p.Required, name)
}

// Names returns property names in sorted order
func (p Parameters) Names() []string {
	names := make([]string, 0, len(p.Properties))
	for name := range p.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *Parameters) setRequired(name string, required bool) {
	i := slices.Index(p.Required, name)
	switch {
	case required && i < 0:
		p.Required = append(p.Required, name)
	case !required && i >= 0:
		p.Required = slices.Delete(p.Required, i, i+1)
	}
}

func (p *Parameters) ensure() {
	if p.Type == "" {
		p.Type = ParametersType
	}
	if p.Properties == nil {
		p.Properties = make(map[string]Property)
	}
	if p.Required == nil {
		p.Required = []string{}
	}
}

// Clone returns a deep copy so editor sessions can discard changes
func (t Tool) Clone() Tool {
	out := t
	out.Parameters = t.Parameters.Clone()
	return out
}

func (p Parameters) Clone() Parameters {
	out := Parameters{
		Type:       p.Type,
		Properties: make(map[string]Property, len(p.Properties)),
		Required:   slices.Clone(p.Required),
	}
	if out.Required == nil {
		out.Required = []string{}
	}
	for name, prop := range p.Properties {
		out.Properties[name] = prop.Clone()
	}
	return out
}

func (p Property) Clone() Property {
	out := p
	out.Enum = slices.Clone(p.Enum)
	if p.Items != nil {
		items := p.Items.Clone()
		out.Items = &items
	}
	return out
}

// MarshalJSON writes the {"type":"function","function":{...}} envelope
func (t Tool) MarshalJSON() ([]byte, error) {
	params := t.Parameters
	params.ensure()
	return json.Marshal(Document{
		Type: ToolType,
		Function: FunctionDefinition{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  params,
		},
	})
}

func (t *Tool) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Type != "" && doc.Type != ToolType {
		return NewValidationError("type", "expected %q, got %q", ToolType, doc.Type)
	}
	if doc.Function.Parameters.Type == "" && len(doc.Function.Parameters.Properties) == 0 {
		doc.Function.Parameters = NewParameters()
	}
	if doc.Function.Parameters.Type != ParametersType {
		return NewValidationError("parameters.type", "expected %q, got %q", ParametersType, doc.Function.Parameters.Type)
	}

	*t = Tool{
		Name:        doc.Function.Name,
		Description: doc.Function.Description,
		Parameters:  doc.Function.Parameters,
	}
	return nil
}

func (p Parameters) MarshalJSON() ([]byte, error) {
	type alias Parameters
	p.ensure()
	return json.Marshal(alias(p))
}

func (p *Parameters) UnmarshalJSON(data []byte) error {
	type alias Parameters
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := Parameters{
		Type:       raw.Type,
		Properties: make(map[string]Property, len(raw.Properties)),
		Required:   []string{},
	}
	for _, name := range raw.Required {
		if !slices.Contains(out.Required, name) {
			out.Required = append(out.Required, name)
		}
	}
	// property-level "required": true is folded into the set
	for name, prop := range raw.Properties {
		prop.Name = name
		if prop.Required && !slices.Contains(out.Required, name) {
			out.Required = append(out.Required, name)
		}
		prop.Required = slices.Contains(out.Required, name)
		out.Properties[name] = prop
	}

	*p = out
	return nil
}

type propertyJSON struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Enum        []any     `json:"enum,omitempty"`
	Items       *Property `json:"items,omitempty"`
	Required    bool      `json:"required,omitempty"`
}

// MarshalJSON omits name and required, which belong to the parent
func (p Property) MarshalJSON() ([]byte, error) {
	return json.Marshal(propertyJSON{
		Type:        p.Type,
		Description: p.Description,
		Enum:        p.Enum,
		Items:       p.Items,
	})
}

func (p *Property) UnmarshalJSON(data []byte) error {
	var raw propertyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Property{
		Type:        raw.Type,
		Description: raw.Description,
		Enum:        raw.Enum,
		Items:       raw.Items,
		Required:    raw.Required,
	}
	return nil
}

// ParseTool decodes a persisted tool document. Malformed input is reported
// as a ValidationError.
func ParseTool(data []byte) (Tool, error) {
	var t Tool
	if err := json.Unmarshal(data, &t); err != nil {
		if IsValidationError(err) {
			return Tool{}, err
		}
		return Tool{}, NewValidationError("json", "invalid JSON: %v", err)
	}
	return t, nil
}

// Format renders the tool as indented JSON
func (t Tool) Format() (string, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal tool %q: %w", t.Name, err)
	}
	return string(data), nil
}

func (t Tool) String() string {
	return fmt.Sprintf("%s: %s", t.Name, t.Description)
}
