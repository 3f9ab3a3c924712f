package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyToMap(t *testing.T) {
	prop := Property{Name: "unit", Type: "string", Description: "Unit", Enum: []any{"c", "f"}, Required: true}

	assert.Equal(t, map[string]any{
		"type":        "string",
		"name":        "unit",
		"description": "Unit",
		"enum":        []any{"c", "f"},
		"required":    true,
	}, prop.ToMap())
}

func TestPropertyFromMap_RoundTrip(t *testing.T) {
	items := Property{Type: "integer"}
	props := []Property{
		{Name: "q", Type: "string"},
		{Name: "unit", Type: "string", Description: "Unit", Enum: []any{"c", "f"}, Required: true},
		{Name: "ids", Type: "array", Items: &items},
		{Name: "open", Type: "string", Enum: []any{}},
	}

	for _, prop := range props {
		t.Run(prop.Name, func(t *testing.T) {
			got, err := PropertyFromMap(prop.ToMap())
			require.NoError(t, err)
			assert.Equal(t, prop, got)
		})
	}
}

func TestPropertyFromMap_StringEnum(t *testing.T) {
	got, err := PropertyFromMap(map[string]any{"type": "string", "enum": []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got.Enum)
}

func TestPropertyFromMap_BadTypes(t *testing.T) {
	_, err := PropertyFromMap(map[string]any{"type": 3})
	assert.True(t, IsValidationError(err))

	_, err = PropertyFromMap(map[string]any{"type": "string", "required": "yes"})
	assert.True(t, IsValidationError(err))

	_, err = PropertyFromMap(map[string]any{"type": "string", "enum": "a,b"})
	assert.True(t, IsValidationError(err))
}

func TestToolFromMap_RoundTrip(t *testing.T) {
	tool := weatherTool()
	require.NoError(t, tool.Parameters.SetRequired("unit", true))

	got, err := ToolFromMap(tool.ToMap())
	require.NoError(t, err)
	assert.Equal(t, tool, got)
	assert.Equal(t, []string{"location", "unit"}, got.Parameters.Required)
}

func TestToolFromMap_EmptyTool(t *testing.T) {
	tool := NewTool("", "")

	got, err := ToolFromMap(tool.ToMap())
	require.NoError(t, err)
	assert.Equal(t, tool, got)
}

func TestToolFromMap_Invalid(t *testing.T) {
	_, err := ToolFromMap(map[string]any{"type": "function"})
	assert.True(t, IsValidationError(err))

	_, err = ToolFromMap(map[string]any{"type": "other", "function": map[string]any{}})
	assert.True(t, IsValidationError(err))

	_, err = ToolFromMap(map[string]any{
		"function": map[string]any{"name": "x", "parameters": map[string]any{"required": []any{1}}},
	})
	assert.True(t, IsValidationError(err))
}

func TestParametersToMap(t *testing.T) {
	m := weatherTool().Parameters.ToMap()

	assert.Equal(t, "object", m["type"])
	assert.Equal(t, []string{"location"}, m["required"])
	props := m["properties"].(map[string]any)
	assert.Len(t, props, 2)
	assert.Equal(t, true, props["location"].(map[string]any)["required"])
}
