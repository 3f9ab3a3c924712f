package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateArguments_MissingRequired(t *testing.T) {
	err := weatherTool().ValidateArguments(map[string]any{"unit": "celsius"})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "missing required arguments: location")
}

func TestValidateArguments_NilArgs(t *testing.T) {
	err := weatherTool().ValidateArguments(nil)
	assert.True(t, IsValidationError(err))

	assert.NoError(t, NewTool("ping", "").ValidateArguments(nil))
}

func TestValidateArguments_Valid(t *testing.T) {
	err := weatherTool().ValidateArguments(map[string]any{
		"location": "Oslo, Norway",
		"unit":     "celsius",
	})
	assert.NoError(t, err)
}

func TestValidateArguments_EnumViolation(t *testing.T) {
	err := weatherTool().ValidateArguments(map[string]any{
		"location": "Oslo, Norway",
		"unit":     "kelvin",
	})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "unit")
}

func TestValidateArguments_WrongType(t *testing.T) {
	tool := weatherTool()
	tool.Parameters.AddProperty("days", Property{Type: "integer"})

	err := tool.ValidateArguments(map[string]any{"location": "Oslo", "days": "three"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "days")
}

func TestSchema(t *testing.T) {
	items := Property{Type: "string"}
	tool := weatherTool()
	tool.Parameters.AddProperty("tags", Property{Type: "array", Items: &items})

	schema := tool.Parameters.Schema()

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []any{"location"}, schema["required"])
	props := schema["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "array", "items": map[string]any{"type": "string"}}, props["tags"])
	assert.Equal(t, []any{"celsius", "fahrenheit"}, props["unit"].(map[string]any)["enum"])
}

func TestSchema_OmitsEmptyRequired(t *testing.T) {
	schema := NewTool("ping", "").Parameters.Schema()
	assert.NotContains(t, schema, "required")
}
