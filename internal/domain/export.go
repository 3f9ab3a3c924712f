package domain

import (
	"github.com/invopop/jsonschema"
	"github.com/tmc/langchaingo/llms"
)

// LLMTool converts the tool for langchaingo clients
func (t Tool) LLMTool() llms.Tool {
	return llms.Tool{
		Type: ToolType,
		Function: &llms.FunctionDefinition{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters.Schema(),
		},
	}
}

func LLMTools(tools []Tool) []llms.Tool {
	result := make([]llms.Tool, 0, len(tools))
	for _, tool := range tools {
		result = append(result, tool.LLMTool())
	}
	return result
}

// GenerateJSONSchema describes the persisted tool document
func GenerateJSONSchema() (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  false,
		DoNotReference:             false,
	}

	schema := r.Reflect(&Document{})

	schema.Title = "Tool Specification"
	schema.Description = "A callable function schema for LLM function calling"

	return schema, nil
}

// NewTemplate is the starting text for a tool created in the JSON editor
func NewTemplate() string {
	return `{
  "type": "function",
  "function": {
    "name": "tool_name",
    "description": "Tool description",
    "parameters": {
      "type": "object",
      "properties": {
        "param_name": {
          "type": "string",
          "description": "Parameter description"
        }
      },
      "required": ["param_name"]
    }
  }
}`
}
