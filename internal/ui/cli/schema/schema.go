package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/domain"
	"github.com/spf13/cobra"
)

const (
	KindTool   = "tool"
	KindConfig = "config"
)

var kindFlag string

var SchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of tool files or of the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := Generate(kindFlag)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	SchemaCmd.Flags().StringVarP(&kindFlag, "kind", "k", KindTool, "Schema to print (tool, config)")
}

// Generate renders the requested schema as indented JSON
func Generate(kind string) ([]byte, error) {
	var (
		s   *jsonschema.Schema
		err error
	)
	switch kind {
	case KindTool:
		s, err = domain.GenerateJSONSchema()
	case KindConfig:
		s, err = config.GenerateJSONSchema()
	default:
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
