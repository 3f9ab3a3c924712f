package tools

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	FormatText      = "text"
	FormatJSON      = "json"
	FormatYAML      = "yaml"
	FormatLangchain = "langchain"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a tool specification",
	Long:  "Print a tool specification. Formats: text, json, yaml and langchain (the llms.Tool value an LLM client receives).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		tool, err := svc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printTool(cmd.OutOrStdout(), tool, formatFlag)
	},
}

func init() {
	showCmd.Flags().StringVarP(&formatFlag, "format", "o", FormatText, "Output format (text, json, yaml, langchain)")
}

func printTool(w io.Writer, tool domain.Tool, format string) error {
	switch format {
	case FormatJSON:
		content, err := tool.Format()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, content)
		return err

	case FormatYAML:
		// Go through JSON so YAML keys match the file format
		data, err := json.Marshal(tool)
		if err != nil {
			return fmt.Errorf("failed to marshal tool: %w", err)
		}
		var out interface{}
		if err := json.Unmarshal(data, &out); err != nil {
			return fmt.Errorf("failed to unmarshal tool: %w", err)
		}
		yamlBytes, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = w.Write(yamlBytes)
		return err

	case FormatLangchain:
		data, err := json.MarshalIndent(tool.LLMTool(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal llm tool: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case FormatText, "":
		printText(w, tool)
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

func printText(w io.Writer, tool domain.Tool) {
	fmt.Fprintf(w, "%s:\n", tool.Name)
	fmt.Fprintf(w, "  description: %s\n", tool.Description)
	fmt.Fprintf(w, "  parameters:\n")
	fmt.Fprintf(w, "    type: %s\n", tool.Parameters.Type)

	if len(tool.Parameters.Required) > 0 {
		fmt.Fprintf(w, "    required:\n")
		for _, req := range tool.Parameters.Required {
			fmt.Fprintf(w, "      - %s\n", req)
		}
	}

	if len(tool.Parameters.Properties) > 0 {
		fmt.Fprintf(w, "    properties:\n")
		for _, name := range tool.Parameters.Names() {
			prop := tool.Parameters.Properties[name]
			fmt.Fprintf(w, "      %s:\n", name)
			fmt.Fprintf(w, "        type: %s\n", prop.Type)
			if prop.Description != "" {
				fmt.Fprintf(w, "        description: %s\n", prop.Description)
			}
			if len(prop.Enum) > 0 {
				fmt.Fprintf(w, "        enum:\n")
				for _, v := range prop.Enum {
					fmt.Fprintf(w, "          - %v\n", v)
				}
			}
			if prop.Items != nil {
				fmt.Fprintf(w, "        items:\n")
				fmt.Fprintf(w, "          type: %s\n", prop.Items.Type)
			}
		}
	}
}
