package tools

import (
	"encoding/json"
	"fmt"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <id>",
	Short: "Check call arguments against a tool's parameters",
	Long: `Validate the arguments an LLM would pass when calling the tool.
Nothing is executed. Example:
  forge tools call get_weather --args '{"location": "Paris"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		var callArgs map[string]any
		if err := json.Unmarshal([]byte(argsFlag), &callArgs); err != nil {
			return domain.NewValidationError("args", "arguments must be a JSON object: %v", err)
		}

		if err := svc.CheckArguments(cmd.Context(), args[0], callArgs); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Arguments are valid")
		return nil
	},
}

func init() {
	callCmd.Flags().StringVarP(&argsFlag, "args", "a", "{}", "Call arguments as a JSON object")
}
