package tools

import (
	"fmt"
	"io"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [id]",
	Short: "Check tool specifications for errors",
	Long:  "Check one tool, or every tool in the tools directory when no id is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			tool, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := tool.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: ok\n", args[0])
			printWarnings(out, args[0], tool)
			return nil
		}

		failed := 0
		for _, entry := range svc.List(cmd.Context()) {
			err := entry.Err
			if err == nil {
				err = entry.Tool.Validate()
			}
			if err != nil {
				failed++
				fmt.Fprintf(out, "%s: %v\n", entry.ID, err)
				continue
			}
			fmt.Fprintf(out, "%s: ok\n", entry.ID)
			printWarnings(out, entry.ID, *entry.Tool)
		}
		if failed > 0 {
			return domain.NewValidationError("tools", "%d invalid tool(s)", failed)
		}
		return nil
	},
}

func printWarnings(out io.Writer, id string, tool domain.Tool) {
	for _, warning := range tool.Warnings() {
		fmt.Fprintf(out, "%s: warning: %s\n", id, warning)
	}
}
