package tools

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a tool specification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		id := args[0]

		tool, err := svc.Get(cmd.Context(), id)
		switch {
		case domain.IsNotFoundError(err):
			fmt.Fprintf(out, "Tool %s does not exist, nothing to delete\n", id)
			return nil
		case err != nil:
			// unparsable files can still be deleted
			fmt.Fprintf(out, "About to delete %s (%v)\n", id, err)
		default:
			fmt.Fprintf(out, "About to delete tool %s:\n", id)
			fmt.Fprintf(out, "Name: %s\n", tool.Name)
			fmt.Fprintf(out, "Description: %s\n", preview(tool.Description))
			fmt.Fprintf(out, "Properties: %d\n", len(tool.Parameters.Properties))
		}

		if !forceFlag {
			fmt.Fprint(out, "\nAre you sure you want to delete this tool? [y/N] ")
			response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')

			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Operation cancelled")
				return nil
			}
		}

		if err := svc.Delete(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintln(out, "Tool deleted successfully")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without confirmation")
}
