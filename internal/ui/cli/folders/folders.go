package folders

import (
	"fmt"

	"github.com/isaacphi/forge/internal/service"
	"github.com/isaacphi/forge/internal/shared"
	"github.com/spf13/cobra"
)

// newService is swapped out in tests
var newService func() (*service.ToolService, error) = shared.InitializeToolService

var FoldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Manage folders in the tools directory",
}

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List folders new tools can be saved into",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		folders := svc.Folders(cmd.Context())
		if len(folders) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No folders")
			return nil
		}
		for _, folder := range folders {
			fmt.Fprintln(cmd.OutOrStdout(), folder)
		}
		return nil
	},
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		if err := svc.CreateFolder(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Folder %s ready\n", args[0])
		return nil
	},
}

func init() {
	FoldersCmd.AddCommand(listCmd, newCmd)
}
