package tools

import (
	"github.com/isaacphi/forge/internal/service"
	"github.com/isaacphi/forge/internal/shared"
	"github.com/spf13/cobra"
)

var (
	forceFlag       bool
	formatFlag      string
	descriptionFlag string
	folderFlag      string
	filenameFlag    string
	propFlags       []string
	argsFlag        string
)

// newService is swapped out in tests
var newService func() (*service.ToolService, error) = shared.InitializeToolService

var ToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Manage tool specifications",
}

func init() {
	ToolsCmd.AddCommand(listCmd, showCmd, deleteCmd, newCmd, validateCmd, callCmd)
}
