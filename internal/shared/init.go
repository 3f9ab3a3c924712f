package shared

import (
	"fmt"

	"github.com/isaacphi/forge/internal/appState"
	"github.com/isaacphi/forge/internal/repository/filesystem"
	"github.com/isaacphi/forge/internal/service"
)

// InitializeToolService wires the filesystem store under the configured
// tools directory into a ToolService
func InitializeToolService() (*service.ToolService, error) {
	app := appState.Get()

	store, resolver, err := filesystem.Initialize(app.Config.ToolsDir, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open tools directory: %w", err)
	}

	return service.NewToolService(store, resolver, app.Logger), nil
}
