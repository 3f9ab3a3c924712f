package filesystem

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/isaacphi/forge/internal/repository"
)

// Initialize prepares the tools directory and returns the store and the
// resolver that share it
func Initialize(base string, logger *slog.Logger) (repository.ToolRepository, repository.SaveResolver, error) {
	if base == "" {
		return nil, nil, fmt.Errorf("tools directory is not configured")
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create tools directory: %w", err)
	}

	return NewStore(base, logger), NewResolver(base, logger), nil
}
