package filesystem

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/isaacphi/forge/internal/domain"
)

const Ext = ".json"

// ToolID turns a file path under base into a tool id: the slash separated
// relative path without the .json suffix.
func ToolID(base, file string) (string, error) {
	rel, err := filepath.Rel(base, file)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(filepath.ToSlash(rel), Ext), nil
}

// cleanID validates an id and returns it in canonical form. Ids may not be
// absolute or climb out of the base directory.
func cleanID(id string) (string, error) {
	id = strings.TrimSuffix(strings.TrimSpace(filepath.ToSlash(id)), Ext)
	if id == "" {
		return "", domain.NewValidationError("id", "tool id cannot be empty")
	}
	if path.IsAbs(id) || filepath.IsAbs(id) {
		return "", domain.NewValidationError("id", "tool id %q must be relative", id)
	}
	cleaned := path.Clean(id)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", domain.NewValidationError("id", "tool id %q escapes the tools directory", id)
	}
	return cleaned, nil
}

func idPath(base, id string) (string, error) {
	cleaned, err := cleanID(id)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, filepath.FromSlash(cleaned)+Ext), nil
}

// cleanFolder validates a folder name chosen in the save dialog. Empty means
// the base directory itself.
func cleanFolder(folder string) (string, error) {
	folder = strings.Trim(strings.TrimSpace(filepath.ToSlash(folder)), "/")
	if folder == "" {
		return "", nil
	}
	cleaned := path.Clean(folder)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") || path.IsAbs(folder) {
		return "", domain.NewValidationError("folder", "folder %q escapes the tools directory", folder)
	}
	if cleaned == "." {
		return "", nil
	}
	return cleaned, nil
}
