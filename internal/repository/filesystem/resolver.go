package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/repository"
	"github.com/pkg/errors"
)

// Resolver saves new tool files under base, choosing a free name
type Resolver struct {
	base   string
	logger *slog.Logger
}

func NewResolver(base string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{base: base, logger: logger.With("component", "resolver")}
}

// maxFilenameLen is the common filesystem limit on a single path element
const maxFilenameLen = 255

// NormalizeFilename appends .json when missing and rejects names that are
// empty, too long or contain path separators.
func NormalizeFilename(filename string) (string, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return "", domain.NewValidationError("filename", "filename cannot be empty")
	}
	if strings.ContainsAny(filename, `/\`) || filename == "." || filename == ".." {
		return "", domain.NewValidationError("filename", "filename %q must not contain path separators", filename)
	}
	if !strings.HasSuffix(filename, Ext) {
		filename += Ext
	}
	if len(filename) > maxFilenameLen {
		return "", domain.NewValidationError("filename", "filename must be at most %d bytes", maxFilenameLen)
	}
	return filename, nil
}

// ResolvePath returns the first path under base/folder that does not exist
// yet: filename itself, then {stem}_1{ext}, {stem}_2{ext} and so on.
func ResolvePath(base, folder, filename string) (string, error) {
	filename, err := NormalizeFilename(filename)
	if err != nil {
		return "", err
	}
	folder, err = cleanFolder(folder)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, filepath.FromSlash(folder))
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	candidate := filepath.Join(dir, filename)
	for counter := 1; ; counter++ {
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}
}

// taken reports whether p exists. Errors other than not-found are returned
// so the caller stops instead of treating every candidate as taken.
func taken(p string) (bool, error) {
	_, err := os.Lstat(p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, domain.IOError{Op: "stat", Path: p, Err: errors.Wrap(err, "failed to check tool file")}
	}
}

// SaveNew writes content to a collision free path in folder, creating the
// folder if needed. An existing file is never overwritten.
func (r *Resolver) SaveNew(ctx context.Context, folder, filename, content string) (repository.Saved, error) {
	if err := ctx.Err(); err != nil {
		return repository.Saved{}, err
	}
	filename, err := NormalizeFilename(filename)
	if err != nil {
		return repository.Saved{}, err
	}
	folder, err = cleanFolder(folder)
	if err != nil {
		return repository.Saved{}, err
	}

	dir := filepath.Join(r.base, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return repository.Saved{}, domain.IOError{Op: "mkdir", Path: dir, Err: errors.Wrap(err, "failed to create folder")}
	}

	for {
		p, err := ResolvePath(r.base, folder, filename)
		if err != nil {
			return repository.Saved{}, err
		}

		// O_EXCL so a file created since ResolvePath looked is not clobbered
		f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return repository.Saved{}, domain.IOError{Op: "create", Path: p, Err: errors.Wrap(err, "failed to create tool file")}
		}

		if _, err := f.WriteString(content); err != nil {
			f.Close()
			os.Remove(p)
			return repository.Saved{}, domain.IOError{Op: "write", Path: p, Err: errors.Wrap(err, "failed to write tool file")}
		}
		if err := f.Close(); err != nil {
			os.Remove(p)
			return repository.Saved{}, domain.IOError{Op: "write", Path: p, Err: errors.Wrap(err, "failed to close tool file")}
		}

		id, err := ToolID(r.base, p)
		if err != nil {
			return repository.Saved{}, fmt.Errorf("failed to derive tool id: %w", err)
		}
		r.logger.Info("new tool saved", "id", id, "path", p)
		return repository.Saved{ID: id, Path: p}, nil
	}
}

// ListFolders returns the immediate subdirectories of base, sorted. Hidden
// directories are skipped and failures yield an empty list.
func (r *Resolver) ListFolders(ctx context.Context) []string {
	entries, err := os.ReadDir(r.base)
	if err != nil {
		r.logger.Warn("failed to list folders", "path", r.base, "error", err)
		return []string{}
	}

	folders := []string{}
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			folders = append(folders, entry.Name())
		}
	}
	sort.Strings(folders)
	return folders
}

// CreateFolder makes a single folder directly under base. It is idempotent.
func (r *Resolver) CreateFolder(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("folder", "folder name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return domain.NewValidationError("folder", "folder name %q must be a single visible path segment", name)
	}

	dir := filepath.Join(r.base, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return domain.IOError{Op: "mkdir", Path: dir, Err: errors.Wrap(err, "failed to create folder")}
	}
	r.logger.Info("folder created", "path", dir)
	return nil
}
