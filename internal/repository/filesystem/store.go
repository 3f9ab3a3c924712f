package filesystem

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/repository"
	"github.com/pkg/errors"
)

// Store keeps one tool per JSON file in a directory tree
type Store struct {
	base   string
	logger *slog.Logger
}

func NewStore(base string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{base: base, logger: logger.With("component", "store")}
}

// Base returns the tools directory
func (s *Store) Base() string {
	return s.base
}

// Path returns the file path for an id
func (s *Store) Path(id string) (string, error) {
	return idPath(s.base, id)
}

// List walks the tools directory. Files that fail to parse are returned
// with Err set so the browser can still offer them to the JSON editor.
func (s *Store) List(ctx context.Context) []repository.Entry {
	var entries []repository.Entry

	err := filepath.WalkDir(s.base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == s.base {
				return err
			}
			s.logger.Warn("skipping unreadable path", "path", p, "error", err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if p != s.base && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), Ext) {
			return nil
		}

		id, err := ToolID(s.base, p)
		if err != nil {
			s.logger.Warn("skipping file outside tools directory", "path", p, "error", err)
			return nil
		}
		entry := repository.Entry{ID: id, Folder: folderOf(id), Path: p}

		tool, err := s.read(p)
		if err != nil {
			s.logger.Warn("failed to load tool", "id", id, "error", err)
			entry.Err = err
		} else {
			entry.Tool = &tool
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		s.logger.Warn("failed to read tools directory", "path", s.base, "error", err)
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// GetTools returns every loadable tool keyed by id. Corrupt files are
// skipped and a missing directory yields an empty map.
func (s *Store) GetTools(ctx context.Context) map[string]domain.Tool {
	tools := make(map[string]domain.Tool)
	for _, entry := range s.List(ctx) {
		if entry.Tool != nil {
			tools[entry.ID] = *entry.Tool
		}
	}
	return tools
}

func (s *Store) GetTool(ctx context.Context, id string) (domain.Tool, error) {
	content, err := s.ReadRaw(ctx, id)
	if err != nil {
		return domain.Tool{}, err
	}
	tool, err := domain.ParseTool([]byte(content))
	if err != nil {
		return domain.Tool{}, errors.Wrapf(err, "tool %s", id)
	}
	return tool, nil
}

func (s *Store) ReadRaw(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := idPath(s.base, id)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.NotFoundError{Kind: "tool", ID: id}
		}
		return "", domain.IOError{Op: "read", Path: p, Err: errors.Wrap(err, "failed to read tool file")}
	}
	return string(data), nil
}

// SaveTool upserts a tool at the path named by id, replacing any file there
func (s *Store) SaveTool(ctx context.Context, id string, tool domain.Tool) error {
	content, err := tool.Format()
	if err != nil {
		return err
	}
	return s.SaveRaw(ctx, id, content+"\n")
}

// SaveRaw writes content verbatim. The write goes to a temp file that is
// renamed into place, so a failure leaves the previous file untouched.
func (s *Store) SaveRaw(ctx context.Context, id string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := idPath(s.base, id)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return domain.IOError{Op: "mkdir", Path: filepath.Dir(p), Err: errors.Wrap(err, "failed to create folder")}
	}
	if err := writeAtomic(p, []byte(content)); err != nil {
		return domain.IOError{Op: "write", Path: p, Err: err}
	}

	s.logger.Info("tool saved", "id", id, "path", p)
	return nil
}

// DeleteTool removes the file for id. Deleting an absent id is a no-op.
func (s *Store) DeleteTool(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := idPath(s.base, id)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("delete of absent tool ignored", "id", id)
			return nil
		}
		return domain.IOError{Op: "remove", Path: p, Err: errors.Wrap(err, "failed to delete tool file")}
	}

	s.logger.Info("tool deleted", "id", id, "path", p)
	return nil
}

func (s *Store) read(p string) (domain.Tool, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return domain.Tool{}, domain.IOError{Op: "read", Path: p, Err: err}
	}
	return domain.ParseTool(data)
}

func writeAtomic(p string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(p), "."+filepath.Base(p)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.Wrap(err, "failed to set file mode")
	}
	if err := os.Rename(tmpName, p); err != nil {
		return errors.Wrap(err, "failed to move file into place")
	}
	return nil
}

func folderOf(id string) string {
	dir := path.Dir(id)
	if dir == "." {
		return ""
	}
	return dir
}
