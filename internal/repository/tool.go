package repository

import (
	"context"

	"github.com/isaacphi/forge/internal/domain"
)

// Entry is one tool file found in the store. Tool is nil when the file
// could not be read or parsed; Err says why.
type Entry struct {
	ID     string
	Folder string
	Path   string
	Tool   *domain.Tool
	Err    error
}

// ToolRepository persists tool specifications keyed by id.
// Reads never fail: unreadable data is logged and behaves as empty.
type ToolRepository interface {
	List(ctx context.Context) []Entry
	GetTools(ctx context.Context) map[string]domain.Tool
	GetTool(ctx context.Context, id string) (domain.Tool, error)
	SaveTool(ctx context.Context, id string, tool domain.Tool) error
	DeleteTool(ctx context.Context, id string) error

	// Raw access for the JSON editor
	ReadRaw(ctx context.Context, id string) (string, error)
	SaveRaw(ctx context.Context, id string, content string) error
}

// Saved describes where a new tool ended up
type Saved struct {
	ID   string
	Path string
}

// SaveResolver places new tools without ever overwriting an existing file
type SaveResolver interface {
	SaveNew(ctx context.Context, folder, filename, content string) (Saved, error)
	ListFolders(ctx context.Context) []string
	CreateFolder(ctx context.Context, name string) error
}
