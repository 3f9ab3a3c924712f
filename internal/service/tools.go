package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/repository"
)

// ToolService is the single entry point the CLI and the editor use to read
// and change tool specifications. Validation happens here, before any I/O.
type ToolService struct {
	store    repository.ToolRepository
	resolver repository.SaveResolver
	logger   *slog.Logger
}

func NewToolService(store repository.ToolRepository, resolver repository.SaveResolver, logger *slog.Logger) *ToolService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ToolService{
		store:    store,
		resolver: resolver,
		logger:   logger.With("component", "tools"),
	}
}

func (s *ToolService) List(ctx context.Context) []repository.Entry {
	return s.store.List(ctx)
}

func (s *ToolService) Get(ctx context.Context, id string) (domain.Tool, error) {
	tool, err := s.store.GetTool(ctx, id)
	if err != nil {
		return domain.Tool{}, fmt.Errorf("failed to get tool: %w", err)
	}
	return tool, nil
}

func (s *ToolService) GetRaw(ctx context.Context, id string) (string, error) {
	content, err := s.store.ReadRaw(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to read tool: %w", err)
	}
	return content, nil
}

// Create saves a new tool under folder without overwriting anything that
// is already there. folder must be empty (the root) or an existing folder.
func (s *ToolService) Create(ctx context.Context, folder, filename string, tool domain.Tool) (repository.Saved, error) {
	if err := tool.Validate(); err != nil {
		return repository.Saved{}, err
	}
	content, err := tool.Format()
	if err != nil {
		return repository.Saved{}, err
	}
	return s.saveNew(ctx, folder, filename, content+"\n")
}

// CreateRaw is Create for text typed into the JSON editor. The content is
// written verbatim once it parses and validates.
func (s *ToolService) CreateRaw(ctx context.Context, folder, filename, content string) (repository.Saved, error) {
	if _, err := ParseAndValidate(content); err != nil {
		return repository.Saved{}, err
	}
	return s.saveNew(ctx, folder, filename, content)
}

func (s *ToolService) saveNew(ctx context.Context, folder, filename, content string) (repository.Saved, error) {
	if strings.TrimSpace(filename) == "" {
		return repository.Saved{}, domain.NewValidationError("filename", "filename cannot be empty")
	}
	folder = strings.TrimSpace(folder)
	if folder != "" && !slices.Contains(s.resolver.ListFolders(ctx), folder) {
		return repository.Saved{}, domain.NewValidationError("folder", "folder %q does not exist", folder)
	}

	saved, err := s.resolver.SaveNew(ctx, folder, filename, content)
	if err != nil {
		return repository.Saved{}, fmt.Errorf("failed to save new tool: %w", err)
	}
	return saved, nil
}

// Update overwrites the tool stored at id
func (s *ToolService) Update(ctx context.Context, id string, tool domain.Tool) error {
	if err := tool.Validate(); err != nil {
		return err
	}
	if err := s.store.SaveTool(ctx, id, tool); err != nil {
		return fmt.Errorf("failed to save tool: %w", err)
	}
	return nil
}

func (s *ToolService) UpdateRaw(ctx context.Context, id, content string) error {
	if _, err := ParseAndValidate(content); err != nil {
		return err
	}
	if err := s.store.SaveRaw(ctx, id, content); err != nil {
		return fmt.Errorf("failed to save tool: %w", err)
	}
	return nil
}

func (s *ToolService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTool(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	return nil
}

func (s *ToolService) Folders(ctx context.Context) []string {
	return s.resolver.ListFolders(ctx)
}

func (s *ToolService) CreateFolder(ctx context.Context, name string) error {
	if err := s.resolver.CreateFolder(ctx, name); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	return nil
}

// CheckArguments validates a call against the stored tool's parameters
func (s *ToolService) CheckArguments(ctx context.Context, id string, args map[string]any) error {
	tool, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := tool.ValidateArguments(args); err != nil {
		s.logger.Debug("arguments rejected", "id", id, "error", err)
		return err
	}
	return nil
}

// ParseAndValidate turns editor text into a tool, rejecting malformed JSON
// and documents that break the tool rules.
func ParseAndValidate(content string) (domain.Tool, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Tool{}, domain.NewValidationError("json", "document cannot be empty")
	}
	tool, err := domain.ParseTool([]byte(content))
	if err != nil {
		return domain.Tool{}, err
	}
	if err := tool.Validate(); err != nil {
		return domain.Tool{}, err
	}
	return tool, nil
}
