package editor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/repository"
	"github.com/isaacphi/forge/internal/service"
)

// Tools is the part of the tool service the controller drives
type Tools interface {
	Get(ctx context.Context, id string) (domain.Tool, error)
	GetRaw(ctx context.Context, id string) (string, error)
	Create(ctx context.Context, folder, filename string, tool domain.Tool) (repository.Saved, error)
	CreateRaw(ctx context.Context, folder, filename, content string) (repository.Saved, error)
	Update(ctx context.Context, id string, tool domain.Tool) error
	UpdateRaw(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
	Folders(ctx context.Context) []string
	CreateFolder(ctx context.Context, name string) error
}

var (
	ErrSessionOpen = errors.New("an editor session is already open")
	ErrNoSession   = errors.New("no editor session is open")
)

// ResultKind says how an action ended
type ResultKind int

const (
	ResultSaved ResultKind = iota
	ResultCanceled
	ResultDeleted
)

type Result struct {
	Kind      ResultKind
	SessionID uuid.UUID
	ToolID    string
	Path      string
}

// Controller owns the editing session, the pending delete and the dialog
// stack. It holds no UI state; callers render from it.
type Controller struct {
	tools   Tools
	logger  *slog.Logger
	state   State
	session *Session
	delete  Deletion
	Dialogs DialogStack
}

func NewController(tools Tools, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		tools:  tools,
		logger: logger.With("component", "editor"),
	}
}

func (c *Controller) State() State {
	return c.state
}

// Session returns the open session or nil
func (c *Controller) Session() *Session {
	return c.session
}

// NewSession opens an editor on an empty tool (wizard) or on the JSON
// template (json).
func (c *Controller) NewSession(mode Mode) (*Session, error) {
	if c.state != StateClosed {
		return nil, ErrSessionOpen
	}
	s := &Session{
		ID:     uuid.New(),
		Origin: OriginNew,
		Mode:   mode,
		Tool:   domain.NewTool("", ""),
	}
	if mode == ModeJSON {
		s.Text = domain.NewTemplate()
	}
	c.open(s)
	return s, nil
}

// OpenSession loads the tool stored at id. A file that does not parse can
// still be opened in JSON mode so it can be repaired.
func (c *Controller) OpenSession(ctx context.Context, id string, mode Mode) (*Session, error) {
	if c.state != StateClosed {
		return nil, ErrSessionOpen
	}
	s := &Session{
		ID:     uuid.New(),
		Origin: OriginExisting,
		Mode:   mode,
		ToolID: id,
	}

	switch mode {
	case ModeJSON:
		text, err := c.tools.GetRaw(ctx, id)
		if err != nil {
			return nil, err
		}
		s.Text = text
		if tool, err := domain.ParseTool([]byte(text)); err == nil {
			s.Tool = tool
		}
	default:
		tool, err := c.tools.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		s.Tool = tool
	}

	c.open(s)
	return s, nil
}

func (c *Controller) open(s *Session) {
	c.session = s
	c.state = StateOpen
	c.logger.Info("editor session opened", "session", s.ID, "mode", s.Mode, "tool", s.ToolID)
}

func (c *Controller) close() {
	c.logger.Info("editor session closed", "session", c.session.ID)
	c.session = nil
	c.state = StateClosed
}

func (c *Controller) current() (*Session, error) {
	if c.state != StateOpen || c.session == nil {
		return nil, ErrNoSession
	}
	return c.session, nil
}

// SwitchMode moves between the wizard and the JSON editor. Leaving the JSON
// editor requires the text to parse; on failure the session stays put.
func (c *Controller) SwitchMode(mode Mode) error {
	s, err := c.current()
	if err != nil {
		return err
	}
	if s.Mode == mode {
		return nil
	}

	switch mode {
	case ModeJSON:
		text, err := s.Tool.Format()
		if err != nil {
			return err
		}
		s.Text = text
	default:
		tool, err := domain.ParseTool([]byte(s.Text))
		if err != nil {
			return err
		}
		s.Tool = tool
	}
	s.Mode = mode
	return nil
}

// SetText replaces the JSON editor buffer
func (c *Controller) SetText(text string) error {
	s, err := c.current()
	if err != nil {
		return err
	}
	if s.Text != text {
		s.Text = text
		s.Dirty = true
	}
	return nil
}

// NeedsTarget reports whether Save must be given a SaveTarget
func (c *Controller) NeedsTarget() bool {
	return c.session != nil && c.session.IsNew()
}

// Validate checks the session content without saving
func (c *Controller) Validate() error {
	s, err := c.current()
	if err != nil {
		return err
	}
	if s.Mode == ModeJSON {
		_, err := service.ParseAndValidate(s.Text)
		return err
	}
	return s.Tool.Validate()
}

// Save persists the session. New tools go through the save-path resolver
// and need a target; existing tools are overwritten in place. Any error
// leaves the session open.
func (c *Controller) Save(ctx context.Context, target SaveTarget) (Result, error) {
	s, err := c.current()
	if err != nil {
		return Result{}, err
	}
	if err := c.Validate(); err != nil {
		return Result{}, err
	}

	c.state = StateSaving
	result, err := c.persist(ctx, s, target)
	if err != nil {
		c.state = StateOpen
		c.logger.Warn("save failed", "session", s.ID, "error", err)
		return Result{}, err
	}

	c.logger.Info("tool saved", "session", s.ID, "id", result.ToolID)
	c.close()
	return result, nil
}

func (c *Controller) persist(ctx context.Context, s *Session, target SaveTarget) (Result, error) {
	result := Result{Kind: ResultSaved, SessionID: s.ID, ToolID: s.ToolID}

	if s.Origin == OriginExisting {
		var err error
		if s.Mode == ModeJSON {
			err = c.tools.UpdateRaw(ctx, s.ToolID, s.Text)
		} else {
			err = c.tools.Update(ctx, s.ToolID, s.Tool)
		}
		return result, err
	}

	var (
		saved repository.Saved
		err   error
	)
	if s.Mode == ModeJSON {
		saved, err = c.tools.CreateRaw(ctx, target.Folder, target.Filename, s.Text)
	} else {
		saved, err = c.tools.Create(ctx, target.Folder, target.Filename, s.Tool)
	}
	if err != nil {
		return Result{}, err
	}
	result.ToolID = saved.ID
	result.Path = saved.Path
	return result, nil
}

// Cancel discards the session
func (c *Controller) Cancel() (Result, error) {
	s, err := c.current()
	if err != nil {
		return Result{}, err
	}
	c.state = StateCanceling
	result := Result{Kind: ResultCanceled, SessionID: s.ID, ToolID: s.ToolID}
	c.close()
	return result, nil
}

// Folders lists the folders a new tool can be saved into
func (c *Controller) Folders(ctx context.Context) []string {
	return c.tools.Folders(ctx)
}

func (c *Controller) CreateFolder(ctx context.Context, name string) error {
	return c.tools.CreateFolder(ctx, name)
}
