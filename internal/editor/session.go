package editor

import (
	"github.com/google/uuid"
	"github.com/isaacphi/forge/internal/domain"
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateSaving
	StateCanceling
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateSaving:
		return "saving"
	case StateCanceling:
		return "canceling"
	}
	return "unknown"
}

// Mode selects how the tool is being edited
type Mode int

const (
	ModeWizard Mode = iota
	ModeJSON
)

func (m Mode) String() string {
	if m == ModeJSON {
		return "json"
	}
	return "wizard"
}

// Origin tells a brand new tool from one loaded from the store
type Origin int

const (
	OriginNew Origin = iota
	OriginExisting
)

// SaveTarget is where a new tool goes. Folder is empty for the root.
type SaveTarget struct {
	Folder   string
	Filename string
}

// Session is one open editor. In wizard mode Tool is authoritative, in JSON
// mode Text is.
type Session struct {
	ID     uuid.UUID
	Origin Origin
	Mode   Mode
	ToolID string // set for existing tools

	Tool  domain.Tool
	Text  string
	Dirty bool
}

func (s *Session) IsNew() bool {
	return s.Origin == OriginNew
}

// Title is what the editor header shows
func (s *Session) Title() string {
	if s.Origin == OriginExisting {
		return s.ToolID
	}
	if s.Mode == ModeWizard && s.Tool.Name != "" {
		return s.Tool.Name + " (new)"
	}
	return "New tool"
}
