package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/repository"
	"github.com/isaacphi/forge/internal/repository/filesystem"
	"github.com/isaacphi/forge/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) (*Controller, *service.ToolService) {
	t.Helper()
	store, resolver, err := filesystem.Initialize(t.TempDir(), nil)
	require.NoError(t, err)
	svc := service.NewToolService(store, resolver, nil)
	return NewController(svc, nil), svc
}

func TestNewSession_WizardEndToEnd(t *testing.T) {
	ctx := context.Background()
	c, svc := newController(t)

	s, err := c.NewSession(ModeWizard)
	require.NoError(t, err)
	assert.Equal(t, StateOpen, c.State())
	assert.NotEmpty(t, s.ID)
	assert.True(t, c.NeedsTarget())

	require.NoError(t, c.SetName("get_weather"))
	require.NoError(t, c.SetDescription("Get the current weather"))
	require.NoError(t, c.AddProperty(PropertyForm{Name: "location", Type: "string", Required: true}))

	result, err := c.Save(ctx, SaveTarget{Filename: "get_weather"})
	require.NoError(t, err)
	assert.Equal(t, ResultSaved, result.Kind)
	assert.Equal(t, "get_weather", result.ToolID)
	assert.Equal(t, StateClosed, c.State())
	assert.Nil(t, c.Session())

	tool, err := svc.Get(ctx, result.ToolID)
	require.NoError(t, err)
	assert.Equal(t, []string{"location"}, tool.Parameters.Required)
	assert.Equal(t, "Get the current weather", tool.Description)
}

func TestSave_ValidationKeepsSessionOpen(t *testing.T) {
	ctx := context.Background()
	c, _ := newController(t)
	_, err := c.NewSession(ModeWizard)
	require.NoError(t, err)

	// empty name
	_, err = c.Save(ctx, SaveTarget{Filename: "x"})
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, StateOpen, c.State())

	// empty filename
	require.NoError(t, c.SetName("ok"))
	_, err = c.Save(ctx, SaveTarget{})
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, StateOpen, c.State())

	// folder not chosen from the list
	_, err = c.Save(ctx, SaveTarget{Folder: "missing", Filename: "x"})
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, StateOpen, c.State())
	assert.NotNil(t, c.Session())
}

func TestNewSession_JSONMode(t *testing.T) {
	ctx := context.Background()
	c, svc := newController(t)

	s, err := c.NewSession(ModeJSON)
	require.NoError(t, err)
	assert.Equal(t, domain.NewTemplate(), s.Text)

	require.NoError(t, c.SetText("{broken"))
	_, err = c.Save(ctx, SaveTarget{Filename: "t"})
	assert.True(t, domain.IsValidationError(err))

	require.NoError(t, c.SetText(domain.NewTemplate()))
	result, err := c.Save(ctx, SaveTarget{Filename: "t"})
	require.NoError(t, err)

	raw, err := svc.GetRaw(ctx, result.ToolID)
	require.NoError(t, err)
	assert.Equal(t, domain.NewTemplate(), raw)
}

func TestOnlyOneSession(t *testing.T) {
	c, _ := newController(t)
	_, err := c.NewSession(ModeWizard)
	require.NoError(t, err)

	_, err = c.NewSession(ModeJSON)
	assert.ErrorIs(t, err, ErrSessionOpen)
}

func TestCancel(t *testing.T) {
	c, _ := newController(t)
	_, err := c.Cancel()
	assert.ErrorIs(t, err, ErrNoSession)

	s, err := c.NewSession(ModeWizard)
	require.NoError(t, err)
	result, err := c.Cancel()
	require.NoError(t, err)
	assert.Equal(t, ResultCanceled, result.Kind)
	assert.Equal(t, s.ID, result.SessionID)
	assert.Equal(t, StateClosed, c.State())
}

func TestOpenSession_ExistingOverwritesInPlace(t *testing.T) {
	ctx := context.Background()
	c, svc := newController(t)

	tool := domain.NewTool("ping", "")
	saved, err := svc.Create(ctx, "", "ping", tool)
	require.NoError(t, err)

	s, err := c.OpenSession(ctx, saved.ID, ModeWizard)
	require.NoError(t, err)
	assert.False(t, c.NeedsTarget())
	assert.Equal(t, "ping", s.Title())

	require.NoError(t, c.SetDescription("pong"))
	result, err := c.Save(ctx, SaveTarget{})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, result.ToolID)

	got, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "pong", got.Description)
	assert.Len(t, svc.List(ctx), 1)
}

func TestOpenSession_Absent(t *testing.T) {
	c, _ := newController(t)
	_, err := c.OpenSession(context.Background(), "missing", ModeWizard)
	assert.True(t, domain.IsNotFoundError(err))
	assert.Equal(t, StateClosed, c.State())
}

func TestSwitchMode(t *testing.T) {
	c, _ := newController(t)
	_, err := c.NewSession(ModeWizard)
	require.NoError(t, err)
	require.NoError(t, c.SetName("calc"))
	require.NoError(t, c.AddProperty(PropertyForm{Name: "n", Type: "integer", Enum: "1, 2"}))

	require.NoError(t, c.SwitchMode(ModeJSON))
	assert.Contains(t, c.Session().Text, `"calc"`)

	require.NoError(t, c.SetText("not json"))
	assert.True(t, domain.IsValidationError(c.SwitchMode(ModeWizard)))
	assert.Equal(t, ModeJSON, c.Session().Mode)

	// wizard operations are refused in json mode
	assert.True(t, domain.IsValidationError(c.SetName("x")))
}

type failingTools struct {
	Tools
}

func (failingTools) Get(ctx context.Context, id string) (domain.Tool, error) {
	return domain.NewTool("ping", ""), nil
}

func (failingTools) Update(ctx context.Context, id string, tool domain.Tool) error {
	return domain.IOError{Op: "write", Path: id, Err: errors.New("disk full")}
}

func (failingTools) Delete(ctx context.Context, id string) error {
	return domain.IOError{Op: "remove", Path: id, Err: errors.New("read-only")}
}

func (failingTools) Create(ctx context.Context, folder, filename string, tool domain.Tool) (repository.Saved, error) {
	return repository.Saved{}, errors.New("unreachable")
}

func TestSave_IOErrorKeepsSessionOpen(t *testing.T) {
	ctx := context.Background()
	c := NewController(failingTools{}, nil)

	_, err := c.OpenSession(ctx, "ping", ModeWizard)
	require.NoError(t, err)

	_, err = c.Save(ctx, SaveTarget{})
	assert.True(t, domain.IsIOError(err))
	assert.Equal(t, StateOpen, c.State())
}
