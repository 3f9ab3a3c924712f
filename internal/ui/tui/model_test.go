package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/editor"
	"github.com/isaacphi/forge/internal/repository/filesystem"
	"github.com/isaacphi/forge/internal/service"
	"github.com/isaacphi/forge/internal/ui/tui/components/dialog"
	"github.com/isaacphi/forge/internal/ui/tui/screens"
	"github.com/isaacphi/forge/internal/ui/tui/screens/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *service.ToolService, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	dir := t.TempDir()
	cfg, err := config.New(&config.RuntimeOverrides{ToolsDir: &dir})
	require.NoError(t, err)

	store, resolver, err := filesystem.Initialize(dir, nil)
	require.NoError(t, err)
	svc := service.NewToolService(store, resolver, nil)

	m := New(context.Background(), svc, cfg, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(m.Init()())
	return m, svc, dir
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// press sends a key whose command is expected to emit one message, and
// feeds that message back into the model
func press(t *testing.T, m *Model, key tea.KeyMsg) tea.Msg {
	t.Helper()
	_, cmd := m.Update(key)
	require.NotNil(t, cmd, "key %q produced no command", key.String())
	msg := cmd()
	m.Update(msg)
	return msg
}

func TestBrowser_ListsTools(t *testing.T) {
	m, svc, _ := newTestModel(t)
	_, err := svc.Create(context.Background(), "", "ping", domain.NewTool("ping", "Check liveness"))
	require.NoError(t, err)

	m.Update(m.browser.Load()())

	require.Len(t, m.browser.Entries(), 1)
	assert.Contains(t, m.View(), "ping")
	assert.Equal(t, screens.BrowserScreen, m.Screen())
}

func TestWizard_CreateToolEndToEnd(t *testing.T) {
	m, _, dir := newTestModel(t)

	msg := press(t, m, runes("n"))
	assert.Equal(t, screens.NewToolMsg{Mode: editor.ModeWizard}, msg)
	require.Equal(t, screens.WizardScreen, m.Screen())

	typeText(m, "get_weather")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "Get the weather")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, wizard.FieldProperties, m.wizard.Focused())

	s := m.Controller().Session()
	assert.Equal(t, "get_weather", s.Tool.Name)
	assert.Equal(t, "Get the weather", s.Tool.Description)
	assert.True(t, s.Dirty)

	press(t, m, runes("a"))
	top, ok := m.Dialog()
	require.True(t, ok)
	assert.Equal(t, editor.DialogProperty, top.Kind())

	typeText(m, "city")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, ok = m.Dialog()
	assert.False(t, ok)
	require.Contains(t, s.Tool.Parameters.Properties, "city")
	assert.Equal(t, "string", s.Tool.Parameters.Properties["city"].Type)

	m.Update(runes("x"))
	assert.True(t, s.Tool.Parameters.IsRequired("city"))

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	top, ok = m.Dialog()
	require.True(t, ok)
	save, ok := top.(*dialog.Save)
	require.True(t, ok)
	assert.Equal(t, editor.SaveTarget{Filename: "get_weather.json"}, save.Target())

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screens.BrowserScreen, m.Screen())
	assert.Equal(t, editor.StateClosed, m.Controller().State())
	assert.Equal(t, "Saved get_weather", m.Status())
	_, ok = m.Dialog()
	assert.False(t, ok)

	data, err := os.ReadFile(filepath.Join(dir, "get_weather.json"))
	require.NoError(t, err)
	tool, err := domain.ParseTool(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"city"}, tool.Parameters.Required)
}

func TestWizard_SaveCollisionPicksFreeName(t *testing.T) {
	m, svc, dir := newTestModel(t)
	_, err := svc.Create(context.Background(), "", "ping", domain.NewTool("ping", ""))
	require.NoError(t, err)

	press(t, m, runes("n"))
	typeText(m, "ping")
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Saved ping_1", m.Status())
	assert.FileExists(t, filepath.Join(dir, "ping_1.json"))
}

func TestWizard_InvalidSaveShowsErrorAndKeepsSession(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(t, m, runes("n"))
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	top, ok := m.Dialog()
	require.True(t, ok)
	assert.Equal(t, editor.DialogError, top.Kind())
	assert.Equal(t, editor.StateOpen, m.Controller().State())
	assert.Equal(t, screens.WizardScreen, m.Screen())

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, ok = m.Dialog()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Controller().Dialogs.Len())
}

func TestWizard_TypingQDoesNotQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(t, m, runes("n"))
	m.Update(runes("q"))

	assert.Equal(t, "q", m.Controller().Session().Tool.Name)
}

func TestWizard_EscapeDiscards(t *testing.T) {
	m, _, dir := newTestModel(t)

	press(t, m, runes("n"))
	typeText(m, "scratch")
	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screens.BrowserScreen, m.Screen())
	assert.Equal(t, editor.StateClosed, m.Controller().State())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSwitchMode_WizardToJSONAndBack(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(t, m, runes("n"))
	typeText(m, "lookup")
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	require.Equal(t, screens.JSONScreen, m.Screen())
	assert.Contains(t, m.jsonEditor.Value(), `"name": "lookup"`)

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, screens.WizardScreen, m.Screen())
	assert.Equal(t, "lookup", m.Controller().Session().Tool.Name)
}

func TestJSONEditor_NewFromTemplate(t *testing.T) {
	m, _, dir := newTestModel(t)

	press(t, m, runes("N"))
	require.Equal(t, screens.JSONScreen, m.Screen())
	assert.Equal(t, domain.NewTemplate(), m.jsonEditor.Value())

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	top, ok := m.Dialog()
	require.True(t, ok)
	assert.Equal(t, editor.DialogSave, top.Kind())

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.FileExists(t, filepath.Join(dir, "tool_name.json"))
}

func TestSaveDialog_NewFolder(t *testing.T) {
	m, _, dir := newTestModel(t)

	press(t, m, runes("n"))
	typeText(m, "forecast")
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})

	top, ok := m.Dialog()
	require.True(t, ok)
	assert.Equal(t, editor.DialogNewFolder, top.Kind())

	typeText(m, "weather")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	top, ok = m.Dialog()
	require.True(t, ok)
	save := top.(*dialog.Save)
	assert.Equal(t, "weather", save.Target().Folder)

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Saved weather/forecast", m.Status())
	assert.FileExists(t, filepath.Join(dir, "weather", "forecast.json"))
}

func TestDelete_ConfirmAndCancel(t *testing.T) {
	m, svc, dir := newTestModel(t)
	_, err := svc.Create(context.Background(), "", "ping", domain.NewTool("ping", ""))
	require.NoError(t, err)
	m.Update(m.browser.Load()())

	press(t, m, runes("d"))
	top, ok := m.Dialog()
	require.True(t, ok)
	assert.Equal(t, editor.DialogConfirmDelete, top.Kind())

	press(t, m, runes("n"))
	_, ok = m.Dialog()
	assert.False(t, ok)
	assert.Equal(t, editor.DeleteCanceled, m.Controller().Deletion().State)
	assert.FileExists(t, filepath.Join(dir, "ping.json"))

	press(t, m, runes("d"))
	press(t, m, runes("y"))
	assert.Equal(t, editor.DeleteDeleted, m.Controller().Deletion().State)
	assert.Equal(t, "Deleted ping", m.Status())
	assert.NoFileExists(t, filepath.Join(dir, "ping.json"))
	assert.Equal(t, 0, m.Controller().Dialogs.Len())
}

func TestBrowser_BrokenFileOpensInJSON(t *testing.T) {
	m, _, dir := newTestModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644))
	m.Update(m.browser.Load()())

	msg := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screens.EditToolMsg{ID: "broken", Mode: editor.ModeJSON}, msg)
	assert.Equal(t, screens.JSONScreen, m.Screen())
	assert.Equal(t, "{", m.jsonEditor.Value())
}

func TestEditExisting_SavesInPlace(t *testing.T) {
	m, svc, _ := newTestModel(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, "", "ping", domain.NewTool("ping", "old"))
	require.NoError(t, err)
	m.Update(m.browser.Load()())

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screens.WizardScreen, m.Screen())
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "er")
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, screens.BrowserScreen, m.Screen())
	tool, err := svc.Get(ctx, "ping")
	require.NoError(t, err)
	assert.Equal(t, "older", tool.Description)
}

func TestRefreshMsg_ReloadsBrowser(t *testing.T) {
	m, svc, _ := newTestModel(t)
	_, err := svc.Create(context.Background(), "", "late", domain.NewTool("late", ""))
	require.NoError(t, err)

	_, cmd := m.Update(screens.RefreshMsg{})
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.Len(t, m.browser.Entries(), 1)
	assert.Equal(t, "late", m.browser.Entries()[0].ID)
}

func TestBrowser_QuitAndHelp(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(runes("?"))
	assert.Nil(t, cmd)
	assert.True(t, m.help.ShowAll)

	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
