package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/editor"
	"github.com/isaacphi/forge/internal/repository"
	"github.com/isaacphi/forge/internal/ui/tui/components/dialog"
	"github.com/isaacphi/forge/internal/ui/tui/components/help"
	"github.com/isaacphi/forge/internal/ui/tui/keymap"
	"github.com/isaacphi/forge/internal/ui/tui/layout"
	"github.com/isaacphi/forge/internal/ui/tui/screens"
	"github.com/isaacphi/forge/internal/ui/tui/screens/browser"
	"github.com/isaacphi/forge/internal/ui/tui/screens/jsoneditor"
	"github.com/isaacphi/forge/internal/ui/tui/screens/wizard"
	"github.com/isaacphi/forge/internal/ui/tui/theme"
)

// Tools is what the TUI needs from the tool service
type Tools interface {
	editor.Tools
	List(ctx context.Context) []repository.Entry
}

// Model is the root model. It owns the editor controller and routes keys
// to the top dialog, or to the current screen when no dialog is open.
type Model struct {
	ctx    context.Context
	ctrl   *editor.Controller
	logger *slog.Logger
	keyMap *config.KeyMap
	theme  *theme.Theme
	help   help.Model

	currentScreen screens.ScreenType
	browser       *browser.Model
	wizard        *wizard.Model
	jsonEditor    *jsoneditor.Model

	// dialogs mirrors ctrl.Dialogs, one view per entry
	dialogs []dialog.Dialog

	status string
	width  int
	height int
}

// New creates the root model
func New(ctx context.Context, tools Tools, cfg *config.ConfigSchema, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	thm := theme.DefaultTheme()
	km := &cfg.KeyMap
	ctrl := editor.NewController(tools, logger)

	defaultMode := editor.ModeWizard
	if cfg.Editor.DefaultMode == "json" {
		defaultMode = editor.ModeJSON
	}

	m := &Model{
		ctx:           ctx,
		ctrl:          ctrl,
		logger:        logger.With("component", "tui"),
		keyMap:        km,
		theme:         thm,
		currentScreen: screens.BrowserScreen,
		browser:       browser.New(ctx, tools, km, thm, cfg.ToolsDir, defaultMode),
		wizard:        wizard.New(ctrl, km, thm),
		jsonEditor:    jsoneditor.New(ctrl, km, thm, cfg.Editor.TabSize),
		width:         80,
		height:        24,
	}
	m.help = help.New(m.GetKeyMap(), thm)
	m.resize()
	return m
}

// Controller exposes the editor state
func (m *Model) Controller() *editor.Controller {
	return m.ctrl
}

// Screen returns the screen being shown
func (m *Model) Screen() screens.ScreenType {
	return m.currentScreen
}

// Dialog returns the top dialog, if any
func (m *Model) Dialog() (dialog.Dialog, bool) {
	if len(m.dialogs) == 0 {
		return nil, false
	}
	return m.dialogs[len(m.dialogs)-1], true
}

// Status returns the last status line
func (m *Model) Status() string {
	return m.status
}

func (m *Model) Init() tea.Cmd {
	return m.browser.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case browser.LoadedMsg:
		_, cmd := m.browser.Update(msg)
		return m, cmd

	case screens.RefreshMsg:
		return m, m.browser.Load()

	case screens.ErrorMsg:
		m.showError(msg.Err)
		return m, nil

	case screens.NewToolMsg:
		if _, err := m.ctrl.NewSession(msg.Mode); err != nil {
			m.showError(err)
			return m, nil
		}
		return m, m.showEditor()

	case screens.EditToolMsg:
		if _, err := m.ctrl.OpenSession(m.ctx, msg.ID, msg.Mode); err != nil {
			m.showError(err)
			return m, nil
		}
		return m, m.showEditor()

	case screens.DeleteToolMsg:
		m.ctrl.RequestDelete(msg.ID)
		if top, ok := m.ctrl.Dialogs.Top(); ok {
			m.dialogs = append(m.dialogs, dialog.NewConfirm(top, m.keyMap, m.theme))
		}
		return m, nil

	case dialog.ConfirmMsg:
		return m, m.answerDelete(msg.Yes)

	case screens.SaveMsg:
		return m, m.save()

	case dialog.SaveSubmitMsg:
		return m, m.saveTo(msg.Target)

	case screens.CancelMsg:
		if _, err := m.ctrl.Cancel(); err != nil {
			m.showError(err)
			return m, nil
		}
		m.status = "Changes discarded"
		m.closeEditor()
		return m, nil

	case screens.SwitchModeMsg:
		if err := m.ctrl.SwitchMode(msg.Mode); err != nil {
			m.showError(err)
			return m, nil
		}
		return m, m.showEditor()

	case screens.PropertyDialogMsg:
		m.openPropertyDialog(msg.Name)
		return m, nil

	case dialog.PropertySubmitMsg:
		m.applyProperty(msg)
		return m, nil

	case dialog.NewFolderRequestMsg:
		m.pushDialog(editor.Dialog{Kind: editor.DialogNewFolder, Title: "New folder"}, dialog.NewNewFolder(m.keyMap, m.theme))
		return m, nil

	case dialog.NewFolderSubmitMsg:
		m.createFolder(msg.Name)
		return m, nil

	case dialog.CloseMsg:
		m.closeDialog()
		return m, nil
	}

	// Anything else, such as cursor blinks, goes to the current screen
	return m, m.updateScreen(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if top, ok := m.Dialog(); ok {
		return top.Update(msg)
	}

	// Single letter keys belong to the text fields once an editor is open
	if m.currentScreen == screens.BrowserScreen && !m.browser.Filtering() {
		switch {
		case keymap.Matches(msg, m.keyMap, config.KeyActionQuit):
			return tea.Quit
		case keymap.Matches(msg, m.keyMap, config.KeyActionToggleHelp):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return nil
		}
	}
	return m.updateScreen(msg)
}

func (m *Model) updateScreen(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.currentScreen {
	case screens.WizardScreen:
		_, cmd = m.wizard.Update(msg)
	case screens.JSONScreen:
		_, cmd = m.jsonEditor.Update(msg)
	default:
		_, cmd = m.browser.Update(msg)
	}
	return cmd
}

// showEditor switches to the screen for the session's mode
func (m *Model) showEditor() tea.Cmd {
	s := m.ctrl.Session()
	if s == nil {
		return nil
	}
	m.status = ""
	m.currentScreen = screens.ForMode(s.Mode)
	m.resize()
	if m.currentScreen == screens.JSONScreen {
		return m.jsonEditor.Load()
	}
	return m.wizard.Load()
}

func (m *Model) closeEditor() {
	m.currentScreen = screens.BrowserScreen
	m.dialogs = nil
	m.ctrl.Dialogs.Clear()
	m.resize()
}

func (m *Model) save() tea.Cmd {
	if err := m.ctrl.Validate(); err != nil {
		m.showError(err)
		return nil
	}
	if !m.ctrl.NeedsTarget() {
		return m.saveTo(editor.SaveTarget{})
	}

	folders := m.ctrl.Folders(m.ctx)
	m.pushDialog(editor.Dialog{Kind: editor.DialogSave, Title: "Save new tool"}, dialog.NewSave(folders, m.suggestedFilename(), m.keyMap, m.theme))
	return nil
}

// suggestedFilename is {name}.json for the tool being saved
func (m *Model) suggestedFilename() string {
	s := m.ctrl.Session()
	if s == nil {
		return ""
	}
	name := s.Tool.Name
	if s.Mode == editor.ModeJSON {
		if tool, err := domain.ParseTool([]byte(s.Text)); err == nil {
			name = tool.Name
		}
	}
	if name == "" {
		return ""
	}
	return name + ".json"
}

// saveTo persists the session. On failure the editor and any save dialog
// stay open beneath the error.
func (m *Model) saveTo(target editor.SaveTarget) tea.Cmd {
	result, err := m.ctrl.Save(m.ctx, target)
	if err != nil {
		m.showError(err)
		return nil
	}

	m.status = "Saved " + result.ToolID
	m.closeEditor()
	m.browser.Select(result.ToolID)
	return m.browser.Load()
}

func (m *Model) answerDelete(yes bool) tea.Cmd {
	if !yes {
		m.ctrl.CancelDelete()
		m.syncDialogs()
		return nil
	}

	result, err := m.ctrl.ConfirmDelete(m.ctx)
	m.syncDialogs()
	if err != nil {
		m.showError(err)
		return nil
	}
	m.status = "Deleted " + result.ToolID
	m.resize()
	return m.browser.Load()
}

func (m *Model) openPropertyDialog(name string) {
	s := m.ctrl.Session()
	if s == nil {
		return
	}
	form := editor.PropertyForm{Type: "string"}
	title := "Add property"
	if name != "" {
		prop, ok := s.Tool.Parameters.Properties[name]
		if !ok {
			return
		}
		form = editor.FormFromProperty(prop)
		form.Name = name
		form.Required = s.Tool.Parameters.IsRequired(name)
		title = "Edit " + name
	}
	m.pushDialog(editor.Dialog{Kind: editor.DialogProperty, Title: title, Target: name}, dialog.NewProperty(name, form, m.keyMap, m.theme))
}

func (m *Model) applyProperty(msg dialog.PropertySubmitMsg) {
	var err error
	if msg.Original == "" {
		err = m.ctrl.AddProperty(msg.Form)
	} else {
		err = m.ctrl.EditProperty(msg.Original, msg.Form)
	}
	if err != nil {
		m.showError(err)
		return
	}
	m.closeDialog()
	m.wizard.SelectProperty(msg.Form.Name)
}

func (m *Model) createFolder(name string) {
	if err := m.ctrl.CreateFolder(m.ctx, name); err != nil {
		m.showError(err)
		return
	}
	m.closeDialog()
	if top, ok := m.Dialog(); ok {
		if save, ok := top.(*dialog.Save); ok {
			save.SetFolders(m.ctrl.Folders(m.ctx), name)
		}
	}
}

func (m *Model) pushDialog(d editor.Dialog, view dialog.Dialog) {
	m.ctrl.Dialogs.Push(d)
	m.dialogs = append(m.dialogs, view)
}

// closeDialog dismisses the top dialog. A pending delete is canceled
// through the controller so its state stays consistent.
func (m *Model) closeDialog() {
	top, ok := m.ctrl.Dialogs.Top()
	if !ok {
		return
	}
	if top.Kind == editor.DialogConfirmDelete {
		m.ctrl.CancelDelete()
	} else {
		m.ctrl.Dialogs.Pop()
	}
	m.syncDialogs()
}

// syncDialogs drops views whose controller dialog is gone
func (m *Model) syncDialogs() {
	if n := m.ctrl.Dialogs.Len(); len(m.dialogs) > n {
		m.dialogs = m.dialogs[:n]
	}
}

func (m *Model) showError(err error) {
	m.logger.Warn("operation failed", "error", err)
	d := editor.ErrorDialog(err)
	m.pushDialog(d, dialog.NewMessage(d, m.keyMap, m.theme))
}

func (m *Model) resize() {
	m.help.SetKeybindings(m.GetKeyMap())
	res := layout.LayoutScreen(m.width, m.height, m.help, m.theme, m.status)
	contentHeight := res.ContentHeight - 1 // header
	m.browser.SetSize(m.width, contentHeight)
	m.wizard.SetSize(m.width, contentHeight)
	m.jsonEditor.SetSize(m.width, contentHeight)
}

func (m *Model) header() string {
	title := "forge"
	if s := m.ctrl.Session(); s != nil && m.currentScreen != screens.BrowserScreen {
		title = fmt.Sprintf("forge | %s | %s", s.Title(), s.Mode)
		if s.Dirty {
			title += " *"
		}
	}
	return m.theme.HeaderStyle.Render(title)
}

func (m *Model) View() string {
	m.help.SetKeybindings(m.GetKeyMap())
	res := layout.LayoutScreen(m.width, m.height, m.help, m.theme, m.status)
	contentHeight := res.ContentHeight - 1

	var content string
	if top, ok := m.Dialog(); ok {
		content = layout.RenderDialog(top.View(), m.width, contentHeight)
	} else {
		switch m.currentScreen {
		case screens.WizardScreen:
			content = m.wizard.View()
		case screens.JSONScreen:
			content = m.jsonEditor.View()
		default:
			content = m.browser.View()
		}
	}

	body := layout.RenderScreen(content, contentHeight, res)
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body)
}
