package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/forge/internal/appState"
	"github.com/isaacphi/forge/internal/ui/tui/screens"
	"github.com/isaacphi/forge/internal/watcher"
)

// Start runs the editor until the user quits or ctx is canceled. Changes
// made to the tools directory by other programs refresh the browser.
func Start(ctx context.Context, tools Tools) error {
	app := appState.Get()
	cfg := app.Config

	m := New(ctx, tools, cfg, app.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Editor.Watch {
		w, err := watcher.New(watcher.Config{
			Dir:      cfg.ToolsDir,
			Debounce: cfg.Editor.WatchDebounce,
			OnChange: func() { p.Send(screens.RefreshMsg{}) },
			Logger:   app.Logger,
		})
		if err != nil {
			app.Logger.Warn("file watching disabled", "error", err)
		} else if err := w.Start(); err != nil {
			app.Logger.Warn("file watching disabled", "error", err)
			w.Stop()
		} else {
			defer w.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
