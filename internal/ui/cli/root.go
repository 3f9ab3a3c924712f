package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/forge/internal/appState"
	"github.com/isaacphi/forge/internal/config"
	"github.com/isaacphi/forge/internal/shared"
	configCmd "github.com/isaacphi/forge/internal/ui/cli/config"
	"github.com/isaacphi/forge/internal/ui/cli/folders"
	"github.com/isaacphi/forge/internal/ui/cli/schema"
	"github.com/isaacphi/forge/internal/ui/cli/tools"
	"github.com/isaacphi/forge/internal/ui/tui"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
	toolsDir string
)

// cleanup runs after every command, including failed ones
var cleanup = appState.Cleanup

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Edit LLM tool specifications",
	Long: `forge edits the JSON tool specifications handed to LLM function calling.

Run without a command to open the editor on the tools directory. The
commands below work on the same files from scripts.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializeToolService()
		if err != nil {
			return err
		}

		app := appState.Get()
		fmt.Fprintf(cmd.ErrOrStderr(), "forge: editing tools in %s\n", app.Config.ToolsDir)
		if app.LogPath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "forge: logging to %s\n", app.LogPath)
		}
		return tui.Start(cmd.Context(), svc)
	},
}

// Execute runs the root command and returns the process exit code. An
// interrupt is a normal exit.
func Execute() (code int) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer func() {
		if err := cleanup(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "fatal: %v\n", r)
			code = 1
		}
	}()

	// Set up the root command to use this context
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		if isInterrupt(ctx, err) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func isInterrupt(ctx context.Context, err error) bool {
	// ctx is only canceled by a signal
	return errors.Is(err, tea.ErrInterrupted) || ctx.Err() != nil
}

func init() {
	// Add global flags for logging
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", `Log file path ("-" for stderr, defaults to forge.log in the config directory)`)
	rootCmd.PersistentFlags().StringVar(&toolsDir, "tools-dir", "", "Directory holding tool specifications")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Initialize app with runtime overrides
		overrides := &config.RuntimeOverrides{}
		if logLevel != "" {
			overrides.LogLevel = &logLevel
		}
		if logFile != "" {
			overrides.LogFile = &logFile
		}
		if toolsDir != "" {
			overrides.ToolsDir = &toolsDir
		}
		return appState.Initialize(overrides)
	}

	// Remove "completions" command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		configCmd.ConfigCmd,
		schema.SchemaCmd,
		tools.ToolsCmd,
		folders.FoldersCmd,
	)
}
