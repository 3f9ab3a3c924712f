package appState

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/isaacphi/forge/internal/config"
)

// App holds the global application state
type App struct {
	Config  *config.ConfigSchema
	Logger  *slog.Logger
	LogPath string // empty when logging to stderr
	closer  io.Closer // For cleanup of resources like log files
}

var (
	globalApp *App
	initOnce  sync.Once
	initErr   error
	mu        sync.RWMutex
)

// Initialize creates the global app instance with the given overrides
func Initialize(overrides *config.RuntimeOverrides) error {
	initOnce.Do(func() {
		// Load base configuration first
		cfg, err := config.New(overrides)
		if err != nil {
			initErr = fmt.Errorf("failed to load config: %w", err)
			return
		}

		// Set up logger
		logger, logPath, closer, err := setupLogger(cfg.Log)
		if err != nil {
			initErr = fmt.Errorf("failed to setup logger: %w", err)
			return
		}

		mu.Lock()
		globalApp = &App{
			Config:  cfg,
			Logger:  logger,
			LogPath: logPath,
			closer:  closer,
		}
		mu.Unlock()

		// Set as default logger
		slog.SetDefault(logger)

		for _, warning := range cfg.Warnings() {
			logger.Warn("configuration", "warning", warning)
		}
	})
	return initErr
}

// Get returns the global app instance and panics if not initialized
func Get() *App {
	mu.RLock()
	defer mu.RUnlock()

	if globalApp == nil {
		panic("app not initialized")
	}
	return globalApp
}

// TryGet returns the global app instance and a boolean indicating if it's initialized
func TryGet() (*App, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return globalApp, globalApp != nil
}

// Cleanup performs cleanup of app resources
func Cleanup() error {
	mu.Lock()
	defer mu.Unlock()

	if globalApp != nil && globalApp.closer != nil {
		err := globalApp.closer.Close()
		globalApp.closer = nil
		return err
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupLogger logs to a file by default since the TUI owns the terminal.
// An empty LogFile means forge.log in the config directory and "-" means
// stderr.
func setupLogger(cfg config.Log) (*slog.Logger, string, io.Closer, error) {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.LogLevel),
		AddSource: true,
	}

	if cfg.LogFile == "-" {
		// Use stderr, no cleanup needed
		handler := slog.NewTextHandler(os.Stderr, opts)
		return slog.New(handler), "", nil, nil
	}

	path := cfg.LogFile
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to find log directory: %w", err)
		}
		path = filepath.Join(dir, "forge.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, "", nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Create log file
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(file, opts)
	return slog.New(handler), path, file, nil
}
