package watcher

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 200 * time.Millisecond

// Config holds configuration for the watcher
type Config struct {
	Dir      string
	Debounce time.Duration
	// OnChange runs once per burst of events, on the watcher's goroutine
	OnChange func()
	Logger   *slog.Logger
}

// Watcher reports changes to tool files under a directory tree. Events are
// coalesced: a save that touches several files produces one callback.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	onChange func()
	logger   *slog.Logger

	done     chan struct{}
	timer    *time.Timer
	mu       sync.Mutex
	stopOnce sync.Once
}

func New(cfg Config) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Watcher{
		watcher:  w,
		dir:      cfg.Dir,
		debounce: cfg.Debounce,
		onChange: cfg.OnChange,
		logger:   cfg.Logger.With("component", "watcher"),
		done:     make(chan struct{}),
	}, nil
}

// Start watches dir and its subdirectories and returns immediately
func (w *Watcher) Start() error {
	if err := w.addRecursive(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	go w.loop()

	w.logger.Info("watching tools directory", "path", w.dir)
	return nil
}

func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		if cerr := w.watcher.Close(); cerr != nil {
			err = fmt.Errorf("failed to close watcher: %w", cerr)
		}
		w.logger.Debug("watcher stopped")
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if w.ignored(event.Name) {
		return
	}

	// new folders have to be watched explicitly
	if event.Has(fsnotify.Create) {
		if err := w.addRecursive(event.Name); err != nil {
			w.logger.Debug("not watching new path", "path", event.Name, "error", err)
		}
	}

	isDir := filepath.Ext(event.Name) == ""
	if !isDir && !strings.HasSuffix(event.Name, ".json") {
		return
	}
	w.schedule()
}

// schedule restarts the debounce timer
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		if w.onChange != nil {
			w.onChange()
		}
	})
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != w.dir && w.ignored(p) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			w.logger.Warn("failed to watch path", "path", p, "error", err)
		}
		return nil
	})
}

// ignored skips hidden files and folders below dir, which also covers the
// temp files the store writes before renaming.
func (w *Watcher) ignored(p string) bool {
	rel, err := filepath.Rel(w.dir, p)
	if err != nil || rel == "." {
		return false
	}
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
