// Package watch re-runs a callback when schema documents change on disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/hanpama/sdlcheck/internal/source"
)

// Watcher watches files and directories for SDL changes. Bursts of events
// are collapsed into a single callback after the debounce interval.
type Watcher struct {
	fs       *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration

	// files holds explicitly watched files; events on other files count only
	// when they carry a schema extension.
	files map[string]bool
}

// New watches paths. Directories are watched recursively, including
// directories created later.
func New(paths []string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	w := &Watcher{
		fs:       fw,
		logger:   logger,
		debounce: debounce,
		files:    make(map[string]bool),
	}
	for _, p := range paths {
		if err := w.add(p); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to watch %q: %w", path, err)
	}
	if !info.IsDir() {
		w.files[filepath.Clean(path)] = true
		return w.fs.Add(filepath.Dir(path))
	}
	return w.addDir(path)
}

func (w *Watcher) addDir(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(ev.Name)
	return w.files[name] || source.IsSchemaFile(name)
}

// Run blocks until ctx is done, calling onChange after each debounced burst
// of relevant events. Callbacks run on the calling goroutine and never
// overlap. The underlying watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	defer w.fs.Close()

	w.logger.Info("watching for schema changes", zap.Duration("debounce", w.debounce))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addDir(ev.Name); err != nil {
						w.logger.Warn("failed to watch new directory", zap.String("path", ev.Name), zap.Error(err))
					}
					continue
				}
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("schema file changed", zap.String("path", ev.Name), zap.Stringer("op", ev.Op))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange(ctx)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("file watcher error", zap.Error(err))
		}
	}
}
