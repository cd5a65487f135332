package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// rebuildDebounce coalesces bursts of file events (editor save + rename
// dance, git checkout) into one rebuild.
const rebuildDebounce = 300 * time.Millisecond

// Watcher triggers a rebuild callback whenever watched directories change.
type Watcher struct {
	watcher *fsnotify.Watcher
	rebuild func(context.Context) error
	log     *slog.Logger
}

// NewWatcher creates a Watcher over the given directories (recursively).
// Directories that don't exist are skipped; a site without a static dir is
// still watchable.
func NewWatcher(dirs []string, rebuild func(context.Context) error, log *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	w := &Watcher{watcher: fw, rebuild: rebuild, log: log}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := w.addRecursive(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// addRecursive watches dir and every subdirectory. fsnotify does not recurse
// on its own.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable/missing entries
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

// Run processes events until the context is canceled. Rebuilds are debounced;
// a failed rebuild is logged and watching continues, matching the behavior of
// an editor-driven preview loop where the next save usually fixes the input.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			// New directories must be added to the watch set.
			if event.Op.Has(fsnotify.Create) {
				_ = w.addRecursive(event.Name)
			}
			if timer == nil {
				timer = time.AfterFunc(rebuildDebounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(rebuildDebounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher error", "error", err)

		case <-fire:
			timer = nil
			start := time.Now()
			if err := w.rebuild(ctx); err != nil {
				w.log.Error("rebuild failed", "error", err)
				continue
			}
			w.log.Info("site rebuilt", "duration", time.Since(start))
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	// Editor temp files and swap files churn constantly.
	return !strings.HasPrefix(base, ".") && !strings.HasSuffix(base, "~") && !strings.HasSuffix(base, ".swp")
}
