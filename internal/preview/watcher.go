package preview

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/logfields"
)

// newWatcher watches every existing directory under roots and the parent
// directory of every file in files (so editors that replace files on save
// are still seen). Missing paths are skipped.
func newWatcher(roots, files []string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryServer, "create file watcher").Build()
	}
	for _, root := range roots {
		if _, err := os.Stat(root); stderrors.Is(err, fs.ErrNotExist) {
			continue
		}
		addDirsRecursive(w, root)
	}
	for _, f := range files {
		dir := filepath.Dir(f)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := w.Add(dir); err != nil {
			slog.Warn("Watch add failed", logfields.Path(dir), logfields.Error(err))
		}
	}
	return w, nil
}

func addDirsRecursive(w *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(p); err != nil {
				slog.Warn("Watch add failed", logfields.Path(p), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not trigger rebuilds.
func shouldIgnoreEvent(p string) bool {
	base := filepath.Base(p)
	if strings.HasPrefix(base, ".") && !strings.HasPrefix(base, ".env") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		(strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#")) {
		return true
	}
	return base == "Thumbs.db"
}

// relevantEvent decides whether ev concerns a watched tree or file. Events
// for siblings of watched files (the config directory is usually the
// project root) are dropped.
func relevantEvent(ev fsnotify.Event, roots, files []string) bool {
	if shouldIgnoreEvent(ev.Name) {
		return false
	}
	name := filepath.Clean(ev.Name)
	for _, f := range files {
		if name == filepath.Clean(f) {
			return true
		}
	}
	for _, root := range roots {
		r := filepath.Clean(root)
		if name == r || strings.HasPrefix(name, r+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// debouncer coalesces bursts of triggers into one request on C, delivered
// after the quiet window has elapsed since the last trigger.
type debouncer struct {
	quiet time.Duration
	C     chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

func newDebouncer(quiet time.Duration) *debouncer {
	return &debouncer{quiet: quiet, C: make(chan struct{}, 1)}
}

func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

// fire delivers one pending request; a request already queued absorbs it.
func (d *debouncer) fire() {
	select {
	case d.C <- struct{}{}:
	default:
	}
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// watch forwards relevant events to trigger until ctx is done or the
// watcher is closed. New directories under a root are watched as they appear.
func watch(ctx context.Context, w *fsnotify.Watcher, roots, files []string, trigger func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !relevantEvent(ev, roots, files) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					addDirsRecursive(w, ev.Name)
				}
			}
			slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			trigger()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}
