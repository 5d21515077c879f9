// Package watch refreshes a session when its database file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 500 * time.Millisecond

// Refresher is implemented by session.Session.
type Refresher interface {
	Refresh() error
}

// Watcher calls Refresh on its target after any of the watched files is
// created, written, removed or renamed. Bursts of events within Debounce
// collapse into one refresh.
type Watcher struct {
	files    map[string]struct{}
	target   Refresher
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// New watches the directories holding files. Directories that do not exist
// yet are skipped; a database that appears in them later is noticed only if
// the directory existed when the watcher started.
func New(target Refresher, debounce time.Duration, files ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(files)),
		target:   target,
		fsw:      fsw,
		debounce: debounce,
	}

	dirs := make(map[string]struct{})
	for _, f := range files {
		w.files[filepath.Clean(f)] = struct{}{}
		dirs[filepath.Dir(filepath.Clean(f))] = struct{}{}
	}
	for dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			slog.Warn("not watching missing directory", "dir", dir)
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			slog.Debug("database file changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("file watcher error", "error", err)
		case <-timer.C:
			if err := w.target.Refresh(); err != nil {
				slog.Warn("database refresh after file change failed", "error", err)
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if _, ok := w.files[filepath.Clean(ev.Name)]; !ok {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
