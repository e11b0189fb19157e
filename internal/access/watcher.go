package access

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a gate's policy whenever the policy file changes. A
// reload can grant access to a caller who was denied before. It does not
// revoke a session that was already opened.
type Watcher struct {
	path    string
	gate    *Gate
	watcher *fsnotify.Watcher
	reloads chan struct{}
}

// NewWatcher watches the directory holding path, so editors that replace
// the file on save are still seen.
func NewWatcher(path string, gate *Gate) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create policy watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch policy directory: %w", err)
	}

	return &Watcher{
		path:    filepath.Clean(path),
		gate:    gate,
		watcher: fsw,
		reloads: make(chan struct{}, 1),
	}, nil
}

// Reloads signals after each successful reload. Signals are dropped when
// nobody is receiving.
func (w *Watcher) Reloads() <-chan struct{} {
	return w.reloads
}

// Run processes file events until ctx is done
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Policy watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	policy, err := LoadPolicy(w.path)
	if err != nil {
		slog.Error("Failed to reload access policy, keeping previous policy", "path", w.path, "error", err)
		return
	}

	w.gate.SetPolicy(policy)
	slog.Info("Reloaded access policy", "path", w.path)

	select {
	case w.reloads <- struct{}{}:
	default:
	}
}
