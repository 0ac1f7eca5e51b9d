// Package watcher reports debounced changes to a set of files.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/deviceframe"
)

// ChangeEvent names the last file that changed within a debounce window.
type ChangeEvent struct {
	Path      string
	Timestamp time.Time
}

// Watcher watches files through their parent directories so that editors
// replacing a file by rename are still seen.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debounce  time.Duration

	mu    sync.Mutex
	files map[string]struct{}
}

// New creates a watcher that waits for debounce of quiet before reporting.
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	return &Watcher{
		fsWatcher: fsw,
		debounce:  debounce,
		files:     make(map[string]struct{}),
	}, nil
}

// AddFile starts watching path.
func (w *Watcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watcher: %s: %w", path, err)
	}
	w.mu.Lock()
	w.files[abs] = struct{}{}
	w.mu.Unlock()
	return nil
}

// Watch returns a channel that emits debounced change events. The channel
// is closed when ctx is done or the watcher is closed. Watch errors are
// logged and do not stop the watch.
func (w *Watcher) Watch(ctx context.Context) <-chan ChangeEvent {
	out := make(chan ChangeEvent)

	go func() {
		defer close(out)

		var mu sync.Mutex
		var pending *time.Timer
		var lastPath string
		var wg sync.WaitGroup
		defer wg.Wait()

		for {
			select {
			case <-ctx.Done():
				mu.Lock()
				if pending != nil && pending.Stop() {
					wg.Done()
				}
				mu.Unlock()
				return

			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if !w.shouldWatch(event.Name) {
					continue
				}
				// Atomic saves show up as create or rename.
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				mu.Lock()
				lastPath = event.Name
				if pending != nil && pending.Stop() {
					wg.Done()
				}
				wg.Add(1)
				pending = time.AfterFunc(w.debounce, func() {
					defer wg.Done()
					mu.Lock()
					p := lastPath
					mu.Unlock()

					select {
					case out <- ChangeEvent{Path: p, Timestamp: time.Now()}:
					case <-ctx.Done():
					}
				})
				mu.Unlock()

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				deviceframe.Logger().Warn("watcher: fsnotify error", slog.Any("error", err))
			}
		}
	}()

	return out
}

func (w *Watcher) shouldWatch(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[abs]
	return ok
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
