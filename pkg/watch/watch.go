// Package watch reloads an item file when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pluqqy/filterlist/pkg/models"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Event carries the outcome of one reload.
type Event struct {
	Items []models.Item
	Err   error
}

// ReloadFunc loads the current item collection.
type ReloadFunc func() ([]models.Item, error)

// Watcher watches the directory holding an item file, so editors that
// replace the file instead of writing it in place are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	events   chan Event
	fsw      *fsnotify.Watcher
}

// New starts watching the directory of path.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		logger:   logger,
		events:   make(chan Event, 1),
		fsw:      fsw,
	}, nil
}

// SetDebounce overrides DefaultDebounce. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events delivers one Event per settled change. The channel is closed when
// Run returns.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run blocks until ctx is cancelled, calling reload after each settled
// change to the file. It closes the underlying watcher on return.
func (w *Watcher) Run(ctx context.Context, reload ReloadFunc) error {
	defer func() { _ = w.fsw.Close() }()

	// cancelled on return so a pending reload never blocks on a full channel
	ctx, cancel := context.WithCancel(ctx)

	var (
		mu            sync.Mutex
		debounceTimer *time.Timer
		wg            sync.WaitGroup
	)
	defer func() {
		cancel()
		mu.Lock()
		if debounceTimer != nil && debounceTimer.Stop() {
			wg.Done()
		}
		mu.Unlock()
		wg.Wait()
		close(w.events)
	}()

	fire := func() {
		defer wg.Done()
		items, err := reload()
		if err != nil {
			w.logger.Warn("item reload failed", "path", w.path, "error", err)
		} else {
			w.logger.Debug("items reloaded", "path", w.path, "count", len(items))
		}
		select {
		case w.events <- Event{Items: items, Err: err}:
		case <-ctx.Done():
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("item file changed", "path", event.Name, "op", event.Op.String())

			mu.Lock()
			if debounceTimer != nil && debounceTimer.Stop() {
				wg.Done()
			}
			wg.Add(1)
			debounceTimer = time.AfterFunc(w.debounce, fire)
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == w.path
}
