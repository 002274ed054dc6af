package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a ConfigStore when its file changes on disk and signals
// listeners after each successful reload.
type Watcher struct {
	store   *ConfigStore
	logger  *zap.Logger
	watcher *fsnotify.Watcher

	mu     sync.Mutex
	closed bool
}

// NewWatcher watches the directory holding the store's file. The directory
// is watched rather than the file so editors that replace the file by
// rename are still seen.
func NewWatcher(store *ConfigStore, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(store.Path()), err)
	}

	return &Watcher{store: store, logger: logger, watcher: fsw}, nil
}

// Watch returns a channel that receives a value after every reload. Bursts
// of events collapse into one pending signal. The channel is closed when ctx
// ends or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil, errors.New("watcher closed")
	}

	changes := make(chan struct{}, 1)
	name := filepath.Base(w.store.Path())

	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				// An editor truncating the file in place shows up as an
				// empty write; the write carrying the content follows.
				if info, err := os.Stat(w.store.Path()); err != nil || info.Size() == 0 {
					continue
				}
				if err := w.store.Load(); err != nil {
					w.logger.Warn("config reload failed", zap.Error(err))
					continue
				}
				w.logger.Debug("config reloaded", zap.String("path", w.store.Path()))
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("config watcher error", zap.Error(err))
			}
		}
	}()

	return changes, nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}
