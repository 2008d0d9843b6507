package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/thomas-vilte/spicalc/internal/errors"
	"github.com/thomas-vilte/spicalc/internal/logger"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher reloads a catalog file whenever it changes on disk and publishes
// the new catalog on Updates. A reload that fails is logged and skipped, so
// consumers keep the last good catalog.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	updates  chan *Catalog
	stop     chan struct{}
	done     chan struct{}

	mu      sync.Mutex
	started bool
	closed  bool
}

type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits for writes to settle.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	if path == "" || path == SourceEmbedded {
		return nil, errors.ErrCatalogWatchEmbedded
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.ErrCatalogWatch.WithError(err).WithContext("path", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.ErrCatalogWatch.WithError(err).WithContext("path", path)
	}

	w := &Watcher{
		path:     filepath.Clean(abs),
		watcher:  fw,
		debounce: defaultDebounce,
		updates:  make(chan *Catalog),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Updates delivers each successfully reloaded catalog.
func (w *Watcher) Updates() <-chan *Catalog {
	return w.updates
}

// Start watches the catalog's directory (editors often replace files by
// rename) and returns immediately.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started || w.closed {
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return errors.ErrCatalogWatch.WithError(err).WithContext("path", w.path)
	}
	w.started = true

	logger.Info(ctx, "watching catalog", "path", w.path)
	go w.run(ctx)
	return nil
}

// Close stops the watcher and waits for the reload loop to exit. Updates is
// closed once Close returns.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	started := w.started
	close(w.stop)
	w.mu.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	} else {
		close(w.updates)
	}
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer close(w.updates)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug(ctx, "catalog changed", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn(ctx, "catalog watch error", "error", err)
		case <-fire:
			fire = nil
			cat, err := LoadFile(w.path)
			if err != nil {
				logger.Warn(ctx, "catalog reload failed, keeping previous", "error", err)
				continue
			}
			logger.Info(ctx, "catalog reloaded", "path", w.path, "branches", cat.Len())
			select {
			case w.updates <- cat:
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
