package media

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 250 * time.Millisecond

// Library holds the current catalog. Readers always observe a complete
// catalog; Reload swaps it atomically.
type Library struct {
	source  Source
	logger  *zap.Logger
	current atomic.Pointer[Catalog]

	debounce time.Duration
}

// NewLibrary builds the initial catalog from source.
func NewLibrary(source Source, logger *zap.Logger) (*Library, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Library{source: source, logger: logger, debounce: defaultDebounce}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Catalog returns the current catalog.
func (l *Library) Catalog() *Catalog {
	if c := l.current.Load(); c != nil {
		return c
	}
	return &Catalog{}
}

// Reload rebuilds the catalog from the source.
func (l *Library) Reload() error {
	images, videos, err := l.source.Load()
	if err != nil {
		return fmt.Errorf("media: load source: %w", err)
	}
	cat := Build(images, videos)
	l.current.Store(cat)
	l.logger.Info("media catalog built",
		zap.Int("images", len(images)),
		zap.Int("videos", len(videos)),
	)
	return nil
}

// Watch rebuilds the catalog whenever files under dir change, until ctx is
// done. Bursts of events within the debounce window trigger one rebuild.
func (l *Library) Watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("media: create watcher: %w", err)
	}
	if err := w.Add(filepath.Clean(dir)); err != nil {
		_ = w.Close()
		return fmt.Errorf("media: watch %s: %w", dir, err)
	}
	l.logger.Info("watching media directory", zap.String("dir", dir))

	go func() {
		defer w.Close()
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) &&
					!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(l.debounce)
				} else {
					timer.Reset(l.debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				if err := l.Reload(); err != nil {
					l.logger.Warn("media reload failed", zap.Error(err))
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.logger.Warn("media watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
