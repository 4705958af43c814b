package config

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/columns/pkg/errors"
)

// WatchOption configures [Watch].
type WatchOption func(*watchConfig)

type watchConfig struct {
	onReload func(unknown []string)
	ready    chan<- struct{}
}

// WithReloadHook calls fn after every successful reload.
func WithReloadHook(fn func(unknown []string)) WatchOption {
	return func(c *watchConfig) { c.onReload = fn }
}

// WithReady closes ch once the watcher is installed.
func WithReady(ch chan<- struct{}) WatchOption {
	return func(c *watchConfig) { c.ready = ch }
}

// Watch reloads path into s whenever the file is written, created, renamed
// or removed, until ctx is cancelled. The parent directory is watched so
// editors that replace the file atomically are picked up. Failed reloads are
// logged and leave s unchanged.
func Watch(ctx context.Context, path string, s *Store, logger *log.Logger, opts ...WatchOption) error {
	var cfg watchConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if logger == nil {
		logger = log.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create watcher")
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "watch %s", filepath.Dir(path))
	}
	logger.Debug("watching config", "path", path)
	if cfg.ready != nil {
		close(cfg.ready)
	}

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Op.Has(relevant) {
				continue
			}
			unknown, err := s.Load(path)
			if err != nil {
				logger.Warn("config reload failed", "path", path, "err", err)
				continue
			}
			for _, key := range unknown {
				logger.Warn("unknown config key", "key", key)
			}
			logger.Info("config reloaded", "path", path, "op", ev.Op.String())
			if cfg.onReload != nil {
				cfg.onReload(unknown)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "err", err)
		}
	}
}
