package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/lovely/engine/core"
)

/**
 * @brief Watches a configuration file and publishes every successful reload.
 * The directory is watched rather than the file, so editors that save by
 * renaming a temporary file are picked up as well. A file that fails to
 * parse is logged and skipped; the previous configuration stays in effect.
 */
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *Config
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{
		path:    abs,
		watcher: w,
		updates: make(chan *Config, 1),
	}, nil
}

// Updates delivers reloaded configurations. Only the latest one is kept
// while the receiver is behind.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Run processes file events until ctx is cancelled. It closes Updates on
// return.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.updates)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				core.LogError("config reload failed: %s", err)
				continue
			}
			core.LogInfo("config %s reloaded", w.path)
			w.publish(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			core.LogError(err.Error())
		}
	}
}

func (w *Watcher) publish(cfg *Config) {
	for {
		select {
		case w.updates <- cfg:
			return
		default:
		}
		// drop the stale update
		select {
		case <-w.updates:
		default:
		}
	}
}
