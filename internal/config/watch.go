package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file after it changes on disk. It never blocks
// and starts no goroutines of its own; call Poll once per frame.
type Watcher struct {
	path string
	fs   *fsnotify.Watcher
}

// Watch starts watching path. The parent directory is watched so editors that
// save by renaming a temp file are still seen.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return &Watcher{path: filepath.Clean(path), fs: fsw}, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Poll drains pending events. When the file was written or created since
// the last call it returns the reloaded config with flag
// overrides applied; otherwise it returns nil.
func (w *Watcher) Poll() (*Config, error) {
	changed := false
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil, nil
			}
			if filepath.Clean(ev.Name) == w.path && ev.Has(fsnotify.Write|fsnotify.Create) {
				changed = true
			}
		case err, ok := <-w.fs.Errors:
			if ok && err != nil {
				return nil, err
			}
		default:
			if !changed {
				return nil, nil
			}
			return w.reload()
		}
	}
}

func (w *Watcher) reload() (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, w.path); err != nil {
		return nil, fmt.Errorf("reloading %s: %w", w.path, err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
