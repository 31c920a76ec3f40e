package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the config file when it changes on disk
// The parent directory is watched so editors that replace the file by rename are seen
type Watcher struct {
	path     string
	debounce time.Duration
	log      *zap.Logger
	watcher  *fsnotify.Watcher
	overlay  func(*Config)
	out      chan Config
	done     chan struct{}
}

// WatchOption configures a Watcher
type WatchOption func(*Watcher)

// WithOverlay applies fn to every reloaded config before validation
// The command uses it to keep explicitly set flags winning over the file
func WithOverlay(fn func(*Config)) WatchOption {
	return func(w *Watcher) { w.overlay = fn }
}

// NewWatcher starts watching path; reloads are delivered on C until ctx ends
func NewWatcher(ctx context.Context, path string, debounce time.Duration, log *zap.Logger, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		log:      log,
		watcher:  fw,
		out:      make(chan Config, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.loop(ctx)
	return w, nil
}

// C delivers each successfully reloaded config; only the newest pending one is kept
func (w *Watcher) C() <-chan Config {
	return w.out
}

// Done is closed once the watcher has released its resources
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer w.watcher.Close()

	// Stopped timer; armed on the first matching event
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watch error", zap.Error(err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.load()
	if err != nil {
		w.log.Warn("config reload rejected", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.log.Info("config reloaded", zap.String("path", w.path))

	// Replace a pending, unconsumed config with the newer one
	select {
	case w.out <- cfg:
	default:
		select {
		case <-w.out:
		default:
		}
		w.out <- cfg
	}
}

func (w *Watcher) load() (Config, error) {
	cfg, err := Resolve(w.path)
	if err != nil {
		return Config{}, err
	}
	if w.overlay != nil {
		w.overlay(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
