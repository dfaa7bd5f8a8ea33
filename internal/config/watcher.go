package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change before reloading.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc receives a freshly loaded, validated configuration.
type ReloadFunc func(cfg *Config)

// ErrorFunc receives load, validation and watch errors. The previous
// configuration stays in effect.
type ErrorFunc func(err error)

// Watcher reloads a configuration file when it changes on disk.
type Watcher struct {
	mu sync.Mutex

	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	envPref  string

	onReload ReloadFunc
	onError  ErrorFunc

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithEnvPrefix re-applies environment overrides on every reload.
func WithEnvPrefix(prefix string) WatchOption {
	return func(w *Watcher) {
		w.envPref = prefix
	}
}

// Watch starts watching path. The parent directory is watched so that
// editors which save by rename are seen. The watcher stops when ctx is done
// or Close is called.
func Watch(ctx context.Context, path string, onReload ReloadFunc, onError ErrorFunc, opts ...WatchOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		watcher:  fsw,
		debounce: DefaultDebounce,
		onReload: onReload,
		onError:  onError,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.closedWg.Add(1)
	go w.processLoop(ctx)

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// processLoop turns fsnotify events into debounced reloads.
func (w *Watcher) processLoop(ctx context.Context) {
	defer w.closedWg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err == nil && w.envPref != "" {
		err = ApplyEnv(cfg, w.envPref)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		w.reportError(err)
		return
	}
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}
