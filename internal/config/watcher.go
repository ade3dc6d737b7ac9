package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the bursts of write events editors emit when
// saving a file.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads the configuration when its file changes on disk.
type Watcher struct {
	mu sync.Mutex

	path     string
	watcher  *fsnotify.Watcher
	onChange func(Config)
	timer    *time.Timer
	closed   bool
	done     chan struct{}
}

// Watch starts watching path and invokes onChange with the freshly
// loaded configuration after each change. The containing directory is
// watched so the common replace-by-rename save strategy is seen too.
// Reload errors are ignored; the previous configuration stays active.
func Watch(path string, onChange func(Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:     path,
		watcher:  fw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	onChange := w.onChange
	path := w.path
	w.mu.Unlock()

	cfg, err := Load(path)
	if err != nil {
		return
	}
	onChange(cfg)
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	return err
}
