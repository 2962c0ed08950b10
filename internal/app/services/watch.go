package services

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatchDebounce is how long the file must stay quiet before a change
// is signalled.
const ConfigWatchDebounce = 250 * time.Millisecond

// ConfigWatchService watches the config file and signals when it changes.
// The parent directory is watched so editors that replace the file on save
// are still seen.
type ConfigWatchService struct {
	Started  bool
	Path     string
	Debounce time.Duration
	Events   chan struct{}
	Done     chan struct{}
	Watcher  *fsnotify.Watcher
	timer    *time.Timer
	mu       sync.Mutex
	logf     func(string, ...any)
}

// NewConfigWatchService creates a watcher for the config file at path.
func NewConfigWatchService(path string, logf func(string, ...any)) *ConfigWatchService {
	return &ConfigWatchService{
		Path:     path,
		Debounce: ConfigWatchDebounce,
		logf:     logf,
	}
}

// Start begins watching. It is a no-op when already started or when no path
// is set.
func (w *ConfigWatchService) Start() (bool, error) {
	if w.Started || w.Path == "" {
		return false, nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}
	if err := watcher.Add(filepath.Dir(w.Path)); err != nil {
		_ = watcher.Close()
		return false, err
	}

	w.Started = true
	w.Watcher = watcher
	w.Events = make(chan struct{}, 1)
	w.Done = make(chan struct{})
	go w.run()
	return true, nil
}

// Stop stops the watcher and closes the done channel.
func (w *ConfigWatchService) Stop() {
	if !w.Started {
		return
	}
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	close(w.Done)
	w.Started = false
	if w.Watcher != nil {
		_ = w.Watcher.Close()
	}
}

// Wait blocks until the config changes. It returns false once the watcher is
// stopped.
func (w *ConfigWatchService) Wait() bool {
	if w.Events == nil {
		return false
	}
	select {
	case <-w.Done:
		return false
	case <-w.Events:
		return true
	}
}

// Signal schedules a notification once the file has been quiet for the
// debounce period. Every call pushes the deadline back, so a burst of events
// (truncate, then write) is reported once, after the last of them.
func (w *ConfigWatchService) Signal() {
	delay := w.Debounce
	if delay <= 0 {
		delay = ConfigWatchDebounce
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(delay, w.notify)
}

func (w *ConfigWatchService) notify() {
	select {
	case <-w.Done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

// Matches reports whether a file event refers to the watched config file.
func (w *ConfigWatchService) Matches(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(w.Path)
}

func (w *ConfigWatchService) run() {
	for {
		select {
		case <-w.Done:
			return
		case event, ok := <-w.Watcher.Events:
			if !ok {
				return
			}
			if w.Matches(event) {
				w.Signal()
			}
		case err, ok := <-w.Watcher.Errors:
			if !ok {
				return
			}
			w.debugf("config watcher error: %v", err)
		}
	}
}

func (w *ConfigWatchService) debugf(format string, args ...any) {
	if w.logf != nil {
		w.logf(format, args...)
	}
}
