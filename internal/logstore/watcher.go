package logstore

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay collapses bursts of events from a single save.
const debounceDelay = 100 * time.Millisecond

// Watcher reports changes to the log file so follow mode can re-read it.
// The containing directory is watched rather than the file itself: atomic
// saves (write tmp → rename to target) produce events on the directory, and
// the file may not exist yet when watching starts.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	changes   chan struct{}
	done      chan struct{}

	debounceMu sync.Mutex
	debounce   *time.Timer
}

// WatchFile starts watching the log file at path for changes.
func WatchFile(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		path:      filepath.Clean(path),
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

// Changes returns the channel signalled after the log file changes.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Rename matters: atomic saves land as a rename onto the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if filepath.Clean(event.Name) != w.path {
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, func() {
		select {
		case w.changes <- struct{}{}:
		case <-w.done:
		}
	})
}
