package assets

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/fsnotify/fsnotify"

	"github.com/justyntemme/folderlike/internal/debug"
)

// Watcher reindexes a Store when files in its cover directory change, so
// covers dropped in while the app runs replace their placeholders.
type Watcher struct {
	store    *Store
	watcher  *fsnotify.Watcher
	notify   chan struct{}
	done     chan struct{}
	debounce time.Duration
}

// Watch starts watching the store's directory. Changes are coalesced over
// debounce (200ms when zero or negative) before the store is reindexed and a
// notification is sent on Notify.
func (s *Store) Watch(debounce time.Duration) (*Watcher, error) {
	if s.dir == "" {
		return nil, fmt.Errorf("watch covers: no directory configured")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch covers: %w", err)
	}
	if err := addTree(fw, s.dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch covers in %s: %w", s.dir, err)
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	w := &Watcher{
		store:    s,
		watcher:  fw,
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
		debounce: debounce,
	}
	go w.run()
	debug.Log(debug.ASSETS, "watching %s", s.dir)
	return w, nil
}

func (w *Watcher) run() {
	var lastEvent time.Time
	pending := false
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Write) {
				if event.Has(fsnotify.Create) {
					if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
						if err := addTree(w.watcher, event.Name); err != nil {
							debug.Log(debug.ASSETS, "watch %s: %v", event.Name, err)
						}
					}
				}
				lastEvent = time.Now()
				pending = true
				debug.Log(debug.ASSETS, "fsnotify: %s %s", event.Op, event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			debug.Log(debug.ASSETS, "fsnotify error: %v", err)

		case <-ticker.C:
			if !pending || time.Since(lastEvent) < w.debounce {
				continue
			}
			pending = false
			if err := w.store.Reindex(); err != nil {
				debug.Log(debug.ASSETS, "reindex: %v", err)
				continue
			}
			select {
			case w.notify <- struct{}{}:
			default:
				// a notification is already queued
			}
		}
	}
}

// addTree watches root and every directory below it, matching what
// indexDir walks. fsnotify watches are not recursive.
func addTree(fw *fsnotify.Watcher, root string) error {
	var mu sync.Mutex
	var dirs []string
	err := fastwalk.Walk(&fastwalk.Config{Follow: true}, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			mu.Lock()
			dirs = append(dirs, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		dirs = []string{root}
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return err
		}
	}
	return nil
}

// Notify receives a value after each reindex.
func (w *Watcher) Notify() <-chan struct{} {
	return w.notify
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
