// ===== internal/oui/watcher.go =====
package oui

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a registry store whenever its backing file changes.
// Only server mode uses this; a one-shot run reads the file once and
// exits. The watch is on the containing directory so a fetch that
// renames a temp file over the registry is still observed.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
}

// NewWatcher creates a watcher for the store's backing file
func NewWatcher(store *Store) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		store:   store,
		watcher: fw,
		stopCh:  make(chan struct{}),
	}, nil
}

// Start begins watching for registry changes
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.store.File())
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go w.run()
	return nil
}

func (w *Watcher) run() {
	target, _ := filepath.Abs(w.store.File())

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			abs, _ := filepath.Abs(event.Name)
			if abs != target {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				log.Printf("Registry file changed: %s", event.Name)
				if err := w.store.Load(); err != nil {
					log.Printf("Error reloading OUI registry: %v", err)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-w.stopCh:
			return
		}
	}
}

// Stop stops watching
func (w *Watcher) Stop() {
	close(w.stopCh)
	if w.watcher != nil {
		w.watcher.Close()
	}
}
