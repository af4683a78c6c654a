package muhurat

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RuleChange signals that the watched rules file was rewritten. Reloaded
// carries the new table, or Err when the file no longer parses.
type RuleChange struct {
	Path     string
	Reloaded map[string]Rule
	Err      error
}

// Watcher monitors a TOML rules file and re-loads it on change, so a
// long-running search can pick up edited rule tables without restarting.
type Watcher struct {
	Path    string
	Changes <-chan RuleChange

	changes chan RuleChange
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for one rules file.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ch := make(chan RuleChange, 4)
	return &Watcher{
		Path:    path,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself, since editors commonly replace files by rename.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: editors fire several events per save.
	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					w.emit()
				}
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.Path) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case now, ok := <-ticker.C:
			if !ok {
				return
			}
			if !pending.IsZero() && now.Sub(pending) >= debounce {
				w.emit()
				pending = time.Time{}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next event still arrives.
		}
	}
}

func (w *Watcher) emit() {
	rules, err := LoadRules(w.Path)
	w.changes <- RuleChange{Path: w.Path, Reloaded: rules, Err: err}
}
