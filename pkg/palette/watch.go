package palette

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the bursts of writes editors produce on save
// into one reload.
const debounceWindow = 250 * time.Millisecond

// Watcher reloads a palette file whenever it changes on disk. Successfully
// reloaded palettes arrive on Updates; failed reloads (mid-write parse
// errors and the like) are skipped, keeping the last good palette current.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan *Palette

	closeOnce sync.Once
	done      chan struct{}
}

// Watch starts watching the palette file at path. The file must load once
// up front so a broken path fails immediately rather than on first edit.
func Watch(path string) (*Watcher, error) {
	if _, err := LoadFile(path); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start palette watcher: %w", err)
	}
	// Watch the directory, not the file: editors that replace-on-save break
	// a direct file watch.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:    path,
		fsw:     fsw,
		updates: make(chan *Palette, 1),
		done:    make(chan struct{}),
	}
	go w.pump()
	return w, nil
}

// Updates delivers each successfully reloaded palette. The channel is
// closed when the watcher is closed.
func (w *Watcher) Updates() <-chan *Palette {
	return w.updates
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) pump() {
	defer close(w.updates)

	timer := time.NewTimer(debounceWindow)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	var pending bool

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(debounceWindow)
			pending = true

		case <-timer.C:
			pending = false
			p, err := LoadFile(w.path)
			if err != nil {
				continue
			}
			// Replace a stale pending palette rather than blocking.
			select {
			case <-w.updates:
			default:
			}
			select {
			case w.updates <- p:
			case <-w.done:
				return
			}

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
