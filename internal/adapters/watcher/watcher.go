package watcher

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.bittr.nu/spoolsync/internal/core/ports"
)

var _ ports.TemplateWatcher = (*Watcher)(nil)

const (
	// templateExt identifies the files worth reacting to; editors drop
	// swap and backup files in the same directory.
	templateExt = ".template"

	debounceWindow = 500 * time.Millisecond
)

// Watcher implements template directory watching using fsnotify. Changes to
// *.template files are debounced into single notifications so one editor
// save does not trigger several full re-renders.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	changes   chan struct{}
}

// NewWatcher creates a new template directory watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsw,
		changes:   make(chan struct{}, 1),
	}
	w.debouncer = NewDebouncer(debounceWindow, w.notify)
	return w, nil
}

// Start begins watching the given directory. The watch is not recursive;
// templates live flat in one directory.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Changes returns a channel that receives one value per debounced batch of
// template modifications.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// notify is the debouncer callback. The paths themselves don't matter;
// every change means "reload everything".
func (w *Watcher) notify([]string) {
	select {
	case w.changes <- struct{}{}:
	default:
		// A notification is already pending; coalesce.
	}
}

// processEvents filters raw fsnotify events down to template changes.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.changes)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			w.debouncer.Add(event.Name)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Log error to stderr and continue processing.
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

// relevant reports whether the event concerns a template file in a way that
// changes its content.
func relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, templateExt) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
