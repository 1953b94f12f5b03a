// Package watcher implements directory watching for the watch command.
package watcher

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/pkgsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher for a single directory using fsnotify.
// Subdirectories are not watched.
type Watcher struct {
	logger ports.Logger

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
}

// NewWatcher creates a new directory watcher. The underlying fsnotify
// watcher is created by Start.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{logger: logger}
}

// Start begins watching dir.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.With(zerr.New("watcher already started"), "path", dir)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
	}

	w.fsWatcher = fsWatcher
	w.events = make(chan ports.WatchEvent, eventChannelBuffer)

	go w.processEvents(ctx, fsWatcher, w.events)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return nil
	}
	err := w.fsWatcher.Close()
	w.fsWatcher = nil
	return err
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	w.mu.Lock()
	events := w.events
	w.mu.Unlock()

	return func(yield func(ports.WatchEvent) bool) {
		if events == nil {
			return
		}
		for event := range events {
			if !yield(event) {
				return
			}
		}
	}
}

// processEvents processes raw fsnotify events and converts them to ports.WatchEvent.
func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher, events chan<- ports.WatchEvent) {
	defer close(events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}

			select {
			case events <- watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
// Attribute changes are dropped.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
