package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents a source-tree change relevant to the generated block.
type ChangeEvent struct {
	Path       string
	ChangeType string // "create", "write", "remove", "rename"
}

// SourceWatcher watches a source tree for changes to files with a given
// extension, coalescing bursts (editor saves, git checkouts) into a single
// callback through a debounce window.
type SourceWatcher struct {
	watcher   *fsnotify.Watcher
	extension string
	debounce  time.Duration
	onChange  func(ChangeEvent)
}

// NewSourceWatcher creates a watcher for files ending in extension.
func NewSourceWatcher(extension string, debounce time.Duration, onChange func(ChangeEvent)) (*SourceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	return &SourceWatcher{
		watcher:   w,
		extension: extension,
		debounce:  debounce,
		onChange:  onChange,
	}, nil
}

// WatchRecursive adds a directory and all its subdirectories to the watcher.
func (w *SourceWatcher) WatchRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}

// Close releases the underlying fsnotify handle. Run closes it on exit;
// Close is for callers that never reach Run.
func (w *SourceWatcher) Close() error {
	return w.watcher.Close()
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *SourceWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	// The debounce timer fires on its own goroutine while the loop below
	// keeps storing newer events.
	var lastEvent atomic.Value
	debouncer := NewDebouncer(w.debounce, func() {
		if w.onChange == nil {
			return
		}
		if ev, ok := lastEvent.Load().(ChangeEvent); ok {
			w.onChange(ev)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			changeType := opToChangeType(event.Op)
			if changeType == "" {
				continue
			}

			// Newly created directories must be watched before any files
			// land in them.
			isDir := false
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					isDir = true
					_ = w.WatchRecursive(event.Name)
				}
			}

			// Only source files and directory changes can alter the
			// generated block; everything else is noise.
			if !isDir && !strings.HasSuffix(event.Name, w.extension) {
				continue
			}

			lastEvent.Store(ChangeEvent{Path: event.Name, ChangeType: changeType})
			debouncer.Trigger()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func opToChangeType(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return ""
	}
}
