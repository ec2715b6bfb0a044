// Package watch provides source-tree watching with debounce support.
package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into a single callback invocation after
// a quiet window.
type Debouncer struct {
	window   time.Duration
	callback func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer firing callback once per settled burst.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{window: window, callback: callback}
}

// Trigger restarts the quiet window. The callback fires once the window
// elapses with no further triggers.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.callback)
		return
	}
	d.timer.Stop()
	d.timer.Reset(d.window)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}
