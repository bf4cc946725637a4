package query

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window for the search input.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer delivers only the final value of a burst of changes, once
// the value has been stable for the window. Each Set cancels the
// pending delivery and starts a new window (trailing edge).
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	emit   func(string)
}

// NewDebouncer builds a debouncer delivering to emit. A non-positive
// window falls back to DefaultDebounce.
func NewDebouncer(window time.Duration, emit func(string)) *Debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window, emit: emit}
}

// Set schedules value for delivery after the window, superseding any
// value still pending.
func (d *Debouncer) Set(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.emit(value)
	})
}

// Stop cancels any pending delivery. The debouncer stays usable.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
