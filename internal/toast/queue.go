// Package toast manages ephemeral user notifications. Each toast lives
// for a fixed span, flips to an exiting phase shortly before the end so
// the presentation layer can animate it out, and is removed either by
// that layer's exit signal or by the queue's own deadline.
package toast

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
)

const (
	// DefaultLifetime is the total time a toast stays up.
	DefaultLifetime = 3 * time.Second
	// DefaultExitLead is how long before removal a toast starts exiting.
	DefaultExitLead = 300 * time.Millisecond
	// DefaultUndoDelay is the removal delay after an undo, leaving room
	// for the exit transition to play.
	DefaultUndoDelay = 200 * time.Millisecond
)

// Toast is one queued notification.
type Toast struct {
	ID        string
	Title     string
	Message   string
	Type      Type
	OnUndo    func() error
	CreatedAt time.Time
	Exiting   bool
}

type timers struct {
	exit   *time.Timer
	remove *time.Timer
}

func (t *timers) stop() {
	if t.exit != nil {
		t.exit.Stop()
	}
	if t.remove != nil {
		t.remove.Stop()
	}
}

// Queue is an ordered, append-only collection of toasts with per-toast
// lifetime timers. Create one per application and Close it on teardown.
type Queue struct {
	mu        sync.Mutex
	toasts    []Toast
	timers    map[string]*timers
	lifetime  time.Duration
	exitLead  time.Duration
	undoDelay time.Duration
	onChange  func()
	closed    bool
}

// Options tunes the queue. Zero durations take the defaults; OnChange,
// when set, is invoked after every state change (outside the queue's
// lock) so a presentation layer can re-render.
type Options struct {
	Lifetime  time.Duration
	ExitLead  time.Duration
	UndoDelay time.Duration
	OnChange  func()
}

func NewQueue(opts Options) *Queue {
	if opts.Lifetime <= 0 {
		opts.Lifetime = DefaultLifetime
	}
	if opts.ExitLead <= 0 {
		opts.ExitLead = DefaultExitLead
	}
	if opts.UndoDelay <= 0 {
		opts.UndoDelay = DefaultUndoDelay
	}
	return &Queue{
		timers:    map[string]*timers{},
		lifetime:  opts.Lifetime,
		exitLead:  opts.ExitLead,
		undoDelay: opts.UndoDelay,
		onChange:  opts.OnChange,
	}
}

// ShowOptions carries the optional undo callback for Show.
type ShowOptions struct {
	OnUndo func() error
}

// Show appends a toast and arms its lifetime timers: the exit flip at
// lifetime-exitLead, and removal at lifetime as the backstop when no
// presentation layer calls FinishExit.
func (q *Queue) Show(title, message string, typ Type, opts ShowOptions) string {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ""
	}

	id := "toast-" + uuid.NewString()
	q.toasts = append(q.toasts, Toast{
		ID:        id,
		Title:     title,
		Message:   message,
		Type:      typ,
		OnUndo:    opts.OnUndo,
		CreatedAt: time.Now(),
	})
	q.timers[id] = &timers{
		exit:   time.AfterFunc(q.lifetime-q.exitLead, func() { q.markExiting(id) }),
		remove: time.AfterFunc(q.lifetime, func() { q.remove(id) }),
	}
	q.mu.Unlock()

	q.notify()
	return id
}

// Toasts returns a snapshot of the queue in display order.
func (q *Queue) Toasts() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Toast(nil), q.toasts...)
}

// Dismiss removes the toast in any phase and cancels its timers, so a
// late transition cannot resurrect the removed entry.
func (q *Queue) Dismiss(id string) {
	q.remove(id)
}

// FinishExit is the presentation layer's signal that the exit
// transition completed. It removes the toast only if it was exiting;
// a stray signal for a live toast is ignored.
func (q *Queue) FinishExit(id string) {
	q.mu.Lock()
	exiting := false
	for _, t := range q.toasts {
		if t.ID == id {
			exiting = t.Exiting
			break
		}
	}
	q.mu.Unlock()

	if exiting {
		q.remove(id)
	}
}

// Undo flips the toast to exiting, runs its undo callback and schedules
// removal shortly after. A failing callback becomes a new error toast
// instead of propagating.
func (q *Queue) Undo(id string) {
	q.mu.Lock()
	var onUndo func() error
	found := false
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts[i].Exiting = true
			onUndo = t.OnUndo
			found = true
			break
		}
	}
	if found {
		if ts, ok := q.timers[id]; ok {
			ts.stop()
			ts.remove = time.AfterFunc(q.undoDelay, func() { q.remove(id) })
		}
	}
	q.mu.Unlock()

	if !found {
		return
	}
	q.notify()

	if onUndo != nil {
		if err := runUndo(onUndo); err != nil {
			q.Show("Undo failed", err.Error(), TypeError, ShowOptions{})
		}
	}
}

func runUndo(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("undo panicked: %v", r)
		}
	}()
	return fn()
}

// Close tears down every timer and empties the queue. Show on a closed
// queue is a no-op.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	for _, ts := range q.timers {
		ts.stop()
	}
	q.timers = map[string]*timers{}
	q.toasts = nil
	q.mu.Unlock()
}

func (q *Queue) markExiting(id string) {
	q.mu.Lock()
	changed := false
	for i, t := range q.toasts {
		if t.ID == id && !t.Exiting {
			q.toasts[i].Exiting = true
			changed = true
			break
		}
	}
	q.mu.Unlock()

	if changed {
		q.notify()
	}
}

func (q *Queue) remove(id string) {
	q.mu.Lock()
	removed := false
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i:i], q.toasts[i+1:]...)
			removed = true
			break
		}
	}
	if ts, ok := q.timers[id]; ok {
		ts.stop()
		delete(q.timers, id)
	}
	q.mu.Unlock()

	if removed {
		q.notify()
	}
}

func (q *Queue) notify() {
	if q.onChange != nil {
		q.onChange()
	}
}
