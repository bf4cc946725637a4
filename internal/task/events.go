package task

import (
	"time"

	"taskman/internal/model"
)

type EventType string

const (
	EventTaskCreated   EventType = "task_created"
	EventTaskUpdated   EventType = "task_updated"
	EventStatusChanged EventType = "status_changed"
	EventTaskDeleted   EventType = "task_deleted"
)

// Event describes a completed store mutation. Task is a copy of the
// affected record; for deletions it is the removed record (zero when
// the id was not found).
type Event struct {
	Type      EventType
	Task      model.Task
	Timestamp time.Time
}

// Notifier receives store events. Events are delivered synchronously,
// after the mutation and its persistence have completed.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }
