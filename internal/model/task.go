package model

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

type TaskID string

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known status values.
// in_progress is storable but no operation currently produces it.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Task struct {
	ID          TaskID   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
}

// Done reports whether the task counts as completed for filtering.
// Every other status, in_progress included, counts as active.
func (t Task) Done() bool {
	return t.Status == StatusCompleted
}

// NewTaskID builds an id from the creation time plus a random suffix.
// Collisions are treated as negligible; this is not a UUID.
func NewTaskID(now time.Time) TaskID {
	var b [5]byte
	_, _ = rand.Read(b[:])
	return TaskID(fmt.Sprintf("%d-%s", now.UnixMilli(), hex.EncodeToString(b[:])))
}
