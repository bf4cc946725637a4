// Package task owns the canonical task collection and its mutations.
// Every operation updates the in-memory collection first, then persists
// the whole collection fire-and-forget through the storage adapter.
package task

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"taskman/internal/form"
	"taskman/internal/model"
	"taskman/internal/storage"
)

// ConfirmFunc is the yes/no gate consulted before a deletion.
type ConfirmFunc func(message string) bool

const deleteConfirmMessage = "Are you sure you want to delete this task?"

// Options configures a Store. Zero values are usable: no notifier, a
// gate that always confirms, the wall clock, and a nop logger.
type Options struct {
	Notifier Notifier
	Confirm  ConfirmFunc
	Now      func() time.Time
	Logger   *zap.Logger
}

// Store holds the ordered task collection. The slice is replaced, never
// mutated in place, so readers holding a snapshot never see a partial
// update.
type Store struct {
	mu       sync.RWMutex
	tasks    []model.Task
	adapter  *storage.Adapter
	notifier Notifier
	confirm  ConfirmFunc
	now      func() time.Time
	log      *zap.Logger
}

// NewStore loads the collection from the adapter once and keeps the
// adapter for subsequent saves.
func NewStore(adapter *storage.Adapter, opts Options) *Store {
	if opts.Confirm == nil {
		opts.Confirm = func(string) bool { return true }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Store{
		adapter:  adapter,
		notifier: opts.Notifier,
		confirm:  opts.Confirm,
		now:      opts.Now,
		log:      opts.Logger,
	}
	s.tasks = storage.Load(adapter, storage.KeyTasks, []model.Task{})
	s.log.Debug("task store loaded", zap.Int("tasks", len(s.tasks)))
	return s
}

// Tasks returns the current collection snapshot in insertion order.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks
}

// Get looks up a task by id.
func (s *Store) Get(id model.TaskID) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Create assembles a task from a validated form payload, appends it and
// persists. Tasks are only ever built from payloads so an empty title
// cannot reach the collection.
func (s *Store) Create(p form.Payload) model.Task {
	s.mu.Lock()
	now := s.now()
	t := model.Task{
		ID:          model.NewTaskID(now),
		Title:       p.Title,
		Description: p.Description,
		DueDate:     p.DueDate,
		Priority:    p.Priority,
		Status:      p.Status,
	}
	if t.Status == "" {
		t.Status = model.StatusPending
	}

	next := make([]model.Task, 0, len(s.tasks)+1)
	next = append(next, s.tasks...)
	next = append(next, t)
	s.tasks = next
	s.persistLocked()
	s.mu.Unlock()

	s.emit(EventTaskCreated, t, now)
	return t
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Status      *model.Status
}

func applyPatch(t *model.Task, p Patch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// Update merges the patch into the task with the given id and persists.
// An unknown id is a silent no-op.
func (s *Store) Update(id model.TaskID, p Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateLocked(id, p)
}

func (s *Store) updateLocked(id model.TaskID, p Patch) (model.Task, bool) {
	for i, t := range s.tasks {
		if t.ID != id {
			continue
		}
		applyPatch(&t, p)
		next := make([]model.Task, len(s.tasks))
		copy(next, s.tasks)
		next[i] = t
		s.tasks = next
		s.persistLocked()
		return t, true
	}
	return model.Task{}, false
}

// SetStatus updates the status and announces the new state in human
// terms. The announcement happens even for unknown ids, matching the
// informational nature of the notification.
func (s *Store) SetStatus(id model.TaskID, status model.Status) {
	s.mu.Lock()
	now := s.now()
	t, ok := s.updateLocked(id, Patch{Status: &status})
	s.mu.Unlock()

	if !ok {
		t = model.Task{ID: id, Status: status}
	}
	s.emit(EventStatusChanged, t, now)
}

// Edit replaces title and description together (the edit form flow) and
// announces the save. The same field rules as the create form apply: a
// blank or over-long title, or an over-long description, rejects the
// whole edit. Returns whether the task was saved.
func (s *Store) Edit(id model.TaskID, title, description string) bool {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if form.ValidateTitle(title) != "" || form.ValidateDescription(description) != "" {
		return false
	}

	s.mu.Lock()
	now := s.now()
	t, ok := s.updateLocked(id, Patch{Title: &title, Description: &description})
	s.mu.Unlock()

	if !ok {
		return false
	}
	s.emit(EventTaskUpdated, t, now)
	return true
}

// Delete asks the confirm gate, then removes the task by id, persists
// and announces the removal. Deleting an absent id leaves the
// collection untouched. Returns whether a task was actually removed.
func (s *Store) Delete(id model.TaskID) bool {
	if !s.confirm(deleteConfirmMessage) {
		return false
	}

	s.mu.Lock()
	now := s.now()
	var removed model.Task
	found := false
	next := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID == id && !found {
			removed = t
			found = true
			continue
		}
		next = append(next, t)
	}
	if found {
		s.tasks = next
		s.persistLocked()
	}
	s.mu.Unlock()

	s.emit(EventTaskDeleted, removed, now)
	return found
}

// Restore re-inserts a previously removed task (the delete-undo path).
// A task with the same id already present makes this a no-op.
func (s *Store) Restore(t model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tasks {
		if existing.ID == t.ID {
			return
		}
	}
	next := make([]model.Task, 0, len(s.tasks)+1)
	next = append(next, s.tasks...)
	next = append(next, t)
	s.tasks = next
	s.persistLocked()
}

// persistLocked writes the whole collection through the adapter. The
// adapter swallows failures; in-memory state is already committed.
func (s *Store) persistLocked() {
	storage.Save(s.adapter, storage.KeyTasks, s.tasks)
}

func (s *Store) emit(typ EventType, t model.Task, at time.Time) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(Event{Type: typ, Task: t, Timestamp: at})
}
