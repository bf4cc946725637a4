package app

import (
	"fmt"

	"taskman/internal/model"
	"taskman/internal/task"
	"taskman/internal/toast"
)

// handleEvent turns store events into user-facing toasts. Deletions of
// a found task carry an undo that restores the removed record.
func (a *App) handleEvent(e task.Event) {
	switch e.Type {
	case task.EventTaskCreated:
		a.Toasts.Show("Task created",
			fmt.Sprintf("%q was added.", e.Task.Title),
			toast.TypeSuccess, toast.ShowOptions{})

	case task.EventTaskUpdated:
		a.Toasts.Show("Task updated",
			fmt.Sprintf("%q was saved.", e.Task.Title),
			toast.TypeSuccess, toast.ShowOptions{})

	case task.EventStatusChanged:
		label := "pending"
		if e.Task.Status == model.StatusCompleted {
			label = "completed"
		}
		a.Toasts.Show("Status updated",
			fmt.Sprintf("Task marked as %s.", label),
			toast.TypeInfo, toast.ShowOptions{})

	case task.EventTaskDeleted:
		message := "The task was deleted."
		var opts toast.ShowOptions
		if e.Task.ID != "" {
			message = fmt.Sprintf("%q was deleted.", e.Task.Title)
			removed := e.Task
			opts.OnUndo = func() error {
				a.Store.Restore(removed)
				return nil
			}
		}
		a.Toasts.Show("Task deleted", message, toast.TypeError, opts)
	}
}
