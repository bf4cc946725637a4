// Package query derives the visible task list from the canonical
// collection. Everything here is a pure function of its inputs.
package query

import (
	"strings"

	"taskman/internal/model"
)

// Filter selects tasks by completion state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the selectable filters in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func (f Filter) matches(t model.Task) bool {
	switch f {
	case FilterActive:
		// Anything not completed is active, in_progress included.
		return !t.Done()
	case FilterCompleted:
		return t.Done()
	}
	return true
}

// Visible returns the tasks passing the status filter and the search
// term, preserving the collection order. The term is trimmed and
// matched case-insensitively against title and description; an empty
// term matches everything.
func Visible(tasks []model.Task, filter Filter, term string) []model.Task {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !filter.matches(t) {
			continue
		}
		if needle != "" && !matchesTerm(t, needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesTerm(t model.Task, needle string) bool {
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	return t.Description != "" &&
		strings.Contains(strings.ToLower(t.Description), needle)
}
