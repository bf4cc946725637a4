package model

import (
	"fmt"
	"strings"
	"time"
)

const dueDateLayout = "2006-01-02"

func parseDueDate(dueDate string) (time.Time, bool) {
	trimmed := strings.TrimSpace(dueDate)
	if trimmed == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(dueDateLayout, trimmed, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDueDate renders a due date relative to now: "Today", "Tomorrow",
// "In N days" or "Overdue". Empty or unparseable dates render as "".
func FormatDueDate(dueDate string, now time.Time) string {
	due, ok := parseDueDate(dueDate)
	if !ok {
		return ""
	}
	days := int(startOfDay(due).Sub(startOfDay(now)).Hours() / 24)
	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("In %d days", days)
	}
}

// IsOverdue reports whether the due date falls strictly before today.
// Empty or unparseable dates are never overdue.
func IsOverdue(dueDate string, now time.Time) bool {
	due, ok := parseDueDate(dueDate)
	if !ok {
		return false
	}
	return startOfDay(due).Before(startOfDay(now))
}
