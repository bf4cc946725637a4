// Package form holds the task form draft and its validation rules.
package form

import (
	"fmt"
	"strings"
)

// Field names the four editable task form fields.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldDueDate     Field = "dueDate"
	FieldPriority    Field = "priority"
)

// Fields lists every form field in display order.
var Fields = []Field{FieldTitle, FieldDescription, FieldDueDate, FieldPriority}

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 100
)

const (
	msgTitleRequired    = "Title is required."
	msgDateRequired     = "Due date is required."
	msgPriorityRequired = "Priority is required."
)

func msgMaxLen(max int) string {
	return fmt.Sprintf("Maximum %d characters.", max)
}

// ValidateTitle trims the input and checks presence and length.
// Returns the error message, or "" when valid.
func ValidateTitle(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return msgTitleRequired
	}
	if len([]rune(trimmed)) > MaxTitleLen {
		return msgMaxLen(MaxTitleLen)
	}
	return ""
}

// ValidateDescription checks length only; an empty description is valid.
func ValidateDescription(raw string) string {
	if len([]rune(strings.TrimSpace(raw))) > MaxDescriptionLen {
		return msgMaxLen(MaxDescriptionLen)
	}
	return ""
}

// ValidateDueDate requires a non-empty value. Calendar validity is not
// checked here; the date input is expected to supply YYYY-MM-DD.
func ValidateDueDate(raw string) string {
	if raw == "" {
		return msgDateRequired
	}
	return ""
}

// ValidatePriority requires a non-empty value. Enum membership is left
// to the caller; the form only ever offers the known priorities.
func ValidatePriority(raw string) string {
	if raw == "" {
		return msgPriorityRequired
	}
	return ""
}

func validate(field Field, raw string) string {
	switch field {
	case FieldTitle:
		return ValidateTitle(raw)
	case FieldDescription:
		return ValidateDescription(raw)
	case FieldDueDate:
		return ValidateDueDate(raw)
	case FieldPriority:
		return ValidatePriority(raw)
	}
	return ""
}
