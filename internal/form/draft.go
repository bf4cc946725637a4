package form

import (
	"strings"

	"taskman/internal/model"
)

// Payload is the normalized result of a valid submit: title and
// description trimmed, due date and priority as entered, status pending.
type Payload struct {
	Title       string
	Description string
	DueDate     string
	Priority    model.Priority
	Status      model.Status
}

// Draft is the in-progress state of a create/edit form: current values,
// the latest error per field, and which fields the user has touched.
// Errors for untouched fields exist but are not meant to be surfaced yet.
type Draft struct {
	values  map[Field]string
	errors  map[Field]string
	touched map[Field]bool
}

func NewDraft() *Draft {
	d := &Draft{}
	d.Reset()
	return d
}

// Reset clears values, errors and touched state.
func (d *Draft) Reset() {
	d.values = map[Field]string{}
	d.errors = map[Field]string{}
	d.touched = map[Field]bool{}
}

func (d *Draft) Value(field Field) string { return d.values[field] }

// Error returns the current validation message for the field, "" if valid.
func (d *Draft) Error(field Field) string { return d.errors[field] }

func (d *Draft) Touched(field Field) bool { return d.touched[field] }

// VisibleError returns the field's error only once the field has been
// touched, so users are not shouted at before they have typed anything.
func (d *Draft) VisibleError(field Field) string {
	if !d.touched[field] {
		return ""
	}
	return d.errors[field]
}

// SetField records a new value and revalidates that field immediately,
// giving live feedback on every change.
func (d *Draft) SetField(field Field, raw string) {
	d.values[field] = raw
	d.errors[field] = validate(field, raw)
}

// Blur marks the field touched and revalidates it, so leaving an empty
// required field surfaces its error without a submit.
func (d *Draft) Blur(field Field) {
	d.touched[field] = true
	d.errors[field] = validate(field, d.values[field])
}

// Valid reports whether every field currently passes validation.
func (d *Draft) Valid() bool {
	for _, f := range Fields {
		if validate(f, d.values[f]) != "" {
			return false
		}
	}
	return true
}

// Submit validates the whole draft. On failure every field is marked
// touched so all errors surface at once, and ok is false. On success it
// returns the normalized payload and resets the draft.
func (d *Draft) Submit() (Payload, bool) {
	hasError := false
	for _, f := range Fields {
		d.errors[f] = validate(f, d.values[f])
		d.touched[f] = true
		if d.errors[f] != "" {
			hasError = true
		}
	}
	if hasError {
		return Payload{}, false
	}

	p := Payload{
		Title:       strings.TrimSpace(d.values[FieldTitle]),
		Description: strings.TrimSpace(d.values[FieldDescription]),
		DueDate:     d.values[FieldDueDate],
		Priority:    model.Priority(d.values[FieldPriority]),
		Status:      model.StatusPending,
	}
	d.Reset()
	return p, true
}
