package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDueDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		dueDate string
		want    string
	}{
		{"today", "2025-06-15", "Today"},
		{"tomorrow", "2025-06-16", "Tomorrow"},
		{"in three days", "2025-06-18", "In 3 days"},
		{"yesterday", "2025-06-14", "Overdue"},
		{"long past", "2024-01-01", "Overdue"},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"garbage", "not-a-date", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDueDate(tt.dueDate, now))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)

	assert.True(t, IsOverdue("2025-06-14", now))
	assert.False(t, IsOverdue("2025-06-15", now), "due today is not overdue")
	assert.False(t, IsOverdue("2025-06-16", now))
	assert.False(t, IsOverdue("", now))
	assert.False(t, IsOverdue("junk", now))
}
