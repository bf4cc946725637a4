package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskID_UniqueAcrossBurst(t *testing.T) {
	now := time.Now()

	seen := map[TaskID]bool{}
	for range 100 {
		id := NewTaskID(now)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestNewTaskID_EmbedsCreationMillis(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	id := NewTaskID(now)

	assert.Contains(t, string(id), "1735787045000-")
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}

func TestPriority_Valid(t *testing.T) {
	assert.True(t, PriorityHigh.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityLow.Valid())
	assert.False(t, Priority("urgent").Valid())
}

func TestTask_Done(t *testing.T) {
	assert.False(t, Task{Status: StatusPending}.Done())
	assert.False(t, Task{Status: StatusInProgress}.Done())
	assert.True(t, Task{Status: StatusCompleted}.Done())
}

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeLight, Theme("sepia").Toggle())
}
