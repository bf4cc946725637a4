package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/config"
	"taskman/internal/form"
	"taskman/internal/model"
	"taskman/internal/toast"
)

func memConfig() config.Config {
	cfg := config.Default()
	cfg.Backend = config.BackendMemory
	cfg.ToastLifetimeMS = 60000 // keep toasts alive for assertions
	return cfg
}

func payload(title string) form.Payload {
	return form.Payload{
		Title:    title,
		DueDate:  "2025-01-01",
		Priority: model.PriorityMedium,
		Status:   model.StatusPending,
	}
}

func TestNew_RejectsUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "redis"

	_, err := New(cfg, Options{})
	assert.Error(t, err)
}

func TestApp_CreateShowsSuccessToast(t *testing.T) {
	a, err := New(memConfig(), Options{})
	require.NoError(t, err)
	defer a.Close()

	a.Store.Create(payload("Buy milk"))

	toasts := a.Toasts.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Task created", toasts[0].Title)
	assert.Equal(t, toast.TypeSuccess, toasts[0].Type)
	assert.Contains(t, toasts[0].Message, `"Buy milk"`)
}

func TestApp_StatusToggleShowsInfoToasts(t *testing.T) {
	a, err := New(memConfig(), Options{})
	require.NoError(t, err)
	defer a.Close()

	created := a.Store.Create(payload("Buy milk"))
	a.Store.SetStatus(created.ID, model.StatusCompleted)
	a.Store.SetStatus(created.ID, model.StatusPending)

	toasts := a.Toasts.Toasts()
	require.Len(t, toasts, 3)
	assert.Equal(t, "Status updated", toasts[1].Title)
	assert.Contains(t, toasts[1].Message, "completed")
	assert.Contains(t, toasts[2].Message, "pending")
}

func TestApp_DeleteToastCarriesUndo(t *testing.T) {
	a, err := New(memConfig(), Options{})
	require.NoError(t, err)
	defer a.Close()

	created := a.Store.Create(payload("Buy milk"))
	require.True(t, a.Store.Delete(created.ID))
	require.Zero(t, a.Store.Len())

	toasts := a.Toasts.Toasts()
	require.Len(t, toasts, 2)
	deleted := toasts[1]
	assert.Equal(t, "Task deleted", deleted.Title)
	assert.Equal(t, toast.TypeError, deleted.Type)
	require.NotNil(t, deleted.OnUndo)

	a.Toasts.Undo(deleted.ID)

	got, ok := a.Store.Get(created.ID)
	require.True(t, ok, "undo must restore the removed task")
	assert.Equal(t, created, got)
}

func TestApp_DeleteUnknownIDToastHasNoUndo(t *testing.T) {
	a, err := New(memConfig(), Options{})
	require.NoError(t, err)
	defer a.Close()

	a.Store.Delete("missing")

	toasts := a.Toasts.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "The task was deleted.", toasts[0].Message)
	assert.Nil(t, toasts[0].OnUndo)
}

func TestApp_ConfirmGateBlocksDeletion(t *testing.T) {
	a, err := New(memConfig(), Options{Confirm: func(string) bool { return false }})
	require.NoError(t, err)
	defer a.Close()

	created := a.Store.Create(payload("keep me"))
	assert.False(t, a.Store.Delete(created.ID))
	assert.Equal(t, 1, a.Store.Len())
}

func TestApp_ThemePersistence(t *testing.T) {
	a, err := New(memConfig(), Options{})
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, model.ThemeLight, a.Theme())

	a.SetTheme(model.ThemeDark)
	assert.Equal(t, model.ThemeDark, a.Theme())
}

func TestApp_TasksPersistAcrossRestartWithFileBackend(t *testing.T) {
	cfg := memConfig()
	cfg.Backend = config.BackendFile
	cfg.DataDir = t.TempDir()

	a, err := New(cfg, Options{})
	require.NoError(t, err)
	a.Store.Create(payload("durable"))
	a.Close()

	b, err := New(cfg, Options{})
	require.NoError(t, err)
	defer b.Close()

	require.Equal(t, 1, b.Store.Len())
	assert.Equal(t, "durable", b.Store.Tasks()[0].Title)
}

func TestApp_TasksPersistAcrossRestartWithSQLiteBackend(t *testing.T) {
	cfg := memConfig()
	cfg.Backend = config.BackendSQLite
	cfg.DataDir = t.TempDir()

	a, err := New(cfg, Options{})
	require.NoError(t, err)
	a.Store.Create(payload("durable"))
	a.Close()

	b, err := New(cfg, Options{})
	require.NoError(t, err)
	defer b.Close()

	require.Equal(t, 1, b.Store.Len())
}

func TestApp_OnToastChangeFires(t *testing.T) {
	var changes int
	a, err := New(memConfig(), Options{OnToastChange: func() { changes++ }})
	require.NoError(t, err)
	defer a.Close()

	a.Store.Create(payload("ping"))

	assert.Equal(t, 1, changes)
}
