// Package app assembles the core: storage backend, task store,
// notification queue and theme preference, with one lifecycle.
package app

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"taskman/internal/config"
	"taskman/internal/model"
	"taskman/internal/storage"
	"taskman/internal/task"
	"taskman/internal/toast"
)

// Options injects the collaborators the core cannot own: the deletion
// confirm gate and the presentation layer's change callback.
type Options struct {
	Confirm       task.ConfirmFunc
	OnToastChange func()
	Logger        *zap.Logger
}

// App owns the assembled core. Create with New, tear down with Close.
type App struct {
	cfg     config.Config
	log     *zap.Logger
	adapter *storage.Adapter

	Store  *task.Store
	Toasts *toast.Queue

	sqlite *storage.SQLiteStore
}

// New builds the storage backend from cfg, loads the task collection
// and arms the notification queue.
func New(cfg config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	a := &App{cfg: cfg, log: log}

	store, err := a.openBackend(cfg)
	if err != nil {
		return nil, err
	}
	a.adapter = storage.NewAdapter(store, log)

	a.Toasts = toast.NewQueue(toast.Options{
		Lifetime: cfg.ToastLifetime(),
		OnChange: opts.OnToastChange,
	})
	a.Store = task.NewStore(a.adapter, task.Options{
		Notifier: task.NotifierFunc(a.handleEvent),
		Confirm:  opts.Confirm,
		Logger:   log,
	})

	log.Info("app ready",
		zap.String("backend", string(cfg.Backend)),
		zap.Int("tasks", a.Store.Len()))
	return a, nil
}

func (a *App) openBackend(cfg config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		return fs, nil
	case config.BackendSQLite:
		db, err := storage.NewSQLiteStore(filepath.Join(cfg.DataDir, "taskman.db"))
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		a.sqlite = db
		return db, nil
	case config.BackendMemory:
		return storage.NewMemStore(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

// Theme returns the persisted theme preference, falling back to the
// configured default.
func (a *App) Theme() model.Theme {
	fallback := model.Theme(a.cfg.Theme)
	if !fallback.Valid() {
		fallback = model.ThemeLight
	}
	t := storage.Load(a.adapter, storage.KeyTheme, fallback)
	if !t.Valid() {
		return fallback
	}
	return t
}

// SetTheme persists the preference.
func (a *App) SetTheme(t model.Theme) {
	storage.Save(a.adapter, storage.KeyTheme, t)
}

// Close tears down timers and the storage backend.
func (a *App) Close() {
	a.Toasts.Close()
	if a.sqlite != nil {
		if err := a.sqlite.Close(); err != nil {
			a.log.Warn("close sqlite store", zap.Error(err))
		}
	}
	a.log.Info("app closed")
}
