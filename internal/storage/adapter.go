package storage

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Adapter wraps a Store with JSON serialization and a no-fail contract:
// Load falls back, Save swallows. The in-memory value stays authoritative
// for the session whatever the durable store does.
type Adapter struct {
	store Store
	log   *zap.Logger
}

// NewAdapter builds an adapter over store. A nil store means no durable
// backend is available; loads fall back and saves are dropped. A nil
// logger defaults to a nop logger.
func NewAdapter(store Store, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{store: store, log: log}
}

// Load reads and decodes the slot into the same type as fallback.
// Absent, empty, corrupt or erroring slots all yield the fallback.
func Load[T any](a *Adapter, key string, fallback T) T {
	if a.store == nil {
		return fallback
	}

	raw, ok, err := a.store.Get(key)
	if err != nil {
		a.log.Warn("storage read failed, using fallback",
			zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !ok || raw == "" {
		return fallback
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		a.log.Warn("stored value corrupt, using fallback",
			zap.String("key", key), zap.Error(err))
		return fallback
	}
	return v
}

// Save encodes and writes the value. Failures are logged and dropped;
// the caller's in-memory copy is the source of truth regardless.
func Save[T any](a *Adapter, key string, value T) {
	if a.store == nil {
		return
	}

	b, err := json.Marshal(value)
	if err != nil {
		a.log.Warn("serialize failed, change not persisted",
			zap.String("key", key), zap.Error(err))
		return
	}
	if err := a.store.Set(key, string(b)); err != nil {
		a.log.Warn("storage write failed, change not persisted",
			zap.String("key", key), zap.Error(err))
	}
}
