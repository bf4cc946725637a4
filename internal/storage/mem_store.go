package storage

import "sync"

// MemStore keeps slots in memory. It backs tests and headless runs
// where no durable store is available; contents vanish with the process.
type MemStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{slots: map[string]string{}}
}

func (s *MemStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.slots[key]
	return v, ok, nil
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = value
	return nil
}

// Delete removes a slot. Only tests need this.
func (s *MemStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
}
