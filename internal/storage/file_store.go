package storage

import (
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists each slot as one file under a data directory.
type FileStore struct {
	mu      sync.RWMutex
	dataDir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) filePath(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := os.ReadFile(s.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(b), true, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return os.WriteFile(s.filePath(key), []byte(value), 0o644)
}
