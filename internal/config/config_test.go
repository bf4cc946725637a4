package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskman.yml")
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\ndebounce_ms: 150\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, 150*time.Millisecond, cfg.Debounce())
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 3*time.Second, cfg.ToastLifetime())
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskman.yml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Backend = "redis"
	assert.Error(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TASKMAN_BACKEND", "memory")
	t.Setenv("TASKMAN_DEBOUNCE_MS", "50")
	t.Setenv("TASKMAN_THEME", "dark")
	t.Setenv("TASKMAN_VERBOSE", "1")

	cfg := FromEnv(Default())

	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, 50, cfg.DebounceMS)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.Verbose)
}

func TestFromEnv_IgnoresJunkNumbers(t *testing.T) {
	t.Setenv("TASKMAN_DEBOUNCE_MS", "soon")

	cfg := FromEnv(Default())
	assert.Equal(t, 300, cfg.DebounceMS)
}
