// Package config loads application settings from an optional YAML file
// with environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

type Config struct {
	// DataDir holds the file backend's slot files, or the sqlite
	// database file.
	DataDir string `yaml:"data_dir"`
	// Backend selects where slots are persisted: file, sqlite or memory.
	Backend Backend `yaml:"backend"`
	// Theme is the preference used before one has been persisted.
	Theme string `yaml:"theme"`
	// DebounceMS is the search quiescence window in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`
	// ToastLifetimeMS is the total toast lifetime in milliseconds.
	ToastLifetimeMS int `yaml:"toast_lifetime_ms"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

func Default() Config {
	return Config{
		DataDir:         "data",
		Backend:         BackendFile,
		Theme:           "light",
		DebounceMS:      300,
		ToastLifetimeMS: 3000,
	}
}

func (c *Config) ApplyDefaults() {
	d := Default()
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if c.Backend == "" {
		c.Backend = d.Backend
	}
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.DebounceMS <= 0 {
		c.DebounceMS = d.DebounceMS
	}
	if c.ToastLifetimeMS <= 0 {
		c.ToastLifetimeMS = d.ToastLifetimeMS
	}
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
	return nil
}

func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func (c Config) ToastLifetime() time.Duration {
	return time.Duration(c.ToastLifetimeMS) * time.Millisecond
}

// Load reads the YAML file at path. A missing file yields the defaults;
// a present but unreadable or malformed file is an error.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	c.ApplyDefaults()
	return c, nil
}
