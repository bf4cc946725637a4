package config

import (
	"os"
	"strconv"
)

// FromEnv applies environment overrides on top of cfg.
func FromEnv(cfg Config) Config {
	if v := os.Getenv("TASKMAN_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TASKMAN_BACKEND"); v != "" {
		cfg.Backend = Backend(v)
	}
	if v := os.Getenv("TASKMAN_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := getEnvInt("TASKMAN_DEBOUNCE_MS"); v > 0 {
		cfg.DebounceMS = v
	}
	if v := getEnvInt("TASKMAN_TOAST_LIFETIME_MS"); v > 0 {
		cfg.ToastLifetimeMS = v
	}
	if v := os.Getenv("TASKMAN_VERBOSE"); v == "1" || v == "true" {
		cfg.Verbose = true
	}
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
