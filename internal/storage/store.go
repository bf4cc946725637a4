// Package storage synchronizes in-memory values with a durable
// string-keyed slot store. Failures never escape the adapter: a broken
// or absent store degrades to session-only state.
package storage

// Store is a durable key-value slot store. Values are opaque strings;
// the adapter layers JSON on top.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Set writes the value, overwriting any previous one.
	Set(key, value string) error
}

const (
	// KeyTasks holds the JSON array of tasks.
	KeyTasks = "task-manager-tasks"
	// KeyTheme holds the JSON-encoded theme preference string.
	KeyTheme = "task-manager-theme"
)
