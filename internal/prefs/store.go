// Package prefs persists small string preferences across sessions.
package prefs

import (
	"fmt"

	"github.com/alexisbeaulieu97/mealfinder/internal/config"
)

// Store is a durable string key-value store.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	Close() error
}

// Open returns the Store selected by cfg.
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendJSON, "":
		return NewFileStore(cfg.Path)
	case config.BackendBolt:
		return NewBoltStore(cfg.Path)
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
