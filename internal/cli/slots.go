package cli

import (
	"context"
	"fmt"

	"tasklist/internal/config"
	"tasklist/internal/storage"
	"tasklist/internal/storage/bolt"
	"tasklist/internal/storage/sqlite"
)

// OpenSlot opens the storage slot selected by cfg.Backend, creating the
// config directory first.
func OpenSlot(ctx context.Context, cfg *config.Config) (storage.Slot, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.Open(cfg.DataPath())
	case config.BackendBolt, "":
		return bolt.Open(cfg.DataPath())
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}
