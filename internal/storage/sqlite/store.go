// Package sqlite implements storage.Slot on a SQLite key-value table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"tasklist/internal/storage"
	"tasklist/internal/storage/sqlite/migrations"
	"tasklist/internal/task"
)

// Store is a SQLite-backed task slot.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a SQLite slot at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save upserts the serialized task list under the fixed slot key.
func (s *Store) Save(ctx context.Context, tasks []task.Task) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	payload, err := storage.Encode(tasks)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO kv_slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		    value = excluded.value,
		    updated_at = excluded.updated_at`,
		storage.SlotKey, payload, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// Load returns the stored task list.
func (s *Store) Load(ctx context.Context) ([]task.Task, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var payload []byte
	row := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM kv_slots WHERE key = ?`, storage.SlotKey)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEmpty
		}
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return storage.Decode(payload)
}
