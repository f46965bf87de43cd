// Package storage defines the durable slot that holds the serialized task list.
//
// A slot stores the whole ordered list as one opaque blob under one fixed key.
// Every Save replaces the previous value; Load returns the last saved list.
package storage

import (
	"context"
	"errors"

	"tasklist/internal/task"
)

// SlotKey is the fixed key under which backends store the task list.
const SlotKey = "tasks"

var (
	// ErrEmpty is returned by Load when nothing has been saved yet.
	ErrEmpty = errors.New("storage slot is empty")

	// ErrCorrupt is returned when a stored payload cannot be decoded.
	ErrCorrupt = errors.New("storage payload is corrupt")
)

// Slot is a durable key-value slot for the full task list.
type Slot interface {
	// Save serializes tasks and atomically replaces the stored value.
	Save(ctx context.Context, tasks []task.Task) error

	// Load returns the stored list in saved order.
	// Returns ErrEmpty on first run and ErrCorrupt for undecodable payloads.
	Load(ctx context.Context) ([]task.Task, error)

	// Close releases the underlying storage.
	Close() error
}
