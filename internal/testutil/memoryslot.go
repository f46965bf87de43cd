// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"tasklist/internal/storage"
	"tasklist/internal/task"
)

// MemorySlot is an in-memory implementation of storage.Slot for testing.
type MemorySlot struct {
	mu      sync.Mutex
	payload []byte
	saves   int
	closed  bool

	// Error injection for testing
	SaveErr error
	LoadErr error
}

// NewMemorySlot creates an empty slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// NewMemorySlotWith creates a slot that already holds tasks.
func NewMemorySlotWith(tasks []task.Task) *MemorySlot {
	payload, err := storage.Encode(tasks)
	if err != nil {
		panic(err)
	}
	return &MemorySlot{payload: payload}
}

// SetPayload stores raw bytes, e.g. to simulate a corrupt slot.
func (m *MemorySlot) SetPayload(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = append([]byte(nil), payload...)
}

// Saves returns how many successful saves happened.
func (m *MemorySlot) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Stored decodes the current payload. Returns nil if nothing was saved.
func (m *MemorySlot) Stored() []task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return nil
	}
	tasks, err := storage.Decode(m.payload)
	if err != nil {
		return nil
	}
	return tasks
}

// Closed reports whether Close was called.
func (m *MemorySlot) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Save implements storage.Slot.
func (m *MemorySlot) Save(ctx context.Context, tasks []task.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	payload, err := storage.Encode(tasks)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = payload
	m.saves++
	return nil
}

// Load implements storage.Slot.
func (m *MemorySlot) Load(ctx context.Context) ([]task.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return nil, storage.ErrEmpty
	}
	return storage.Decode(m.payload)
}

// Close implements storage.Slot.
func (m *MemorySlot) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
