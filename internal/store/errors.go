package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an id does not match any task.
	// Callers may treat it as a benign no-op.
	ErrNotFound = errors.New("task not found")

	// ErrOutOfRange is returned when a position is outside the list.
	ErrOutOfRange = errors.New("task position out of range")
)

// PersistError reports a storage failure. It never fails the mutation that
// triggered it: in-memory state stays authoritative for the session.
type PersistError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s tasks: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
