// Package remote defines the read-only view of a hosted task service that the
// import command copies tasks from. Commands never import a vendor SDK directly.
package remote

import (
	"context"
	"errors"
)

// Status values reported for remote tasks.
const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

var (
	// ErrNotFound is returned when a list does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous is returned when a list name matches several lists.
	ErrAmbiguous = errors.New("ambiguous")

	// ErrAuth is returned when credentials are missing, expired or revoked.
	ErrAuth = errors.New("auth")
)

// Task is a task as reported by the remote service.
type Task struct {
	Title string

	// Position orders tasks within a list; it sorts lexicographically.
	Position string

	Status string
}

// Completed reports whether the remote task is done.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// TaskList is a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}

// Source reads task lists from a remote service.
type Source interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns ErrNotFound or ErrAmbiguous.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// ListTasks returns every task in a list, in API order.
	// Completed tasks are included only when withCompleted is set.
	ListTasks(ctx context.Context, listID string, withCompleted bool) ([]Task, error)
}
