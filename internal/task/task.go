// Package task defines the task entity shared by the store, storage and CLI.
package task

import "github.com/google/uuid"

// Task is a single to-do entry.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// New creates an open task with a fresh random id.
func New(title string) Task {
	return Task{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// Clone returns an independent copy of tasks.
// A nil input yields an empty, non-nil slice.
func Clone(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
