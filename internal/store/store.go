// Package store owns the ordered task list and its mutation and query operations.
//
// Every mutation is write-through: the full list is saved to the storage slot
// and then every subscriber receives the new snapshot before the call returns.
// A Store is owned by a single goroutine and performs no locking.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"tasklist/internal/storage"
	"tasklist/internal/task"
)

// Snapshot is an independent copy of the task list at one point in time.
type Snapshot []task.Task

// ErrorHandler receives persistence failures, always as *PersistError.
type ErrorHandler func(err error)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug traces and the default error handler.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithErrorHandler replaces the default handler, which logs failures at WARN.
func WithErrorHandler(h ErrorHandler) Option {
	return func(s *Store) {
		if h != nil {
			s.onError = h
		}
	}
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Store is the in-memory authority for the task list.
type Store struct {
	slot   storage.Slot
	tasks  []task.Task
	subs   []subscriber
	nextID int

	onError ErrorHandler
	logger  *slog.Logger
}

// New creates an empty store persisting to slot. Call Load before use.
func New(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:   slot,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.onError == nil {
		s.onError = func(err error) {
			s.logger.Warn("task persistence failed", "error", err)
		}
	}
	return s
}

// Load replaces the in-memory list with the stored one.
// An empty slot yields an empty list. Any other failure is reported to the
// error handler and also yields an empty list.
func (s *Store) Load(ctx context.Context) {
	tasks, err := s.slot.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrEmpty):
		tasks = nil
	default:
		s.onError(&PersistError{Op: "load", Err: err})
		tasks = nil
	}

	s.tasks = task.Clone(tasks)
	s.logger.Debug("tasks loaded", "count", len(s.tasks))
	s.notify()
}

// Tasks returns a snapshot of the full list.
func (s *Store) Tasks() Snapshot {
	return Snapshot(task.Clone(s.tasks))
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (task.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.tasks[i], true
}

// Add creates an open task and prepends it, so the newest task is first.
// Callers reject blank titles before calling Add.
func (s *Store) Add(ctx context.Context, title string) task.Task {
	t := task.New(title)
	s.tasks = append([]task.Task{t}, s.tasks...)
	s.logger.Debug("task added", "id", t.ID)
	s.commit(ctx)
	return t
}

// Import prepends copies of batch with fresh ids, keeping batch order, and
// saves once. It returns the created tasks.
func (s *Store) Import(ctx context.Context, batch []task.Task) []task.Task {
	if len(batch) == 0 {
		return nil
	}

	created := make([]task.Task, len(batch))
	for i, b := range batch {
		created[i] = task.New(b.Title)
		created[i].IsCompleted = b.IsCompleted
	}
	s.tasks = append(task.Clone(created), s.tasks...)
	s.logger.Debug("tasks imported", "count", len(created))
	s.commit(ctx)
	return created
}

// Rename replaces the title of the task with the given id in place.
func (s *Store) Rename(ctx context.Context, id, title string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks[i].Title = title
	s.logger.Debug("task renamed", "id", id)
	s.commit(ctx)
	return nil
}

// Toggle flips the completion flag of the task with the given id.
func (s *Store) Toggle(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
	s.logger.Debug("task toggled", "id", id, "completed", s.tasks[i].IsCompleted)
	s.commit(ctx)
	return nil
}

// Delete removes the task with the given id; later tasks shift left.
func (s *Store) Delete(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.logger.Debug("task deleted", "id", id)
	s.commit(ctx)
	return nil
}

// DeleteAt removes the tasks at the given 0-based positions, all computed
// against the list as it is when DeleteAt is called. Repeated positions count
// once. If any position is out of range nothing is removed.
func (s *Store) DeleteAt(ctx context.Context, offsets []int) error {
	if len(offsets) == 0 {
		return nil
	}

	unique := make(map[int]struct{}, len(offsets))
	for _, off := range offsets {
		if off < 0 || off >= len(s.tasks) {
			return ErrOutOfRange
		}
		unique[off] = struct{}{}
	}

	positions := make([]int, 0, len(unique))
	for off := range unique {
		positions = append(positions, off)
	}
	// Highest first so earlier removals do not shift pending positions.
	sort.Sort(sort.Reverse(sort.IntSlice(positions)))
	for _, off := range positions {
		s.tasks = append(s.tasks[:off], s.tasks[off+1:]...)
	}

	s.logger.Debug("tasks deleted", "count", len(positions))
	s.commit(ctx)
	return nil
}

// Move relocates the task at from so that it ends up at to, shifting the
// tasks in between by one.
func (s *Store) Move(ctx context.Context, from, to int) error {
	n := len(s.tasks)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrOutOfRange
	}
	if from == to {
		return nil
	}

	moved := s.tasks[from]
	rest := append(s.tasks[:from:from], s.tasks[from+1:]...)
	s.tasks = append(rest[:to:to], append([]task.Task{moved}, rest[to:]...)...)

	s.logger.Debug("task moved", "id", moved.ID, "from", from, "to", to)
	s.commit(ctx)
	return nil
}

// Search returns the tasks whose title contains query, ignoring case, in
// list order. An empty query returns the full list.
func (s *Store) Search(query string) Snapshot {
	if query == "" {
		return s.Tasks()
	}

	fold := cases.Fold()
	needle := fold.String(query)

	result := Snapshot{}
	for _, t := range s.tasks {
		if strings.Contains(fold.String(t.Title), needle) {
			result = append(result, t)
		}
	}
	return result
}

// Subscribe registers fn to receive a snapshot after every change.
// Subscribers run synchronously in registration order. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// commit saves the current list and notifies subscribers.
func (s *Store) commit(ctx context.Context) {
	if err := s.slot.Save(ctx, task.Clone(s.tasks)); err != nil {
		s.onError(&PersistError{Op: "save", Err: err})
	}
	s.notify()
}

func (s *Store) notify() {
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(s.Tasks())
	}
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
