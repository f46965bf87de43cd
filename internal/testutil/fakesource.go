package testutil

import (
	"context"
	"strings"
	"sync"

	"tasklist/internal/remote"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// FakeSource is an in-memory implementation of remote.Source for testing.
type FakeSource struct {
	mu    sync.RWMutex
	lists []remote.TaskList
	tasks map[string][]remote.Task // listID -> tasks

	// Error injection for testing
	DefaultListErr error
	ListListsErr   error
	ListTasksErr   map[string]error // listID -> error
}

// NewFakeSource creates a new FakeSource with an empty default list.
func NewFakeSource() *FakeSource {
	return &FakeSource{
		lists:        []remote.TaskList{{ID: DefaultListID, Title: "My Tasks", IsDefault: true}},
		tasks:        map[string][]remote.Task{DefaultListID: nil},
		ListTasksErr: make(map[string]error),
	}
}

// AddList adds a list.
func (f *FakeSource) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, remote.TaskList{ID: id, Title: title})
	if _, ok := f.tasks[id]; !ok {
		f.tasks[id] = nil
	}
}

// AddTask adds an open task to a list at the given position.
func (f *FakeSource) AddTask(listID, position, title string) {
	f.addTask(listID, remote.Task{Title: title, Position: position, Status: remote.StatusNeedsAction})
}

// AddCompletedTask adds a completed task to a list at the given position.
func (f *FakeSource) AddCompletedTask(listID, position, title string) {
	f.addTask(listID, remote.Task{Title: title, Position: position, Status: remote.StatusCompleted})
}

func (f *FakeSource) addTask(listID string, t remote.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[listID] = append(f.tasks[listID], t)
}

// DefaultList implements remote.Source.
func (f *FakeSource) DefaultList(ctx context.Context) (remote.TaskList, error) {
	if f.DefaultListErr != nil {
		return remote.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return remote.TaskList{}, remote.ErrNotFound
}

// ListLists implements remote.Source.
func (f *FakeSource) ListLists(ctx context.Context) ([]remote.TaskList, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]remote.TaskList, len(f.lists))
	copy(result, f.lists)
	return result, nil
}

// ResolveList implements remote.Source.
func (f *FakeSource) ResolveList(ctx context.Context, name string) (remote.TaskList, error) {
	lists, err := f.ListLists(ctx)
	if err != nil {
		return remote.TaskList{}, err
	}

	name = strings.TrimSpace(name)
	var matches []remote.TaskList
	for _, l := range lists {
		if strings.EqualFold(strings.TrimSpace(l.Title), name) {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return remote.TaskList{}, remote.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return remote.TaskList{}, remote.ErrAmbiguous
	}
}

// ListTasks implements remote.Source.
func (f *FakeSource) ListTasks(ctx context.Context, listID string, withCompleted bool) ([]remote.Task, error) {
	if err := f.ListTasksErr[listID]; err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		return nil, remote.ErrNotFound
	}

	var result []remote.Task
	for _, t := range tasks {
		if t.Completed() && !withCompleted {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}
