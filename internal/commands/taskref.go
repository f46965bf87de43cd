package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"tasklist/internal/store"
	"tasklist/internal/task"
)

// TaskRef is a parsed reference to one task: a 1-based position in the
// current list, or a task id.
type TaskRef struct {
	Num int    // 1-based position; 0 when ID is set
	ID  string // canonical task id; empty when Num is set
}

func (r TaskRef) String() string {
	if r.ID != "" {
		return r.ID
	}
	return strconv.Itoa(r.Num)
}

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// errOutOfRange indicates a position outside the list.
	errOutOfRange = errors.New("task number out of range")
)

// ParseTaskRef parses a single task reference.
//
// Parsing rules:
//  1. All ASCII digits → position in the list
//  2. A UUID → task id
//  3. Otherwise → error: invalid task reference: <ref>
func ParseTaskRef(arg string) (TaskRef, error) {
	if arg == "" {
		return TaskRef{}, ErrTaskRefRequired
	}
	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}
	if id, err := uuid.Parse(arg); err == nil {
		return TaskRef{ID: id.String()}, nil
	}
	return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
}

// ParseTaskRefs parses every argument as a task reference.
func ParseTaskRefs(args []string) ([]TaskRef, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}
	refs := make([]TaskRef, 0, len(args))
	for _, arg := range args {
		ref, err := ParseTaskRef(arg)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// resolveRef finds the task and its 0-based position.
func resolveRef(st *store.Store, ref TaskRef) (task.Task, int, error) {
	tasks := st.Tasks()
	if ref.ID == "" {
		if ref.Num < 1 || ref.Num > len(tasks) {
			return task.Task{}, -1, errOutOfRange
		}
		return tasks[ref.Num-1], ref.Num - 1, nil
	}
	for i, t := range tasks {
		if t.ID == ref.ID {
			return t, i, nil
		}
	}
	return task.Task{}, -1, store.ErrNotFound
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
