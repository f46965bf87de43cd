package storage

import (
	"encoding/json"
	"fmt"

	"tasklist/internal/task"
)

// Encode serializes tasks as an order-preserving JSON array.
// A nil or empty list encodes as "[]".
func Encode(tasks []task.Task) ([]byte, error) {
	payload, err := json.Marshal(task.Clone(tasks))
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return payload, nil
}

// Decode parses a payload produced by Encode.
// Payloads that are not a JSON array of tasks, or that repeat an id, are corrupt.
func Decode(payload []byte) ([]task.Task, error) {
	var tasks []task.Task
	if err := json.Unmarshal(payload, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if tasks == nil {
		// "null" is not a list
		return nil, fmt.Errorf("%w: payload is not an array", ErrCorrupt)
	}

	seen := make(map[string]struct{}, len(tasks))
	for i, t := range tasks {
		if t.ID == "" {
			return nil, fmt.Errorf("%w: task %d has no id", ErrCorrupt, i)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate task id %s", ErrCorrupt, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return tasks, nil
}
