package storage_test

import (
	"errors"
	"reflect"
	"testing"

	"tasklist/internal/storage"
	"tasklist/internal/task"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		tasks []task.Task
	}{
		{name: "empty", tasks: []task.Task{}},
		{name: "ordered", tasks: []task.Task{
			{ID: "3", Title: "Call Bob", IsCompleted: true},
			{ID: "1", Title: "Buy milk"},
			{ID: "2", Title: "Ünïcode ✓"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := storage.Encode(tt.tasks)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := storage.Decode(payload)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, tt.tasks) {
				t.Errorf("round trip mismatch\nwant: %#v\ngot:  %#v", tt.tasks, got)
			}
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	payload, err := storage.Encode([]task.Task{{ID: "a", Title: "A", IsCompleted: true}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	expected := `[{"id":"a","title":"A","isCompleted":true}]`
	if string(payload) != expected {
		t.Errorf("expected %s, got %s", expected, payload)
	}

	payload, err = storage.Encode(nil)
	if err != nil {
		t.Fatalf("encode nil: %v", err)
	}
	if string(payload) != "[]" {
		t.Errorf("expected [] for nil list, got %s", payload)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	payloads := map[string]string{
		"garbage":      "not json",
		"object":       `{"id":"a"}`,
		"null":         "null",
		"missing id":   `[{"title":"A"}]`,
		"duplicate id": `[{"id":"a","title":"A"},{"id":"a","title":"B"}]`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			_, err := storage.Decode([]byte(payload))
			if !errors.Is(err, storage.ErrCorrupt) {
				t.Errorf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}
