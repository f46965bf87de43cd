package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"go.etcd.io/bbolt"

	"tasklist/internal/storage"
	"tasklist/internal/task"
)

func openTempStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestLoadEmptySlot(t *testing.T) {
	s, _ := openTempStore(t)

	_, err := s.Load(context.Background())
	if !errors.Is(err, storage.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := openTempStore(t)
	ctx := context.Background()

	want := []task.Task{
		{ID: "b", Title: "Call Bob"},
		{ID: "a", Title: "Buy milk", IsCompleted: true},
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestSaveOverwritesPreviousValue(t *testing.T) {
	s, _ := openTempStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, []task.Task{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.Save(ctx, []task.Task{}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list after overwrite, got %#v", got)
	}
}

func TestSurvivesReopen(t *testing.T) {
	s, path := openTempStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, []task.Task{{ID: "a", Title: "A"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("unexpected tasks after reopen: %#v", got)
	}
}

func TestLoadCorruptPayload(t *testing.T) {
	s, _ := openTempStore(t)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(storage.SlotKey), []byte("{oops"))
	})
	if err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	_, err = s.Load(context.Background())
	if !errors.Is(err, storage.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	s, _ := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Save(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from save, got %v", err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from load, got %v", err)
	}
}
