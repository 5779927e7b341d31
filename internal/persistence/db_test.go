package persistence

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndLoadLatestSnapshot(t *testing.T) {
	db := openTestDB(t)

	if err := db.SaveRun("run-1", "scenario.json", 42, "2024-01-01T00:00:00Z"); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	if err := db.SaveSnapshot("run-1", 10, []byte(`{"tick":10}`), "2024-01-01T00:00:10Z"); err != nil {
		t.Fatalf("SaveSnapshot (tick 10): %v", err)
	}
	if err := db.SaveSnapshot("run-1", 20, []byte(`{"tick":20}`), "2024-01-01T00:00:20Z"); err != nil {
		t.Fatalf("SaveSnapshot (tick 20): %v", err)
	}

	data, tick, err := db.LoadLatestSnapshot("run-1")
	if err != nil {
		t.Fatalf("LoadLatestSnapshot: %v", err)
	}
	if tick != 20 {
		t.Errorf("tick = %d, want 20 (the latest)", tick)
	}
	if string(data) != `{"tick":20}` {
		t.Errorf("data = %q, want the tick-20 payload", data)
	}
}

func TestLoadLatestSnapshotNoRunReturnsError(t *testing.T) {
	db := openTestDB(t)
	if _, _, err := db.LoadLatestSnapshot("no-such-run"); err == nil {
		t.Fatal("expected an error for a run with no snapshots")
	}
}

func TestSaveSnapshotUpsertsSameTick(t *testing.T) {
	db := openTestDB(t)
	if err := db.SaveSnapshot("run-2", 1, []byte(`{"v":1}`), "2024-01-01T00:00:00Z"); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if err := db.SaveSnapshot("run-2", 1, []byte(`{"v":2}`), "2024-01-01T00:00:01Z"); err != nil {
		t.Fatalf("SaveSnapshot overwrite: %v", err)
	}
	data, _, err := db.LoadLatestSnapshot("run-2")
	if err != nil {
		t.Fatalf("LoadLatestSnapshot: %v", err)
	}
	if string(data) != `{"v":2}` {
		t.Errorf("data = %q, want the overwritten payload", data)
	}
}
