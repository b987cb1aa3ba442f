package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreRecordRoundTrip(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.LoadRecord("stackTower_v2")
	if err != nil {
		t.Fatalf("LoadRecord() failed: %v", err)
	}
	if ok {
		t.Fatal("expected no record in a fresh database")
	}

	if err := store.SaveRecord("stackTower_v2", []byte(`{"theme":"classic"}`)); err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	if err := store.SaveRecord("stackTower_v2", []byte(`{"theme":"neon"}`)); err != nil {
		t.Fatalf("SaveRecord() overwrite failed: %v", err)
	}

	data, ok, err := store.LoadRecord("stackTower_v2")
	if err != nil || !ok {
		t.Fatalf("LoadRecord() = %v, %v", ok, err)
	}
	if string(data) != `{"theme":"neon"}` {
		t.Errorf("LoadRecord() = %s, expected the overwritten record", data)
	}

	if err := store.DeleteRecord("stackTower_v2"); err != nil {
		t.Fatalf("DeleteRecord() failed: %v", err)
	}
	if _, ok, _ := store.LoadRecord("stackTower_v2"); ok {
		t.Error("record should be gone after delete")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Floor: 5, Score: 100, Theme: "classic"},
		{Floor: 2, Score: 50, Theme: "classic"},
		{Floor: 12, Score: 400, Perfects: 6, BestStreak: 4, Theme: "neon"},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("SaveRun() returned non-UUID id %q", id)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 400 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Theme != "neon" || top[0].BestStreak != 4 || top[0].Perfects != 6 {
		t.Errorf("Run fields not persisted: %+v", top[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Floor: i, Score: (i + 1) * 100})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Floor: 1, Score: 10})
	store.SaveRun(RunEntry{Floor: 2, Score: 20})

	recent, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Score != 20 {
		t.Errorf("Expected the latest run, got %v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	store.SaveRun(RunEntry{Score: 100})
	store.SaveRun(RunEntry{Score: 300})
	store.SaveRun(RunEntry{Score: 200})

	high, _ = store.HighScore()
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRunStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetRunStats()
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.AvgFloor != 0 {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveRun(RunEntry{Floor: 4, Score: 40})
	store.SaveRun(RunEntry{Floor: 8, Score: 90})

	stats, err := store.GetRunStats()
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.MaxFloor != 8 || stats.AvgFloor != 6 || stats.HighScore != 90 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Score: 100})
	store.SaveRecord("stackTower_v2", []byte("{}"))

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	if _, ok, _ := store.LoadRecord("stackTower_v2"); !ok {
		t.Error("clearing runs should not touch the profile record")
	}
}

func TestStoreSaveRunReplacesByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunEntry{Floor: 8, Score: 120, Theme: "classic"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.SaveRun(RunEntry{ID: id, Floor: 14, Score: 260, Perfects: 3, Theme: "classic"})
	if err != nil {
		t.Fatalf("SaveRun() with ID failed: %v", err)
	}
	if got != id {
		t.Errorf("SaveRun() returned %q, want %q", got, id)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run after replace, got %d", len(runs))
	}
	if runs[0].Floor != 14 || runs[0].Score != 260 || runs[0].Perfects != 3 {
		t.Errorf("replaced run = %+v", runs[0])
	}
}
