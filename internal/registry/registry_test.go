package registry

import (
	"testing"

	"github.com/vovakirdan/stack-tower/internal/config"
)

func withCleanRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := modes
	modes = make(map[string]Mode)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		modes = saved
		mu.Unlock()
	})
}

func TestRegisterAndList(t *testing.T) {
	withCleanRegistry(t)

	Register(Mode{ID: "hard", Title: "Hard", Preset: config.DifficultyHard, Order: 2})
	Register(Mode{ID: "normal", Title: "Normal", Preset: config.DifficultyNormal, Order: 1})
	Register(Mode{ID: "easy", Title: "Easy", Preset: config.DifficultyEasy, Order: 0})

	got := List()
	want := []string{"easy", "normal", "hard"}
	if len(got) != len(want) {
		t.Fatalf("List() returned %d modes, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("List()[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withCleanRegistry(t)
	Register(Mode{ID: "normal"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(Mode{ID: "normal"})
}

func TestLookup(t *testing.T) {
	withCleanRegistry(t)
	Register(Mode{ID: "easy", Preset: config.DifficultyEasy})

	m, err := Lookup("easy")
	if err != nil {
		t.Fatalf("Lookup(easy) error = %v", err)
	}
	if _, err := Lookup("nope"); err == nil {
		t.Error("Lookup(nope) should fail")
	}

	cfg := config.DefaultTowerConfig()
	m.Apply(&cfg)
	if cfg.Speed.Base != 2.0 {
		t.Errorf("easy mode base speed = %v, want 2.0", cfg.Speed.Base)
	}
}
