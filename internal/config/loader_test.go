package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedTowerMatchesDefaults(t *testing.T) {
	cfg := DefaultTowerConfig()
	if err := load("", TowerFile, &cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != DefaultTowerConfig() {
		t.Errorf("embedded tower.yaml differs from DefaultTowerConfig:\n%+v\n%+v", cfg, DefaultTowerConfig())
	}
}

func TestLoadTowerCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tower.yaml")
	data := []byte("speed:\n  base: 3\n  increment: 0.5\n  interval: 5\n  max: 8\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTower(path)
	if err != nil {
		t.Fatalf("LoadTower: %v", err)
	}
	if cfg.Speed.Base != 3 || cfg.Speed.Increment != 0.5 {
		t.Errorf("speed not overridden: %+v", cfg.Speed)
	}
	if cfg.Blocks.InitialWidth != 160 {
		t.Errorf("unset fields should keep defaults, got initial width %v", cfg.Blocks.InitialWidth)
	}
}

func TestLoadTowerMissingCustomPath(t *testing.T) {
	_, err := LoadTower(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadTowerInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tower.yaml")
	if err := os.WriteFile(path, []byte("blocks:\n  min_width: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTower(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if cfg != DefaultTowerConfig() {
		t.Error("invalid config should fall back to defaults")
	}
}

func TestLoadContentEmbedded(t *testing.T) {
	cfg, err := LoadContent("")
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if len(cfg.Themes) != 5 {
		t.Errorf("expected 5 themes, got %d", len(cfg.Themes))
	}
	if cfg.Themes[0].ID != "classic" {
		t.Errorf("first theme should be classic, got %q", cfg.Themes[0].ID)
	}
	if len(cfg.Titles) != 20 || len(cfg.SpecialTitles) != 4 {
		t.Errorf("titles=%d specials=%d", len(cfg.Titles), len(cfg.SpecialTitles))
	}
	for i := 1; i < len(cfg.Titles); i++ {
		if cfg.Titles[i].Floor <= cfg.Titles[i-1].Floor {
			t.Fatalf("titles not sorted at %d", i)
		}
	}
}

func TestApplyTowerPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		base      float64
		increment float64
	}{
		{DifficultyNormal, 2.5, 0.3},
		{DifficultyEasy, 2.0, 0.2},
		{DifficultyHard, 3.5, 0.4},
		{DifficultyFixed, 2.5, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTowerConfig()
			ApplyTowerPreset(&cfg, tc.preset)
			if cfg.Speed.Base != tc.base || cfg.Speed.Increment != tc.increment {
				t.Errorf("got base=%v increment=%v", cfg.Speed.Base, cfg.Speed.Increment)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
			if cfg.Speed.Max > MaxSpeedCeiling {
				t.Errorf("max speed %v above ceiling", cfg.Speed.Max)
			}
			if cfg.Thresholds.Perfect != 5 {
				t.Errorf("perfect threshold = %v, want 5", cfg.Thresholds.Perfect)
			}
		})
	}
}

func TestValidateRejectsFastMax(t *testing.T) {
	cfg := DefaultTowerConfig()
	cfg.Speed.Max = MaxSpeedCeiling + 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected max speed above the ceiling to be rejected")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard not parsed")
	}
	if ParsePreset("bogus") != DifficultyNormal {
		t.Error("unknown preset should be normal")
	}
}
