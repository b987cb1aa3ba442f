package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stack-tower/internal/config"
	"github.com/vovakirdan/stack-tower/internal/games/tower"
	"github.com/vovakirdan/stack-tower/internal/registry"
	"github.com/vovakirdan/stack-tower/internal/storage"
)

// Store is the persistence the terminal frontend needs.
type Store interface {
	tower.Store
	TopRuns(limit int) ([]storage.RunEntry, error)
	GetRunStats() (*storage.RunStats, error)
}

// Env carries what every screen needs to build games.
type Env struct {
	Store   Store // nil plays without persistence
	Tower   config.TowerConfig
	Content config.ContentConfig
	Sound   tower.Sink
	Logger  *log.Logger

	// Countdown is the power-up interstitial length in ticks.
	// Zero grants power-ups immediately.
	Countdown float64
}

// NewGame builds a game tuned for mode.
func (e Env) NewGame(mode registry.Mode) *tower.Game {
	cfg := e.Tower
	mode.Apply(&cfg)

	var gate tower.Gate = &tower.InstantGate{}
	if e.Countdown > 0 {
		gate = tower.NewCountdownGate(e.Countdown)
	}
	opts := tower.Options{
		Tower:   cfg,
		Content: e.Content,
		Gate:    gate,
		Sound:   e.Sound,
		Logger:  e.Logger,
	}
	if e.Store != nil {
		opts.Store = e.Store
	}
	return tower.New(opts)
}

// ForUser returns an Env whose profile record is private to user.
// The run history stays shared.
func (e Env) ForUser(user string) Env {
	if e.Store != nil {
		e.Store = userStore{Store: e.Store, prefix: "user:" + user + ":"}
	}
	return e
}

type userStore struct {
	Store
	prefix string
}

func (s userStore) LoadRecord(key string) ([]byte, bool, error) {
	return s.Store.LoadRecord(s.prefix + key)
}

func (s userStore) SaveRecord(key string, data []byte) error {
	return s.Store.SaveRecord(s.prefix+key, data)
}

// DefaultMode returns the normal mode, or a bare one if it is not registered.
func DefaultMode() registry.Mode {
	if m, err := registry.Lookup(string(config.DifficultyNormal)); err == nil {
		return m
	}
	return registry.Mode{ID: string(config.DifficultyNormal), Title: "Classic", Preset: config.DifficultyNormal}
}
