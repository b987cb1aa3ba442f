package sim

import (
	"math"

	"github.com/vovakirdan/stack-tower/internal/config"
)

// Speed returns the moving block speed for a floor count. The curve is
// stepped every Interval floors and capped at Max, which itself never goes
// above config.MaxSpeedCeiling.
func Speed(floor int, cfg config.SpeedConfig) float64 {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 1
	}
	level := floor / interval
	limit := math.Min(cfg.Max, config.MaxSpeedCeiling)
	return math.Min(cfg.Base+float64(level)*cfg.Increment, limit)
}

// SpawnDirection returns +1 when the stack length is even and -1 otherwise.
func SpawnDirection(stackLen int) float64 {
	if stackLen%2 == 0 {
		return 1
	}
	return -1
}

// FloorBonus returns the flat bonus for reaching a floor, or 0.
func FloorBonus(floor int, cfg config.ScoringConfig) int {
	if floor <= 0 || cfg.FloorBonusInterval <= 0 || floor%cfg.FloorBonusInterval != 0 {
		return 0
	}
	return cfg.FloorBonus
}

// RunSummary is the per-run tally reported at game over.
type RunSummary struct {
	RunID      int
	Floor      int
	Score      int
	Perfects   int
	BestStreak int
	ReviveUsed bool
}
