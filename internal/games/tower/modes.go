package tower

import (
	"github.com/vovakirdan/stack-tower/internal/config"
	"github.com/vovakirdan/stack-tower/internal/registry"
)

func init() {
	registry.Register(registry.Mode{
		ID:          "normal",
		Title:       "Classic",
		Description: "Speed rises every 5 floors up to the cap",
		Preset:      config.DifficultyNormal,
		Order:       0,
	})
	registry.Register(registry.Mode{
		ID:          "easy",
		Title:       "Relaxed",
		Description: "Slower blocks and a gentler speed curve",
		Preset:      config.DifficultyEasy,
		Order:       1,
	})
	registry.Register(registry.Mode{
		ID:          "hard",
		Title:       "Hard",
		Description: "Fast blocks that reach top speed sooner",
		Preset:      config.DifficultyHard,
		Order:       2,
	})
	registry.Register(registry.Mode{
		ID:          "fixed",
		Title:       "Zen",
		Description: "Speed never increases",
		Preset:      config.DifficultyFixed,
		Order:       3,
	})
}

var _ registry.Game = (*Game)(nil)
