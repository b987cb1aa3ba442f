package config

import (
	_ "embed"
)

//go:embed defaults/tower.yaml
var defaultTowerYAML []byte

//go:embed defaults/content.yaml
var defaultContentYAML []byte

// DefaultTowerConfig returns the built-in tuning.
func DefaultTowerConfig() TowerConfig {
	return TowerConfig{
		Frame: FrameConfig{
			Width:        400,
			Height:       700,
			BaseOffset:   80,
			AmbientMotes: 40,
		},
		Blocks: BlocksConfig{
			InitialWidth: 160,
			Height:       28,
			Gap:          2,
			MinWidth:     12,
			MaxWidth:     200,
			ReviveWidth:  60,
			Gravity:      0.5,
		},
		Speed: SpeedConfig{
			Base:      2.5,
			Increment: 0.3,
			Interval:  5,
			Max:       8,
		},
		Thresholds: ThresholdsConfig{
			Perfect: 5,
			Good:    15,
		},
		Scoring: ScoringConfig{
			BasePoints:         10,
			PerfectBonus:       50,
			ComboMultiplier:    10,
			FloorBonus:         100,
			FloorBonusInterval: 10,
			GrowthStartCombo:   3,
			GrowthPerCombo:     2,
			GrowthMax:          20,
		},
		PowerUps: PowerUpsConfig{
			SlowMotionTicks:  300,
			SlowMotionFactor: 0.4,
			HintTicks:        180,
		},
		Camera: CameraConfig{
			Lerp:           0.08,
			FollowAfter:    6,
			AnchorRatio:    0.4,
			ShakeOnPerfect: 8,
			ShakeDecay:     0.88,
			ShakeCutoff:    0.3,
			FlashOnPerfect: 0.25,
			FlashDecay:     0.92,
			FlashCutoff:    0.01,
		},
		Timing: TimingConfig{
			FallingDelay:  6,  // ~100ms
			GameOverDelay: 48, // ~800ms
			FeedbackLife:  50,
			MaxDelta:      2,
		},
	}
}

// DefaultContentConfig returns the built-in theme and title tables.
func DefaultContentConfig() ContentConfig {
	return ContentConfig{
		Themes: []ThemeConfig{
			{
				ID:                 "classic",
				Name:               "Classic",
				Emoji:              "🏗️",
				Colors:             []string{"#3498db", "#e74c3c", "#2ecc71", "#f39c12", "#9b59b6", "#1abc9c", "#e91e63"},
				Background:         "#1a1a2e",
				BackgroundGradient: []string{"#1a1a2e", "#16213e"},
				TextColor:          "#ecf0f1",
			},
		},
		Titles: []TitleConfig{
			{Floor: 1, Name: "Stacking Rookie", Emoji: "🐣"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config file name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case TowerFile:
		return defaultTowerYAML
	case ContentFile:
		return defaultContentYAML
	default:
		return nil
	}
}
