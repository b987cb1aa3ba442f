// Package config provides YAML-based configuration loading for the tower
// simulation (tuning constants) and its content tables (themes and titles).
package config

// TowerConfig contains all tuning for the Stack Tower simulation.
// Distances are in logical frame units; durations are in nominal ticks
// (1/60 s).
type TowerConfig struct {
	Frame      FrameConfig      `yaml:"frame"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Speed      SpeedConfig      `yaml:"speed"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Camera     CameraConfig     `yaml:"camera"`
	Timing     TimingConfig     `yaml:"timing"`
}

// FrameConfig defines the logical play field.
type FrameConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BaseOffset   float64 `yaml:"base_offset"`   // foundation sits this far above the bottom
	AmbientMotes int     `yaml:"ambient_motes"` // background particles
}

// BlocksConfig defines block geometry.
type BlocksConfig struct {
	InitialWidth float64 `yaml:"initial_width"`
	Height       float64 `yaml:"height"`
	Gap          float64 `yaml:"gap"`
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
	ReviveWidth  float64 `yaml:"revive_width"`
	Gravity      float64 `yaml:"gravity"` // falling piece acceleration per tick
}

// MaxSpeedCeiling is the fastest a block may ever move, in frame units per
// tick. Speed.Max above it is rejected by Validate.
const MaxSpeedCeiling = 8.0

// SpeedConfig defines the stepped speed curve.
type SpeedConfig struct {
	Base      float64 `yaml:"base"`
	Increment float64 `yaml:"increment"`
	Interval  int     `yaml:"interval"` // floors per increment
	Max       float64 `yaml:"max"`
}

// ThresholdsConfig defines placement quality thresholds (center offset).
type ThresholdsConfig struct {
	Perfect float64 `yaml:"perfect"`
	Good    float64 `yaml:"good"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	BasePoints         int `yaml:"base_points"`
	PerfectBonus       int `yaml:"perfect_bonus"`
	ComboMultiplier    int `yaml:"combo_multiplier"`
	FloorBonus         int `yaml:"floor_bonus"`
	FloorBonusInterval int `yaml:"floor_bonus_interval"`
	GrowthStartCombo   int `yaml:"growth_start_combo"`
	GrowthPerCombo     int `yaml:"growth_per_combo"`
	GrowthMax          int `yaml:"growth_max"`
}

// PowerUpsConfig defines power-up durations and strength.
type PowerUpsConfig struct {
	SlowMotionTicks  float64 `yaml:"slow_motion_ticks"`
	SlowMotionFactor float64 `yaml:"slow_motion_factor"`
	HintTicks        float64 `yaml:"hint_ticks"`
}

// CameraConfig defines camera smoothing and effect decay.
type CameraConfig struct {
	Lerp           float64 `yaml:"lerp"`
	FollowAfter    int     `yaml:"follow_after"` // stack size before the camera follows
	AnchorRatio    float64 `yaml:"anchor_ratio"` // spawn is kept at this fraction of the frame height
	ShakeOnPerfect float64 `yaml:"shake_on_perfect"`
	ShakeDecay     float64 `yaml:"shake_decay"`
	ShakeCutoff    float64 `yaml:"shake_cutoff"`
	FlashOnPerfect float64 `yaml:"flash_on_perfect"`
	FlashDecay     float64 `yaml:"flash_decay"`
	FlashCutoff    float64 `yaml:"flash_cutoff"`
}

// TimingConfig defines state machine delays in ticks.
type TimingConfig struct {
	FallingDelay  float64 `yaml:"falling_delay"`
	GameOverDelay float64 `yaml:"gameover_delay"`
	FeedbackLife  float64 `yaml:"feedback_life"`
	MaxDelta      float64 `yaml:"max_delta"` // cap on the normalized frame delta
}

// ContentConfig holds the read-only theme and title tables.
type ContentConfig struct {
	Themes        []ThemeConfig        `yaml:"themes"`
	Titles        []TitleConfig        `yaml:"titles"`
	SpecialTitles []SpecialTitleConfig `yaml:"special_titles"`
}

// ThemeConfig describes one visual theme.
type ThemeConfig struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	Emoji              string   `yaml:"emoji"`
	Colors             []string `yaml:"colors"`
	Background         string   `yaml:"background"`
	BackgroundGradient []string `yaml:"background_gradient"`
	TextColor          string   `yaml:"text_color"`
	Glow               bool     `yaml:"glow"`
	Stars              bool     `yaml:"stars"`
	Pixelated          bool     `yaml:"pixelated"`
	UnlockFloor        int      `yaml:"unlock_floor"`
}

// TitleConfig is a title earned by reaching a floor.
type TitleConfig struct {
	Floor int    `yaml:"floor"`
	Name  string `yaml:"name"`
	Emoji string `yaml:"emoji"`
}

// SpecialTitleConfig is a badge earned by a counter reaching a value.
type SpecialTitleConfig struct {
	ID        string `yaml:"id"`
	Condition string `yaml:"condition"` // "perfect_streak" or "total_floors"
	Value     int    `yaml:"value"`
	Name      string `yaml:"name"`
	Emoji     string `yaml:"emoji"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Unknown values map to normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// ApplyTowerPreset modifies the speed curve based on a difficulty preset.
// Only the speed curve changes; placement thresholds are shared by every
// preset. Normal leaves the loaded configuration untouched.
func ApplyTowerPreset(cfg *TowerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = 2.0
		cfg.Speed.Increment = 0.2
		cfg.Speed.Max = 6
	case DifficultyHard:
		cfg.Speed.Base = 3.5
		cfg.Speed.Increment = 0.4
		cfg.Speed.Max = MaxSpeedCeiling
	case DifficultyFixed:
		cfg.Speed.Increment = 0
	}
}
