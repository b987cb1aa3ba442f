package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config file names looked up in the search directories.
const (
	TowerFile   = "tower.yaml"
	ContentFile = "content.yaml"
)

// LoadTower loads simulation tuning.
// Search order: customPath -> ~/.tower/configs/tower.yaml -> ./configs/tower.yaml -> embedded default
func LoadTower(customPath string) (TowerConfig, error) {
	cfg := DefaultTowerConfig()
	if err := load(customPath, TowerFile, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultTowerConfig(), err
	}
	return cfg, nil
}

// LoadContent loads the theme and title tables.
// Search order: customPath -> ~/.tower/configs/content.yaml -> ./configs/content.yaml -> embedded default
func LoadContent(customPath string) (ContentConfig, error) {
	var cfg ContentConfig
	if err := load(customPath, ContentFile, &cfg); err != nil {
		return DefaultContentConfig(), err
	}
	if len(cfg.Themes) == 0 || len(cfg.Titles) == 0 {
		return DefaultContentConfig(), nil
	}
	return cfg, nil
}

// load decodes the first readable source into out. Files found in the
// search directories that fail to parse are skipped; an explicit path that
// fails is an error. Fields absent from the YAML keep the values already in
// out.
func load(customPath, name string, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(name); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Embedded default; a broken embed leaves out at its hard-coded value
	_ = yaml.Unmarshal(GetDefaultYAML(name), out)
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tower", "configs", filename)
}

// Validate reports tuning that would break the simulation's invariants.
func (c TowerConfig) Validate() error {
	var errs []error
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		errs = append(errs, errors.New("frame size must be positive"))
	}
	if c.Blocks.Height <= 0 {
		errs = append(errs, errors.New("block height must be positive"))
	}
	if c.Blocks.MinWidth <= 0 || c.Blocks.MinWidth > c.Blocks.InitialWidth {
		errs = append(errs, errors.New("min_width must be in (0, initial_width]"))
	}
	if c.Blocks.MaxWidth < c.Blocks.InitialWidth || c.Blocks.MaxWidth > c.Frame.Width {
		errs = append(errs, errors.New("max_width must be in [initial_width, frame width]"))
	}
	if c.Speed.Max < c.Speed.Base || c.Speed.Interval <= 0 {
		errs = append(errs, errors.New("speed curve must have max >= base and a positive interval"))
	}
	if c.Speed.Max > MaxSpeedCeiling {
		errs = append(errs, fmt.Errorf("speed max %v exceeds %v", c.Speed.Max, MaxSpeedCeiling))
	}
	if c.Thresholds.Perfect > c.Thresholds.Good {
		errs = append(errs, errors.New("perfect threshold must not exceed good threshold"))
	}
	if c.Timing.MaxDelta <= 0 {
		errs = append(errs, errors.New("max_delta must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tower config: %w", errors.Join(errs...))
	}
	return nil
}
