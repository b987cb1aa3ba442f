package sim

import (
	"math"

	"github.com/vovakirdan/stack-tower/internal/config"
)

// Outcome classifies a drop.
type Outcome int

const (
	OutcomeMiss       Outcome = iota // no overlap; the whole block falls
	OutcomePerfect                   // snapped onto the block below
	OutcomeTrim                      // excess cut off
	OutcomeTrimFatal                 // trimmed below the minimum width
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "Miss"
	case OutcomePerfect:
		return "Perfect"
	case OutcomeTrim:
		return "Trim"
	case OutcomeTrimFatal:
		return "TrimFatal"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the outcome ends the run.
func (o Outcome) Terminal() bool {
	return o == OutcomeMiss || o == OutcomeTrimFatal
}

// Placement is the result of dropping the moving block onto the stack top.
// It only describes what happened; the session applies score, effects and
// feedback from it.
type Placement struct {
	Outcome Outcome
	Landed  Block         // the block that joins the stack; zero on a miss
	Piece   *FallingPiece // trimmed or missed remainder, if any
	Offset  float64       // distance between the two block centers
	Good    bool          // trim within the good threshold
	Combo   int           // combo after this placement
	Points  int           // placement points, excluding the floor bonus
	Grown   bool          // combo growth widened the block
}

// Place resolves a drop of moving onto top given the combo before the drop.
func Place(top, moving Block, combo int, cfg config.TowerConfig) Placement {
	overlapLeft := math.Max(top.X, moving.X)
	overlapRight := math.Min(top.Right(), moving.Right())
	overlapW := overlapRight - overlapLeft

	if overlapW <= 0 {
		return Placement{
			Outcome: OutcomeMiss,
			Piece:   &FallingPiece{Block: moving},
			Offset:  math.Abs(moving.Center() - top.Center()),
		}
	}

	offset := math.Abs(moving.Center() - top.Center())
	if offset <= cfg.Thresholds.Perfect {
		return placePerfect(top, moving, combo+1, offset, cfg)
	}
	return placeTrim(top, moving, overlapLeft, overlapW, offset, cfg)
}

func placePerfect(top, moving Block, combo int, offset float64, cfg config.TowerConfig) Placement {
	landed := moving
	landed.X = top.X
	landed.W = top.W

	p := Placement{
		Outcome: OutcomePerfect,
		Offset:  offset,
		Combo:   combo,
		Points:  cfg.Scoring.PerfectBonus + combo*cfg.Scoring.ComboMultiplier,
	}

	if combo >= cfg.Scoring.GrowthStartCombo {
		growth := float64(min(combo*cfg.Scoring.GrowthPerCombo, cfg.Scoring.GrowthMax))
		newW := math.Min(landed.W+growth, cfg.Blocks.MaxWidth)
		diff := newW - landed.W
		landed.X -= diff / 2
		landed.W = newW
		// Clamp position, keep the grown width.
		if landed.X < 0 {
			landed.X = 0
		}
		if landed.Right() > cfg.Frame.Width {
			landed.X = cfg.Frame.Width - landed.W
		}
		p.Grown = diff > 0
	}

	p.Landed = landed
	return p
}

func placeTrim(top, moving Block, overlapLeft, overlapW, offset float64, cfg config.TowerConfig) Placement {
	landed := moving
	var piece *FallingPiece

	switch {
	case moving.X < top.X:
		excess := moving
		excess.W = top.X - moving.X
		piece = &FallingPiece{Block: excess}
	case moving.Right() > top.Right():
		excess := moving
		excess.X = top.Right()
		excess.W = moving.Right() - top.Right()
		piece = &FallingPiece{Block: excess}
	}

	landed.X = overlapLeft
	landed.W = overlapW

	outcome := OutcomeTrim
	if landed.W < cfg.Blocks.MinWidth {
		outcome = OutcomeTrimFatal
	}

	return Placement{
		Outcome: outcome,
		Landed:  landed,
		Piece:   piece,
		Offset:  offset,
		Good:    offset <= cfg.Thresholds.Good,
		Combo:   0,
		Points:  cfg.Scoring.BasePoints,
	}
}
