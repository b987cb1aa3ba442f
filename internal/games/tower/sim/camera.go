package sim

import (
	"math"

	"github.com/vovakirdan/stack-tower/internal/config"
)

// Camera holds the vertical scroll and the presentational effects.
// None of its state feeds back into placement.
type Camera struct {
	Y       float64 // current offset added to world y when drawing
	TargetY float64
	Shake   float64 // shake amplitude
	Flash   float64 // full-frame flash alpha
}

// Follow updates the target so that a spawn at spawnY sits at the anchor
// height. The camera only follows once the stack is taller than FollowAfter.
func (c *Camera) Follow(spawnY float64, stackLen int, cfg config.TowerConfig) {
	if stackLen > cfg.Camera.FollowAfter {
		c.TargetY = -(spawnY - cfg.Frame.Height*cfg.Camera.AnchorRatio)
	}
}

// Kick starts the perfect-placement shake and flash.
func (c *Camera) Kick(cfg config.CameraConfig) {
	c.Shake = cfg.ShakeOnPerfect
	c.Flash = cfg.FlashOnPerfect
}

// Update smooths the offset toward the target and decays effects.
func (c *Camera) Update(dt float64, cfg config.CameraConfig) {
	c.Y += (c.TargetY - c.Y) * cfg.Lerp * dt
	c.Shake = decay(c.Shake, cfg.ShakeDecay, cfg.ShakeCutoff, dt)
	c.Flash = decay(c.Flash, cfg.FlashDecay, cfg.FlashCutoff, dt)
}

// ShakeOffset returns a random offset within the current amplitude.
func (c Camera) ShakeOffset(fx *RNG) (float64, float64) {
	if c.Shake <= 0 || fx == nil {
		return 0, 0
	}
	return fx.Jitter(c.Shake), fx.Jitter(c.Shake)
}

// decay applies a per-tick geometric factor scaled by dt and snaps to zero
// below cutoff.
func decay(v, factor, cutoff, dt float64) float64 {
	if v <= 0 {
		return 0
	}
	v *= math.Pow(factor, dt)
	if v < cutoff {
		return 0
	}
	return v
}

// Feedback is the single on-screen message.
type Feedback struct {
	Text    string
	Color   string
	Y       float64 // screen-space, drifts upward
	Size    float64 // nominal font size in frame units
	Life    float64
	MaxLife float64
}

// Alpha returns the fade value in [0, 1].
func (f Feedback) Alpha() float64 {
	if f.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, f.Life/f.MaxLife)
}

// Feedback messages.
const (
	TextPerfect    = "PERFECT!"
	TextGood       = "GOOD"
	TextSlowMotion = "SLOW MOTION!"
	TextHint       = "HINT ON!"
)

// Feedback colours.
const (
	ColorPerfect = "#2ecc71"
	ColorGood    = "#f39c12"
	ColorBonus   = "#ffd700"
	ColorSlow    = "#9b59b6"
	ColorHint    = "#3498db"
	ColorSpark   = "#ecf0f1"
)

func newFeedback(text, color string, cfg config.TowerConfig) *Feedback {
	size := 24.0
	if text == TextPerfect {
		size = 32
	}
	return &Feedback{
		Text:    text,
		Color:   color,
		Y:       cfg.Frame.Height * 0.35,
		Size:    size,
		Life:    cfg.Timing.FeedbackLife,
		MaxLife: cfg.Timing.FeedbackLife,
	}
}
