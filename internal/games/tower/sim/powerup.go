package sim

// Effect is a privileged action that must pass the gate.
type Effect int

const (
	EffectSlowMotion Effect = iota
	EffectHint
	EffectRevive
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectSlowMotion:
		return "slow-motion"
	case EffectHint:
		return "hint"
	case EffectRevive:
		return "revive"
	default:
		return "unknown"
	}
}

// PowerUps holds the remaining ticks of the timed power-ups.
// A power-up is active while its remaining time is positive.
type PowerUps struct {
	SlowMotion float64
	Hint       float64
}

// Active reports whether a timed effect is running.
func (p PowerUps) Active(e Effect) bool {
	switch e {
	case EffectSlowMotion:
		return p.SlowMotion > 0
	case EffectHint:
		return p.Hint > 0
	default:
		return false
	}
}

// Activate starts a timed effect. Activating a running effect is a no-op
// and returns false.
func (p *PowerUps) Activate(e Effect, duration float64) bool {
	if p.Active(e) || duration <= 0 {
		return false
	}
	switch e {
	case EffectSlowMotion:
		p.SlowMotion = duration
	case EffectHint:
		p.Hint = duration
	default:
		return false
	}
	return true
}

// Tick counts timers down by the frame delta. Slow motion does not slow
// its own countdown.
func (p *PowerUps) Tick(dt float64) {
	if p.SlowMotion > 0 {
		p.SlowMotion -= dt
		if p.SlowMotion <= 0 {
			p.SlowMotion = 0
		}
	}
	if p.Hint > 0 {
		p.Hint -= dt
		if p.Hint <= 0 {
			p.Hint = 0
		}
	}
}
