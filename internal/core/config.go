package core

import "time"

// DefaultTickRate is the nominal step rate. Simulation deltas are measured
// against 60 steps per second whatever rate a frontend actually drives.
const DefaultTickRate = 60

// RuntimeConfig is what a frontend knows when it starts a game.
type RuntimeConfig struct {
	ScreenW  int   // cells for terminals, pixels for the window
	ScreenH  int   // cells for terminals, pixels for the window
	TickRate int   // Step calls per second; 0 means DefaultTickRate
	Seed     int64 // RNG seed for the run; 0 means seed from the clock
}

// Resolve fills the zero-valued fields: the default tick rate, and a seed
// taken from now.
func (c RuntimeConfig) Resolve(now time.Time) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}

// TickInterval is the wall-clock time between Step calls.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// Phase is the coarse screen a game is showing.
type Phase uint8

const (
	PhaseMenu     Phase = iota // title screen
	PhaseRun                   // ready, playing or falling
	PhaseGameOver              // game over, result pending or shown
)

// GameState is the coarse status the platform needs after each tick.
type GameState struct {
	Phase  Phase
	Score  int
	Floor  int
	Paused bool
}

// InMenu reports whether the title screen is showing.
func (s GameState) InMenu() bool { return s.Phase == PhaseMenu }

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool { return s.Phase == PhaseGameOver }

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
