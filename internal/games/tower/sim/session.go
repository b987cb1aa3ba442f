package sim

import (
	"fmt"

	"github.com/vovakirdan/stack-tower/internal/config"
)

// State is the session state tag.
type State string

const (
	StateMenu     State = "menu"
	StateReady    State = "ready"
	StatePlaying  State = "playing"
	StateFalling  State = "falling"
	StateGameOver State = "gameover"
)

// Session is one player's game. It is not safe for concurrent use.
type Session struct {
	cfg config.TowerConfig
	rng *RNG

	state State
	runID int

	stack  []Block
	moving *Block
	dir    float64
	speed  float64
	piece  *FallingPiece

	floor      int
	score      int
	combo      int
	streak     int
	bestStreak int
	perfects   int
	reviveUsed bool

	powerups  PowerUps
	camera    Camera
	particles ParticleSystem
	ambient   Ambient
	feedback  *Feedback

	timer    float64 // falling or game-over delay
	terminal bool    // the last drop ends the run
	finished bool    // game-over delay elapsed

	gate gateBook
}

// NewSession creates a session in the menu state.
func NewSession(cfg config.TowerConfig, seed int64) *Session {
	s := &Session{
		cfg:   cfg,
		rng:   NewRNG(seed),
		state: StateMenu,
	}
	s.ambient.Reset(s.rng, cfg.Frame.AmbientMotes, cfg.Frame.Width, cfg.Frame.Height)
	return s
}

// Config returns the tuning the session runs with.
func (s *Session) Config() config.TowerConfig {
	return s.cfg
}

// Start begins a new run: foundation block, first moving block, state ready.
func (s *Session) Start() []Event {
	cfg := s.cfg
	s.runID++
	s.state = StateReady
	s.floor, s.score = 0, 0
	s.combo, s.streak, s.bestStreak, s.perfects = 0, 0, 0, 0
	s.reviveUsed = false
	s.powerups = PowerUps{}
	s.camera = Camera{}
	s.particles.Clear()
	s.ambient.Reset(s.rng, cfg.Frame.AmbientMotes, cfg.Frame.Width, cfg.Frame.Height)
	s.feedback = nil
	s.piece = nil
	s.timer = 0
	s.terminal = false
	s.finished = false

	s.stack = s.stack[:0]
	s.stack = append(s.stack, Block{
		X: (cfg.Frame.Width - cfg.Blocks.InitialWidth) / 2,
		Y: cfg.Frame.Height - cfg.Frame.BaseOffset,
		W: cfg.Blocks.InitialWidth,
		H: cfg.Blocks.Height,
	})
	s.spawn()

	return []Event{{Kind: EventStart}}
}

// ToMenu abandons the run and returns to the idle menu state.
func (s *Session) ToMenu() {
	s.state = StateMenu
	s.moving = nil
	s.piece = nil
	s.feedback = nil
	s.powerups = PowerUps{}
	s.particles.Clear()
}

// spawn places a new moving block fully off-frame on the side of travel.
func (s *Session) spawn() {
	cfg := s.cfg
	top := s.stack[len(s.stack)-1]
	y := top.Y - cfg.Blocks.Height - cfg.Blocks.Gap

	s.dir = SpawnDirection(len(s.stack))
	x := cfg.Frame.Width
	if s.dir > 0 {
		x = -top.W
	}
	s.moving = &Block{
		X:     x,
		Y:     y,
		W:     top.W,
		H:     cfg.Blocks.Height,
		Color: len(s.stack),
	}
	s.speed = Speed(s.floor, cfg.Speed)
	s.camera.Follow(y, len(s.stack), cfg)
}

// Tap handles the single drop input. In ready it starts play without
// dropping; in playing it drops the moving block unless the block is still
// entirely off-frame after a spawn. Other states ignore it.
func (s *Session) Tap() []Event {
	switch s.state {
	case StateReady:
		s.state = StatePlaying
		return nil
	case StatePlaying:
		return s.drop()
	default:
		return nil
	}
}

func (s *Session) drop() []Event {
	if s.moving == nil || !s.onFrame(*s.moving) {
		return nil
	}
	cfg := s.cfg
	top := s.stack[len(s.stack)-1]
	p := Place(top, *s.moving, s.combo, cfg)
	s.moving = nil

	events := []Event{{Kind: EventPlace, Outcome: p.Outcome}}
	if p.Piece != nil {
		s.piece = p.Piece
	}

	s.state = StateFalling
	s.timer = cfg.Timing.FallingDelay
	s.terminal = p.Outcome.Terminal()

	if p.Outcome == OutcomeMiss {
		s.combo, s.streak = 0, 0
		return events
	}

	landed := p.Landed
	cx, cy := landed.Center(), landed.Y+landed.H/2

	switch p.Outcome {
	case OutcomePerfect:
		s.combo = p.Combo
		s.streak++
		s.perfects++
		s.bestStreak = max(s.bestStreak, s.streak)

		s.particles.Burst(s.rng, cx, cy, ColorPerfect, 30)
		s.particles.Ring(cx, cy, 60, ColorPerfect)
		s.feedback = newFeedback(TextPerfect, ColorPerfect, cfg)
		s.camera.Kick(cfg.Camera)
		landed.Flash = 0.4
		events = append(events, Event{Kind: EventPerfect, Combo: s.combo})

		if s.combo >= cfg.Scoring.GrowthStartCombo {
			s.particles.Sparkles(s.rng, cx, cy, ColorBonus, 15)
			events = append(events, Event{Kind: EventCombo, Combo: s.combo})
		}
	default:
		s.combo, s.streak = 0, 0
		if p.Piece != nil {
			edge := p.Piece.X
			if p.Piece.X < landed.X {
				edge = landed.X
			}
			s.particles.Burst(s.rng, edge, cy, ColorSpark, 8)
		}
		if p.Good {
			s.feedback = newFeedback(TextGood, ColorGood, cfg)
		}
		events = append(events, Event{Kind: EventTrim})
	}
	s.score += p.Points

	s.floor++
	if bonus := FloorBonus(s.floor, cfg.Scoring); bonus > 0 {
		s.score += bonus
		s.feedback = newFeedback(fmt.Sprintf("+%d BONUS", bonus), ColorBonus, cfg)
		s.particles.Float(s.rng, cx, landed.Y, fmt.Sprintf("+%d", bonus), ColorBonus, 24)
		events = append(events, Event{Kind: EventFloorBonus, Points: bonus})
	}

	landed.Squash = 1
	s.stack = append(s.stack, landed)
	return events
}

// Update advances the session by dt nominal ticks.
func (s *Session) Update(dt float64) []Event {
	cfg := s.cfg
	if dt < 0 {
		dt = 0
	}
	if cfg.Timing.MaxDelta > 0 && dt > cfg.Timing.MaxDelta {
		dt = cfg.Timing.MaxDelta
	}

	s.ambient.Update(s.rng, dt, cfg.Frame.Width, cfg.Frame.Height)
	s.particles.Update(dt)
	if s.state == StateMenu {
		return nil
	}

	if s.moving != nil && s.state != StateGameOver {
		s.moveBlock(dt)
	}
	if s.piece != nil && !s.piece.update(dt, cfg.Blocks.Gravity, cfg.Frame.Height, s.camera.Y) {
		s.piece = nil
	}
	s.camera.Update(dt, cfg.Camera)
	s.powerups.Tick(dt)
	s.updateBlocks(dt)
	if s.feedback != nil {
		s.feedback.Life -= dt
		s.feedback.Y -= 0.5 * dt
		if s.feedback.Life <= 0 {
			s.feedback = nil
		}
	}

	switch s.state {
	case StateFalling:
		s.timer -= dt
		if s.timer <= 0 {
			if s.terminal {
				return s.enterGameOver()
			}
			s.state = StatePlaying
			s.spawn()
		}
	case StateGameOver:
		if !s.finished {
			s.timer -= dt
			if s.timer <= 0 {
				s.finished = true
				return []Event{{Kind: EventResultReady}}
			}
		}
	}
	return nil
}

// moveBlock advances the moving block and bounces it off the frame edges.
func (s *Session) moveBlock(dt float64) {
	mult := 1.0
	if s.powerups.Active(EffectSlowMotion) {
		mult = s.cfg.PowerUps.SlowMotionFactor
	}
	m := s.moving
	m.X += s.speed * s.dir * dt * mult

	if m.Right() > s.cfg.Frame.Width {
		m.X = s.cfg.Frame.Width - m.W
		s.dir = -1
	}
	if m.X < 0 {
		m.X = 0
		s.dir = 1
	}
}

// onFrame reports whether any part of b is inside the frame horizontally.
func (s *Session) onFrame(b Block) bool {
	return b.Right() > 0 && b.X < s.cfg.Frame.Width
}

func (s *Session) updateBlocks(dt float64) {
	// Only the newest landings still animate.
	from := max(0, len(s.stack)-3)
	for i := from; i < len(s.stack); i++ {
		b := &s.stack[i]
		b.Squash = decay(b.Squash, 0.85, 0.01, dt)
		b.Flash = decay(b.Flash, 0.85, 0.01, dt)
	}
}

func (s *Session) enterGameOver() []Event {
	s.state = StateGameOver
	s.timer = s.cfg.Timing.GameOverDelay
	s.finished = false
	s.terminal = false
	s.moving = nil
	return []Event{{Kind: EventGameOver, Summary: s.Summary()}}
}

// Request opens a gate ticket for an effect. The effect does nothing until
// the ticket is resolved as Approved.
func (s *Session) Request(e Effect) (Ticket, error) {
	if s.gate.isPending(e) {
		return 0, fmt.Errorf("request %s: %w", e, ErrGatePending)
	}
	if !s.available(e) {
		return 0, fmt.Errorf("request %s in state %s: %w", e, s.state, ErrNotAvailable)
	}
	return s.gate.open(e, s.runID)
}

// Resolve delivers the gate's decision for a ticket. Approval applies the
// effect if it is still applicable; otherwise the effect stays inert.
func (s *Session) Resolve(t Ticket, d Decision) ([]Event, error) {
	req, err := s.gate.close(t)
	if err != nil {
		return nil, fmt.Errorf("resolve ticket %d: %w", t, err)
	}
	if d != Approved || req.runID != s.runID || !s.available(req.effect) {
		return nil, nil
	}

	switch req.effect {
	case EffectSlowMotion:
		s.powerups.Activate(EffectSlowMotion, s.cfg.PowerUps.SlowMotionTicks)
		s.feedback = newFeedback(TextSlowMotion, ColorSlow, s.cfg)
	case EffectHint:
		s.powerups.Activate(EffectHint, s.cfg.PowerUps.HintTicks)
		s.feedback = newFeedback(TextHint, ColorHint, s.cfg)
	case EffectRevive:
		s.revive()
		return []Event{{Kind: EventRevive, Effect: EffectRevive}}, nil
	}
	return []Event{{Kind: EventPowerUp, Effect: req.effect}}, nil
}

// Pending reports whether a ticket for the effect awaits resolution.
func (s *Session) Pending(e Effect) bool {
	return s.gate.isPending(e)
}

// available reports whether an effect may be requested or applied now.
func (s *Session) available(e Effect) bool {
	switch e {
	case EffectSlowMotion, EffectHint:
		inRun := s.state == StateReady || s.state == StatePlaying || s.state == StateFalling
		return inRun && !s.powerups.Active(e)
	case EffectRevive:
		return s.state == StateGameOver && !s.reviveUsed && len(s.stack) > 0
	default:
		return false
	}
}

// revive widens the top block to the revive width, keeps it inside the
// frame and resumes play with floor and score intact.
func (s *Session) revive() {
	cfg := s.cfg
	s.reviveUsed = true

	top := &s.stack[len(s.stack)-1]
	if top.W < cfg.Blocks.ReviveWidth {
		top.W = cfg.Blocks.ReviveWidth
	}
	if top.Right() > cfg.Frame.Width {
		top.X = cfg.Frame.Width - top.W
	}
	if top.X < 0 {
		top.X = 0
	}

	s.state = StatePlaying
	s.timer = 0
	s.finished = false
	s.spawn()
}

// State returns the current state tag.
func (s *Session) State() State { return s.state }

// Floor returns the number of landed floors this run.
func (s *Session) Floor() int { return s.floor }

// Score returns the score this run.
func (s *Session) Score() int { return s.score }

// Combo returns the current perfect combo.
func (s *Session) Combo() int { return s.combo }

// CurrentSpeed returns the nominal speed of the moving block.
func (s *Session) CurrentSpeed() float64 { return s.speed }

// Finished reports whether the game-over delay has elapsed.
func (s *Session) Finished() bool { return s.finished }

// ReviveAvailable reports whether a revive may still be requested.
func (s *Session) ReviveAvailable() bool { return s.available(EffectRevive) }

// PowerUps returns the power-up timers.
func (s *Session) PowerUps() PowerUps { return s.powerups }

// Stack returns a copy of the landed blocks.
func (s *Session) Stack() []Block {
	out := make([]Block, len(s.stack))
	copy(out, s.stack)
	return out
}

// Moving returns a copy of the moving block, or nil.
func (s *Session) Moving() *Block {
	if s.moving == nil {
		return nil
	}
	m := *s.moving
	return &m
}

// Summary returns the run tally so far.
func (s *Session) Summary() RunSummary {
	return RunSummary{
		RunID:      s.runID,
		Floor:      s.floor,
		Score:      s.score,
		Perfects:   s.perfects,
		BestStreak: s.bestStreak,
		ReviveUsed: s.reviveUsed,
	}
}
