package sim

import "math"

// HintGuide marks the top block's edges while the hint is active.
type HintGuide struct {
	Left, Right float64
	Top, Bottom float64
}

// Frame is an immutable snapshot for renderers. World coordinates must be
// shifted by CameraY plus the shake offset; Feedback is in screen space.
type Frame struct {
	State  State
	FrameW float64
	FrameH float64

	Stack     []Block
	Moving    *Block
	Piece     *FallingPiece
	Particles []Particle
	Motes     []Mote

	CameraY        float64
	ShakeX, ShakeY float64
	Flash          float64
	Feedback       *Feedback

	Floor int
	Score int
	Combo int
	Speed float64

	Hint        *HintGuide
	SlowMotion  float64 // remaining ticks
	SlowSeconds int

	Finished        bool
	ReviveAvailable bool
	PendingGate     bool
}

// Snapshot composes the render frame. fx supplies the shake offset; a nil
// fx yields no shake. The session is not modified.
func (s *Session) Snapshot(fx *RNG) Frame {
	f := Frame{
		State:           s.state,
		FrameW:          s.cfg.Frame.Width,
		FrameH:          s.cfg.Frame.Height,
		Stack:           s.Stack(),
		Moving:          s.Moving(),
		Particles:       s.particles.Snapshot(),
		Motes:           append([]Mote(nil), s.ambient.Motes...),
		CameraY:         s.camera.Y,
		Flash:           s.camera.Flash,
		Floor:           s.floor,
		Score:           s.score,
		Combo:           s.combo,
		Speed:           s.speed,
		SlowMotion:      s.powerups.SlowMotion,
		SlowSeconds:     int(math.Ceil(s.powerups.SlowMotion / 60)),
		Finished:        s.finished,
		ReviveAvailable: s.available(EffectRevive),
		PendingGate:     len(s.gate.pending) > 0,
	}
	f.ShakeX, f.ShakeY = s.camera.ShakeOffset(fx)

	if s.piece != nil {
		p := *s.piece
		f.Piece = &p
	}
	if s.feedback != nil {
		fb := *s.feedback
		f.Feedback = &fb
	}
	if s.powerups.Active(EffectHint) && len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		f.Hint = &HintGuide{
			Left:   top.X,
			Right:  top.Right(),
			Top:    top.Y - 40,
			Bottom: top.Y - 5,
		}
	}
	return f
}

// ShowCombo reports whether the combo counter should be drawn.
func (f Frame) ShowCombo() bool {
	return f.Combo >= 2 && (f.State == StatePlaying || f.State == StateFalling)
}
