package sim

import "math"

// Particle is one of a closed set of visual-only particle kinds:
// Square, Sparkle, Pulse or Text. Renderers dispatch with a type switch.
type Particle interface {
	particle()
	// Alpha returns the remaining life as a fade value in [0, 1].
	Alpha() float64
}

// Square is a confetti square thrown by a burst.
type Square struct {
	X, Y, VX, VY  float64
	Size          float64
	Life, MaxLife float64
	Color         string
}

// Sparkle is a small four-point star with drag.
type Sparkle struct {
	X, Y, VX, VY  float64
	Size          float64
	Life, MaxLife float64
	Color         string
}

// Pulse is an expanding ring.
type Pulse struct {
	X, Y          float64
	MaxRadius     float64
	Life, MaxLife float64
	Color         string
}

// Text is a floating label.
type Text struct {
	X, Y, VX, VY  float64
	Size          float64
	Life, MaxLife float64
	Text          string
	Color         string
}

func (Square) particle()  {}
func (Sparkle) particle() {}
func (Pulse) particle()   {}
func (Text) particle()    {}

func (p Square) Alpha() float64  { return lifeAlpha(p.Life, p.MaxLife) }
func (p Sparkle) Alpha() float64 { return lifeAlpha(p.Life, p.MaxLife) }
func (p Pulse) Alpha() float64   { return lifeAlpha(p.Life, p.MaxLife) }
func (p Text) Alpha() float64    { return lifeAlpha(p.Life, p.MaxLife) }

// Radius returns the ring radius, growing as the pulse fades.
func (p Pulse) Radius() float64 {
	return p.MaxRadius * (1 - p.Alpha())
}

func lifeAlpha(life, maxLife float64) float64 {
	if maxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, life/maxLife))
}

// Particle physics constants, per nominal tick.
const (
	particleGravity = 0.15
	textGravity     = 0.1
	sparkleDrag     = 0.99
)

// ParticleSystem owns the live particles.
type ParticleSystem struct {
	items []Particle
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.items = ps.items[:0]
}

// Burst emits count squares spread around a circle with an upward kick.
func (ps *ParticleSystem) Burst(rng *RNG, x, y float64, color string, count int) {
	for i := range count {
		angle := 2*math.Pi*float64(i)/float64(count) + rng.Float64()*0.5
		speed := rng.Range(2, 6)
		ps.items = append(ps.items, Square{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed - 2,
			Size:    rng.Range(4, 8),
			Life:    rng.Range(30, 50),
			MaxLife: 50,
			Color:   color,
		})
	}
}

// Sparkles emits count sparkles in random directions.
func (ps *ParticleSystem) Sparkles(rng *RNG, x, y float64, color string, count int) {
	for range count {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Range(2, 5)
		ps.items = append(ps.items, Sparkle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Size:    rng.Range(2, 5),
			Life:    36,
			MaxLife: 36,
			Color:   color,
		})
	}
}

// Ring emits an expanding pulse.
func (ps *ParticleSystem) Ring(x, y, maxRadius float64, color string) {
	ps.items = append(ps.items, Pulse{
		X:         x,
		Y:         y,
		MaxRadius: maxRadius,
		Life:      24,
		MaxLife:   24,
		Color:     color,
	})
}

// Float emits a floating label.
func (ps *ParticleSystem) Float(rng *RNG, x, y float64, text, color string, size float64) {
	ps.items = append(ps.items, Text{
		X:       x,
		Y:       y,
		VX:      rng.Jitter(2),
		VY:      -3 - rng.Float64()*2,
		Size:    size,
		Life:    72,
		MaxLife: 72,
		Text:    text,
		Color:   color,
	})
}

// Update integrates all particles by dt and drops the expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	live := ps.items[:0]
	for _, p := range ps.items {
		switch v := p.(type) {
		case Square:
			v.X += v.VX * dt
			v.Y += v.VY * dt
			v.VY += particleGravity * dt
			v.Life -= dt
			p = v
		case Sparkle:
			v.VX *= math.Pow(sparkleDrag, dt)
			v.X += v.VX * dt
			v.Y += v.VY * dt
			v.VY += particleGravity * dt
			v.Life -= dt
			p = v
		case Pulse:
			v.Life -= dt
			p = v
		case Text:
			v.X += v.VX * dt
			v.Y += v.VY * dt
			v.VY += textGravity * dt
			v.Life -= dt
			p = v
		}
		if p.Alpha() > 0 {
			live = append(live, p)
		}
	}
	clear(ps.items[len(live):])
	ps.items = live
}

// Snapshot returns a copy of the live particles.
func (ps *ParticleSystem) Snapshot() []Particle {
	out := make([]Particle, len(ps.items))
	copy(out, ps.items)
	return out
}

// Mote is an ambient background particle.
type Mote struct {
	X, Y  float64
	VY    float64
	Alpha float64
	Size  float64
}

// Ambient is the drifting background field. It animates in every state.
type Ambient struct {
	Motes []Mote
}

// Reset scatters count motes across the frame.
func (a *Ambient) Reset(rng *RNG, count int, w, h float64) {
	a.Motes = a.Motes[:0]
	for range count {
		a.Motes = append(a.Motes, Mote{
			X:     rng.Float64() * w,
			Y:     rng.Float64() * h,
			VY:    -0.3 - rng.Float64()*0.2,
			Alpha: rng.Range(0.2, 0.8),
			Size:  rng.Range(0.5, 2),
		})
	}
}

// Update drifts motes upward, wrapping them to the bottom at a random x.
func (a *Ambient) Update(rng *RNG, dt, w, h float64) {
	for i := range a.Motes {
		m := &a.Motes[i]
		m.Y += m.VY * dt
		if m.Y < -10 {
			m.Y = h + 10
			m.X = rng.Float64() * w
		}
	}
}
