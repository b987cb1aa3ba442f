package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleBurstExpires(t *testing.T) {
	var ps ParticleSystem
	rng := NewRNG(3)

	ps.Burst(rng, 200, 300, ColorPerfect, 30)
	require.Equal(t, 30, ps.Len())

	ps.Update(1)
	assert.Equal(t, 30, ps.Len())

	for i := 0; i < 60; i++ {
		ps.Update(1)
	}
	assert.Equal(t, 0, ps.Len())
}

func TestParticleKindsDispatch(t *testing.T) {
	var ps ParticleSystem
	rng := NewRNG(5)

	ps.Burst(rng, 0, 0, "#fff", 1)
	ps.Sparkles(rng, 0, 0, "#fff", 1)
	ps.Ring(0, 0, 60, "#fff")
	ps.Float(rng, 0, 0, "+100", "#fff", 24)
	ps.Update(1)

	counts := map[string]int{}
	for _, p := range ps.Snapshot() {
		switch v := p.(type) {
		case Square:
			counts["square"]++
			assert.Less(t, v.Life, 50.0)
		case Sparkle:
			counts["sparkle"]++
		case Pulse:
			counts["pulse"]++
			assert.Greater(t, v.Radius(), 0.0)
			assert.Less(t, v.Radius(), 60.0)
		case Text:
			counts["text"]++
			assert.Equal(t, "+100", v.Text)
			assert.Less(t, v.Y, 0.0, "text floats upward")
		}
	}
	assert.Equal(t, map[string]int{"square": 1, "sparkle": 1, "pulse": 1, "text": 1}, counts)
}

func TestParticleSnapshotIsCopy(t *testing.T) {
	var ps ParticleSystem
	ps.Ring(10, 10, 60, "#fff")

	snap := ps.Snapshot()
	ps.Update(5)

	assert.Equal(t, 24.0, snap[0].(Pulse).Life, "snapshot must not see later updates")
}

func TestAmbientWraps(t *testing.T) {
	rng := NewRNG(1)
	a := Ambient{Motes: []Mote{{X: 50, Y: -9, VY: -0.5}}}

	a.Update(rng, 10, 400, 700)

	assert.Equal(t, 710.0, a.Motes[0].Y)
	assert.GreaterOrEqual(t, a.Motes[0].X, 0.0)
	assert.Less(t, a.Motes[0].X, 400.0)
}

func TestAmbientReset(t *testing.T) {
	var a Ambient
	a.Reset(NewRNG(9), 40, 400, 700)

	require.Len(t, a.Motes, 40)
	for _, m := range a.Motes {
		assert.LessOrEqual(t, m.VY, -0.3)
		assert.GreaterOrEqual(t, m.VY, -0.5)
	}
}
