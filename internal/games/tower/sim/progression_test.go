package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/stack-tower/internal/config"
)

func TestSpeedCurve(t *testing.T) {
	cfg := config.DefaultTowerConfig().Speed

	assert.InDelta(t, 2.5, Speed(0, cfg), 1e-9)
	assert.InDelta(t, 2.5, Speed(4, cfg), 1e-9)
	assert.InDelta(t, 2.8, Speed(5, cfg), 1e-9)
	assert.InDelta(t, 3.1, Speed(10, cfg), 1e-9)
	assert.Equal(t, 8.0, Speed(1000, cfg))

	prev := 0.0
	for floor := 0; floor < 200; floor++ {
		s := Speed(floor, cfg)
		assert.GreaterOrEqual(t, s, prev, "speed decreased at floor %d", floor)
		assert.LessOrEqual(t, s, 8.0)
		prev = s
	}
}

func TestSpeedNeverExceedsCeiling(t *testing.T) {
	cfg := config.SpeedConfig{Base: 3, Increment: 1, Interval: 1, Max: 20}

	assert.Equal(t, config.MaxSpeedCeiling, Speed(100, cfg))
	for floor := 0; floor < 50; floor++ {
		assert.LessOrEqual(t, Speed(floor, cfg), config.MaxSpeedCeiling)
	}
}

func TestSpawnDirection(t *testing.T) {
	for n := 0; n < 10; n++ {
		want := -1.0
		if n%2 == 0 {
			want = 1
		}
		assert.Equal(t, want, SpawnDirection(n), "stack length %d", n)
	}
}

func TestFloorBonus(t *testing.T) {
	cfg := config.DefaultTowerConfig().Scoring

	assert.Equal(t, 0, FloorBonus(0, cfg))
	assert.Equal(t, 0, FloorBonus(9, cfg))
	assert.Equal(t, 100, FloorBonus(10, cfg))
	assert.Equal(t, 100, FloorBonus(20, cfg))
	assert.Equal(t, 0, FloorBonus(21, cfg))
}

func TestPowerUpsActivateIsReentrantSafe(t *testing.T) {
	var p PowerUps

	assert.True(t, p.Activate(EffectSlowMotion, 300))
	p.Tick(100)
	assert.False(t, p.Activate(EffectSlowMotion, 300), "activating while active is a no-op")
	assert.InDelta(t, 200, p.SlowMotion, 1e-9)

	p.Tick(250)
	assert.False(t, p.Active(EffectSlowMotion))
	assert.Equal(t, 0.0, p.SlowMotion)
	assert.False(t, p.Activate(EffectRevive, 10), "revive is not a timed effect")
}

func TestNormalizeDelta(t *testing.T) {
	assert.Equal(t, 1.0, NormalizeDelta(0, 2))
	assert.Equal(t, 1.0, NormalizeDelta(NominalFrame, 2))
	assert.Equal(t, 0.5, NormalizeDelta(NominalFrame/2, 2))
	assert.Equal(t, 2.0, NormalizeDelta(100*time.Millisecond, 2))
}

func TestCameraFollowAndDecay(t *testing.T) {
	cfg := config.DefaultTowerConfig()
	var c Camera

	c.Follow(100, 6, cfg)
	assert.Equal(t, 0.0, c.TargetY, "camera waits until the stack exceeds 6 blocks")

	c.Follow(100, 7, cfg)
	assert.InDelta(t, 180, c.TargetY, 1e-9)

	c.Update(1, cfg.Camera)
	assert.InDelta(t, 180*0.08, c.Y, 1e-9)

	c.Kick(cfg.Camera)
	c.Update(1, cfg.Camera)
	assert.InDelta(t, 8*0.88, c.Shake, 1e-9)
	assert.InDelta(t, 0.25*0.92, c.Flash, 1e-9)

	for i := 0; i < 100; i++ {
		c.Update(1, cfg.Camera)
	}
	assert.Equal(t, 0.0, c.Shake)
	assert.Equal(t, 0.0, c.Flash)
}

func TestShakeOffsetBounded(t *testing.T) {
	c := Camera{Shake: 8}
	fx := NewRNG(7)

	for i := 0; i < 100; i++ {
		x, y := c.ShakeOffset(fx)
		assert.LessOrEqual(t, x, 4.0)
		assert.GreaterOrEqual(t, x, -4.0)
		assert.LessOrEqual(t, y, 4.0)
		assert.GreaterOrEqual(t, y, -4.0)
	}

	x, y := c.ShakeOffset(nil)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestRNGDeterministicAndBounded(t *testing.T) {
	a, b := NewRNG(99), NewRNG(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}

	zero := NewRNG(0)
	first := zero.Float64()
	assert.NotEqual(t, first, zero.Float64(), "zero seed must not stick")

	r := NewRNG(5)
	for i := 0; i < 1000; i++ {
		v := r.Range(2, 6)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 6.0)
		j := r.Jitter(8)
		assert.GreaterOrEqual(t, j, -4.0)
		assert.Less(t, j, 4.0)
	}
}
