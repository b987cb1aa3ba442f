package core

import (
	"testing"
	"time"
)

func TestRuntimeConfigResolve(t *testing.T) {
	now := time.Unix(1700000000, 42)

	cfg := RuntimeConfig{ScreenW: 80, ScreenH: 24}.Resolve(now)
	if cfg.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, expected %d", cfg.TickRate, DefaultTickRate)
	}
	if cfg.Seed != now.UnixNano() {
		t.Errorf("Seed = %d, expected clock seed", cfg.Seed)
	}

	fixed := RuntimeConfig{TickRate: 30, Seed: 7}.Resolve(now)
	if fixed.TickRate != 30 || fixed.Seed != 7 {
		t.Errorf("explicit values overwritten: %+v", fixed)
	}
}

func TestRuntimeConfigTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
	}
	for _, tc := range tests {
		if got := (RuntimeConfig{TickRate: tc.rate}).TickInterval(); got != tc.want {
			t.Errorf("TickInterval(%d) = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}

func TestGameStatePhase(t *testing.T) {
	tests := []struct {
		phase          Phase
		menu, gameOver bool
	}{
		{PhaseMenu, true, false},
		{PhaseRun, false, false},
		{PhaseGameOver, false, true},
	}
	for _, tc := range tests {
		s := GameState{Phase: tc.phase}
		if s.InMenu() != tc.menu || s.GameOver() != tc.gameOver {
			t.Errorf("phase %d: InMenu=%v GameOver=%v", tc.phase, s.InMenu(), s.GameOver())
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDrop)
	f.Elapsed = 20 * time.Millisecond

	f.Clear()
	if f.Has(ActionDrop) || f.Elapsed != 0 {
		t.Errorf("Clear left %+v", f)
	}

	var zero InputFrame
	if zero.Has(ActionDrop) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionHint)
	if !zero.Has(ActionHint) {
		t.Error("Set on a zero frame should allocate")
	}
}
