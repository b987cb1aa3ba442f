package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/stack-tower/internal/games/tower/sim"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	if got, want := drain(osc), rate.N(10*time.Millisecond); got != want {
		t.Errorf("oscillator produced %d samples, want %d", got, want)
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		osc := NewOscillator(330, 5*time.Millisecond, wave, rate)
		buf := make([][2]float64, 100)
		n, _ := osc.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("wave %d sample %d out of range: %f", wave, i, buf[i][0])
			}
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 20*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 20*time.Millisecond, 5*time.Millisecond, 5*time.Millisecond, rate)

	buf := make([][2]float64, 1)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample should be silent, got %f", buf[0][0])
	}
}

func TestToneFor(t *testing.T) {
	tests := []struct {
		name  string
		ev    sim.Event
		sound bool
	}{
		{"start", sim.Event{Kind: sim.EventStart}, true},
		{"trim", sim.Event{Kind: sim.EventTrim}, true},
		{"place is silent", sim.Event{Kind: sim.EventPlace, Outcome: sim.OutcomePerfect}, false},
		{"perfect", sim.Event{Kind: sim.EventPerfect, Combo: 2}, true},
		{"combo", sim.Event{Kind: sim.EventCombo, Combo: 3}, true},
		{"bonus", sim.Event{Kind: sim.EventFloorBonus, Points: 100}, true},
		{"game over", sim.Event{Kind: sim.EventGameOver}, true},
		{"result", sim.Event{Kind: sim.EventResultReady}, false},
		{"power-up", sim.Event{Kind: sim.EventPowerUp, Effect: sim.EffectHint}, true},
		{"revive", sim.Event{Kind: sim.EventRevive}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tone, ok := ToneFor(tt.ev)
			if ok != tt.sound {
				t.Fatalf("ToneFor() ok = %v, want %v", ok, tt.sound)
			}
			if ok && (len(tone.Notes) == 0 || tone.Duration() <= 0) {
				t.Errorf("empty tone %+v", tone)
			}
		})
	}
}

func TestPerfectPitchRisesWithCombo(t *testing.T) {
	low, _ := ToneFor(sim.Event{Kind: sim.EventPerfect, Combo: 1})
	high, _ := ToneFor(sim.Event{Kind: sim.EventPerfect, Combo: 5})
	capped, _ := ToneFor(sim.Event{Kind: sim.EventPerfect, Combo: 40})
	top, _ := ToneFor(sim.Event{Kind: sim.EventPerfect, Combo: 12})

	if high.Notes[0] <= low.Notes[0] {
		t.Errorf("combo 5 pitch %f should exceed combo 1 pitch %f", high.Notes[0], low.Notes[0])
	}
	if capped.Notes[0] != top.Notes[0] {
		t.Errorf("pitch should cap at 12 semitones: %f vs %f", capped.Notes[0], top.Notes[0])
	}
}

func TestToneStreamerLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone, _ := ToneFor(sim.Event{Kind: sim.EventGameOver})
	got := drain(tone.Streamer(rate, 1))
	want := rate.N(tone.Note) * len(tone.Notes)
	if got != want {
		t.Errorf("tone produced %d samples, want %d", got, want)
	}
}

func TestPlayBeforeInitializeIsNoop(t *testing.T) {
	sm := NewSoundManager(0.5)
	sm.Play(sim.Event{Kind: sim.EventPerfect, Combo: 1})
	sm.Cleanup()
}
