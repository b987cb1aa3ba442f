package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/stack-tower/internal/games/tower/sim"
)

// Tone is a short sequence of notes.
type Tone struct {
	Notes  []float64 // Hz, played in order
	Note   time.Duration
	Wave   WaveType
	Volume float64
}

// Note frequencies
const (
	noteA2 = 110.0
	noteE3 = 164.81
	noteA3 = 220.0
	noteE4 = 329.63
	noteG4 = 392.0
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.0
	noteB5 = 987.77
	noteE6 = 1318.51
)

// ToneFor maps a simulation event to its sound. Events without a sound
// return false.
func ToneFor(ev sim.Event) (Tone, bool) {
	switch ev.Kind {
	case sim.EventStart:
		return Tone{Notes: []float64{noteA3}, Note: 60 * time.Millisecond, Wave: WaveTriangle, Volume: 0.3}, true
	case sim.EventTrim:
		return Tone{Notes: []float64{noteE4}, Note: 70 * time.Millisecond, Wave: WaveSquare, Volume: 0.2}, true
	case sim.EventPerfect:
		// Pitch climbs with the combo, one semitone per step.
		step := min(ev.Combo, 12)
		freq := noteE5 * semitones(step)
		return Tone{Notes: []float64{freq}, Note: 90 * time.Millisecond, Wave: WaveSine, Volume: 0.5}, true
	case sim.EventCombo:
		return Tone{Notes: []float64{noteE5, noteA5, noteE6}, Note: 60 * time.Millisecond, Wave: WaveSine, Volume: 0.4}, true
	case sim.EventFloorBonus:
		return Tone{Notes: []float64{noteB5, noteE6}, Note: 80 * time.Millisecond, Wave: WaveSquare, Volume: 0.25}, true
	case sim.EventGameOver:
		return Tone{Notes: []float64{noteA3, noteE3, noteA2}, Note: 140 * time.Millisecond, Wave: WaveSaw, Volume: 0.3}, true
	case sim.EventPowerUp:
		return Tone{Notes: []float64{noteC5, noteG5}, Note: 80 * time.Millisecond, Wave: WaveTriangle, Volume: 0.4}, true
	case sim.EventRevive:
		return Tone{Notes: []float64{noteG4, noteC5, noteE5, noteG5}, Note: 70 * time.Millisecond, Wave: WaveTriangle, Volume: 0.4}, true
	}
	return Tone{}, false
}

// semitones returns the frequency ratio for n semitones up.
func semitones(n int) float64 {
	r := 1.0
	for range n {
		r *= 1.0594630943592953
	}
	return r
}

// Streamer renders the tone at the given rate and master volume.
func (t Tone) Streamer(rate beep.SampleRate, master float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(t.Notes))
	for _, f := range t.Notes {
		osc := NewOscillator(f, t.Note, t.Wave, rate)
		notes = append(notes, NewEnvelope(osc, t.Note, 5*time.Millisecond, t.Note/2, rate))
	}
	return newVolume(beep.Seq(notes...), t.Volume*master)
}

// Duration returns the total playing time.
func (t Tone) Duration() time.Duration {
	return t.Note * time.Duration(len(t.Notes))
}
