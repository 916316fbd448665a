package synth

import (
	"time"

	"github.com/gopxl/beep"

	"absorb/internal/sim"
)

// Note frequencies in Hz.
const (
	A2   = 110.0
	C3   = 130.81
	A3   = 220.0
	Bf3  = 233.08
	C4   = 261.63
	D4   = 293.66
	E4   = 329.63
	F4   = 349.23
	G4   = 392.0
	A4   = 440.0
	C5   = 523.25
	Rest = 0.0
)

var (
	chordAm    = []float64{A3, C4, G4}
	chordC     = []float64{C4, G4, E4, G4}
	chordCmaj7 = []float64{C4, G4, E4}
	chordCHigh = []float64{E4, G4, C5}
)

// Loop shaping. Attacks approximate a 10ms exponential approach.
const (
	loopAttack       = 30 * time.Millisecond
	moveRelease      = 750 * time.Millisecond
	shortRelease     = 100 * time.Millisecond
	absorbedDuration = 2200 * time.Millisecond
	absorbedRelease  = 2 * time.Second
)

// Voice is a ready-to-play sound. Gate is non-nil for loops and must be released
// to end the sound.
type Voice struct {
	Streamer beep.Streamer
	Gate     *Gate
}

func gated(s beep.Streamer, release time.Duration, rate beep.SampleRate) Voice {
	g := NewGate(s, loopAttack, release, rate)
	return Voice{Streamer: g, Gate: g}
}

// NewVoice builds the sound for kind.
func NewVoice(kind sim.SoundKind, rate beep.SampleRate) Voice {
	switch kind {
	case sim.SoundMove:
		return gated(Chord(chordAm, 0, WaveSine, 1, rate), moveRelease, rate)
	case sim.SoundIntersect:
		return gated(Chord(chordC, 0, WaveSine, 0.25, rate), shortRelease, rate)
	case sim.SoundAbsorb:
		return gated(Chord(chordCHigh, 0, WaveTriangle, 0.3, rate), shortRelease, rate)
	case sim.SoundAbsorbed:
		s := Chord(chordCmaj7, absorbedDuration, WaveSine, 0.25, rate)
		return Voice{Streamer: NewEnvelope(s, absorbedDuration, loopAttack, absorbedRelease, rate)}
	case sim.SoundLevelWon:
		return Voice{Streamer: Gain(Sequence(
			[]float64{300, 350, 400, 450, 500},
			[]time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond, 300 * time.Millisecond},
			WaveSine, rate), 0.5)}
	case sim.SoundGameWon:
		return Voice{Streamer: Gain(Sequence(anthemNotes, anthemDurations(), WaveSine, rate), 0.5)}
	}
	return Voice{Streamer: beep.Silence(0)}
}

// Background is the looping two-note drone played during a session.
func Background(rate beep.SampleRate) Voice {
	notes := []float64{A2, C3, A2, C3, A2, C3}
	durs := seconds(10.5, 10.25, 0.5, 0.25, 0.5, 0.25)
	drone := Repeat(func() beep.Streamer { return Sequence(notes, durs, WaveSine, rate) })
	return gated(Gain(drone, 0.15), time.Second, rate)
}

var anthemNotes = []float64{
	C4, Bf3, A3, C4, F4, G4, A4, F4, Rest,
	D4, E4, F4, E4, F4, D4, C4, A3, Rest,
	C4, Bf3, A3, C4, F4, G4, A4, F4, Rest,
	F4, G4, G4, F4, E4, F4,
}

func anthemDurations() []time.Duration {
	return seconds(
		.4, .1, .1, .1, .1, .1, .4, .2, .03,
		.2, .1, .1, .1, .1, .1, .4, .2, .03,
		.1, .1, .1, .1, .1, .1, .1, .1, .1,
		.2, .2, .2, .2, .2, .2,
	)
}

func seconds(v ...float64) []time.Duration {
	out := make([]time.Duration, len(v))
	for i, s := range v {
		out[i] = time.Duration(s * float64(time.Second))
	}
	return out
}
