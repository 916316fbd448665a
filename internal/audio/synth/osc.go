// Package synth builds the game's procedural sounds as beep streamers.
package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a raw wave; duration <= 0 streams forever.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	n := -1
	if duration > 0 {
		n = rate.N(duration)
	}
	return &oscillator{freq: freq, duration: n, wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration >= 0 && o.position >= o.duration {
			return i, i > 0
		}
		val := sample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sample evaluates one period of wave at phase in [0, 1).
func sample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	}
	return math.Sin(2 * math.Pi * phase)
}

// Gain scales s linearly. Zero or less is silent.
func Gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g), Silent: false}
}

// Chord mixes equal-weight oscillators, normalized so the peak stays within gain.
func Chord(freqs []float64, duration time.Duration, wave WaveType, gain float64, rate beep.SampleRate) beep.Streamer {
	if len(freqs) == 0 {
		return beep.Silence(rate.N(duration))
	}
	voices := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		voices[i] = NewOscillator(f, duration, wave, rate)
	}
	return Gain(beep.Mix(voices...), gain/float64(len(freqs)))
}

// Sequence plays notes back to back, each shaped by a short attack and release.
// Frequencies at or below 1 Hz are rests.
func Sequence(notes []float64, durations []time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		if i >= len(durations) {
			break
		}
		d := durations[i]
		if f <= 1 {
			parts = append(parts, beep.Silence(rate.N(d)))
			continue
		}
		osc := NewOscillator(f, d, wave, rate)
		parts = append(parts, NewEnvelope(osc, d, noteAttack(d), noteRelease(d), rate))
	}
	return beep.Seq(parts...)
}

func noteAttack(d time.Duration) time.Duration  { return min(d/8, 10*time.Millisecond) }
func noteRelease(d time.Duration) time.Duration { return min(d/3, 60*time.Millisecond) }
