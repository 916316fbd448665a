package synth

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

// envelope applies attack/release shaping to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	samples = samples[:min(len(samples), e.totalSamples-e.position)]
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.attackSamples + e.sustainSamples; e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Gate holds a looping sound at full level after its attack until Release is
// called, then fades out and ends. Release is safe to call from any goroutine.
type Gate struct {
	streamer beep.Streamer
	attack   int
	release  int

	position  int
	level     float64
	fadeFrom  float64
	fadePos   int
	releasing bool
	released  atomic.Bool
}

func NewGate(s beep.Streamer, attack, release time.Duration, rate beep.SampleRate) *Gate {
	return &Gate{streamer: s, attack: rate.N(attack), release: max(rate.N(release), 1)}
}

// Release starts the fade-out.
func (g *Gate) Release() { g.released.Store(true) }

func (g *Gate) Stream(samples [][2]float64) (n int, ok bool) {
	if g.releasing && g.fadePos >= g.release {
		return 0, false
	}
	if !g.releasing && g.released.Load() {
		g.releasing = true
		g.fadeFrom = g.level
	}
	if g.releasing {
		samples = samples[:min(len(samples), g.release-g.fadePos)]
	}
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		switch {
		case g.releasing:
			g.level = g.fadeFrom * (1 - float64(g.fadePos)/float64(g.release))
			g.fadePos++
		case g.position < g.attack:
			g.level = float64(g.position) / float64(g.attack)
		default:
			g.level = 1
		}
		g.position++
		samples[i][0] *= g.level
		samples[i][1] *= g.level
	}
	return n, ok
}

func (g *Gate) Err() error { return g.streamer.Err() }

// repeat restarts a freshly built streamer each time the previous one drains.
type repeat struct {
	build   func() beep.Streamer
	current beep.Streamer
}

// Repeat loops the output of build forever.
func Repeat(build func() beep.Streamer) beep.Streamer {
	return &repeat{build: build, current: build()}
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	drained := false
	for n < len(samples) {
		m, ok := r.current.Stream(samples[n:])
		n += m
		switch {
		case ok && m == 0:
			return n, n > 0
		case ok:
			drained = false
		case m == 0 && drained:
			// The builder yields empty streamers; stop instead of spinning.
			return n, n > 0
		default:
			drained = m == 0
			r.current = r.build()
		}
	}
	return n, true
}

func (r *repeat) Err() error { return r.current.Err() }
