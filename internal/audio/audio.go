// Package audio plays simulation sound events through an oto output device.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/oto/v2"

	"absorb/internal/audio/synth"
	"absorb/internal/sim"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = oto.FormatFloat32LE
)

type voice struct {
	player oto.Player
	gate   *synth.Gate
}

// System manages one oto player per sounding voice.
type System struct {
	ctx   *oto.Context
	ready chan struct{}
	rate  beep.SampleRate

	mu         sync.Mutex
	volume     float64
	muted      bool
	loops      map[sim.SoundKind]*voice
	background *voice
	live       map[oto.Player]struct{}
}

func New(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &System{
		ctx:    ctx,
		ready:  ready,
		rate:   beep.SampleRate(SampleRate),
		volume: sim.Clamp(volume, 0, 1),
		loops:  make(map[sim.SoundKind]*voice),
		live:   make(map[oto.Player]struct{}),
	}, nil
}

// Attach routes sound and state events from the simulation.
func (a *System) Attach(events *sim.EventBus) {
	events.Subscribe(sim.EventSound, func(e sim.Event) {
		if e.Start {
			a.Play(e.Sound)
		} else {
			a.Stop(e.Sound)
		}
	})
	events.Subscribe(sim.EventStateChange, func(e sim.Event) {
		switch e.State {
		case sim.StatePlaying:
			a.StartBackground()
		case sim.StateGameWon:
			a.StopBackground()
		}
	})
}

func (a *System) isReady() bool {
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// start creates and plays a player for v. Caller holds a.mu.
func (a *System) start(v synth.Voice) *voice {
	p := a.ctx.NewPlayer(synth.NewReader(v.Streamer))
	p.SetVolume(a.gain())
	p.Play()
	a.live[p] = struct{}{}
	go func() {
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		a.mu.Lock()
		delete(a.live, p)
		a.mu.Unlock()
		p.Close()
	}()
	return &voice{player: p, gate: v.Gate}
}

// Play starts kind. A loop that is already sounding is left alone.
func (a *System) Play(kind sim.SoundKind) {
	if !a.isReady() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if kind.Looping() {
		if _, ok := a.loops[kind]; ok {
			return
		}
	}
	v := a.start(synth.NewVoice(kind, a.rate))
	if kind.Looping() {
		a.loops[kind] = v
	}
}

// Stop fades out a loop. Stopping a silent or one-shot sound does nothing.
func (a *System) Stop(kind sim.SoundKind) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if v, ok := a.loops[kind]; ok {
		v.gate.Release()
		delete(a.loops, kind)
	}
}

func (a *System) StartBackground() {
	if !a.isReady() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.background == nil {
		a.background = a.start(synth.Background(a.rate))
	}
}

func (a *System) StopBackground() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.background != nil {
		a.background.gate.Release()
		a.background = nil
	}
}

func (a *System) gain() float64 {
	if a.muted {
		return 0
	}
	return a.volume
}

func (a *System) SetVolume(v float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.volume = sim.Clamp(v, 0, 1)
	a.applyVolume()
}

func (a *System) Volume() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.volume
}

func (a *System) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

// ToggleMute flips mute and reports the new state.
func (a *System) ToggleMute() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = !a.muted
	a.applyVolume()
	return a.muted
}

func (a *System) applyVolume() {
	g := a.gain()
	for p := range a.live {
		p.SetVolume(g)
	}
}

// Close fades out everything that is still sounding.
func (a *System) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for k, v := range a.loops {
		v.gate.Release()
		delete(a.loops, k)
	}
	if a.background != nil {
		a.background.gate.Release()
		a.background = nil
	}
}
