// Package tui plays the game in a terminal through tcell.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"absorb/internal/sim"
	"absorb/internal/view"
)

const (
	FrameInterval = 16 * time.Millisecond // ~60 FPS
	FollowZoom    = 2.0
	VolumeStep    = 0.1
)

// Mixer is the audio control surface the terminal exposes through keys.
type Mixer interface {
	ToggleMute() bool
	Muted() bool
	SetVolume(v float64)
	Volume() float64
}

type Game struct {
	screen tcell.Screen
	ctx    *sim.Context
	cam    *view.Camera
	banner view.Banner
	sparks *view.ParticleSystem
	hold   Hold
	mixer  Mixer

	now   float64 // ms of the last frame
	start time.Time
}

// New binds a simulation to an initialized screen. mixer may be nil.
func New(screen tcell.Screen, ctx *sim.Context, mixer Mixer, seed uint64) *Game {
	g := &Game{
		screen: screen,
		ctx:    ctx,
		cam:    view.NewCamera(int(time.Second/FrameInterval), seed),
		mixer:  mixer,
	}
	g.cam.Aspect = CellAspect
	g.cam.Watch(ctx.Events)
	g.banner.Watch(ctx.Events)
	g.sparks = view.NewParticleSystem(view.MaxParticles, seed)
	g.sparks.Watch(ctx.Events)
	// Keys held from the previous round do not carry into a new layout.
	ctx.Events.Subscribe(sim.EventLevelStart, func(sim.Event) { g.hold.Clear() })
	return g
}

func (g *Game) Camera() *view.Camera { return g.cam }

// HandleEvent applies one terminal event and reports whether the game should keep running.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if d, ok := keyDirection(ev); ok {
			g.hold.Press(d, g.now)
			return true
		}
		switch keyAction(ev) {
		case ActionQuit:
			return false
		case ActionZoom:
			if g.cam.ZoomIn > 1 {
				g.cam.ZoomIn = 1
			} else {
				g.cam.ZoomIn = FollowZoom
			}
		case ActionMute:
			if g.mixer != nil {
				g.mixer.ToggleMute()
			}
		case ActionVolumeUp:
			if g.mixer != nil {
				g.mixer.SetVolume(g.mixer.Volume() + VolumeStep)
			}
		case ActionVolumeDown:
			if g.mixer != nil {
				g.mixer.SetVolume(g.mixer.Volume() - VolumeStep)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// Step ticks the simulation at now (ms) and redraws.
func (g *Game) Step(now, dt float64) {
	g.now = now
	g.ctx.Tick(now, g.hold.Input(now))

	w, h := arenaSize(g.screen)
	p := g.ctx.Player()
	border := g.ctx.Params().BorderSize
	g.cam.Update(dt, p.X, p.Y, border, w, h)
	g.sparks.Update(dt)

	g.screen.Clear()
	drawArena(g.screen, g.cam, border)
	drawCircles(g.screen, g.cam, g.ctx.Circles)
	drawParticles(g.screen, g.cam, g.sparks)
	drawHUD(g.screen, g.ctx, &g.banner, g.status(), now)
	g.screen.Show()
}

func (g *Game) status() string {
	if g.mixer == nil {
		return ""
	}
	if g.mixer.Muted() {
		return "Muted"
	}
	return fmt.Sprintf("Vol %d%%", int(g.mixer.Volume()*100+0.5))
}

// Run drives the frame loop until the player quits. The caller owns screen Init/Fini.
func (g *Game) Run() {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	g.start = time.Now()
	g.ctx.Start()
	last := g.start
	for {
		select {
		case ev := <-events:
			if !g.HandleEvent(ev) {
				return
			}
		case t := <-ticker.C:
			dt := min(t.Sub(last).Seconds(), 0.1)
			last = t
			g.Step(float64(t.Sub(g.start).Milliseconds()), dt)
		}
	}
}
