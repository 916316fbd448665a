package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"absorb/internal/sim"
	"absorb/internal/view"
)

func newTestGame(t *testing.T, mixer Mixer) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(200, 100)

	ctx, err := sim.NewContext(sim.Options{Tuning: sim.DefaultTuning(), Seed: 3})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return New(screen, ctx, mixer, 3), screen
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(s, y))
		b.WriteByte('\n')
	}
	return b.String()
}

type fakeMixer struct {
	muted  bool
	volume float64
}

func (m *fakeMixer) ToggleMute() bool    { m.muted = !m.muted; return m.muted }
func (m *fakeMixer) Muted() bool         { return m.muted }
func (m *fakeMixer) SetVolume(v float64) { m.volume = sim.Clamp(v, 0, 1) }
func (m *fakeMixer) Volume() float64     { return m.volume }

func TestHoldExpires(t *testing.T) {
	var h Hold
	h.Press(DirLeft, 1000)
	if !h.Input(1000 + HoldMs - 1).Left {
		t.Error("left should still be held just before the hold window ends")
	}
	if h.Input(1000 + HoldMs).Left {
		t.Error("left should be released once the hold window ends")
	}
}

func TestHoldOppositeCancels(t *testing.T) {
	var h Hold
	h.Press(DirUp, 0)
	h.Press(DirLeft, 10)
	h.Press(DirDown, 20)
	in := h.Input(30)
	if in.Up || !in.Down || !in.Left {
		t.Errorf("input = %+v, want down+left", in)
	}
	h.Clear()
	if h.Input(30).Any() {
		t.Error("Clear should release everything")
	}
}

func TestLevelStartReleasesHeldKeys(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if !g.hold.Input(g.now).Left {
		t.Fatal("left should be held")
	}
	g.ctx.Start()
	if g.hold.Input(g.now).Any() {
		t.Error("a new level should start with no keys held")
	}
}

func TestKeyMapping(t *testing.T) {
	dirs := []struct {
		ev   *tcell.EventKey
		want Direction
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), DirLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), DirRight},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), DirUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), DirDown},
	}
	for _, tc := range dirs {
		got, ok := keyDirection(tc.ev)
		if !ok || got != tc.want {
			t.Errorf("keyDirection(%v) = %v,%v, want %v", tc.ev.Name(), got, ok, tc.want)
		}
	}
	if _, ok := keyDirection(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)); ok {
		t.Error("m should not be a direction")
	}

	actions := map[*tcell.EventKey]Action{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone): ActionQuit,
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone): ActionQuit,
		tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone): ActionMute,
		tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone): ActionVolumeUp,
		tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone): ActionVolumeDown,
		tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone): ActionZoom,
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone): ActionNone,
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone):  ActionNone,
	}
	for ev, want := range actions {
		if got := keyAction(ev); got != want {
			t.Errorf("keyAction(%v) = %v, want %v", ev.Name(), got, want)
		}
	}
}

func TestHandleEvent(t *testing.T) {
	mixer := &fakeMixer{volume: 0.5}
	g, _ := newTestGame(t, mixer)

	if !g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)) || !mixer.muted {
		t.Error("m should mute and keep running")
	}
	g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	if mixer.volume < 0.59 || mixer.volume > 0.61 {
		t.Errorf("volume = %v, want 0.6", mixer.volume)
	}
	g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	if g.Camera().ZoomIn != FollowZoom {
		t.Errorf("ZoomIn = %v, want %v", g.Camera().ZoomIn, FollowZoom)
	}
	if g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should stop the game")
	}
}

func TestHandleEventWithoutMixer(t *testing.T) {
	g, _ := newTestGame(t, nil)
	if !g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)) {
		t.Error("mute without audio should be ignored")
	}
	if g.status() != "" {
		t.Errorf("status = %q, want empty without audio", g.status())
	}
}

func TestStepDrawsArenaAndPlayer(t *testing.T) {
	g, screen := newTestGame(t, nil)
	g.Step(0, 1.0/60)

	if row := rowText(screen, 0); !strings.Contains(row, "Level 1/") || !strings.Contains(row, "Size ") {
		t.Errorf("HUD row = %q", strings.TrimSpace(row))
	}

	w, h := arenaSize(screen)
	p := g.ctx.Player()
	sx, sy := g.cam.WorldToScreen(p.X, p.Y, w, h)
	_, _, st, _ := screen.GetContent(int(sx), int(sy)+hudRows)
	_, bg, _ := st.Decompose()
	want := tcell.NewRGBColor(int32(sim.Palette.Player.R), int32(sim.Palette.Player.G), int32(sim.Palette.Player.B))
	if bg != want {
		t.Errorf("player cell background = %v, want %v", bg, want)
	}

	_, _, st, _ = screen.GetContent(0, hudRows)
	if st != styleOutside {
		t.Error("top-left corner should be outside the arena")
	}
}

func TestStepShowsBannerAndPrompt(t *testing.T) {
	g, screen := newTestGame(t, nil)
	g.ctx.Start()
	g.Step(0, 1.0/60)
	g.Step(sim.LevelBannerDelay+1, 1.0/60)

	text := screenText(screen)
	if !strings.Contains(text, "Level 1 ") {
		t.Error("level banner not drawn")
	}
	if !strings.Contains(text, "Press any direction to start") {
		t.Error("idle prompt not drawn")
	}
}

func TestKeyPressStartsAndMovesPlayer(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.ctx.Start()
	g.Step(0, 1.0/60)
	g.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	for i := 1; i <= 5; i++ {
		g.Step(float64(i)*16, 1.0/60)
	}
	if g.ctx.Session.State == sim.StateIdle {
		t.Fatal("a direction key should start the game")
	}
	if p := g.ctx.Player(); p.VX <= 0 {
		t.Errorf("player VX = %v, want > 0 after holding right", p.VX)
	}
}

func TestDrawParticlesKeepsBackground(t *testing.T) {
	g, screen := newTestGame(t, nil)
	g.Step(0, 1.0/60)

	w, h := arenaSize(screen)
	x, y := g.cam.WorldToScreen(0.9, -0.9, w, h)
	_, _, before, _ := screen.GetContent(int(x), int(y)+hudRows)
	_, bgBefore, _ := before.Decompose()

	g.sparks.Add(view.Particle{X: 0.9, Y: -0.9, Size: 0.01, MaxLife: 1, Col: sim.Palette.Food})
	drawParticles(screen, g.cam, g.sparks)

	r, _, after, _ := screen.GetContent(int(x), int(y)+hudRows)
	_, bgAfter, _ := after.Decompose()
	if r != '*' {
		t.Errorf("particle cell rune = %q, want '*'", r)
	}
	if bgAfter != bgBefore {
		t.Errorf("particle replaced background %v with %v", bgBefore, bgAfter)
	}
}

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := NewLogger("")
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()
	if logger.Writer() != io.Discard {
		t.Error("without a log file the terminal must not be written to")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absorb.log")
	logger, closeLog, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Printf("level %d: boosted", 2)
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "level 2: boosted") {
		t.Errorf("log = %q", data)
	}
}
