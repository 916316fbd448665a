package view

import (
	"math"
	"testing"

	"absorb/internal/sim"
)

func TestFitZoomShowsArena(t *testing.T) {
	c := NewCamera(60, 1)
	c.Snap(0, 0, 1, 800, 600)
	// The arena corners must land inside the viewport.
	for _, p := range [][2]float64{{-1, -1}, {1, 1}, {-1, 1}, {1, -1}} {
		sx, sy := c.WorldToScreen(p[0], p[1], 800, 600)
		if sx < 0 || sx > 800 || sy < 0 || sy > 600 {
			t.Errorf("corner %v mapped outside viewport: (%v,%v)", p, sx, sy)
		}
	}
	if want := 600 / (2 * DefaultMargin); math.Abs(c.Zoom-want) > 1e-9 {
		t.Errorf("zoom = %v, want %v", c.Zoom, want)
	}
}

func TestYAxisPointsUp(t *testing.T) {
	c := NewCamera(60, 1)
	c.Snap(0, 0, 1, 100, 100)
	_, top := c.WorldToScreen(0, 0.5, 100, 100)
	_, bottom := c.WorldToScreen(0, -0.5, 100, 100)
	if top >= bottom {
		t.Errorf("world +y should be higher on screen: %v vs %v", top, bottom)
	}
}

func TestScreenRoundTrip(t *testing.T) {
	c := NewCamera(60, 1)
	c.Aspect = 2
	c.ZoomIn = 2
	c.Snap(0.3, -0.2, 1.2, 120, 40)
	sx, sy := c.WorldToScreen(0.37, -0.55, 120, 40)
	x, y := c.ScreenToWorld(sx, sy, 120, 40)
	if math.Abs(x-0.37) > 1e-9 || math.Abs(y+0.55) > 1e-9 {
		t.Errorf("round trip = (%v,%v)", x, y)
	}
}

func TestSpringConverges(t *testing.T) {
	c := NewCamera(60, 1)
	c.Snap(0, 0, 1, 800, 800)
	z0 := c.Zoom
	for i := 0; i < 600; i++ {
		c.Update(1.0/60, 0, 0, 1.5, 800, 800)
	}
	want := c.FitZoom(1.5, 800, 800)
	if math.Abs(c.Zoom-want) > 1e-3 {
		t.Errorf("zoom = %v, want %v", c.Zoom, want)
	}
	if want >= z0 {
		t.Error("a bigger arena should zoom out")
	}
}

func TestFollowClampedToArena(t *testing.T) {
	c := NewCamera(60, 1)
	c.ZoomIn = 3
	c.Snap(0.99, 0.99, 1, 300, 300)
	half := 300 / (2 * c.Zoom)
	if c.X+half > DefaultMargin+1e-9 || c.Y+half > DefaultMargin+1e-9 {
		t.Errorf("view (%v,%v) half %v leaves the arena", c.X, c.Y, half)
	}
	if c.X <= 0 || c.Y <= 0 {
		t.Error("zoomed camera should follow the target")
	}
}

func TestShakeOnPlayerAbsorbed(t *testing.T) {
	c := NewCamera(60, 1)
	bus := sim.NewEventBus()
	c.Watch(bus)
	bus.Emit(sim.Event{Type: sim.EventAbsorption, Absorption: sim.Absorption{Absorber: 3, Absorbee: 5}})
	if c.ShakeTimer != 0 {
		t.Fatal("npc absorption should not shake")
	}
	bus.Emit(sim.Event{Type: sim.EventAbsorption, Absorption: sim.Absorption{Absorber: 3, Absorbee: sim.PlayerIndex}})
	if c.ShakeTimer != ShakeDuration {
		t.Fatalf("shake timer = %v", c.ShakeTimer)
	}
	for i := 0; i < 60; i++ {
		c.Update(1.0/60, 0, 0, 1, 100, 100)
		if math.Abs(c.ShakeX) > ShakeOnAbsorbed || math.Abs(c.ShakeY) > ShakeOnAbsorbed {
			t.Fatalf("shake offset exceeds intensity: (%v,%v)", c.ShakeX, c.ShakeY)
		}
	}
	if c.ShakeX != 0 || c.ShakeY != 0 {
		t.Error("shake should settle to zero")
	}
}

func TestLevelStartResnaps(t *testing.T) {
	c := NewCamera(60, 1)
	c.ZoomIn = 3
	bus := sim.NewEventBus()
	c.Watch(bus)
	c.Snap(0.9, 0.9, 1, 300, 300)
	bus.Emit(sim.Event{Type: sim.EventLevelStart})
	c.Update(1.0/60, -0.9, -0.9, 1, 300, 300)
	want := NewCamera(60, 1)
	want.ZoomIn = 3
	want.Snap(-0.9, -0.9, 1, 300, 300)
	if math.Abs(c.X-want.X) > 1e-9 || math.Abs(c.Y-want.Y) > 1e-9 {
		t.Errorf("camera at (%v,%v), want snapped to (%v,%v)", c.X, c.Y, want.X, want.Y)
	}
}
