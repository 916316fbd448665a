package sim

import (
	"math"
	"testing"
)

func TestVelSizeFactor(t *testing.T) {
	tu := DefaultTuning()
	if f := VelSizeFactor(tu, 0.05, 0.05); f != 1 {
		t.Errorf("factor at start radius = %v, want 1", f)
	}
	if f := VelSizeFactor(tu, 0.05, 0); f != 1 {
		t.Errorf("factor at radius 0 = %v, want 1", f)
	}
	big := VelSizeFactor(tu, 0.05, 0.5)
	if big >= 1 || big < tu.SpeedScaleMin {
		t.Errorf("factor for a grown circle = %v, want in [%v,1)", big, tu.SpeedScaleMin)
	}
	if f := VelSizeFactor(tu, 0.05, 0.01); f != 1 {
		t.Errorf("factor below start radius = %v, want clamped to 1", f)
	}
}

func TestAccelerateInput(t *testing.T) {
	tu := DefaultTuning()
	p := Circle{Index: PlayerIndex, Radius: 0.05, VX: 0.001}
	Accelerate(&p, tu, Input{Left: true, Right: true, Up: true})
	if p.AX != 0 || p.AY != tu.PlayerAccel {
		t.Errorf("accel = (%v,%v), want (0,%v)", p.AX, p.AY, tu.PlayerAccel)
	}

	n := Circle{Index: 3, Radius: 0.05, VX: -0.001, VY: 0}
	Accelerate(&n, tu, Input{Right: true})
	if n.AX != -tu.NPCWander || n.AY != 0 {
		t.Errorf("npc accel = (%v,%v), want (%v,0)", n.AX, n.AY, -tu.NPCWander)
	}
}

func TestIntegrateCapsVelocity(t *testing.T) {
	tu := DefaultTuning()
	p := Circle{Index: PlayerIndex, Radius: 0.05, VX: 1, VY: -1}
	Integrate(&p, tu, 0.05)
	if p.VX != tu.PlayerMaxVel || p.VY != -tu.PlayerMaxVel {
		t.Errorf("player v = (%v,%v), want ±%v", p.VX, p.VY, tu.PlayerMaxVel)
	}
	n := Circle{Index: 1, Radius: 0.05, VX: 1}
	Integrate(&n, tu, 0.05)
	if n.VX != tu.NPCMaxVel() {
		t.Errorf("npc v = %v, want %v", n.VX, tu.NPCMaxVel())
	}
	if n.X != n.VX {
		t.Errorf("position not advanced by velocity: %v", n.X)
	}
}

func TestIntegrateFriction(t *testing.T) {
	tu := DefaultTuning()
	p := Circle{Index: PlayerIndex, Radius: 0.05, VX: 0.001}
	Integrate(&p, tu, 0.05)
	if math.Abs(p.VX-0.001*tu.Friction) > 1e-15 {
		t.Errorf("v = %v, want %v", p.VX, 0.001*tu.Friction)
	}
}

func TestReflectAllSides(t *testing.T) {
	const border = 1.0
	for _, tc := range []struct {
		name           string
		x, y, vx, vy   float64
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{"right", 0.98, 0, 0.01, 0, 0.9, 0, -0.01, 0},
		{"left", -0.98, 0, -0.01, 0, -0.9, 0, 0.01, 0},
		{"top", 0, 0.95, 0, 0.02, 0, 0.9, 0, -0.02},
		{"bottom", 0, -0.95, 0, -0.02, 0, -0.9, 0, 0.02},
	} {
		c := Circle{Index: 1, Radius: 0.1, X: tc.x, Y: tc.y, VX: tc.vx, VY: tc.vy, AX: tc.vx, AY: tc.vy}
		Reflect(&c, border)
		if math.Abs(c.X-tc.wantX) > 1e-12 || math.Abs(c.Y-tc.wantY) > 1e-12 {
			t.Errorf("%s: pos = (%v,%v), want (%v,%v)", tc.name, c.X, c.Y, tc.wantX, tc.wantY)
		}
		if c.VX != tc.wantVX || c.VY != tc.wantVY {
			t.Errorf("%s: v = (%v,%v), want (%v,%v)", tc.name, c.VX, c.VY, tc.wantVX, tc.wantVY)
		}
		if c.AX != tc.wantVX || c.AY != tc.wantVY {
			t.Errorf("%s: accel not pointed inward: (%v,%v)", tc.name, c.AX, c.AY)
		}
	}
}

func TestReflectAlreadyInward(t *testing.T) {
	c := Circle{Index: 1, Radius: 0.1, X: 0.95, VX: -0.01}
	Reflect(&c, 1)
	if c.VX != -0.01 {
		t.Errorf("inward velocity flipped: %v", c.VX)
	}
}

func TestAnimationEasesAndEnds(t *testing.T) {
	c := Circle{Index: 1, Radius: 0.2}
	StartAnimation(&c, 1000, 400, 0.1, 0.2)
	if c.DrawRadius() != 0.1 {
		t.Fatalf("draw radius at start = %v", c.DrawRadius())
	}
	if !StepAnimation(&c, 1280, 400) {
		t.Fatal("animation ended early")
	}
	if c.DrawRadius() <= 0.2 {
		t.Errorf("expected overshoot past 0.2 at 70%%, got %v", c.DrawRadius())
	}
	if StepAnimation(&c, 1400, 400) {
		t.Fatal("animation should be done at End")
	}
	if c.DrawRadius() != 0.2 {
		t.Errorf("final draw radius = %v, want 0.2", c.DrawRadius())
	}
}

func TestShrinkAnimationNeverNegative(t *testing.T) {
	c := Circle{Index: 1}
	StartAnimation(&c, 0, 400, 0.05, 0)
	for now := 0.0; now <= 400; now += 10 {
		StepAnimation(&c, now, 400)
		if c.DrawRadius() < 0 {
			t.Fatalf("negative draw radius %v at %v", c.DrawRadius(), now)
		}
	}
}
