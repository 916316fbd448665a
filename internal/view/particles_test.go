package view

import (
	"testing"

	"absorb/internal/sim"
)

func TestBurstScalesWithRadius(t *testing.T) {
	small := NewParticleSystem(0, 1)
	small.SpawnBurst(0, 0, 0.001, sim.Palette.Food)
	big := NewParticleSystem(0, 1)
	big.SpawnBurst(0, 0, 0.2, sim.Palette.Food)

	if got, want := len(small.P), minDebris+minDebris/glowPerDebris; got != want {
		t.Errorf("tiny burst = %d particles, want %d", got, want)
	}
	if got, want := len(big.P), maxDebris+maxDebris/glowPerDebris; got != want {
		t.Errorf("large burst = %d particles, want %d", got, want)
	}

	none := NewParticleSystem(0, 1)
	none.SpawnBurst(0, 0, 0, sim.Palette.Food)
	if len(none.P) != 0 {
		t.Error("zero radius should not burst")
	}
}

func TestParticlesExpire(t *testing.T) {
	ps := NewParticleSystem(0, 2)
	ps.SpawnBurst(0.1, 0.1, 0.05, sim.Palette.Danger)
	for range 100 {
		ps.Update(1.0 / 60)
	}
	if len(ps.P) != 0 {
		t.Errorf("%d particles alive after 1.6s", len(ps.P))
	}
}

func TestParticleShrinksAndMoves(t *testing.T) {
	ps := NewParticleSystem(0, 3)
	ps.Add(Particle{VX: 1, Size: 0.02, MaxLife: 1})
	ps.Update(0.5)
	p := &ps.P[0]
	if p.X <= 0 {
		t.Errorf("X = %v, want > 0", p.X)
	}
	if r := p.Radius(); r <= 0 || r >= 0.02 {
		t.Errorf("radius at half life = %v, want in (0, 0.02)", r)
	}
	if p.VX >= 1 {
		t.Errorf("VX = %v, drag should slow it", p.VX)
	}
}

func TestParticleOverwriteWhenFull(t *testing.T) {
	ps := NewParticleSystem(2, 4)
	ps.Add(Particle{X: 1})
	ps.Add(Particle{X: 2})
	ps.Add(Particle{X: 3})
	if len(ps.P) != 2 || ps.P[0].X != 3 {
		t.Errorf("particles = %+v, want the oldest slot overwritten", ps.P)
	}
}

func TestExportSkipsDelayed(t *testing.T) {
	ps := NewParticleSystem(0, 5)
	ps.Add(Particle{X: 0.5, Size: 0.01, MaxLife: 1, Col: sim.RGB{R: 255}})
	ps.Add(Particle{Size: 0.01, Life: -0.1, MaxLife: 1})
	var buf sim.RenderBuffers
	ps.Export(&buf)
	if len(buf.CircleProps) != sim.CircleStride || len(buf.ColorProps) != sim.ColorStride {
		t.Fatalf("exported %d/%d floats, want one slot", len(buf.CircleProps), len(buf.ColorProps))
	}
	if buf.CircleProps[0] != 0.5 || buf.ColorProps[0] != 1 {
		t.Errorf("slot = %v %v", buf.CircleProps, buf.ColorProps)
	}
}

func TestWatchBurstsOnAbsorption(t *testing.T) {
	bus := sim.NewEventBus()
	ps := NewParticleSystem(0, 6)
	ps.Watch(bus)
	bus.Emit(sim.Event{Type: sim.EventAbsorption, Absorption: sim.Absorption{
		Absorber: 0, Absorbee: 3, Absorbed: 0.05, X: 0.2, Y: -0.1, Color: sim.Palette.Food,
	}})
	if len(ps.P) == 0 {
		t.Fatal("no particles after an absorption")
	}
	if ps.P[0].Col != sim.Palette.Food {
		t.Errorf("debris colour = %v, want absorbee colour", ps.P[0].Col)
	}
}

func TestLevelStartClearsParticles(t *testing.T) {
	ps := NewParticleSystem(0, 4)
	bus := sim.NewEventBus()
	ps.Watch(bus)
	bus.Emit(sim.Event{Type: sim.EventAbsorption, Absorption: sim.Absorption{Absorbed: 0.05, X: 0.2, Y: 0.2}})
	if len(ps.P) == 0 {
		t.Fatal("absorption should burst")
	}
	bus.Emit(sim.Event{Type: sim.EventLevelStart, Level: 1})
	if len(ps.P) != 0 {
		t.Errorf("%d particles left after level start", len(ps.P))
	}
}
