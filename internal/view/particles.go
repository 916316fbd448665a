package view

import (
	"math"

	"absorb/internal/sim"
)

type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota // fragments of the absorbed circle
	ParticleGlow                       // fast bright sparks
)

const (
	MaxParticles      = 512
	particleAirDrag   = 2.4
	particleGlowDrag  = 4.0
	debrisPerRadius   = 600.0 // fragments per world unit of absorbed radius
	minDebris         = 6
	maxDebris         = 48
	glowPerDebris     = 4
	particleSizeRatio = 0.18 // fragment radius relative to the absorbed circle
)

var glowColor = sim.RGB{R: 255, G: 250, B: 230}

type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64 // world radius at birth

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  sim.RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *sim.Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: sim.NewRand(seed ^ 0xBEAD),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnBurst scatters fragments of a circle of radius r at (x, y).
func (ps *ParticleSystem) SpawnBurst(x, y, r float64, col sim.RGB) {
	if r <= 0 {
		return
	}
	n := int(sim.Clamp(r*debrisPerRadius, minDebris, maxDebris))
	for range n {
		ang := ps.rng.RangeF(0, math.Pi*2)
		spd := ps.rng.RangeF(1.5, 4) * r
		ps.Add(Particle{
			X: x + math.Cos(ang)*r*0.5, Y: y + math.Sin(ang)*r*0.5,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size:    r * particleSizeRatio * ps.rng.RangeF(0.6, 1.2),
			MaxLife: ps.rng.RangeF(0.35, 0.7),
			Col:     col, Kind: ParticleDebris,
		})
	}
	for range n / glowPerDebris {
		ang := ps.rng.RangeF(0, math.Pi*2)
		spd := ps.rng.RangeF(5, 9) * r
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size:    r * particleSizeRatio * 0.5,
			Life:    -ps.rng.RangeF(0, 0.05),
			MaxLife: ps.rng.RangeF(0.15, 0.3),
			Col:     glowColor, Kind: ParticleGlow,
		})
	}
}

// Update advances particles by dt seconds and drops expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	debrisDecay := math.Exp(-particleAirDrag * dt)
	glowDecay := math.Exp(-particleGlowDrag * dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		if p.Life < 0 {
			i++
			continue
		}
		decay := debrisDecay
		if p.Kind == ParticleGlow {
			decay = glowDecay
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= decay
		p.VY *= decay
		i++
	}
}

// Radius is the drawn radius of p; particles shrink to nothing over their life.
func (p *Particle) Radius() float64 {
	if p.Life < 0 || p.MaxLife <= 0 {
		return 0
	}
	t := sim.Clamp(p.Life/p.MaxLife, 0, 1)
	return p.Size * (1 - t)
}

// Export writes live particles in the circle render-buffer layout so the
// circle renderers can draw them unchanged.
func (ps *ParticleSystem) Export(buf *sim.RenderBuffers) {
	buf.CircleProps = buf.CircleProps[:0]
	buf.ColorProps = buf.ColorProps[:0]
	for i := range ps.P {
		p := &ps.P[i]
		r := p.Radius()
		if r <= 0 {
			continue
		}
		buf.CircleProps = append(buf.CircleProps, float32(p.X), float32(p.Y), float32(r), 0)
		buf.ColorProps = append(buf.ColorProps,
			float32(p.Col.R)/255, float32(p.Col.G)/255, float32(p.Col.B)/255, 0)
	}
}

// Watch bursts every absorbed circle and drops leftovers when a level starts.
func (ps *ParticleSystem) Watch(events *sim.EventBus) {
	events.Subscribe(sim.EventAbsorption, func(e sim.Event) {
		a := e.Absorption
		ps.SpawnBurst(a.X, a.Y, a.Absorbed, a.Color)
	})
	events.Subscribe(sim.EventLevelStart, func(sim.Event) { ps.Clear() })
}
