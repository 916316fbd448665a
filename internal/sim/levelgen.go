package sim

import (
	"fmt"
	"sort"
)

type DiagnosticKind int

const (
	DiagPlacementExhausted DiagnosticKind = iota
	DiagWinnabilityExhausted
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagPlacementExhausted:
		return "placement-exhausted"
	case DiagWinnabilityExhausted:
		return "winnability-exhausted"
	}
	return "unknown"
}

// Diagnostic records a retry bound that was hit during generation. The level is
// still playable; it may just be harder than intended.
type Diagnostic struct {
	Kind     DiagnosticKind
	Index    int
	Attempts int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: circle %d after %d attempts", d.Kind, d.Index, d.Attempts)
}

// Generated is the output of GenerateLevel.
type Generated struct {
	Circles      []Circle
	StartRadius  float64 // player radius after any winnability boost
	Boosts       int
	Diagnostics  []Diagnostic
	PlaceRetries int // total resamples across all circles
}

// SampleRadius draws one NPC radius from the level distribution.
func SampleRadius(d RadiusDist, rng *Rand) float64 {
	var r float64
	switch d.Kind {
	case DistNormal:
		r = abs(rng.Normal(d.Mean, d.Dev))
	default:
		r = rng.RangeF(d.Min, d.Max)
	}
	return Clamp(r, d.Min, d.Max)
}

// GenerateLevel places NumCircles non-overlapping circles with random drift and
// boosts the player start radius until the level is theoretically winnable.
func GenerateLevel(p LevelParams, t Tuning, rng *Rand) (Generated, error) {
	if err := p.Validate(); err != nil {
		return Generated{}, err
	}
	g := Generated{Circles: make([]Circle, MaxCircles)}
	for i := range g.Circles {
		g.Circles[i].Index = i
	}

	npcMax := t.NPCMaxVel()
	for i := 1; i < p.NumCircles; i++ {
		c := &g.Circles[i]
		c.Radius = SampleRadius(p.Radius, rng)
		g.place(c, p.BorderSize, t.PlacementRetries, rng, 1, i)
		c.VX = rng.Sign() * rng.RangeF(0.25, 1) * npcMax
		c.VY = rng.Sign() * rng.RangeF(0.25, 1) * npcMax
	}

	player := &g.Circles[PlayerIndex]
	player.Radius = p.PlayerRadius
	for PlayerIsTooSmall(g.Circles, t.GrowthDivisor) {
		if g.Boosts >= t.WinnabilityRetries {
			g.Diagnostics = append(g.Diagnostics, Diagnostic{
				Kind: DiagWinnabilityExhausted, Index: PlayerIndex, Attempts: g.Boosts,
			})
			break
		}
		player.Radius += t.RadiusBoostStep
		g.Boosts++
	}
	g.StartRadius = player.Radius
	g.place(player, p.BorderSize, t.PlacementRetries, rng, 1, p.NumCircles)

	Recolor(g.Circles)
	return g, nil
}

// place samples positions for c until it overlaps none of circles[from:to] or the
// retry bound is hit, keeping the last candidate in that case.
func (g *Generated) place(c *Circle, border float64, retries int, rng *Rand, from, to int) {
	lim := border - c.Radius
	for attempt := 1; ; attempt++ {
		c.X = rng.RangeF(-lim, lim)
		c.Y = rng.RangeF(-lim, lim)
		if !overlapsAny(c, g.Circles[from:to]) {
			return
		}
		g.PlaceRetries++
		if attempt >= retries {
			g.Diagnostics = append(g.Diagnostics, Diagnostic{
				Kind: DiagPlacementExhausted, Index: c.Index, Attempts: attempt,
			})
			return
		}
	}
}

func overlapsAny(c *Circle, others []Circle) bool {
	for i := range others {
		o := &others[i]
		if o.Index == c.Index || !o.Active() {
			continue
		}
		if Overlaps(c, o) {
			return true
		}
	}
	return false
}

// PlayerIsTooSmall replays a greedy absorption of every other active circle in
// ascending radius order. The player must be strictly larger than each circle it
// meets; an exact tie counts as too small.
func PlayerIsTooSmall(circles []Circle, divisor float64) bool {
	if len(circles) == 0 || !circles[PlayerIndex].Active() {
		return true
	}
	others := make([]float64, 0, len(circles))
	for i := range circles {
		if i != PlayerIndex && circles[i].Active() {
			others = append(others, circles[i].Radius)
		}
	}
	sort.Float64s(others)

	r := circles[PlayerIndex].Radius
	for _, o := range others {
		if r <= o {
			return true
		}
		r = Grow(r, o, divisor)
	}
	return false
}

// PlayerIsLargest reports whether the player exceeds every other active circle.
func PlayerIsLargest(circles []Circle) bool {
	if len(circles) == 0 || !circles[PlayerIndex].Active() {
		return false
	}
	pr := circles[PlayerIndex].Radius
	for i := range circles {
		if i != PlayerIndex && circles[i].Active() && circles[i].Radius >= pr {
			return false
		}
	}
	return true
}

// Recolor tags every NPC relative to the player.
func Recolor(circles []Circle) {
	if len(circles) == 0 {
		return
	}
	pr := circles[PlayerIndex].Radius
	circles[PlayerIndex].Color = Palette.Player
	for i := range circles {
		if i == PlayerIndex {
			continue
		}
		c := &circles[i]
		switch {
		case c.Radius > pr:
			c.Color = Palette.Danger
		case c.Radius < pr:
			c.Color = Palette.Food
		default:
			c.Color = Palette.Equal
		}
	}
}
