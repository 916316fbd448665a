package sim

import "math"

// Intersects reports whether two circles overlap on their boundary ring without
// either fully containing the other: |r1-r2| <= d <= r1+r2.
func Intersects(x1, y1, r1, x2, y2, r2 float64) bool {
	d := Distance(x1, y1, x2, y2)
	return math.Abs(r1-r2) <= d && d <= r1+r2
}

// Absorbs reports whether circle 1 (with an optional boost) fully contains circle 2.
func Absorbs(x1, y1, r1, x2, y2, r2, boost float64) bool {
	return r1+boost > r2+Distance(x1, y1, x2, y2)
}

// Overlaps is the placement test: any intersection or containment in either direction.
func Overlaps(a, b *Circle) bool {
	return Intersects(a.X, a.Y, a.Radius, b.X, b.Y, b.Radius) ||
		Absorbs(a.X, a.Y, a.Radius, b.X, b.Y, b.Radius, 0) ||
		Absorbs(b.X, b.Y, b.Radius, a.X, a.Y, a.Radius, 0)
}

// Grow returns the absorber radius after taking in the absorbee.
func Grow(absorber, absorbee, divisor float64) float64 {
	return absorber + absorbee/divisor
}

// Absorption records one resolved event.
type Absorption struct {
	Absorber, Absorbee int
	From, To           float64 // absorber radius before and after
	Absorbed           float64 // absorbee radius before the event
	X, Y               float64 // absorbee centre
	Color              RGB     // absorbee colour
}

// CollisionResult summarizes one collision pass.
type CollisionResult struct {
	Absorptions      []Absorption
	PlayerAbsorbed   bool
	PlayerAbsorbing  bool // player was the absorber at least once
	PlayerIntersects bool
}

// boostFor returns the forgiveness margin for a prospective absorber.
func boostFor(c *Circle, t Tuning) float64 {
	if c.IsPlayer() {
		return t.PlayerAbsorbBoost
	}
	return 0
}

// CollidePair tests a single unordered pair and resolves an absorption if one holds.
// Exact radius ties never absorb.
func CollidePair(a, b *Circle, t Tuning, now float64) (Absorption, bool) {
	if !a.Active() || !b.Active() || a.Radius == b.Radius {
		return Absorption{}, false
	}
	big, small := a, b
	if b.Radius > a.Radius {
		big, small = b, a
	}
	if !Absorbs(big.X, big.Y, big.Radius, small.X, small.Y, small.Radius, boostFor(big, t)) {
		return Absorption{}, false
	}

	ev := Absorption{
		Absorber: big.Index,
		Absorbee: small.Index,
		From:     big.Radius,
		To:       Grow(big.Radius, small.Radius, t.GrowthDivisor),
		Absorbed: small.Radius,
		X:        small.X,
		Y:        small.Y,
		Color:    small.Color,
	}
	StartAnimation(big, now, t.GrowTime, big.DrawRadius(), ev.To)
	StartAnimation(small, now, t.GrowTime, small.DrawRadius(), 0)
	big.Radius = ev.To
	small.Radius = 0
	small.Flagged = false
	small.VX, small.VY, small.AX, small.AY = 0, 0, 0, 0
	return ev, true
}

// Collide runs the O(n²) pass over all active slots in i<j order.
func Collide(circles []Circle, t Tuning, now float64) CollisionResult {
	var res CollisionResult
	for i := range circles {
		circles[i].Flagged = false
	}
	for i := 0; i < len(circles); i++ {
		for j := i + 1; j < len(circles); j++ {
			a, b := &circles[i], &circles[j]
			if !a.Active() || !b.Active() {
				continue
			}
			if ev, ok := CollidePair(a, b, t, now); ok {
				res.Absorptions = append(res.Absorptions, ev)
				if ev.Absorbee == PlayerIndex {
					res.PlayerAbsorbed = true
				}
				if ev.Absorber == PlayerIndex {
					res.PlayerAbsorbing = true
				}
				continue
			}
			if Intersects(a.X, a.Y, a.Radius, b.X, b.Y, b.Radius) {
				if a.IsPlayer() || b.IsPlayer() {
					res.PlayerIntersects = true
				}
				switch {
				case a.Radius < b.Radius:
					a.Flagged = true
				case b.Radius < a.Radius:
					b.Flagged = true
				}
			}
		}
	}
	// A circle flagged earlier in the pass may have been absorbed later.
	for i := range circles {
		if !circles[i].Active() {
			circles[i].Flagged = false
		}
	}
	return res
}
