package view

import "absorb/internal/sim"

// MinPointerInput is the dead zone around the viewport centre, as a fraction of
// the viewport size.
const MinPointerInput = 0.01

// PointerInput converts a held pointer at (x, y) in a w×h viewport (y down) into
// directions away from the centre.
func PointerInput(x, y, w, h float64) sim.Input {
	if w <= 0 || h <= 0 {
		return sim.Input{}
	}
	nx := x/w - 0.5
	ny := y/h - 0.5
	return sim.Input{
		Right: nx > MinPointerInput,
		Left:  nx < -MinPointerInput,
		Down:  ny > MinPointerInput,
		Up:    ny < -MinPointerInput,
	}
}

// Merge combines two snapshots; a direction is held if either holds it.
func Merge(a, b sim.Input) sim.Input {
	return sim.Input{
		Left:  a.Left || b.Left,
		Right: a.Right || b.Right,
		Up:    a.Up || b.Up,
		Down:  a.Down || b.Down,
	}
}
