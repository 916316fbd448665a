package sim

// Input is the normalized directional snapshot consumed each tick.
type Input struct {
	Left, Right, Up, Down bool
}

func (in Input) Any() bool {
	return in.Left || in.Right || in.Up || in.Down
}

// Accel converts held directions into an additive acceleration; opposite presses cancel.
func (in Input) Accel(step float64) (ax, ay float64) {
	if in.Left {
		ax -= step
	}
	if in.Right {
		ax += step
	}
	if in.Up {
		ay += step
	}
	if in.Down {
		ay -= step
	}
	return ax, ay
}
