package tui

import "absorb/internal/sim"

// HoldMs is how long one key event keeps a direction held. Terminals report
// presses and auto-repeats but never releases.
const HoldMs = 150.0

type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// opposite pairs Left/Right and Up/Down.
func (d Direction) opposite() Direction { return d ^ 1 }

// Hold turns discrete key events into held directions.
type Hold struct {
	until [4]float64
}

// Press holds d until now+HoldMs and drops the opposite direction.
func (h *Hold) Press(d Direction, now float64) {
	h.until[d] = now + HoldMs
	h.until[d.opposite()] = 0
}

func (h *Hold) Clear() { h.until = [4]float64{} }

// Input reports the directions still held at now (ms).
func (h *Hold) Input(now float64) sim.Input {
	return sim.Input{
		Left:  now < h.until[DirLeft],
		Right: now < h.until[DirRight],
		Up:    now < h.until[DirUp],
		Down:  now < h.until[DirDown],
	}
}
