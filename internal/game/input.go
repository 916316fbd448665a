package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"absorb/internal/sim"
	"absorb/internal/view"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func held(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Snapshot reads arrows/WASD and a held left mouse button, which steers away
// from the window centre.
func Snapshot(window *glfw.Window) sim.Input {
	keys := sim.Input{
		Left:  held(window, glfw.KeyLeft, glfw.KeyA),
		Right: held(window, glfw.KeyRight, glfw.KeyD),
		Up:    held(window, glfw.KeyUp, glfw.KeyW),
		Down:  held(window, glfw.KeyDown, glfw.KeyS),
	}
	if window.GetMouseButton(glfw.MouseButtonLeft) != glfw.Press {
		return keys
	}
	cx, cy := window.GetCursorPos()
	w, h := window.GetSize()
	return view.Merge(keys, view.PointerInput(cx, cy, float64(w), float64(h)))
}
