package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// windowSize shrinks the default window to fit a w×h monitor, keeping it square
// and never below the minimum size. A zero monitor size keeps the defaults.
func windowSize(monW, monH int) (w, h int) {
	w, h = WindowWidth, WindowHeight
	if monW <= 0 || monH <= 0 {
		return w, h
	}
	side := min(w, monW*9/10, monH*9/10)
	side = max(side, MinWindowWidth, MinWindowHeight)
	return side, side
}

// centredOn places a w×h window in the middle of a monitor at (mx, my).
func centredOn(mx, my, monW, monH, w, h int) (x, y int) {
	return mx + (monW-w)/2, my + (monH-h)/2
}

func initWindow() (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)
	// Shown once it sits in the middle of the monitor.
	glfw.WindowHint(glfw.Visible, glfw.False)

	var mx, my, monW, monH int
	if mon := glfw.GetPrimaryMonitor(); mon != nil {
		mx, my = mon.GetPos()
		if mode := mon.GetVideoMode(); mode != nil {
			monW, monH = mode.Width, mode.Height
		}
	}
	w, h := windowSize(monW, monH)

	window, err := glfw.CreateWindow(w, h, WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.SetSizeLimits(MinWindowWidth, MinWindowHeight, glfw.DontCare, glfw.DontCare)
	if monW > 0 {
		window.SetPos(centredOn(mx, my, monW, monH, w, h))
	}
	window.Show()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}
