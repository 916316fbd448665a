package game

import "absorb/internal/sim"

var Palette = struct {
	Background sim.RGB
	Arena      sim.RGB
	Border     sim.RGB
	Text       sim.RGB
	Hint       sim.RGB
	Danger     sim.RGB
}{
	Background: sim.RGB{R: 12, G: 14, B: 22},
	Arena:      sim.RGB{R: 22, G: 26, B: 40},
	Border:     sim.RGB{R: 120, G: 130, B: 170},
	Text:       sim.RGB{R: 240, G: 240, B: 245},
	Hint:       sim.RGB{R: 160, G: 170, B: 200},
	Danger:     sim.Palette.Danger,
}

func rgbf(c sim.RGB) (float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}
