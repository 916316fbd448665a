package sim

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

var Palette = struct {
	Player RGB
	Food   RGB // smaller than the player
	Danger RGB // larger than the player
	Equal  RGB
}{
	Player: RGB{R: 90, G: 200, B: 255},
	Food:   RGB{R: 110, G: 230, B: 120},
	Danger: RGB{R: 240, G: 80, B: 90},
	Equal:  RGB{R: 235, G: 215, B: 110},
}

// Animation is an in-flight drawn-radius transition.
type Animation struct {
	Active     bool
	Start, End float64 // ms
	From, To   float64
	Current    float64
}

// Circle is one arena slot. Radius 0 means absorbed or unused.
type Circle struct {
	Index  int
	Radius float64
	X, Y   float64
	VX, VY float64
	AX, AY float64
	Color  RGB

	// Flagged marks the smaller circle of an intersecting pair.
	Flagged bool
	Anim    Animation
}

func (c *Circle) Active() bool { return c.Radius > 0 }

func (c *Circle) IsPlayer() bool { return c.Index == PlayerIndex }

// DrawRadius is the radius a renderer should use this frame.
func (c *Circle) DrawRadius() float64 {
	if c.Anim.Active {
		return c.Anim.Current
	}
	return c.Radius
}

// Speed is the velocity magnitude.
func (c *Circle) Speed() float64 {
	return Distance(0, 0, c.VX, c.VY)
}
