package sim

// VelSizeFactor scales the velocity cap down as a circle grows past the start radius.
func VelSizeFactor(t Tuning, startRadius, radius float64) float64 {
	if radius <= 0 {
		return 1
	}
	return Lerp(t.SpeedScaleMin, 1, Clamp(startRadius/radius, 0, 1))
}

// Accelerate sets this tick's acceleration: input for the player, drift for NPCs.
func Accelerate(c *Circle, t Tuning, in Input) {
	if c.IsPlayer() {
		c.AX, c.AY = in.Accel(t.PlayerAccel)
		return
	}
	c.AX = sign(c.VX) * t.NPCWander
	c.AY = sign(c.VY) * t.NPCWander
}

// Integrate applies friction, the size-scaled cap and moves the circle one tick.
func Integrate(c *Circle, t Tuning, startRadius float64) {
	maxVel := t.NPCMaxVel()
	if c.IsPlayer() {
		maxVel = t.PlayerMaxVel
	}
	limit := maxVel * VelSizeFactor(t, startRadius, c.Radius)

	c.VX = Clamp((c.VX+c.AX)*t.Friction, -limit, limit)
	c.VY = Clamp((c.VY+c.AY)*t.Friction, -limit, limit)

	c.X += c.VX
	c.Y += c.VY
}

// Reflect keeps the circle fully inside the arena, pointing velocity and
// acceleration back inward on any axis whose edge crossed the border.
func Reflect(c *Circle, border float64) {
	r := c.Radius
	if r > border {
		r = border
	}
	c.X, c.VX, c.AX = reflectAxis(c.X, c.VX, c.AX, r, border)
	c.Y, c.VY, c.AY = reflectAxis(c.Y, c.VY, c.AY, r, border)
}

func reflectAxis(pos, vel, acc, r, border float64) (float64, float64, float64) {
	switch {
	case pos+r > border:
		return border - r, -abs(vel), -abs(acc)
	case pos-r < -border:
		return -border + r, abs(vel), abs(acc)
	}
	return pos, vel, acc
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// StartAnimation begins an eased drawn-radius transition from the currently drawn radius.
func StartAnimation(c *Circle, now, growTime, from, to float64) {
	c.Anim = Animation{
		Active:  true,
		Start:   now,
		End:     now + growTime,
		From:    from,
		To:      to,
		Current: from,
	}
}

// StepAnimation advances the drawn radius; it returns false once no animation is in flight.
func StepAnimation(c *Circle, now, growTime float64) bool {
	if !c.Anim.Active {
		return false
	}
	pct := Clamp((now-c.Anim.Start)/growTime, 0, 1)
	c.Anim.Current = Lerp(c.Anim.From, c.Anim.To, EaseOutBack(pct))
	if c.Anim.Current < 0 {
		// Shrinking absorbees overshoot below zero.
		c.Anim.Current = 0
	}
	if pct >= 1 {
		c.Anim.Current = c.Anim.To
		c.Anim.Active = false
	}
	return c.Anim.Active
}
