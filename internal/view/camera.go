// Package view maps arena coordinates to screen coordinates for every frontend.
package view

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"absorb/internal/sim"
)

const (
	DefaultFPS      = 60
	DefaultMargin   = 1.08 // arena half-widths visible per half-screen at fit zoom
	SpringFrequency = 5.0
	SpringDamping   = 0.9
	ShakeOnAbsorbed = 0.04 // world units
	ShakeDuration   = 0.35 // seconds
)

// Camera follows a target with a spring and fits the arena to the viewport.
// The arena is centred on the origin with y pointing up; screen y points down.
type Camera struct {
	X, Y float64 // world-space centre
	Zoom float64 // screen units per world unit

	// ZoomIn > 1 magnifies past the fit zoom and makes the camera follow the target.
	ZoomIn float64
	Margin float64
	// Aspect stretches x; terminals use ~2 because cells are twice as tall as wide.
	Aspect float64

	ShakeX, ShakeY float64
	ShakeTimer     float64
	ShakeIntensity float64

	spring     harmonica.Spring
	vx, vy, vz float64
	snapped    bool
	rng        *sim.Rand
}

func NewCamera(fps int, seed uint64) *Camera {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Camera{
		Zoom:   1,
		ZoomIn: 1,
		Margin: DefaultMargin,
		Aspect: 1,
		spring: harmonica.NewSpring(harmonica.FPS(fps), SpringFrequency, SpringDamping),
		rng:    sim.NewRand(seed ^ 0xCA3E),
	}
}

// FitZoom is the zoom that shows the whole arena plus margin in a w×h viewport.
func (c *Camera) FitZoom(border float64, w, h int) float64 {
	if border <= 0 || w <= 0 || h <= 0 {
		return 1
	}
	span := 2 * border * c.Margin
	zw := float64(w) / (span * c.Aspect)
	zh := float64(h) / span
	return math.Min(zw, zh)
}

// target computes where the camera wants to be this frame.
func (c *Camera) target(tx, ty, border float64, w, h int) (x, y, zoom float64) {
	zoom = c.FitZoom(border, w, h) * math.Max(c.ZoomIn, 1)
	if c.ZoomIn <= 1 {
		return 0, 0, zoom
	}
	halfW := float64(w) / (2 * zoom * c.Aspect)
	halfH := float64(h) / (2 * zoom)
	x = clampCentre(tx, border*c.Margin, halfW)
	y = clampCentre(ty, border*c.Margin, halfH)
	return x, y, zoom
}

// clampCentre keeps a view of half-extent half inside [-limit, limit].
func clampCentre(v, limit, half float64) float64 {
	if half >= limit {
		return 0
	}
	return sim.Clamp(v, -limit+half, limit-half)
}

// Snap jumps straight to the target, e.g. on the first frame.
func (c *Camera) Snap(tx, ty, border float64, w, h int) {
	c.X, c.Y, c.Zoom = c.target(tx, ty, border, w, h)
	c.vx, c.vy, c.vz = 0, 0, 0
	c.snapped = true
}

// Update advances the spring one frame towards the target and decays shake.
func (c *Camera) Update(dt, tx, ty, border float64, w, h int) {
	if !c.snapped {
		c.Snap(tx, ty, border, w, h)
	}
	x, y, z := c.target(tx, ty, border, w, h)
	c.X, c.vx = c.spring.Update(c.X, c.vx, x)
	c.Y, c.vy = c.spring.Update(c.Y, c.vy, y)
	c.Zoom, c.vz = c.spring.Update(c.Zoom, c.vz, z)
	if c.Zoom <= 0 {
		c.Zoom = z
	}
	c.updateShake(dt)
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	c.ShakeIntensity = math.Max(c.ShakeIntensity, intensity)
	c.ShakeTimer = math.Max(c.ShakeTimer, duration)
}

func (c *Camera) updateShake(dt float64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX, c.ShakeY, c.ShakeIntensity = 0, 0, 0
		return
	}
	c.ShakeTimer = math.Max(c.ShakeTimer-dt, 0)
	t := c.ShakeTimer
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = c.rng.RangeF(-mag, mag)
	c.ShakeY = c.rng.RangeF(-mag, mag)
}

// WorldToScreen maps an arena point into a w×h viewport.
func (c *Camera) WorldToScreen(x, y float64, w, h int) (float64, float64) {
	sx := float64(w)/2 + (x-c.X-c.ShakeX)*c.Zoom*c.Aspect
	sy := float64(h)/2 - (y-c.Y-c.ShakeY)*c.Zoom
	return sx, sy
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64, w, h int) (float64, float64) {
	x := (sx-float64(w)/2)/(c.Zoom*c.Aspect) + c.X + c.ShakeX
	y := -(sy-float64(h)/2)/c.Zoom + c.Y + c.ShakeY
	return x, y
}

// Scale converts a world length into screen units along y.
func (c *Camera) Scale(r float64) float64 { return r * c.Zoom }

// Watch shakes the camera whenever the player is absorbed and snaps it to the
// new layout on the next Update after a level starts.
func (c *Camera) Watch(events *sim.EventBus) {
	events.Subscribe(sim.EventAbsorption, func(e sim.Event) {
		if e.Absorption.Absorbee == sim.PlayerIndex {
			c.AddShake(ShakeOnAbsorbed, ShakeDuration)
		}
	})
	events.Subscribe(sim.EventLevelStart, func(sim.Event) { c.snapped = false })
}
