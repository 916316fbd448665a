package game

import (
	"absorb/internal/sim"
	"absorb/internal/view"
)

// Window defaults.
const (
	WindowWidth  = 900
	WindowHeight = 900
	WindowTitle  = "Absorb"
	// The HUD line and banner need at least this much room.
	MinWindowWidth  = 480
	MinWindowHeight = 360
)

// Frame timing.
const (
	MaxFrameDt = 0.1 // seconds; longer stalls are clamped
	FPS        = 60
)

// Rendering.
const (
	MaxSpriteRender = max(sim.MaxCircles, view.MaxParticles) // circles and particles share one VBO layout
	BorderWidthPx   = 3.0
	CircleEdgePx    = 1.5 // anti-aliased rim width
)

// HUD text scales (basicfont cells are 7x13 px).
const (
	HUDScale    = 2.0
	BannerScale = 3.0
	HintScale   = 1.5
	HUDMargin   = 12
)

// Volume step for the +/- keys.
const VolumeStep = 0.1
