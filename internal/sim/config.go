package sim

import (
	"errors"
	"fmt"
)

// Slot capacity of the arena buffer.
const MaxCircles = 64

// PlayerIndex is the slot the player always occupies.
const PlayerIndex = 0

// Default movement tuning, in arena units per tick.
const (
	DefaultFriction        = 0.96
	DefaultPlayerAccel     = 0.0006
	DefaultPlayerMaxVel    = 0.006
	DefaultNPCSlowness     = 0.5
	DefaultNPCWander       = 0.00004
	DefaultSpeedScaleMin   = 0.15
	DefaultMinVelThreshold = 0.00015
)

// Default absorption tuning.
const (
	DefaultGrowthDivisor     = 8.0
	DefaultPlayerAbsorbBoost = 0.005
)

// Default timing, in milliseconds.
const (
	DefaultGrowTime    = 400.0
	DefaultRestartTime = 1000.0
	LevelBannerDelay   = 0.0
	LevelBannerTime    = 1800.0
	OutcomeBannerDelay = 600.0
)

// Default generation bounds.
const (
	DefaultPlacementRetries   = 250
	DefaultWinnabilityRetries = 200
	DefaultRadiusBoostStep    = 0.002
)

// Tuning holds every constant that varied between iterations of the game.
type Tuning struct {
	Friction          float64 // velocity decay per tick
	PlayerAccel       float64 // input acceleration per pressed direction
	PlayerMaxVel      float64
	NPCSlowness       float64 // NPC max velocity as a fraction of PlayerMaxVel
	NPCWander         float64 // constant NPC drift acceleration
	SpeedScaleMin     float64 // lower lerp bound of the size speed factor
	MinVelThreshold   float64 // player speed that counts as moving
	GrowthDivisor     float64 // absorbee radius contribution divisor
	PlayerAbsorbBoost float64 // forgiveness margin for the player as absorber

	GrowTime    float64
	RestartTime float64

	PlacementRetries   int
	WinnabilityRetries int
	RadiusBoostStep    float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Friction:           DefaultFriction,
		PlayerAccel:        DefaultPlayerAccel,
		PlayerMaxVel:       DefaultPlayerMaxVel,
		NPCSlowness:        DefaultNPCSlowness,
		NPCWander:          DefaultNPCWander,
		SpeedScaleMin:      DefaultSpeedScaleMin,
		MinVelThreshold:    DefaultMinVelThreshold,
		GrowthDivisor:      DefaultGrowthDivisor,
		PlayerAbsorbBoost:  DefaultPlayerAbsorbBoost,
		GrowTime:           DefaultGrowTime,
		RestartTime:        DefaultRestartTime,
		PlacementRetries:   DefaultPlacementRetries,
		WinnabilityRetries: DefaultWinnabilityRetries,
		RadiusBoostStep:    DefaultRadiusBoostStep,
	}
}

var ErrInvalidTuning = errors.New("invalid tuning")

// Validate rejects out-of-range tuning. These are programming errors, not runtime conditions.
func (t Tuning) Validate() error {
	switch {
	case t.Friction <= 0 || t.Friction > 1:
		return fmt.Errorf("%w: friction %v not in (0,1]", ErrInvalidTuning, t.Friction)
	case t.PlayerAccel < 0:
		return fmt.Errorf("%w: negative player acceleration", ErrInvalidTuning)
	case t.PlayerMaxVel <= 0:
		return fmt.Errorf("%w: player max velocity must be positive", ErrInvalidTuning)
	case t.NPCSlowness <= 0 || t.NPCSlowness > 1:
		return fmt.Errorf("%w: npc slowness %v not in (0,1]", ErrInvalidTuning, t.NPCSlowness)
	case t.NPCWander < 0:
		return fmt.Errorf("%w: negative npc wander", ErrInvalidTuning)
	case t.SpeedScaleMin < 0 || t.SpeedScaleMin > 1:
		return fmt.Errorf("%w: speed scale min %v not in [0,1]", ErrInvalidTuning, t.SpeedScaleMin)
	case t.GrowthDivisor <= 0:
		return fmt.Errorf("%w: growth divisor must be positive", ErrInvalidTuning)
	case t.PlayerAbsorbBoost < 0:
		return fmt.Errorf("%w: negative absorb boost", ErrInvalidTuning)
	case t.GrowTime <= 0:
		return fmt.Errorf("%w: grow time must be positive", ErrInvalidTuning)
	case t.RestartTime < 0:
		return fmt.Errorf("%w: negative restart time", ErrInvalidTuning)
	case t.PlacementRetries < 1 || t.WinnabilityRetries < 0:
		return fmt.Errorf("%w: retry bounds", ErrInvalidTuning)
	case t.RadiusBoostStep <= 0:
		return fmt.Errorf("%w: radius boost step must be positive", ErrInvalidTuning)
	}
	return nil
}

// NPCMaxVel is the velocity cap for non-player circles.
func (t Tuning) NPCMaxVel() float64 {
	return t.PlayerMaxVel * t.NPCSlowness
}
