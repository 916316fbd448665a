package sim

import (
	"errors"
	"fmt"
)

type DistKind int

const (
	DistUniform DistKind = iota
	DistNormal
)

// RadiusDist describes NPC radius sampling. Min/Max bound both kinds; Mean/Dev are
// only read by the normal sampler.
type RadiusDist struct {
	Kind      DistKind
	Min, Max  float64
	Mean, Dev float64
}

// LevelParams defines one arena. NumCircles counts the player.
type LevelParams struct {
	BorderSize   float64
	NumCircles   int
	Radius       RadiusDist
	PlayerRadius float64
}

var ErrInvalidLevel = errors.New("invalid level")

func (p LevelParams) Validate() error {
	switch {
	case p.BorderSize <= 0:
		return fmt.Errorf("%w: border size %v", ErrInvalidLevel, p.BorderSize)
	case p.NumCircles < 1 || p.NumCircles > MaxCircles:
		return fmt.Errorf("%w: %d circles, want 1..%d", ErrInvalidLevel, p.NumCircles, MaxCircles)
	case p.PlayerRadius <= 0 || p.PlayerRadius >= p.BorderSize:
		return fmt.Errorf("%w: player radius %v", ErrInvalidLevel, p.PlayerRadius)
	case p.Radius.Min < 0 || p.Radius.Max < p.Radius.Min:
		return fmt.Errorf("%w: radius bounds [%v,%v]", ErrInvalidLevel, p.Radius.Min, p.Radius.Max)
	case p.Radius.Max >= p.BorderSize:
		return fmt.Errorf("%w: max radius %v does not fit border %v", ErrInvalidLevel, p.Radius.Max, p.BorderSize)
	case p.Radius.Kind == DistNormal && p.Radius.Dev < 0:
		return fmt.Errorf("%w: negative deviation", ErrInvalidLevel)
	}
	return nil
}

// Levels is the campaign, easiest first.
var Levels = []LevelParams{
	// Warm-up: few circles, plenty of small food.
	{BorderSize: 1.0, NumCircles: 8, PlayerRadius: 0.04,
		Radius: RadiusDist{Kind: DistUniform, Min: 0.02, Max: 0.09}},
	{BorderSize: 1.0, NumCircles: 12, PlayerRadius: 0.035,
		Radius: RadiusDist{Kind: DistUniform, Min: 0.02, Max: 0.11}},
	// Normal-distributed sizes cluster around a mean slightly above the player.
	{BorderSize: 1.1, NumCircles: 16, PlayerRadius: 0.035,
		Radius: RadiusDist{Kind: DistNormal, Min: 0.012, Max: 0.14, Mean: 0.055, Dev: 0.025}},
	{BorderSize: 1.2, NumCircles: 20, PlayerRadius: 0.032,
		Radius: RadiusDist{Kind: DistNormal, Min: 0.012, Max: 0.16, Mean: 0.06, Dev: 0.03}},
	{BorderSize: 1.3, NumCircles: 26, PlayerRadius: 0.03,
		Radius: RadiusDist{Kind: DistUniform, Min: 0.015, Max: 0.15}},
	{BorderSize: 1.4, NumCircles: 32, PlayerRadius: 0.028,
		Radius: RadiusDist{Kind: DistNormal, Min: 0.01, Max: 0.18, Mean: 0.07, Dev: 0.035}},
	// Crowded finale.
	{BorderSize: 1.5, NumCircles: 40, PlayerRadius: 0.025,
		Radius: RadiusDist{Kind: DistNormal, Min: 0.01, Max: 0.2, Mean: 0.075, Dev: 0.04}},
}

func NumLevels() int { return len(Levels) }

// GetLevelParams returns the parameters for a 0-based level index.
func GetLevelParams(level int) (LevelParams, error) {
	if level < 0 || level >= len(Levels) {
		return LevelParams{}, fmt.Errorf("%w: level %d out of range", ErrInvalidLevel, level)
	}
	return Levels[level], nil
}
