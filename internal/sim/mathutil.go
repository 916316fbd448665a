package sim

import "math"

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// LevelSeed derives a per-level seed so retries and later levels get fresh layouts.
func LevelSeed(seed uint64, level, attempt int) uint64 {
	h := seed
	h ^= uint64(uint32(level)) * 0x9E3779B185EBCA87
	h ^= uint64(uint32(attempt)) * 0xC2B2AE3D27D4EB4F
	return splitmix64(h)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b; t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// EaseOutBack overshoots past 1 before settling at 1.
func EaseOutBack(x float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	p := x - 1
	return 1 + c3*p*p*p + c1*p*p
}

// Distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// Sign returns -1 or 1 with equal probability.
func (r *Rand) Sign() float64 {
	if r.Float64() < 0.5 {
		return -1
	}
	return 1
}

// Normal samples N(mean, dev) with the Box–Muller transform.
func (r *Rand) Normal(mean, dev float64) float64 {
	u1 := r.Float64()
	for u1 == 0 {
		u1 = r.Float64()
	}
	u2 := r.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*dev
}
