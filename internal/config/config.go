// Package config loads runtime settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"absorb/internal/sim"
)

// Environment variables.
const (
	EnvSeed          = "ABSORB_SEED"
	EnvAudio         = "ABSORB_AUDIO"
	EnvVolume        = "ABSORB_VOLUME"
	EnvAddr          = "ABSORB_ADDR"
	EnvLogFile       = "ABSORB_LOG"
	EnvLevel         = "ABSORB_LEVEL"
	EnvGrowthDivisor = "ABSORB_GROWTH_DIVISOR"
	EnvFriction      = "ABSORB_FRICTION"
	EnvNPCSlowness   = "ABSORB_NPC_SLOWNESS"
	EnvPlayerBoost   = "ABSORB_PLAYER_BOOST"
)

const (
	DefaultAddr    = ":8080"
	DefaultVolume  = 0.6
	DefaultEnvFile = ".env"
)

type Config struct {
	Seed       uint64
	Audio      bool
	Volume     float64 // 0..1
	Addr       string
	LogFile    string // diagnostics log; empty = stderr, discarded by the terminal frontend
	StartLevel int    // 0-based
	Tuning     sim.Tuning
}

func Default() Config {
	return Config{
		Seed:   uint64(time.Now().UnixNano()),
		Audio:  true,
		Volume: DefaultVolume,
		Addr:   DefaultAddr,
		Tuning: sim.DefaultTuning(),
	}
}

// Load reads the given env files (default .env) without overriding variables that
// are already set, then parses the environment. A missing file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	p := parser{lookup: lookup}

	p.parseUint(EnvSeed, &cfg.Seed)
	p.parseBool(EnvAudio, &cfg.Audio)
	p.parseFloat(EnvVolume, &cfg.Volume)
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	level := cfg.StartLevel + 1
	p.parseInt(EnvLevel, &level)
	cfg.StartLevel = level - 1
	p.parseFloat(EnvGrowthDivisor, &cfg.Tuning.GrowthDivisor)
	p.parseFloat(EnvFriction, &cfg.Tuning.Friction)
	p.parseFloat(EnvNPCSlowness, &cfg.Tuning.NPCSlowness)
	p.parseFloat(EnvPlayerBoost, &cfg.Tuning.PlayerAbsorbBoost)
	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%s: volume %v not in [0,1]", EnvVolume, c.Volume)
	}
	if c.StartLevel < 0 || c.StartLevel >= sim.NumLevels() {
		return fmt.Errorf("%s: level %d not in 1..%d", EnvLevel, c.StartLevel+1, sim.NumLevels())
	}
	if err := c.Tuning.Validate(); err != nil {
		return fmt.Errorf("tuning: %w", err)
	}
	return nil
}

// parser keeps the first error and skips the rest.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) get(name string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.lookup(name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (p *parser) fail(name, v string, err error) {
	p.err = fmt.Errorf("%s=%q: %w", name, v, err)
}

func (p *parser) parseUint(name string, dst *uint64) {
	if v, ok := p.get(name); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			p.fail(name, v, err)
			return
		}
		*dst = n
	}
}

func (p *parser) parseInt(name string, dst *int) {
	if v, ok := p.get(name); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			p.fail(name, v, err)
			return
		}
		*dst = n
	}
}

func (p *parser) parseFloat(name string, dst *float64) {
	if v, ok := p.get(name); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			p.fail(name, v, err)
			return
		}
		*dst = f
	}
}

func (p *parser) parseBool(name string, dst *bool) {
	if v, ok := p.get(name); ok {
		switch strings.ToLower(v) {
		case "on", "yes":
			*dst = true
			return
		case "off", "no":
			*dst = false
			return
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			p.fail(name, v, err)
			return
		}
		*dst = b
	}
}
