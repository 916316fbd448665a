package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(mapLookup(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if !cfg.Audio || cfg.Volume != DefaultVolume || cfg.Addr != DefaultAddr || cfg.StartLevel != 0 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(mapLookup(map[string]string{
		EnvSeed:          "42",
		EnvAudio:         "off",
		EnvVolume:        "0.25",
		EnvAddr:          "127.0.0.1:9000",
		EnvLogFile:       "absorb.log",
		EnvLevel:         "3",
		EnvGrowthDivisor: "4",
		EnvFriction:      " 0.9 ",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Seed != 42 || cfg.Audio || cfg.Volume != 0.25 || cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LogFile != "absorb.log" {
		t.Errorf("log file = %q", cfg.LogFile)
	}
	if cfg.StartLevel != 2 {
		t.Errorf("start level = %d, want 2", cfg.StartLevel)
	}
	if cfg.Tuning.GrowthDivisor != 4 || cfg.Tuning.Friction != 0.9 {
		t.Errorf("tuning = %+v", cfg.Tuning)
	}
}

func TestFromEnvErrorsNameVariable(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"bad seed":     {EnvSeed: "abc"},
		"bad audio":    {EnvAudio: "maybe"},
		"volume":       {EnvVolume: "2"},
		"level":        {EnvLevel: "99"},
		"negative":     {EnvLevel: "-1"},
		"level zero":   {EnvLevel: "0"},
		"divisor":      {EnvGrowthDivisor: "0"},
		"bad friction": {EnvFriction: "x"},
	} {
		if _, err := FromEnv(mapLookup(env)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	_, err := FromEnv(mapLookup(map[string]string{EnvLevel: "0"}))
	if err == nil || !strings.Contains(err.Error(), EnvLevel) {
		t.Errorf("level 0 error %v should name %s", err, EnvLevel)
	}
	_, err = FromEnv(mapLookup(map[string]string{EnvSeed: "abc"}))
	if err == nil || !strings.Contains(err.Error(), EnvSeed) {
		t.Errorf("error %v should name %s", err, EnvSeed)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("ABSORB_SEED=7\nABSORB_VOLUME=0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvVolume, "")
	os.Unsetenv(EnvSeed)
	os.Unsetenv(EnvVolume)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 7 || cfg.Volume != 0.5 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
}
