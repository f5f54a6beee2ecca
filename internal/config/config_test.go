package config

import (
	"errors"
	"testing"
	"time"

	"gridpac/internal/state"
	tm "gridpac/internal/tilemap"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("gridpac", nil, envMap(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	env := envMap(map[string]string{
		"GRIDPAC_LAYOUT":       "open20",
		"GRIDPAC_SEED":         "99",
		"GRIDPAC_ENABLE_AUDIO": "1",
		"GRIDPAC_LANG":         "de_DE",
	})
	cfg, err := Load("gridpac", []string{"-seed", "7", "-ghost-interval", "150ms", "-dot-cap", "10"}, env)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout != "open20" || !cfg.Audio || cfg.Lang != "de_DE" {
		t.Fatalf("environment not applied: %+v", cfg)
	}
	if cfg.Seed != 7 || cfg.GhostInterval != 150*time.Millisecond || cfg.DotCap != 10 {
		t.Fatalf("flags should override: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("gridpac", nil, envMap(map[string]string{"GRIDPAC_SEED": "abc"})); err == nil {
		t.Fatalf("expected error for bad seed")
	}
	if _, err := Load("gridpac", []string{"-nope"}, envMap(nil)); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestRules(t *testing.T) {
	cfg := Default()
	cfg.Layout = "20"
	cfg.DotChance = 0.5
	r, err := cfg.Rules()
	if err != nil {
		t.Fatalf("Rules: %v", err)
	}
	if r.Layout.Size != 20 || r.DotChance != 0.5 {
		t.Fatalf("unexpected rules %+v", r)
	}

	cfg.Layout = "hexagon"
	if _, err := cfg.Rules(); !errors.Is(err, tm.ErrUnknownLayout) {
		t.Fatalf("expected ErrUnknownLayout, got %v", err)
	}
}

func TestNewStateValidates(t *testing.T) {
	cfg := Default()
	cfg.Seed = 1
	s, err := cfg.NewState()
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if s.Size() != 25 {
		t.Fatalf("size = %d, want 25", s.Size())
	}

	cfg.SpawnInterval = 0
	if _, err := cfg.NewState(); !errors.Is(err, state.ErrInvalidRules) {
		t.Fatalf("expected ErrInvalidRules, got %v", err)
	}
}
