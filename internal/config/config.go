// Package config reads game settings from GRIDPAC_* environment variables
// and command-line flags. Flags win over the environment.
package config

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"gridpac/internal/state"
	tm "gridpac/internal/tilemap"
)

const (
	envLayout    = "GRIDPAC_LAYOUT"
	envSeed      = "GRIDPAC_SEED"
	envAudio     = "GRIDPAC_ENABLE_AUDIO"
	envLocaleDir = "GRIDPAC_LOCALE_DIR"
	envLang      = "GRIDPAC_LANG"
	envLog       = "GRIDPAC_LOG"
)

type Config struct {
	Layout        string
	Seed          int64
	GhostInterval time.Duration
	SpawnInterval time.Duration
	DotChance     float64
	DotCap        int
	Audio         bool
	LocaleDir     string
	Lang          string
	LogFile       string
}

func Default() Config {
	return Config{
		Layout:        "classic25",
		GhostInterval: state.DefaultGhostInterval,
		SpawnInterval: state.DefaultSpawnInterval,
		DotChance:     state.DefaultDotChance,
		DotCap:        state.DefaultDotCap,
	}
}

// Load starts from Default, applies the environment, then parses args.
func Load(name string, args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Layout, "layout", cfg.Layout, "maze layout: classic25 or open20")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time based")
	fs.DurationVar(&cfg.GhostInterval, "ghost-interval", cfg.GhostInterval, "time between ghost steps")
	fs.DurationVar(&cfg.SpawnInterval, "spawn-interval", cfg.SpawnInterval, "time between dot spawn attempts")
	fs.Float64Var(&cfg.DotChance, "dot-chance", cfg.DotChance, "probability that a cell starts with a dot")
	fs.IntVar(&cfg.DotCap, "dot-cap", cfg.DotCap, "no dots spawn while this many are on the board")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "play sound effects")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	if v := getenv(envLayout); v != "" {
		c.Layout = v
	}
	if v := getenv(envSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envSeed, err)
		}
		c.Seed = n
	}
	c.Audio = getenv(envAudio) == "1"
	c.LocaleDir = getenv(envLocaleDir)
	c.Lang = getenv(envLang)
	c.LogFile = getenv(envLog)
	return nil
}

// Rules resolves the layout and builds validated game rules.
func (c Config) Rules() (state.Rules, error) {
	l, err := tm.LayoutByName(c.Layout)
	if err != nil {
		return state.Rules{}, err
	}
	r := state.DefaultRules(l)
	r.GhostInterval = c.GhostInterval
	r.SpawnInterval = c.SpawnInterval
	r.DotChance = c.DotChance
	r.DotCap = c.DotCap
	return r, nil
}

// NewRand returns the seeded source, or a time-seeded one when Seed is 0.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewState is the usual entry point for binaries: rules, seeded source and game.
func (c Config) NewState() (*state.State, error) {
	r, err := c.Rules()
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	s, err := state.New(r, c.NewRand())
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return s, nil
}
