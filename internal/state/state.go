// Package state holds the grid game model: walls, dots, the player, ghosts
// and score, together with the timers that drive ghosts and dot spawning.
// It has no rendering dependencies; frontends call its operations and draw
// what they read back.
package state

import (
	"errors"
	"fmt"
	"time"

	"gridpac/internal/entities"
	tm "gridpac/internal/tilemap"

	"github.com/google/uuid"
)

const (
	DefaultDotChance     = 0.3
	DefaultDotCap        = 75
	DefaultGhostInterval = 300 * time.Millisecond
	DefaultSpawnInterval = 2 * time.Second
)

var ErrInvalidRules = errors.New("invalid rules")

// Rand is the random source used for dot scatter, spawning and ghost moves.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

type Rules struct {
	Layout        tm.Layout
	DotChance     float64
	DotCap        int
	GhostInterval time.Duration
	SpawnInterval time.Duration
}

// DefaultRules returns the standard timings and dot settings for a layout.
func DefaultRules(l tm.Layout) Rules {
	return Rules{
		Layout:        l,
		DotChance:     DefaultDotChance,
		DotCap:        DefaultDotCap,
		GhostInterval: DefaultGhostInterval,
		SpawnInterval: DefaultSpawnInterval,
	}
}

func (r Rules) validate() error {
	l := r.Layout
	switch {
	case l.Size <= 0:
		return fmt.Errorf("%w: grid size %d", ErrInvalidRules, l.Size)
	case r.DotChance < 0 || r.DotChance > 1:
		return fmt.Errorf("%w: dot chance %v outside [0,1]", ErrInvalidRules, r.DotChance)
	case r.DotCap < 0:
		return fmt.Errorf("%w: negative dot cap %d", ErrInvalidRules, r.DotCap)
	case r.GhostInterval <= 0 || r.SpawnInterval <= 0:
		return fmt.Errorf("%w: timer intervals must be positive", ErrInvalidRules)
	}
	p := l.PlayerStart
	if p.X < 0 || p.Y < 0 || p.X >= l.Size || p.Y >= l.Size || l.Walls.Has(p) {
		return fmt.Errorf("%w: player start %v is not an open cell", ErrInvalidRules, p)
	}
	return nil
}

// Result reports what a single operation changed.
type Result struct {
	Collected int
	Spawned   int
	// Outcome is set only by the call that ended the round.
	Outcome Outcome
}

func (r *Result) merge(o Result) {
	r.Collected += o.Collected
	r.Spawned += o.Spawned
	if o.Outcome != OutcomeNone {
		r.Outcome = o.Outcome
	}
}

type State struct {
	rules Rules
	rng   Rand
	grid  *tm.TileMap

	player      entities.Player
	ghosts      []entities.Ghost
	ghostStarts []entities.Point

	score   int
	phase   Phase
	outcome Outcome
	round   uuid.UUID

	ghostTimer Timer
	spawnTimer Timer
}

// New builds the grid, places the player and ghosts at their start cells,
// scatters the initial dots and starts both timers.
func New(rules Rules, rng Rand) (*State, error) {
	if err := rules.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidRules)
	}
	s := &State{
		rules:      rules,
		rng:        rng,
		grid:       tm.New(rules.Layout.Size, rules.Layout.Walls),
		ghostTimer: Timer{Interval: rules.GhostInterval},
		spawnTimer: Timer{Interval: rules.SpawnInterval},
	}
	for i, sp := range rules.Layout.Ghosts {
		x, y := s.grid.NearestOpen(sp.At.X, sp.At.Y)
		if s.grid.IsWall(x, y) {
			return nil, fmt.Errorf("%w: no open cell near ghost start %v", ErrInvalidRules, sp.At)
		}
		s.ghostStarts = append(s.ghostStarts, entities.Point{X: x, Y: y})
		s.ghosts = append(s.ghosts, entities.Ghost{Glyph: sp.Glyph, Palette: i})
	}
	s.Reset()
	return s, nil
}

func (s *State) Size() int              { return s.rules.Layout.Size }
func (s *State) LayoutName() string     { return s.rules.Layout.Name }
func (s *State) Player() entities.Point { return s.player.Pos }
func (s *State) Score() int             { return s.score }
func (s *State) Phase() Phase           { return s.phase }
func (s *State) Outcome() Outcome       { return s.outcome }
func (s *State) Round() uuid.UUID       { return s.round }
func (s *State) DotCount() int          { return s.grid.DotCount() }
func (s *State) HasDot(x, y int) bool   { return s.grid.HasDot(x, y) }
func (s *State) IsWall(x, y int) bool   { return s.grid.IsWall(x, y) }
func (s *State) TileAt(x, y int) tm.Tile {
	return s.grid.At(x, y)
}

// Ghosts returns a copy of the ghost list.
func (s *State) Ghosts() []entities.Ghost {
	out := make([]entities.Ghost, len(s.ghosts))
	copy(out, s.ghosts)
	return out
}

// TimersRunning reports whether the ghost and spawn timers are active.
func (s *State) TimersRunning() bool {
	return s.ghostTimer.Running() && s.spawnTimer.Running()
}

// Advance moves both timers forward by dt, running a ghost tick for every
// elapsed ghost interval and a spawn attempt for every elapsed spawn interval.
func (s *State) Advance(dt time.Duration) Result {
	var res Result
	if s.phase != PhaseRunning {
		return res
	}
	for n := s.ghostTimer.Advance(dt); n > 0 && s.phase == PhaseRunning; n-- {
		res.merge(s.TickGhosts())
	}
	for n := s.spawnTimer.Advance(dt); n > 0 && s.phase == PhaseRunning; n-- {
		if s.SpawnDot() {
			res.Spawned++
		}
	}
	return res
}
