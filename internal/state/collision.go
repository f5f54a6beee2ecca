package state

import (
	"gridpac/internal/entities"

	"github.com/google/uuid"
)

// CheckCollisions collects a dot under the player and ends the round when the
// last dot is gone or a ghost shares the player's cell. A win is checked first.
func (s *State) CheckCollisions() Result {
	var res Result
	if s.phase != PhaseRunning {
		return res
	}
	p := s.player.Pos
	if s.grid.EatDotAt(p.X, p.Y) {
		s.score++
		res.Collected++
		if s.grid.DotCount() == 0 {
			res.Outcome = s.EndGame(true)
			return res
		}
	}
	if s.ghostAt(p) {
		res.Outcome = s.EndGame(false)
	}
	return res
}

// SpawnDot makes one placement attempt at a random cell. It adds nothing when
// the dot cap is reached or the cell holds a wall, dot, ghost or the player.
func (s *State) SpawnDot() bool {
	if s.phase != PhaseRunning || s.grid.DotCount() >= s.rules.DotCap {
		return false
	}
	n := s.Size()
	p := entities.Point{X: s.rng.Intn(n), Y: s.rng.Intn(n)}
	if p == s.player.Pos || s.ghostAt(p) {
		return false
	}
	return s.grid.PutDot(p.X, p.Y)
}

// EndGame stops both timers and records the outcome. It returns the recorded
// outcome, or OutcomeNone when the round had already ended.
func (s *State) EndGame(won bool) Outcome {
	if s.phase == PhaseEnded {
		return OutcomeNone
	}
	s.ghostTimer.Stop()
	s.spawnTimer.Stop()
	s.phase = PhaseEnded
	if won {
		s.outcome = OutcomeWin
	} else {
		s.outcome = OutcomeLoss
	}
	return s.outcome
}

// Reset starts a fresh round: start positions, zero score, new dot scatter
// and restarted timers.
func (s *State) Reset() {
	s.grid.ClearDots()
	s.player.Pos = s.rules.Layout.PlayerStart
	for i := range s.ghosts {
		s.ghosts[i].Pos = s.ghostStarts[i]
	}
	s.score = 0
	s.scatterDots()
	s.phase = PhaseRunning
	s.outcome = OutcomeNone
	s.round = uuid.New()
	s.ghostTimer.Start()
	s.spawnTimer.Start()
}

func (s *State) scatterDots() {
	start := s.rules.Layout.PlayerStart
	for y := 0; y < s.grid.Height; y++ {
		for x := 0; x < s.grid.Width; x++ {
			if s.grid.IsWall(x, y) || (x == start.X && y == start.Y) {
				continue
			}
			if s.rng.Float64() < s.rules.DotChance {
				s.grid.PutDot(x, y)
			}
		}
	}
}

func (s *State) ghostAt(p entities.Point) bool {
	for _, gh := range s.ghosts {
		if gh.Pos == p {
			return true
		}
	}
	return false
}
