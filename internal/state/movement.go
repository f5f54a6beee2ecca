package state

import "gridpac/internal/entities"

// MovePlayer steps the player one cell. Moves into walls or off the grid are ignored.
func (s *State) MovePlayer(dir entities.Direction) Result {
	if s.phase != PhaseRunning || dir == entities.DirNone {
		return Result{}
	}
	next := s.player.Pos.Step(dir)
	if s.grid.IsWall(next.X, next.Y) {
		return Result{}
	}
	s.player.Pos = next
	return s.CheckCollisions()
}

// TickGhosts gives every ghost one random step, then checks collisions so a
// ghost walking onto the player ends the round.
func (s *State) TickGhosts() Result {
	if s.phase != PhaseRunning {
		return Result{}
	}
	for i := range s.ghosts {
		gh := &s.ghosts[i]
		d := entities.Cardinal[s.rng.Intn(len(entities.Cardinal))]
		next := gh.Pos.Step(d)
		if !s.grid.IsWall(next.X, next.Y) {
			gh.Pos = next
		}
	}
	return s.CheckCollisions()
}
