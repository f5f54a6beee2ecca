package state

import (
	"testing"

	"gridpac/internal/entities"
	tm "gridpac/internal/tilemap"
)

func TestMovePlayerBlocked(t *testing.T) {
	tests := []struct {
		name   string
		layout tm.Layout
		from   entities.Point
		dir    entities.Direction
	}{
		{name: "border up", layout: tm.Classic25(), from: pt(1, 1), dir: entities.DirUp},
		{name: "border left", layout: tm.Classic25(), from: pt(1, 1), dir: entities.DirLeft},
		{name: "border down", layout: tm.Classic25(), from: pt(23, 23), dir: entities.DirDown},
		{name: "border right", layout: tm.Classic25(), from: pt(23, 23), dir: entities.DirRight},
		{name: "inner wall right", layout: tm.Classic25(), from: pt(9, 11), dir: entities.DirRight},
		{name: "edge up", layout: tm.Open20(), from: pt(0, 0), dir: entities.DirUp},
		{name: "edge left", layout: tm.Open20(), from: pt(0, 0), dir: entities.DirLeft},
		{name: "edge down", layout: tm.Open20(), from: pt(19, 19), dir: entities.DirDown},
		{name: "edge right", layout: tm.Open20(), from: pt(19, 19), dir: entities.DirRight},
		{name: "no direction", layout: tm.Open20(), from: pt(9, 9), dir: entities.DirNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newEmpty(t, tc.layout)
			s.player.Pos = tc.from
			res := s.MovePlayer(tc.dir)
			if s.Player() != tc.from {
				t.Fatalf("player moved from %v to %v", tc.from, s.Player())
			}
			if res != (Result{}) {
				t.Fatalf("blocked move reported %+v", res)
			}
		})
	}
}

func TestMoveUpStopsAtTopEdge(t *testing.T) {
	s, _ := newEmpty(t, tm.Open20())
	if s.Player() != pt(9, 9) {
		t.Fatalf("open20 player starts at %v, want (9,9)", s.Player())
	}
	for i := 0; i < 15; i++ {
		s.MovePlayer(entities.DirUp)
	}
	if s.Player() != pt(9, 0) {
		t.Fatalf("player at %v after moving up, want (9,0)", s.Player())
	}
	s.MovePlayer(entities.DirUp)
	if s.Player().Y != 0 {
		t.Fatalf("y left the grid: %d", s.Player().Y)
	}
}

func TestMovePlayerOpenCell(t *testing.T) {
	s, _ := newEmpty(t, tm.Open20())
	s.MovePlayer(entities.DirLeft)
	if s.Player() != pt(8, 9) {
		t.Fatalf("player at %v, want (8,9)", s.Player())
	}
}

func TestTickGhostsRandomSteps(t *testing.T) {
	s, rng := newEmpty(t, tm.Open20())
	// right, left, down, up
	rng.queue(0, 1, 2, 3)
	s.TickGhosts()
	want := []entities.Point{pt(3, 2), pt(16, 2), pt(2, 18), pt(17, 16)}
	for i, gh := range s.Ghosts() {
		if gh.Pos != want[i] {
			t.Errorf("ghost %d at %v, want %v", i, gh.Pos, want[i])
		}
	}
}

func TestTickGhostsRejectsIllegalMoves(t *testing.T) {
	s, rng := newEmpty(t, tm.Open20())
	s.ghosts[0].Pos = pt(19, 0) // right edge
	s.ghosts[1].Pos = pt(3, 4)  // wall at (4,4)
	s.ghosts[2].Pos = pt(0, 19) // bottom edge
	s.ghosts[3].Pos = pt(15, 7) // wall at (15,6)
	rng.queue(0, 0, 2, 3)
	s.TickGhosts()
	want := []entities.Point{pt(19, 0), pt(3, 4), pt(0, 19), pt(15, 7)}
	for i, gh := range s.Ghosts() {
		if gh.Pos != want[i] {
			t.Errorf("ghost %d moved to %v, want it to stay at %v", i, gh.Pos, want[i])
		}
	}
}

func TestGhostWalksIntoPlayer(t *testing.T) {
	s, rng := newEmpty(t, tm.Open20())
	placeDots(t, s, pt(0, 0))
	s.ghosts[0].Pos = pt(8, 9)
	rng.queue(0, 0, 0, 0)
	res := s.TickGhosts()
	if res.Outcome != OutcomeLoss || s.Phase() != PhaseEnded {
		t.Fatalf("expected loss after ghost reached the player, got %v", res.Outcome)
	}
}
