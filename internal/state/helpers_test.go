package state

import (
	"testing"

	"gridpac/internal/entities"
	tm "gridpac/internal/tilemap"
)

// scriptRand replays queued Intn values and answers Float64 with a constant.
// Once the queue is empty Intn returns 0.
type scriptRand struct {
	ints  []int
	float float64
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *scriptRand) Float64() float64 { return r.float }

func (r *scriptRand) queue(vals ...int) { r.ints = append(r.ints, vals...) }

// newEmpty returns a running game with no dots on the board.
func newEmpty(t *testing.T, l tm.Layout) (*State, *scriptRand) {
	t.Helper()
	rng := &scriptRand{float: 0.99}
	s, err := New(DefaultRules(l), rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.DotCount() != 0 {
		t.Fatalf("expected an empty board, got %d dots", s.DotCount())
	}
	return s, rng
}

func pt(x, y int) entities.Point { return entities.Point{X: x, Y: y} }

func placeDots(t *testing.T, s *State, pts ...entities.Point) {
	t.Helper()
	for _, p := range pts {
		if !s.grid.PutDot(p.X, p.Y) {
			t.Fatalf("could not place dot at %v", p)
		}
	}
}
