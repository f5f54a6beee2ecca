package term

import (
	"context"
	"testing"
	"time"

	"gridpac/internal/entities"
	"gridpac/internal/state"
	tm "gridpac/internal/tilemap"

	"github.com/gdamore/tcell/v2"
)

type fixedRand struct{}

func (fixedRand) Intn(int) int     { return 0 }
func (fixedRand) Float64() float64 { return 0.99 }

func newFrontend(t *testing.T, l tm.Layout) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 30)
	s, err := state.New(state.DefaultRules(l), fixedRand{})
	if err != nil {
		t.Fatalf("state.New: %v", err)
	}
	return New(screen, s, nil), screen
}

func TestDrawBoard(t *testing.T) {
	f, screen := newFrontend(t, tm.Classic25())
	f.Draw()

	if r, _, _, _ := screen.GetContent(0, 0); r != wallRune {
		t.Fatalf("corner = %q, want wall", r)
	}
	if r, _, _, _ := screen.GetContent(12*cellWidth, 12); r != playerRune {
		t.Fatalf("player cell = %q, want %q", r, playerRune)
	}
	gh := f.state.Ghosts()[0]
	if r, _, _, _ := screen.GetContent(gh.Pos.X*cellWidth, gh.Pos.Y); r != '👻' {
		t.Fatalf("ghost cell = %q, want its glyph", r)
	}
	if r, _, _, _ := screen.GetContent(0, 25); r != 'S' {
		t.Fatalf("score line should start under the board, got %q", r)
	}
}

func TestArrowKeysMovePlayer(t *testing.T) {
	f, _ := newFrontend(t, tm.Open20())
	tests := []struct {
		key  tcell.Key
		want entities.Point
	}{
		{key: tcell.KeyLeft, want: entities.Point{X: 8, Y: 9}},
		{key: tcell.KeyUp, want: entities.Point{X: 8, Y: 8}},
		{key: tcell.KeyRight, want: entities.Point{X: 9, Y: 8}},
		{key: tcell.KeyDown, want: entities.Point{X: 9, Y: 9}},
	}
	for _, tc := range tests {
		if quit := f.HandleEvent(tcell.NewEventKey(tc.key, 0, tcell.ModNone)); quit {
			t.Fatalf("arrow key requested quit")
		}
		if got := f.state.Player(); got != tc.want {
			t.Fatalf("after %v player at %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	f, _ := newFrontend(t, tm.Open20())
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		if !f.HandleEvent(ev) {
			t.Fatalf("%v should quit", ev.Name())
		}
	}
}

func TestEnterResetsEndedRound(t *testing.T) {
	f, screen := newFrontend(t, tm.Open20())
	f.state.EndGame(true)
	f.Draw()
	if r, _, _, _ := screen.GetContent(0, 20); r != 'S' {
		t.Fatalf("score line missing after end, got %q", r)
	}

	f.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if f.state.Player() != (entities.Point{X: 9, Y: 9}) {
		t.Fatalf("player moved while the round was over")
	}
	f.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if f.state.Phase() != state.PhaseRunning {
		t.Fatalf("Enter should start a new round")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _ := newFrontend(t, tm.Open20())
	ctx, cancel := context.WithTimeout(context.Background(), 3*frameInterval)
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- f.Run(ctx) }()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestSilentSound(t *testing.T) {
	s, err := NewSound(false)
	if err != nil {
		t.Fatalf("NewSound: %v", err)
	}
	s.Dot()
	s.Win()
	s.Close()

	var none *Sound
	none.Loss()
	none.Close()
}
