// Package term runs the grid game in a terminal through tcell.
package term

import (
	"context"
	"log"
	"time"

	"gridpac/internal/entities"
	"gridpac/internal/state"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 50 * time.Millisecond

type Frontend struct {
	screen tcell.Screen
	state  *state.State
	sound  *Sound
}

// New binds an initialized screen to a game state. sound may be nil.
func New(screen tcell.Screen, s *state.State, sound *Sound) *Frontend {
	return &Frontend{screen: screen, state: s, sound: sound}
}

// Run owns the game state until the player quits or ctx is cancelled.
// Only this goroutine touches the state; the poller forwards events.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if f.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			f.apply(f.state.Advance(now.Sub(last)))
			last = now
		}
		f.Draw()
	}
}

// HandleEvent applies one tcell event and reports whether the player asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			f.dismiss()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case ' ':
				f.dismiss()
			}
		default:
			if dir := keyDirection(ev.Key()); dir != entities.DirNone {
				f.apply(f.state.MovePlayer(dir))
			}
		}
	}
	return false
}

func (f *Frontend) dismiss() {
	if f.state.Phase() == state.PhaseEnded {
		f.state.Reset()
	}
}

func (f *Frontend) apply(res state.Result) {
	if res.Collected > 0 {
		f.sound.Dot()
	}
	switch res.Outcome {
	case state.OutcomeWin:
		f.sound.Win()
	case state.OutcomeLoss:
		f.sound.Loss()
	default:
		return
	}
	log.Printf("round %s (%s) ended: %s score=%d", f.state.Round(), f.state.LayoutName(), res.Outcome, f.state.Score())
}

func keyDirection(k tcell.Key) entities.Direction {
	switch k {
	case tcell.KeyUp:
		return entities.DirUp
	case tcell.KeyDown:
		return entities.DirDown
	case tcell.KeyLeft:
		return entities.DirLeft
	case tcell.KeyRight:
		return entities.DirRight
	}
	return entities.DirNone
}
