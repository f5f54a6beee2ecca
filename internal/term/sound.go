package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Sound plays sine beeps through the speaker. A nil or disabled Sound is silent.
type Sound struct {
	rate    beep.SampleRate
	enabled bool
}

// NewSound initializes the speaker when enabled. On failure the returned
// Sound is silent and the error reports why.
func NewSound(enabled bool) (*Sound, error) {
	s := &Sound{rate: beep.SampleRate(44100)}
	if !enabled {
		return s, nil
	}
	if err := speaker.Init(s.rate, s.rate.N(time.Second/10)); err != nil {
		return s, err
	}
	s.enabled = true
	return s, nil
}

func (s *Sound) tone(freq float64, d time.Duration) {
	if s == nil || !s.enabled {
		return
	}
	sine, err := generators.SineTone(s.rate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(s.rate.N(d), sine))
}

func (s *Sound) Dot()  { s.tone(880, 50*time.Millisecond) }
func (s *Sound) Win()  { s.tone(1320, 400*time.Millisecond) }
func (s *Sound) Loss() { s.tone(220, 400*time.Millisecond) }

func (s *Sound) Close() {
	if s != nil && s.enabled {
		speaker.Close()
	}
}
