package state

import "time"

// Timer is a repeating interval driven by explicit time steps instead of the
// wall clock. Stopping it discards any partial interval.
type Timer struct {
	Interval time.Duration
	elapsed  time.Duration
	running  bool
}

func (t *Timer) Start() {
	t.running = true
	t.elapsed = 0
}

func (t *Timer) Stop() {
	t.running = false
	t.elapsed = 0
}

func (t *Timer) Running() bool { return t.running }

// Advance adds dt and returns how many whole intervals elapsed.
func (t *Timer) Advance(dt time.Duration) int {
	if !t.running || t.Interval <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.Interval)
	t.elapsed -= time.Duration(n) * t.Interval
	return n
}
