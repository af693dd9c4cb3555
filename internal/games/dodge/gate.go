package dodge

import "time"

// Gate fires a subsystem at most once per Interval. Each gated subsystem owns
// its own Gate, so gates drift independently; jitter only ever delays a fire.
type Gate struct {
	Interval time.Duration
	last     time.Time
}

// NewGate creates a gate whose first fire is due one interval after start.
func NewGate(interval time.Duration, start time.Time) Gate {
	return Gate{Interval: interval, last: start}
}

// TryFire reports whether at least Interval has elapsed since the last fire,
// and if so records now as the new last fire.
func (g *Gate) TryFire(now time.Time) bool {
	if now.Sub(g.last) < g.Interval {
		return false
	}
	g.last = now
	return true
}
