package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Snapshot is a read-only copy of the world handed to renderers.
// Its slices are copies; mutating them never affects the session.
type Snapshot struct {
	Grid    core.Grid
	Player  core.Point
	Enemies []Enemy
	Coins   []Coin
	Score   int
	Now     time.Time
	Tick    uint64
	State   State
	Outcome Outcome
}

// Snapshot captures the current world.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:    s.grid,
		Player:  s.player,
		Enemies: append([]Enemy(nil), s.enemies...),
		Coins:   append([]Coin(nil), s.coins...),
		Score:   s.score,
		Now:     s.now,
		Tick:    s.tick,
		State:   s.state,
		Outcome: s.outcome,
	}
}

// BlinkVisible reports whether a dormant enemy is drawn at the given age:
// visible for one BlinkPhase, hidden for the next.
func BlinkVisible(elapsed time.Duration) bool {
	if elapsed < 0 {
		return true
	}
	return (elapsed/BlinkPhase)%2 == 0
}
