package dodge

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	State     State
	Outcome   Outcome
	Score     int
	Collected bool // a coin was collected this tick
}

// Session owns the world and runs the per-tick procedure. It is not safe for
// concurrent use; exactly one loop drives it.
type Session struct {
	id     uuid.UUID
	grid   core.Grid
	seed   int64
	rng    *rand.Rand
	logger *log.Logger

	player  core.Point
	enemies []Enemy
	coins   []Coin
	score   int

	moveGate  Gate
	enemyGate Gate
	coinGate  Gate

	state   State
	outcome Outcome
	started time.Time
	now     time.Time
	tick    uint64
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session events to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession starts a session at now: the player in the grid center and one
// dormant enemy at (1, 1). All gates start counting from now.
func NewSession(now time.Time, seed int64, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New(),
		grid:    DefaultGrid,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  log.New(io.Discard),
		started: now,
		now:     now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.player = s.grid.Center()
	s.enemies = []Enemy{{Pos: core.Pt(1, 1), SpawnedAt: now}}
	s.moveGate = NewGate(EnemyMoveInterval, now)
	s.enemyGate = NewGate(EnemySpawnInterval, now)
	s.coinGate = NewGate(CoinSpawnInterval, now)

	s.logger.Info("session started", "session", s.id, "seed", seed)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Step runs one tick at now with at most one input action.
// Once the session has ended, Step does nothing.
func (s *Session) Step(now time.Time, action core.Action) StepResult {
	if s.state == StateEnded {
		return s.stepResult(false)
	}
	s.tick++
	s.now = now

	if action == core.ActionQuit {
		s.end(OutcomeQuit)
		return s.stepResult(false)
	}
	s.applyMove(action)

	if s.moveGate.TryFire(now) {
		if n := ActivateDueEnemies(s.enemies, now); n > 0 {
			s.logger.Debug("enemies activated", "session", s.id, "count", n)
		}
		AdvanceEnemies(s.enemies, s.player)
	}

	if s.enemyGate.TryFire(now) {
		var ok bool
		s.enemies, ok = SpawnEnemy(s.enemies, s.player, s.grid, s.rng, now)
		if ok {
			e := s.enemies[len(s.enemies)-1]
			s.logger.Debug("enemy spawned", "session", s.id, "x", e.Pos.X, "y", e.Pos.Y, "enemies", len(s.enemies))
		} else {
			s.logger.Debug("enemy spawn skipped", "session", s.id, "reason", "grid saturated")
		}
	}

	if s.coinGate.TryFire(now) {
		var ok bool
		s.coins, ok = SpawnCoin(s.coins, s.enemies, s.player, s.grid, s.rng)
		if ok {
			c := s.coins[len(s.coins)-1]
			s.logger.Debug("coin spawned", "session", s.id, "x", c.Pos.X, "y", c.Pos.Y)
		} else {
			s.logger.Debug("coin spawn skipped", "session", s.id, "reason", "grid saturated")
		}
	}

	var collected bool
	s.coins, collected = CollectCoin(s.player, s.coins)
	if collected {
		s.score++
		s.logger.Debug("coin collected", "session", s.id, "score", s.score)
	}

	if CheckCollision(s.player, s.enemies) {
		s.end(OutcomeCaught)
	}

	return s.stepResult(collected)
}

// applyMove shifts the player one cell, clamped to the grid.
func (s *Session) applyMove(a core.Action) {
	dx, dy := a.Delta()
	if dx == 0 && dy == 0 {
		return
	}
	s.player = s.grid.Clamp(s.player.Add(dx, dy))
}

func (s *Session) end(o Outcome) {
	s.state = StateEnded
	s.outcome = o
	s.logger.Info("session ended",
		"session", s.id,
		"outcome", o,
		"score", s.score,
		"enemies", len(s.enemies),
		"duration", s.now.Sub(s.started).Round(time.Millisecond),
	)
}

func (s *Session) stepResult(collected bool) StepResult {
	return StepResult{
		State:     s.state,
		Outcome:   s.outcome,
		Score:     s.score,
		Collected: collected,
	}
}

// Result reports the outcome; Outcome is OutcomeNone while running.
func (s *Session) Result() Result {
	return Result{
		ID:       s.id,
		Outcome:  s.outcome,
		Score:    s.score,
		Duration: s.now.Sub(s.started),
	}
}
