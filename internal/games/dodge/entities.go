// Package dodge implements the chase game: a player avatar dodges enemies that
// wake up after a dormancy window and chase it, while collecting coins that
// spawn on a timer.
//
// A Session owns the world and drives the stateless engine functions in sim.go
// once per tick. Nothing here touches a terminal; drivers render a Snapshot.
package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Playfield and timing constants. The rules are fixed at build time.
const (
	Width  = 150
	Height = 30

	ActivationDelay    = 5 * time.Second
	EnemyMoveInterval  = 300 * time.Millisecond
	EnemySpawnInterval = 15 * time.Second
	CoinSpawnInterval  = 10 * time.Second

	// MaxSpawnAttempts bounds random placement before a spawn is skipped.
	MaxSpawnAttempts = 1000

	// BlinkPhase is how long a dormant enemy stays visible, then hidden.
	BlinkPhase = 250 * time.Millisecond
)

// DefaultGrid is the playfield every session runs on.
var DefaultGrid = core.Grid{W: Width, H: Height}

// Enemy is a chaser. It is harmless and immobile until Active.
type Enemy struct {
	Pos       core.Point
	SpawnedAt time.Time
	Active    bool
}

// Dormant reports whether the enemy is still inside its wake-up window.
func (e Enemy) Dormant() bool {
	return !e.Active
}

// Coin is a collectible worth one point.
type Coin struct {
	Pos core.Point
}
