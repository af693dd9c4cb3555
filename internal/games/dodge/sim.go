package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// ActivateDueEnemies wakes every dormant enemy whose dormancy window has
// strictly elapsed at now. Activation never reverts, so calling it every tick
// is safe. Returns the number of enemies activated by this call.
func ActivateDueEnemies(enemies []Enemy, now time.Time) int {
	n := 0
	for i := range enemies {
		e := &enemies[i]
		if !e.Active && now.Sub(e.SpawnedAt) > ActivationDelay {
			e.Active = true
			n++
		}
	}
	return n
}

// AdvanceEnemies steps every active enemy one cell toward target on each
// misaligned axis independently, giving 8-directional movement.
// Dormant enemies do not move.
func AdvanceEnemies(enemies []Enemy, target core.Point) {
	for i := range enemies {
		e := &enemies[i]
		if !e.Active {
			continue
		}
		e.Pos.X += core.Sign(target.X - e.Pos.X)
		e.Pos.Y += core.Sign(target.Y - e.Pos.Y)
	}
}

// SpawnEnemy appends a dormant enemy stamped with now on a random cell that
// holds neither an enemy nor the player. It reports false and leaves enemies
// unchanged when no free cell was found within MaxSpawnAttempts.
func SpawnEnemy(enemies []Enemy, player core.Point, g core.Grid, rng *rand.Rand, now time.Time) ([]Enemy, bool) {
	p, ok := placeRandom(g, rng, func(p core.Point) bool {
		return p == player || enemyAt(enemies, p)
	})
	if !ok {
		return enemies, false
	}
	return append(enemies, Enemy{Pos: p, SpawnedAt: now}), true
}

// SpawnCoin appends a coin on a random cell free of enemies, coins and the
// player. Same bounded-retry policy as SpawnEnemy.
func SpawnCoin(coins []Coin, enemies []Enemy, player core.Point, g core.Grid, rng *rand.Rand) ([]Coin, bool) {
	p, ok := placeRandom(g, rng, func(p core.Point) bool {
		return p == player || enemyAt(enemies, p) || coinIndex(coins, p) >= 0
	})
	if !ok {
		return coins, false
	}
	return append(coins, Coin{Pos: p}), true
}

// CollectCoin removes the coin under the player, if any, and reports whether
// one was collected. Order of the remaining coins is not preserved.
func CollectCoin(player core.Point, coins []Coin) ([]Coin, bool) {
	i := coinIndex(coins, player)
	if i < 0 {
		return coins, false
	}
	last := len(coins) - 1
	coins[i] = coins[last]
	return coins[:last], true
}

// CheckCollision reports whether an active enemy occupies the player's cell.
func CheckCollision(player core.Point, enemies []Enemy) bool {
	for _, e := range enemies {
		if e.Active && e.Pos == player {
			return true
		}
	}
	return false
}

// placeRandom samples grid cells until one is not occupied.
func placeRandom(g core.Grid, rng *rand.Rand, occupied func(core.Point) bool) (core.Point, bool) {
	for range MaxSpawnAttempts {
		p := g.Random(rng)
		if !occupied(p) {
			return p, true
		}
	}
	return core.Point{}, false
}

func enemyAt(enemies []Enemy, p core.Point) bool {
	for _, e := range enemies {
		if e.Pos == p {
			return true
		}
	}
	return false
}

func coinIndex(coins []Coin, p core.Point) int {
	for i, c := range coins {
		if c.Pos == p {
			return i
		}
	}
	return -1
}
