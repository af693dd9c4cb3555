package dodge

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(epoch, 12345)
}

func TestNewSessionLayout(t *testing.T) {
	s := newTestSession(t)
	snap := s.Snapshot()

	if snap.Player != core.Pt(Width/2, Height/2) {
		t.Errorf("player starts at %v, expected grid center", snap.Player)
	}
	if len(snap.Enemies) != 1 || snap.Enemies[0].Pos != core.Pt(1, 1) || snap.Enemies[0].Active {
		t.Errorf("expected one dormant enemy at (1, 1), got %+v", snap.Enemies)
	}
	if len(snap.Coins) != 0 || snap.Score != 0 {
		t.Errorf("expected no coins and zero score, got %d coins score %d", len(snap.Coins), snap.Score)
	}
	if s.State() != StateRunning {
		t.Errorf("State() = %v, expected running", s.State())
	}
}

func TestSessionEnemyWakesAndChases(t *testing.T) {
	early := newTestSession(t)
	early.Step(epoch.Add(4900*time.Millisecond), core.ActionNone)
	if e := early.Snapshot().Enemies[0]; e.Active || e.Pos != core.Pt(1, 1) {
		t.Fatalf("enemy should still be dormant and still at 4.9s, got %+v", e)
	}

	s := newTestSession(t)
	s.Step(epoch.Add(5100*time.Millisecond), core.ActionNone)
	e := s.Snapshot().Enemies[0]
	if !e.Active {
		t.Fatal("enemy should be active at 5.1s")
	}
	if e.Pos != core.Pt(2, 2) {
		t.Errorf("enemy should have stepped toward the player, at %v", e.Pos)
	}

	// Movement is gated: a tick 10ms later must not move it again.
	s.Step(epoch.Add(5110*time.Millisecond), core.ActionNone)
	if got := s.Snapshot().Enemies[0].Pos; got != core.Pt(2, 2) {
		t.Errorf("enemy moved before the movement interval elapsed, at %v", got)
	}

	s.Step(epoch.Add(5400*time.Millisecond), core.ActionNone)
	if got := s.Snapshot().Enemies[0].Pos; got != core.Pt(3, 3) {
		t.Errorf("enemy should step again after 300ms, at %v", got)
	}
}

func TestSessionCaughtEndsWithScore(t *testing.T) {
	s := newTestSession(t)
	s.Step(epoch.Add(5100*time.Millisecond), core.ActionNone)

	s.score = 3
	s.player = s.enemies[0].Pos

	res := s.Step(epoch.Add(5110*time.Millisecond), core.ActionNone)
	if res.State != StateEnded || res.Outcome != OutcomeCaught {
		t.Fatalf("expected caught ending, got %+v", res)
	}
	if r := s.Result(); r.Score != 3 || r.Outcome != OutcomeCaught {
		t.Errorf("Result() = %+v, expected score 3 caught", r)
	}
}

func TestSessionDormantEnemyIsHarmless(t *testing.T) {
	s := newTestSession(t)
	s.player = core.Pt(1, 1)

	res := s.Step(epoch.Add(time.Second), core.ActionNone)
	if res.State != StateRunning {
		t.Error("touching a dormant enemy should not end the session")
	}
}

func TestSessionQuit(t *testing.T) {
	s := newTestSession(t)
	s.Step(epoch.Add(time.Millisecond), core.ActionRight)

	res := s.Step(epoch.Add(2*time.Millisecond), core.ActionQuit)
	if res.State != StateEnded || res.Outcome != OutcomeQuit {
		t.Fatalf("expected quit ending, got %+v", res)
	}

	// Ended is terminal: further ticks change nothing.
	before := s.Snapshot()
	s.Step(epoch.Add(time.Minute), core.ActionLeft)
	after := s.Snapshot()
	if after.Tick != before.Tick || after.Player != before.Player || len(after.Enemies) != len(before.Enemies) {
		t.Error("session kept processing after it ended")
	}
	if s.Result().Message() != "Final score: 0. Goodbye!" {
		t.Errorf("unexpected quit message %q", s.Result().Message())
	}
}

func TestSessionMovesAreClamped(t *testing.T) {
	s := newTestSession(t)

	now := epoch
	for i := 0; i < Width; i++ {
		s.Step(now, core.ActionLeft)
	}
	for i := 0; i < Height; i++ {
		s.Step(now, core.ActionDown)
	}

	if got := s.Snapshot().Player; got != core.Pt(0, Height-1) {
		t.Errorf("player at %v, expected bottom-left corner", got)
	}
}

func TestSessionCollectsCoin(t *testing.T) {
	s := newTestSession(t)
	target := s.player.Add(1, 0)
	s.coins = []Coin{{Pos: target}}

	res := s.Step(epoch.Add(time.Millisecond), core.ActionRight)
	if !res.Collected || res.Score != 1 {
		t.Fatalf("expected coin collection, got %+v", res)
	}
	if len(s.Snapshot().Coins) != 0 {
		t.Error("collected coin should be removed")
	}
}

func TestSessionSpawnsOnSchedule(t *testing.T) {
	s := newTestSession(t)

	s.Step(epoch.Add(9999*time.Millisecond), core.ActionNone)
	if len(s.coins) != 0 {
		t.Fatal("coin spawned before 10s")
	}

	s.Step(epoch.Add(10*time.Second), core.ActionNone)
	if len(s.coins) != 1 {
		t.Fatalf("expected one coin at 10s, got %d", len(s.coins))
	}
	if c := s.coins[0]; c.Pos == s.player || enemyAt(s.enemies, c.Pos) {
		t.Errorf("coin spawned on an occupied cell %v", c.Pos)
	}

	s.Step(epoch.Add(14999*time.Millisecond), core.ActionNone)
	if len(s.enemies) != 1 {
		t.Fatal("enemy spawned before 15s")
	}

	spawnAt := epoch.Add(15 * time.Second)
	s.Step(spawnAt, core.ActionNone)
	if len(s.enemies) != 2 {
		t.Fatalf("expected a second enemy at 15s, got %d", len(s.enemies))
	}
	if e := s.enemies[1]; e.Active || !e.SpawnedAt.Equal(spawnAt) || e.Pos == s.player {
		t.Errorf("new enemy should be dormant, stamped and off the player: %+v", e)
	}
}

func TestSessionDeterminism(t *testing.T) {
	s1 := NewSession(epoch, 99)
	s2 := NewSession(epoch, 99)

	actions := []core.Action{core.ActionUp, core.ActionNone, core.ActionLeft, core.ActionDown, core.ActionRight}
	now := epoch
	for i := 0; i < 3000; i++ {
		now = now.Add(10 * time.Millisecond)
		a := actions[i%len(actions)]
		r1 := s1.Step(now, a)
		r2 := s2.Step(now, a)
		if r1 != r2 {
			t.Fatalf("tick %d: results diverged %+v vs %+v", i, r1, r2)
		}
	}

	snap1, snap2 := s1.Snapshot(), s2.Snapshot()
	if len(snap1.Enemies) != len(snap2.Enemies) || len(snap1.Coins) != len(snap2.Coins) {
		t.Fatal("entity counts diverged")
	}
	for i := range snap1.Enemies {
		if snap1.Enemies[i] != snap2.Enemies[i] {
			t.Errorf("enemy %d diverged: %+v vs %+v", i, snap1.Enemies[i], snap2.Enemies[i])
		}
	}
	for i := range snap1.Coins {
		if snap1.Coins[i] != snap2.Coins[i] {
			t.Errorf("coin %d diverged: %+v vs %+v", i, snap1.Coins[i], snap2.Coins[i])
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSession(t)
	s.coins = []Coin{{Pos: core.Pt(3, 3)}}

	snap := s.Snapshot()
	snap.Enemies[0].Pos = core.Pt(40, 20)
	snap.Coins[0].Pos = core.Pt(41, 21)

	if s.enemies[0].Pos != core.Pt(1, 1) || s.coins[0].Pos != core.Pt(3, 3) {
		t.Error("mutating a snapshot changed the session")
	}
}

func TestResultMessage(t *testing.T) {
	r := Result{Outcome: OutcomeCaught, Score: 7}
	want := "Game Over! The enemy caught you. Final score: 7. Goodbye!"
	if r.Message() != want {
		t.Errorf("Message() = %q, expected %q", r.Message(), want)
	}
}
