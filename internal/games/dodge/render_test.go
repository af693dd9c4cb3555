package dodge

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func renderSnapshot(snap Snapshot) *core.Screen {
	w, h := FrameSize(snap.Grid)
	dst := core.NewScreen(w, h)
	Render(snap, dst)
	return dst
}

// row returns line y of the screen as plain text.
func row(dst *core.Screen, y int) string {
	var sb strings.Builder
	for x := range dst.Width() {
		sb.WriteRune(dst.GetCell(x, y).Rune)
	}
	return sb.String()
}

// at returns the screen cell of grid point p.
func at(dst *core.Screen, p core.Point) core.Cell {
	return dst.GetCell(p.X+1, p.Y+2)
}

func TestRenderFrame(t *testing.T) {
	g := core.Grid{W: 5, H: 3}
	dst := renderSnapshot(Snapshot{Grid: g, Player: core.Pt(2, 1), Score: 4, Now: epoch})

	want := []string{
		"Score: ",
		"+-----+",
		"|.....|",
		"|..@..|",
		"|.....|",
		"+-----+",
	}
	for y, line := range want {
		if !strings.HasPrefix(row(dst, y), line) {
			t.Errorf("row %d = %q, expected prefix %q", y, row(dst, y), line)
		}
	}
	if !strings.HasPrefix(row(dst, 0), "Score: 4") {
		t.Errorf("HUD = %q", row(dst, 0))
	}
}

func TestRenderEntities(t *testing.T) {
	g := core.Grid{W: 10, H: 5}
	snap := Snapshot{
		Grid:   g,
		Player: core.Pt(0, 0),
		Now:    epoch,
		Enemies: []Enemy{
			{Pos: core.Pt(3, 1), Active: true},
			{Pos: core.Pt(4, 1), SpawnedAt: epoch},                             // dormant, visible phase
			{Pos: core.Pt(5, 1), SpawnedAt: epoch.Add(-300 * time.Millisecond)}, // dormant, hidden phase
		},
		Coins: []Coin{{Pos: core.Pt(6, 2)}},
	}
	dst := renderSnapshot(snap)

	tests := []struct {
		name  string
		p     core.Point
		r     rune
		color core.Color
	}{
		{"player", core.Pt(0, 0), GlyphPlayer, core.ColorBrightWhite},
		{"active enemy", core.Pt(3, 1), GlyphEnemy, core.ColorBrightRed},
		{"dormant visible", core.Pt(4, 1), GlyphDormantEnemy, core.ColorYellow},
		{"dormant hidden", core.Pt(5, 1), GlyphEmpty, core.ColorDefault},
		{"coin", core.Pt(6, 2), GlyphCoin, core.ColorBrightYellow},
		{"empty", core.Pt(9, 4), GlyphEmpty, core.ColorDefault},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := at(dst, tc.p)
			if c.Rune != tc.r || c.Color != tc.color {
				t.Errorf("cell %v = %q/%d, expected %q/%d", tc.p, c.Rune, c.Color, tc.r, tc.color)
			}
		})
	}
}

func TestRenderPrecedence(t *testing.T) {
	g := core.Grid{W: 4, H: 4}
	p := core.Pt(2, 2)
	snap := Snapshot{
		Grid:    g,
		Player:  p,
		Now:     epoch,
		Enemies: []Enemy{{Pos: p, Active: true}, {Pos: core.Pt(1, 1), SpawnedAt: epoch}, {Pos: core.Pt(1, 1), Active: true}},
		Coins:   []Coin{{Pos: core.Pt(1, 1)}},
	}
	dst := renderSnapshot(snap)

	if at(dst, p).Rune != GlyphPlayer {
		t.Error("player should be drawn over an enemy")
	}
	if at(dst, core.Pt(1, 1)).Rune != GlyphEnemy {
		t.Error("active enemy should be drawn over dormant enemies and coins")
	}
}

func TestRenderDoesNotMutateSnapshot(t *testing.T) {
	snap := Snapshot{
		Grid:    core.Grid{W: 4, H: 4},
		Enemies: []Enemy{{Pos: core.Pt(1, 1)}},
		Coins:   []Coin{{Pos: core.Pt(2, 2)}},
		Now:     epoch,
	}
	renderSnapshot(snap)
	if snap.Enemies[0].Pos != core.Pt(1, 1) || snap.Coins[0].Pos != core.Pt(2, 2) {
		t.Error("Render mutated the snapshot")
	}
}

func TestBlinkVisible(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want bool
	}{
		{0, true},
		{249 * time.Millisecond, true},
		{250 * time.Millisecond, false},
		{499 * time.Millisecond, false},
		{500 * time.Millisecond, true},
		{4600 * time.Millisecond, true},
		{4900 * time.Millisecond, false},
	}
	for _, tc := range tests {
		if got := BlinkVisible(tc.age); got != tc.want {
			t.Errorf("BlinkVisible(%v) = %v, expected %v", tc.age, got, tc.want)
		}
	}
}

func TestFrameSizeFitsDefaultGrid(t *testing.T) {
	w, h := FrameSize(DefaultGrid)
	if w != Width+2 || h != Height+3 {
		t.Errorf("FrameSize() = %dx%d", w, h)
	}
}
