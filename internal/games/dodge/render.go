package dodge

import (
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Glyphs used for the playfield.
const (
	GlyphPlayer       = '@'
	GlyphEnemy        = 'E'
	GlyphDormantEnemy = 'e'
	GlyphCoin         = '$'
	GlyphEmpty        = '.'
)

// FrameSize returns the screen cells needed to draw a grid: one HUD line plus
// the bordered playfield.
func FrameSize(g core.Grid) (w, h int) {
	return g.W + 2, g.H + 3
}

// Render draws snap into dst starting at the top-left corner. Cells beyond the
// screen are clipped. Render only reads the snapshot.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	dst.DrawTextColor(0, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	w, h := FrameSize(snap.Grid)
	top, bottom := 1, h-1
	dst.DrawHLine(1, top, snap.Grid.W, '-', core.ColorGray)
	dst.DrawHLine(1, bottom, snap.Grid.W, '-', core.ColorGray)
	dst.DrawVLine(0, top+1, snap.Grid.H, '|', core.ColorGray)
	dst.DrawVLine(w-1, top+1, snap.Grid.H, '|', core.ColorGray)
	for _, x := range []int{0, w - 1} {
		dst.SetColor(x, top, '+', core.ColorGray)
		dst.SetColor(x, bottom, '+', core.ColorGray)
	}

	for y := 0; y < snap.Grid.H; y++ {
		for x := 0; x < snap.Grid.W; x++ {
			dst.Set(x+1, y+top+1, GlyphEmpty)
		}
	}

	cell := func(p core.Point, r rune, c core.Color) {
		dst.SetColor(p.X+1, p.Y+top+1, r, c)
	}

	for _, c := range snap.Coins {
		cell(c.Pos, GlyphCoin, core.ColorBrightYellow)
	}

	// Dormant first so an active enemy sharing the cell wins.
	for _, e := range snap.Enemies {
		if !e.Dormant() {
			continue
		}
		if BlinkVisible(snap.Now.Sub(e.SpawnedAt)) {
			cell(e.Pos, GlyphDormantEnemy, core.ColorYellow)
		} else if !coinAt(snap.Coins, e.Pos) {
			cell(e.Pos, GlyphEmpty, core.ColorDefault)
		}
	}
	for _, e := range snap.Enemies {
		if !e.Dormant() {
			cell(e.Pos, GlyphEnemy, core.ColorBrightRed)
		}
	}

	cell(snap.Player, GlyphPlayer, core.ColorBrightWhite)
}

func coinAt(coins []Coin, p core.Point) bool {
	return coinIndex(coins, p) >= 0
}
