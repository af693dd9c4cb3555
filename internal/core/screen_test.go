package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'E', ColorBrightRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'E' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(5, 5) = %+v, expected E/BrightRed", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawHLine(0, 1, 4, '-', ColorGray)
	s.Clear()

	for x := 0; x < 4; x++ {
		if c := s.GetCell(x, 1); c.Rune != ' ' || c.Color != ColorDefault {
			t.Errorf("After Clear, expected blank at (%d, 1), got %+v", x, c)
		}
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Score: 3", ColorBrightWhite)

	for i, r := range "Score: 3" {
		if c := s.GetCell(2+i, 1); c.Rune != r || c.Color != ColorBrightWhite {
			t.Errorf("GetCell(%d, 1) = %+v, expected %q in bright white", 2+i, c, r)
		}
	}

	// Text should be clipped at boundaries
	s.DrawTextColor(18, 0, "Hello", ColorDefault)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
	if s.GetCell(0, 1).Rune != ' ' {
		t.Error("clipped text must not wrap to the next row")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, '-', ColorGray)
	s.DrawVLine(3, 4, 4, '|', ColorGray)

	for x := 2; x < 7; x++ {
		if s.GetCell(x, 2).Rune != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, s.GetCell(x, 2).Rune)
		}
	}
	for y := 4; y < 8; y++ {
		if s.GetCell(3, y).Rune != '|' {
			t.Errorf("DrawVLine: expected '|' at (3, %d), got %q", y, s.GetCell(3, y).Rune)
		}
	}
}
