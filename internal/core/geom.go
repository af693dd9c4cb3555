// Package core provides fundamental types and utilities shared by the game and
// its terminal drivers. It has no UI dependencies (no Bubble Tea, no tcell) so
// the simulation stays pure and testable.
package core

import "math/rand"

// Point is a cell coordinate on the playfield grid.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grid is a fixed-size playfield. Valid cells are [0, W) x [0, H).
type Grid struct {
	W, H int
}

// Bounds returns the grid as a rectangle anchored at the origin.
func (g Grid) Bounds() Rect {
	return NewRect(0, 0, g.W, g.H)
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return g.Bounds().Contains(p.X, p.Y)
}

// Clamp moves p to the nearest cell on the grid.
func (g Grid) Clamp(p Point) Point {
	return Point{
		X: Clamp(p.X, 0, g.W-1),
		Y: Clamp(p.Y, 0, g.H-1),
	}
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Point {
	return Point{X: g.W / 2, Y: g.H / 2}
}

// Random returns a uniformly distributed cell on the grid.
func (g Grid) Random(rng *rand.Rand) Point {
	return Point{X: rng.Intn(g.W), Y: rng.Intn(g.H)}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
