// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math/rand"

// Point is a cell coordinate on the playfield. Coordinates are signed so that
// stepping past the low edge yields -1 instead of wrapping.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Rect represents an axis-aligned box of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if p is inside this rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Grid is the fixed playfield. Its outermost ring of cells is wall; the
// cells strictly inside the ring form the interior.
type Grid struct {
	W, H int
}

// NewGrid creates a grid of the given size.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// Bounds returns the whole grid as a rectangle.
func (g Grid) Bounds() Rect {
	return NewRect(0, 0, g.W, g.H)
}

// Interior returns columns [1, W-2] and rows [1, H-2].
func (g Grid) Interior() Rect {
	return NewRect(1, 1, g.W-2, g.H-2)
}

// Contains reports whether p lies anywhere on the grid, border included.
func (g Grid) Contains(p Point) bool {
	return g.Bounds().Contains(p)
}

// InInterior reports whether p lies strictly inside the border ring.
// Both the low and the high edge fail the same check.
func (g Grid) InInterior(p Point) bool {
	return g.Interior().Contains(p)
}

// IsWall reports whether p lies on the border ring.
func (g Grid) IsWall(p Point) bool {
	return g.Contains(p) && !g.InInterior(p)
}

// Center returns (W/2, H/2).
func (g Grid) Center() Point {
	return Point{X: g.W / 2, Y: g.H / 2}
}

// RandomInterior draws a cell uniformly from the interior.
func (g Grid) RandomInterior(rng *rand.Rand) Point {
	in := g.Interior()
	return Point{
		X: in.X + rng.Intn(in.W),
		Y: in.Y + rng.Intn(in.H),
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
