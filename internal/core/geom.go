// Package core provides the small shared types of the blockfall engine.
// It contains no terminal or Bubble Tea dependencies so the simulation stays
// pure and testable.
package core

// Point is a grid coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampPoint clamps each axis of p independently into a w×h grid.
func ClampPoint(p Point, w, h int) Point {
	return Point{
		X: Clamp(p.X, 0, w-1),
		Y: Clamp(p.Y, 0, h-1),
	}
}
