// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an integer cell rectangle used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units, stored as a centre
// point and half extents. Game objects are positioned by their centre.
type Box struct {
	CX, CY float64 // Centre
	HW, HH float64 // Half width, half height
}

// NewBox creates a box centred at (cx, cy) with the given full width and height.
func NewBox(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, HW: w / 2, HH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.HW }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.HW }

// Top returns the y-coordinate of the top edge (y grows downwards).
func (b Box) Top() float64 { return b.CY - b.HH }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY + b.HH }

// Overlaps reports whether the two boxes share interior area.
// Touching edges do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Bottom() > other.Top() &&
		b.Top() < other.Bottom() &&
		b.Right() > other.Left() &&
		b.Left() < other.Right()
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
