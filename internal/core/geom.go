// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Box is an axis-aligned bounding box in viewport units.
// X, Y is the top-left corner; Y grows downwards.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes overlap.
// Boxes only miss each other when one lies strictly left, right, above or
// below the other, so boxes sharing an edge count as overlapping.
func (b Box) Overlaps(other Box) bool {
	if b.Right() < other.X || b.X > other.Right() {
		return false
	}
	if b.Bottom() < other.Y || b.Y > other.Bottom() {
		return false
	}
	return true
}

// Overlaps is the free-function form of Box.Overlaps.
func Overlaps(a, b Box) bool {
	return a.Overlaps(b)
}

// Rect is an integer rectangle in screen cells, used by the renderer.
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
