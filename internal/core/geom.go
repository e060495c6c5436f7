// Package core holds the types shared by the game and its terminal host:
// world and cell geometry, the screen buffer, input frames and run summaries.
// It imports nothing outside the standard library, so game logic stays
// testable without a terminal.
package core

// Rect is a rectangle of terminal cells, y growing downward.
type Rect struct {
	X, Y int // Top-left cell
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Box is an axis-aligned bounding box in world units.
// Unlike Rect it uses float64 coordinates and a y-up convention:
// (X, Y) is the bottom-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box with the given bottom-left corner and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes share any interior area.
// Touching edges do not count as an overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Top() && other.Y < b.Top()
}
