// Package core provides fundamental types and utilities for the bricks engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a rectangle of the given size centered on c.
func RectAround(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if p is inside this rectangle.
// The top and left edges are inside, the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Ellipse is an axis-aligned ellipse given by its center and two diameters.
type Ellipse struct {
	Center Point
	DX, DY float64 // Horizontal and vertical diameters
}

// Bounds returns the ellipse's bounding box.
func (e Ellipse) Bounds() Rect {
	return RectAround(e.Center, e.DX, e.DY)
}

// Radii returns the horizontal and vertical radii.
func (e Ellipse) Radii() (rx, ry float64) {
	return e.DX / 2, e.DY / 2
}

// Contacts are the four cardinal boundary points of a shape: the midpoints of
// its bounding box edges.
type Contacts struct {
	Up, Down, Left, Right Point
}

// ContactsOf derives the contact points of a bounding box.
func ContactsOf(r Rect) Contacts {
	c := r.Center()
	return Contacts{
		Up:    Point{X: c.X, Y: r.Y},
		Down:  Point{X: c.X, Y: r.Bottom()},
		Left:  Point{X: r.X, Y: c.Y},
		Right: Point{X: r.Right(), Y: c.Y},
	}
}

// Direction names one of the four faces of a rectangle.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the face across from d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Vertical reports whether d is the top or bottom face.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1.
func Sign(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
