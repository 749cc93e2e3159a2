// Package core provides fundamental types shared by the game and its terminal
// collaborators. It has no external dependencies (no tcell, no Bubble Tea) so
// game logic stays pure and testable.
package core

import "fmt"

// Location is anything that occupies a cell of the playfield.
type Location interface {
	X() int32
	Y() int32
}

// Point is an immutable cell coordinate. X grows to the right, Y grows down.
type Point struct {
	x, y int32
}

// Pt creates a point at (x, y).
func Pt(x, y int32) Point {
	return Point{x: x, y: y}
}

// At returns the coordinates of any Location as a Point.
func At(l Location) Point {
	return Point{x: l.X(), y: l.Y()}
}

// X returns the column of the point.
func (p Point) X() int32 { return p.x }

// Y returns the row of the point.
func (p Point) Y() int32 { return p.y }

// Shift returns the point translated by (dx, dy).
func (p Point) Shift(dx, dy int32) Point {
	return Point{x: p.x + dx, y: p.y + dy}
}

// ShiftTo returns a point at (x, y). The receiver only supplies the type.
func (p Point) ShiftTo(x, y int32) Point {
	return Point{x: x, y: y}
}

// Step returns the neighbouring point in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return p.Shift(dx, dy)
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}

// SamePlace reports whether two locations share coordinates.
// The concrete types are ignored: a coin and a player can be in the same place.
func SamePlace(a, b Location) bool {
	return a.X() == b.X() && a.Y() == b.Y()
}

// Manhattan returns the taxicab distance between two locations.
func Manhattan(a, b Location) int {
	return Abs(int(a.X()-b.X())) + Abs(int(a.Y()-b.Y()))
}

// Direction is one of the four cardinal moves, or none.
type Direction int

// The order of the cardinal directions is the tie-break order used when
// several moves are equally good.
const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// Cardinals lists the four moves in tie-break order.
var Cardinals = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

// Delta returns the coordinate change for one step in this direction.
func (d Direction) Delta() (dx, dy int32) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone is its own opposite.
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

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Rect represents an axis-aligned area of cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
