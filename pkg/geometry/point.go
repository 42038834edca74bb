package geometry

import "fmt"

// Point represents a cell coordinate on an integer lattice.
// We use public fields (X, Y) because they are fundamental data, not internal
// state. This is idiomatic in Go and allows for cleaner literal
// initialization: p := Point{1, 2}
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Offset is a directional displacement between two lattice cells.
// Kept as a distinct type so a position and a move cannot be mixed up in a
// function signature.
type Offset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// NewPoint creates a new Point.
// Note: it's often more idiomatic to simply use `Point{X: x, Y: y}` directly,
// but this factory is provided for API parity with the geometry package this
// one descends from.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// ---------------------------------------------------------------------
// Stringer Interface
// ---------------------------------------------------------------------

// String implements the fmt.Stringer interface.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// String implements the fmt.Stringer interface.
func (o Offset) String() string {
	return fmt.Sprintf("[%+d, %+d]", o.DX, o.DY)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// These methods use value receivers and return new values.
// This ensures immutability and is efficient for small structs.
// ---------------------------------------------------------------------

// Add translates the point by the given offset and returns the result.
func (p Point) Add(o Offset) Point {
	return Point{p.X + o.DX, p.Y + o.DY}
}

// Sub returns the offset that carries other onto p.
func (p Point) Sub(other Point) Offset {
	return Offset{p.X - other.X, p.Y - other.Y}
}

// ---------------------------------------------------------------------
// Distances
// ---------------------------------------------------------------------

// ChebyshevDistanceTo returns the board distance to another point when
// diagonal moves cost the same as axial ones (king moves).
func (p Point) ChebyshevDistanceTo(other Point) int {
	dx := absInt(p.X - other.X)
	dy := absInt(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// ManhattanDistanceTo returns the board distance to another point when only
// axial moves are allowed.
func (p Point) ManhattanDistanceTo(other Point) int {
	return absInt(p.X-other.X) + absInt(p.Y-other.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
