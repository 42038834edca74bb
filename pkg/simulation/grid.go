package simulation

import "github.com/lao-tseu-is-alive/go-cleaning-simulation/pkg/geometry"

// Grid is the bounded board the agents move on. It is a pure
// coordinate-validity oracle: it owns no agent references (the engine does)
// and is queried, never mutated, when movement legality is checked.
// There is no wraparound, and any number of agents may occupy the same cell.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a board of the given dimensions.
// Dimension validation happens once, in Config.Validate; a Grid built through
// the engine always has positive dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Contains reports whether p lies inside the board, i.e. both coordinates are
// within [0, Width) and [0, Height).
func (g Grid) Contains(p geometry.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CellCount returns the total number of cells on the board.
func (g Grid) CellCount() int {
	return g.Width * g.Height
}
