package simulation

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-cleaning-simulation/pkg/geometry"
)

// DirtyTileRegistry holds the set of cells that still need cleaning.
// It is populated once at engine construction and only ever shrinks.
// Tiles are kept in spawn order (a slice, not a map) so that for a fixed
// random source the sequence of removals is identical across runs.
type DirtyTileRegistry struct {
	tiles []geometry.Point
}

// NewDirtyTileRegistry spawns the initial dirty set: it enumerates the grid
// cells not present in occupied (row-major), then samples
// min(count, len(free)) distinct cells uniformly at random without
// replacement. Requesting more tiles than there are free cells is not an
// error; the registry is silently smaller.
func NewDirtyTileRegistry(g Grid, count int, occupied []geometry.Point, rng *rand.Rand) *DirtyTileRegistry {
	taken := make(map[geometry.Point]bool, len(occupied))
	for _, p := range occupied {
		taken[p] = true
	}

	free := make([]geometry.Point, 0, g.CellCount())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := geometry.Point{X: x, Y: y}
			if !taken[cell] {
				free = append(free, cell)
			}
		}
	}

	if count > len(free) {
		count = len(free)
	}

	r := &DirtyTileRegistry{tiles: make([]geometry.Point, 0, count)}
	for i := 0; i < count; i++ {
		j := rng.IntN(len(free))
		r.tiles = append(r.tiles, free[j])
		// Swap-delete so the chosen cell cannot be picked again.
		free[j] = free[len(free)-1]
		free = free[:len(free)-1]
	}
	return r
}

// Remove deletes cell from the registry if present. Removing an absent cell
// is a no-op, not a failure.
func (r *DirtyTileRegistry) Remove(cell geometry.Point) {
	for i, t := range r.tiles {
		if t == cell {
			r.tiles = append(r.tiles[:i], r.tiles[i+1:]...)
			return
		}
	}
}

// Contains reports whether cell is still dirty.
func (r *DirtyTileRegistry) Contains(cell geometry.Point) bool {
	for _, t := range r.tiles {
		if t == cell {
			return true
		}
	}
	return false
}

// IsEmpty reports whether every tile has been cleaned.
func (r *DirtyTileRegistry) IsEmpty() bool { return len(r.tiles) == 0 }

// Len returns the number of tiles still dirty.
func (r *DirtyTileRegistry) Len() int { return len(r.tiles) }

// Tiles returns a copy of the remaining dirty tiles in spawn order, so
// callers never alias the registry's mutable backing slice.
func (r *DirtyTileRegistry) Tiles() []geometry.Point {
	out := make([]geometry.Point, len(r.tiles))
	copy(out, r.tiles)
	return out
}
