package simulation

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-cleaning-simulation/pkg/geometry"
)

// moveOffsets is the fixed candidate set an agent draws from: the four
// axis-aligned moves followed by the four diagonals. Order matters for
// reproducibility, since the random draw indexes into this slice.
var moveOffsets = []geometry.Offset{
	{DX: -1, DY: 0},  // left
	{DX: 1, DY: 0},   // right
	{DX: 0, DY: 1},   // up
	{DX: 0, DY: -1},  // down
	{DX: -1, DY: -1}, // left down
	{DX: 1, DY: 1},   // right up
	{DX: -1, DY: 1},  // left up
	{DX: 1, DY: -1},  // right down
}

// Agent is one autonomous cleaner on the board. Its position is only ever
// mutated in CommitIntent; the intent computed in ComputeIntent is per-tick
// scratch state with no meaning outside the tick that produced it.
type Agent struct {
	id        int
	pos       geometry.Point
	intent    geometry.Point
	hasIntent bool
	moveCount int
}

// NewAgent creates an agent with its immutable id and starting position.
func NewAgent(id int, start geometry.Point) *Agent {
	return &Agent{id: id, pos: start}
}

// ID returns the agent's unique identifier, assigned at creation.
func (a *Agent) ID() int { return a.id }

// Position returns the agent's current cell.
func (a *Agent) Position() geometry.Point { return a.pos }

// MoveCount returns how many commits actually changed the agent's position.
func (a *Agent) MoveCount() int { return a.moveCount }

// ComputeIntent is phase one of a tick: the agent picks one of the eight
// neighbor offsets uniformly at random and stores the candidate cell as its
// intent. An out-of-bounds candidate degrades to "stay in place"; it is a
// normal branch, not an error, and is neither retried nor clamped.
// The computation never mutates the position and depends only on the agent's
// own state and the static grid, so intents for one tick can be evaluated in
// any order across agents.
func (a *Agent) ComputeIntent(g Grid, rng *rand.Rand) {
	move := moveOffsets[rng.IntN(len(moveOffsets))]
	candidate := a.pos.Add(move)
	if g.Contains(candidate) {
		a.intent = candidate
	} else {
		a.intent = a.pos
	}
	a.hasIntent = true
}

// CommitIntent is phase two of a tick and the only point where the position
// is mutated. The stored intent is re-validated against the grid (the grid is
// static here, so the check always agrees with phase one, but the contract
// requires it). moveCount increments exactly when the committed position
// differs from the pre-tick one; the stay-in-place fallback does not count as
// a move. Without a preceding ComputeIntent this is a no-op.
func (a *Agent) CommitIntent(g Grid) {
	if !a.hasIntent {
		return
	}
	a.hasIntent = false
	if !g.Contains(a.intent) {
		return
	}
	if a.intent != a.pos {
		a.pos = a.intent
		a.moveCount++
	}
}
