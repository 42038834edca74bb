package simulation

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-cleaning-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/log"
)

// Engine is the authoritative state holder: it owns the grid, the agent
// collection and the dirty-tile registry, and drives the fixed two-phase
// tick. Execution is single-threaded and synchronous; the intent/commit
// split is a logical barrier so every agent decides against the same
// pre-tick snapshot of the world, not a concurrency primitive.
//
// Agents never exclude each other from a cell: multi-occupancy is intended
// behavior, not a collision to resolve.
type Engine struct {
	grid   Grid
	agents []*Agent
	dirty  *DirtyTileRegistry
	rng    *rand.Rand
	logger log.Logger

	currentStep     int
	maxSteps        int
	cleanedCount    int
	lastCleanedStep int // 1-based tick index of the most recent cleaning
	initialDirty    int
	done            bool
	summary         *Summary
}

// AgentSnapshot is the immutable per-agent view handed to external callers.
type AgentSnapshot struct {
	ID        int            `json:"id"`
	Position  geometry.Point `json:"position"`
	MoveCount int            `json:"moveCount"`
}

// WorldSnapshot is the full between-ticks view consumed by renderers and
// reporters. It shares no mutable structure with the engine.
type WorldSnapshot struct {
	GridWidth    int              `json:"gridWidth"`
	GridHeight   int              `json:"gridHeight"`
	Agents       []AgentSnapshot  `json:"agents"`
	DirtyTiles   []geometry.Point `json:"dirtyTiles"`
	CurrentStep  int              `json:"currentStep"`
	CleanedCount int              `json:"cleanedCount"`
	Done         bool             `json:"done"`
}

// NewEngine builds a ready-to-tick engine from a validated configuration.
// All agents spawn stacked on the top-left corner cell (0, height-1), and
// the dirty set is sampled from the remaining cells. rng is the explicit
// random source for the whole run; a nil rng gets a fresh, nondeterministic
// one, a nil logger discards. If the step budget is zero or no tile came up
// dirty, the engine settles into its terminal state here, without ever
// ticking.
func NewEngine(cfg *Config, rng *rand.Rand, logger log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = log.DiscardLogger
	}

	grid := NewGrid(cfg.GridWidth, cfg.GridHeight)
	start := geometry.Point{X: 0, Y: grid.Height - 1}

	agents := make([]*Agent, 0, cfg.AgentCount)
	for i := 0; i < cfg.AgentCount; i++ {
		agents = append(agents, NewAgent(i, start))
	}

	// Dirty tiles only spawn on cells that are empty right now; with the
	// whole population stacked on one corner that is every cell but one.
	dirty := NewDirtyTileRegistry(grid, cfg.DirtyCount, []geometry.Point{start}, rng)

	e := &Engine{
		grid:         grid,
		agents:       agents,
		dirty:        dirty,
		rng:          rng,
		logger:       logger,
		maxSteps:     cfg.MaxSteps,
		initialDirty: dirty.Len(),
	}
	e.logger.Infof("engine ready: %dx%d board, %d agents, %d dirty tiles, budget %d steps",
		grid.Width, grid.Height, len(agents), dirty.Len(), cfg.MaxSteps)

	if e.dirty.IsEmpty() || e.maxSteps == 0 {
		e.finish()
	}
	return e, nil
}

// Tick advances the simulation by exactly one time step, or is a no-op if
// the engine is already done. The phases run in a fixed order:
//
//  1. intent: every agent proposes a move against the pre-tick world
//  2. commit: every agent applies its validated intent
//  3. cleaning: dirty tiles occupied by any post-commit agent are swept
//  4. the step counter advances and the termination predicate is evaluated
//
// Tiles are scanned in spawn order and agents in id order, so a fixed seed
// reproduces the exact sequence of positions and removals.
func (e *Engine) Tick() {
	if e.done {
		return
	}

	for _, a := range e.agents {
		a.ComputeIntent(e.grid, e.rng)
	}
	for _, a := range e.agents {
		a.CommitIntent(e.grid)
	}

	// Cleaning is a simultaneous occupancy sweep after all commits, never an
	// interception mid-move. A tile hosting several agents is marked once.
	var toRemove []geometry.Point
	for _, tile := range e.dirty.Tiles() {
		for _, a := range e.agents {
			if a.Position() == tile {
				toRemove = append(toRemove, tile)
				break
			}
		}
	}
	for _, tile := range toRemove {
		e.dirty.Remove(tile)
		e.cleanedCount++
		// +1: steps are reported 1-based, counting the tick in flight.
		e.lastCleanedStep = e.currentStep + 1
		e.logger.Debugf("tile %s cleaned at step %d (%d remaining)",
			tile, e.lastCleanedStep, e.dirty.Len())
	}

	e.currentStep++
	if e.dirty.IsEmpty() || e.currentStep >= e.maxSteps {
		e.finish()
	}
}

// finish performs the single RUNNING -> DONE transition and freezes the
// summary. The emptied-registry branch wins when both terminal conditions
// become true on the same tick, because it is checked first.
func (e *Engine) finish() {
	e.done = true
	e.summary = e.buildSummary()
	e.logger.Info(e.summary.String())
}

func (e *Engine) buildSummary() *Summary {
	totalMoves := 0
	for _, a := range e.agents {
		totalMoves += a.MoveCount()
	}
	s := &Summary{
		MaxSteps:     e.maxSteps,
		TilesCleaned: e.cleanedCount,
		TotalMoves:   totalMoves,
	}
	if e.dirty.IsEmpty() {
		s.AllCleaned = true
		s.Step = e.lastCleanedStep
	} else {
		s.Step = e.currentStep
	}
	return s
}

// Done reports whether the engine has reached its terminal state. Once true
// it never flips back.
func (e *Engine) Done() bool { return e.done }

// CurrentStep returns the number of completed ticks.
func (e *Engine) CurrentStep() int { return e.currentStep }

// CleanedCount returns how many tiles have been cleaned so far.
func (e *Engine) CleanedCount() int { return e.cleanedCount }

// InitialDirtyCount returns the size of the dirty set at spawn time, after
// any capping by available free cells.
func (e *Engine) InitialDirtyCount() int { return e.initialDirty }

// Grid returns the (static) board.
func (e *Engine) Grid() Grid { return e.grid }

// Agents returns an immutable snapshot sequence of the agents in id order.
// It is rebuilt on every call so callers cannot alias engine state.
func (e *Engine) Agents() []AgentSnapshot {
	out := make([]AgentSnapshot, 0, len(e.agents))
	for _, a := range e.agents {
		out = append(out, AgentSnapshot{ID: a.ID(), Position: a.Position(), MoveCount: a.MoveCount()})
	}
	return out
}

// DirtyTiles returns a copy of the remaining dirty tiles in spawn order.
func (e *Engine) DirtyTiles() []geometry.Point { return e.dirty.Tiles() }

// Snapshot assembles the full between-ticks world view for external
// presentation collaborators.
func (e *Engine) Snapshot() *WorldSnapshot {
	return &WorldSnapshot{
		GridWidth:    e.grid.Width,
		GridHeight:   e.grid.Height,
		Agents:       e.Agents(),
		DirtyTiles:   e.DirtyTiles(),
		CurrentStep:  e.currentStep,
		CleanedCount: e.cleanedCount,
		Done:         e.done,
	}
}

// FinalSummary returns the frozen end-of-run report. The boolean is false
// while the engine is still running.
func (e *Engine) FinalSummary() (*Summary, bool) {
	if e.summary == nil {
		return nil, false
	}
	return e.summary, true
}
