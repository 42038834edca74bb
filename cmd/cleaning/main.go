package main

import (
	"flag"
	"fmt"
	"image/color"
	stdlog "log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-cleaning-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-cleaning-simulation/pkg/ui"
)

const (
	cellSize   = 80
	panelWidth = 220
)

// agentColors are cycled by agent id, repeating after ten agents.
var agentColors = []color.RGBA{
	{R: 220, G: 40, B: 40, A: 255},
	{R: 50, G: 100, B: 255, A: 255},
	{R: 40, G: 180, B: 60, A: 255},
	{R: 230, G: 200, B: 0, A: 255},
	{R: 255, G: 150, B: 200, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
	{R: 150, G: 60, B: 200, A: 255},
	{R: 140, G: 90, B: 40, A: 255},
	{R: 20, G: 20, B: 20, A: 255},
	{R: 130, G: 130, B: 130, A: 255},
}

var dirtyTileColor = color.RGBA{R: 255, G: 240, B: 130, A: 160}

// Game drives the engine from the ebiten loop and renders the latest
// snapshot. It only reads public engine state between ticks; all simulation
// logic stays in the engine.
type Game struct {
	engine    *simulation.Engine
	lastState *simulation.WorldSnapshot

	boardW, boardH int // pixels

	// UI Controls
	tpsSlider   *ui.Slider
	pauseButton *ui.Button
	idCheckbox  *ui.Checkbox
	paused      bool

	frame int
}

func newGame(engine *simulation.Engine) *Game {
	grid := engine.Grid()
	g := &Game{
		engine:    engine,
		lastState: engine.Snapshot(),
		boardW:    grid.Width * cellSize,
		boardH:    grid.Height * cellSize,
	}

	px := float64(g.boardW + 10)
	g.tpsSlider = ui.NewSlider(px, 40, panelWidth-20, "Ticks per second", 1, 30, 4)
	g.pauseButton = ui.NewButton(px, 80, panelWidth-20, 26, "Pause / Resume", func() {
		g.paused = !g.paused
	})
	g.idCheckbox = ui.NewCheckbox(px, 120, "Show agent ids", true)
	return g
}

func (g *Game) Update() error {
	g.tpsSlider.Update()
	g.pauseButton.Update()
	g.idCheckbox.Update()

	g.frame++

	// The display refreshes at 60 TPS; the engine advances on the slider's
	// cadence. Once the engine is done, the board simply freezes in its
	// final state.
	interval := int(60 / g.tpsSlider.Value)
	if interval < 1 {
		interval = 1
	}
	if !g.paused && !g.engine.Done() && g.frame%interval == 0 {
		g.engine.Tick()
		g.lastState = g.engine.Snapshot()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.lastState

	// 1. Dirty tiles under everything else
	for _, tile := range snap.DirtyTiles {
		vector.FillRect(screen,
			float32(tile.X*cellSize), float32(g.screenY(tile.Y)),
			cellSize, cellSize,
			dirtyTileColor, true)
	}

	// 2. Grid lines
	lineColor := color.RGBA{R: 70, G: 70, B: 70, A: 255}
	for x := 0; x <= snap.GridWidth; x++ {
		vector.StrokeLine(screen,
			float32(x*cellSize), 0,
			float32(x*cellSize), float32(g.boardH),
			1, lineColor, true)
	}
	for y := 0; y <= snap.GridHeight; y++ {
		vector.StrokeLine(screen,
			0, float32(y*cellSize),
			float32(g.boardW), float32(y*cellSize),
			1, lineColor, true)
	}

	// 3. Agents, centered on their cells
	for _, a := range snap.Agents {
		cx := float32(a.Position.X*cellSize + cellSize/2)
		cy := float32(g.screenY(a.Position.Y) + cellSize/2)
		vector.FillCircle(screen, cx, cy, cellSize/3, agentColors[a.ID%len(agentColors)], true)
		if g.idCheckbox.Value {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", a.ID), int(cx)-3, int(cy)-8)
		}
	}

	// 4. Side panel
	g.tpsSlider.Draw(screen)
	g.pauseButton.Draw(screen)
	g.idCheckbox.Draw(screen)

	status := fmt.Sprintf("Step: %d\nCleaned: %d\nRemaining: %d\n\nFPS: %.1f",
		snap.CurrentStep, snap.CleanedCount, len(snap.DirtyTiles), ebiten.ActualFPS())
	if g.paused {
		status += "\n\nPAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, g.boardW+10, 160)

	// 5. End-of-run overlay
	if summary, ok := g.engine.FinalSummary(); ok {
		ebitenutil.DebugPrintAt(screen, summary.String(), 10, g.boardH/2-20)
	}
}

// screenY converts a world cell row (y up) into its top screen pixel (y down).
func (g *Game) screenY(y int) int {
	return (g.lastState.GridHeight - 1 - y) * cellSize
}

func (g *Game) Layout(w, h int) (int, int) {
	return g.boardW + panelWidth, g.boardH
}

func main() {
	configFile := flag.String("config", "", "path to a JSON config file (defaults apply when empty)")
	schemaFile := flag.String("schema", "config.schema.json", "path to the config JSON schema")
	seed := flag.Uint64("seed", 0, "random seed; 0 picks one at random")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			stdlog.Fatal(err)
		}
		cfg = loaded
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(*seed, *seed))

	engine, err := simulation.NewEngine(cfg, rng, golog.DefaultLogger)
	if err != nil {
		stdlog.Fatal(err)
	}

	game := newGame(engine)
	ebiten.SetWindowSize(game.boardW+panelWidth, game.boardH)
	ebiten.SetWindowTitle(fmt.Sprintf("Cleaning Agents (seed %d)", *seed))
	if err := ebiten.RunGame(game); err != nil {
		stdlog.Fatal(err)
	}
}
