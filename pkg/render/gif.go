// Package render turns engine snapshots into images. It is a presentation
// collaborator: it reads public engine state and contains no simulation
// logic.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/lao-tseu-is-alive/go-cleaning-simulation/pkg/simulation"
)

// agentColors are cycled by agent id; the list repeats after ten agents.
var agentColors = []color.RGBA{
	{R: 220, G: 40, B: 40, A: 255},   // red
	{R: 50, G: 100, B: 255, A: 255},  // blue
	{R: 40, G: 180, B: 60, A: 255},   // green
	{R: 230, G: 200, B: 0, A: 255},   // yellow
	{R: 255, G: 150, B: 200, A: 255}, // pink
	{R: 255, G: 140, B: 0, A: 255},   // orange
	{R: 150, G: 60, B: 200, A: 255},  // purple
	{R: 140, G: 90, B: 40, A: 255},   // brown
	{R: 20, G: 20, B: 20, A: 255},    // black
	{R: 130, G: 130, B: 130, A: 255}, // grey
}

var (
	backgroundColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	gridLineColor   = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	dirtyTileColor  = color.RGBA{R: 255, G: 240, B: 130, A: 255}
)

// GIFRecorder accumulates one paletted frame per captured snapshot and
// encodes them as an animated GIF, the board replay format of this project.
type GIFRecorder struct {
	cellSize int
	delay    int // per frame, in 1/100ths of a second
	palette  color.Palette
	frames   []*image.Paletted
	delays   []int
}

// NewGIFRecorder creates a recorder drawing each grid cell as a
// cellSize x cellSize square. fps controls animation speed; values below 1
// fall back to the 2 fps of the board replays this format descends from.
func NewGIFRecorder(cellSize, fps int) *GIFRecorder {
	if cellSize < 1 {
		cellSize = 40
	}
	if fps < 1 {
		fps = 2
	}
	palette := color.Palette{backgroundColor, gridLineColor, dirtyTileColor}
	for _, c := range agentColors {
		palette = append(palette, c)
	}
	return &GIFRecorder{
		cellSize: cellSize,
		delay:    100 / fps,
		palette:  palette,
	}
}

// Capture renders snap as one animation frame. Row 0 of the image is the top
// of the board, so world y is flipped (the world origin is bottom-left).
func (r *GIFRecorder) Capture(snap *simulation.WorldSnapshot) {
	w := snap.GridWidth * r.cellSize
	h := snap.GridHeight * r.cellSize
	img := image.NewPaletted(image.Rect(0, 0, w, h), r.palette)

	// Background
	bg := uint8(img.Palette.Index(backgroundColor))
	for i := range img.Pix {
		img.Pix[i] = bg
	}

	// Dirty tiles first, agents on top (same layering as the live view).
	for _, tile := range snap.DirtyTiles {
		r.fillCell(img, snap.GridHeight, tile.X, tile.Y, dirtyTileColor)
	}

	// Grid lines
	for x := 0; x <= snap.GridWidth; x++ {
		px := min(x*r.cellSize, w-1)
		for py := 0; py < h; py++ {
			img.Set(px, py, gridLineColor)
		}
	}
	for y := 0; y <= snap.GridHeight; y++ {
		py := min(y*r.cellSize, h-1)
		for px := 0; px < w; px++ {
			img.Set(px, py, gridLineColor)
		}
	}

	for _, a := range snap.Agents {
		r.fillDisc(img, snap.GridHeight, a.Position.X, a.Position.Y,
			agentColors[a.ID%len(agentColors)])
	}

	r.frames = append(r.frames, img)
	r.delays = append(r.delays, r.delay)
}

// fillCell paints the interior of a world cell.
func (r *GIFRecorder) fillCell(img *image.Paletted, gridHeight, x, y int, c color.Color) {
	x0 := x * r.cellSize
	y0 := (gridHeight - 1 - y) * r.cellSize
	for py := y0; py < y0+r.cellSize; py++ {
		for px := x0; px < x0+r.cellSize; px++ {
			img.Set(px, py, c)
		}
	}
}

// fillDisc paints a filled circle centered on a world cell.
func (r *GIFRecorder) fillDisc(img *image.Paletted, gridHeight, x, y int, c color.Color) {
	cx := x*r.cellSize + r.cellSize/2
	cy := (gridHeight-1-y)*r.cellSize + r.cellSize/2
	radius := r.cellSize * 2 / 5
	rr := radius * radius
	for py := cy - radius; py <= cy+radius; py++ {
		for px := cx - radius; px <= cx+radius; px++ {
			dx, dy := px-cx, py-cy
			if dx*dx+dy*dy <= rr {
				img.Set(px, py, c)
			}
		}
	}
}

// FrameCount returns how many snapshots have been captured so far.
func (r *GIFRecorder) FrameCount() int { return len(r.frames) }

// Save encodes the captured frames as an animated GIF at path.
// At least one frame must have been captured.
func (r *GIFRecorder) Save(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames captured, nothing to save")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create gif file: %w", err)
	}
	defer f.Close()

	anim := &gif.GIF{Image: r.frames, Delay: r.delays}
	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}
