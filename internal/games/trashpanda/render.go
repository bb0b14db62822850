package trashpanda

import (
	"math"

	"github.com/vovakirdan/trashpanda/internal/core"
)

// glyph is how a sprite looks on a character grid.
type glyph struct {
	top   rune // First row of the sprite
	fill  rune
	color core.Color
}

var glyphs = map[Sprite]glyph{
	SpritePlayer:      {top: '▄', fill: '█', color: core.ColorGray},
	SpriteCollectible: {top: '▁', fill: '▒', color: core.ColorBrightGreen},
	SpriteHazard:      {top: '▼', fill: '▓', color: core.ColorBrightRed},
}

// ScreenRenderer draws sprites onto a character grid. World coordinates are
// divided by the cell size, so one cell covers CellW x CellH world units.
type ScreenRenderer struct {
	canvas *core.Screen
	cellW  float64
	cellH  float64
}

// NewScreenRenderer creates a renderer drawing into canvas.
func NewScreenRenderer(canvas *core.Screen, cellW, cellH float64) *ScreenRenderer {
	return &ScreenRenderer{canvas: canvas, cellW: cellW, cellH: cellH}
}

// Clear blanks the canvas. The canvas keeps its own size; the host resizes it.
func (r *ScreenRenderer) Clear(_, _ float64) {
	r.canvas.Clear()
}

// DrawSprite fills every cell the sprite's rectangle touches.
func (r *ScreenRenderer) DrawSprite(s Sprite, x, y, w, h float64) {
	g, ok := glyphs[s]
	if !ok {
		return
	}
	x0 := int(math.Floor(x / r.cellW))
	y0 := int(math.Floor(y / r.cellH))
	x1 := int(math.Ceil((x + w) / r.cellW))
	y1 := int(math.Ceil((y + h) / r.cellH))

	for cy := y0; cy < y1; cy++ {
		ch := g.fill
		if cy == y0 && y1-y0 > 1 {
			ch = g.top
		}
		for cx := x0; cx < x1; cx++ {
			r.canvas.SetColored(cx, cy, ch, g.color)
		}
	}
}

// WorldSize converts a cell grid size into world units.
func (r *ScreenRenderer) WorldSize(cols, rows int) Viewport {
	return Viewport{W: float64(cols) * r.cellW, H: float64(rows) * r.cellH}
}
