package render

import (
	"ninedraft/internal/core"
	"ninedraft/internal/world"

	"github.com/gdamore/tcell/v2"
)

// hudRows is the number of terminal rows reserved at the bottom for the HUD.
const hudRows = 5

// Renderer draws the world onto a tcell screen. One world cell occupies
// 2 terminal columns by 1 row, which roughly squares the aspect ratio.
type Renderer struct {
	screen tcell.Screen
	cell   float64 // pixels per world cell
}

// NewRenderer creates a Renderer for the given screen. cellSize is the
// pixel extent of one world cell.
func NewRenderer(screen tcell.Screen, cellSize float64) *Renderer {
	return &Renderer{screen: screen, cell: cellSize}
}

// PixelToScreen converts a world pixel position to terminal coordinates.
func (r *Renderer) PixelToScreen(p core.Point) (sx, sy int) {
	return int(p.X / r.cell * 2), int(p.Y / r.cell)
}

// ScreenToPixel converts terminal coordinates to the pixel centre of the
// world cell under them. Used to resolve mouse clicks.
func (r *Renderer) ScreenToPixel(sx, sy int) core.Point {
	return core.Point{
		X: (float64(sx/2) + 0.5) * r.cell,
		Y: (float64(sy) + 0.5) * r.cell,
	}
}

// DrawFrame renders every thing in the world plus the targeting cursor.
// The HUD is drawn separately; Show is called there.
func (r *Renderer) DrawFrame(w *world.World, target core.Point, targetInRange bool) {
	r.screen.Clear()
	for _, t := range w.Things() {
		r.drawThing(t)
	}
	if targetInRange {
		r.drawTarget(target)
	}
}

// drawTarget outlines the targeted cell.
func (r *Renderer) drawTarget(p core.Point) {
	sx, sy := r.PixelToScreen(p)
	sx = sx / 2 * 2
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.SetContent(sx, sy, '[', nil, style)
	r.screen.SetContent(sx+1, sy, ']', nil, style)
}

// putCell paints one full world cell (2 columns) at screen (sx, sy).
func (r *Renderer) putCell(sx, sy int, left, right rune, style tcell.Style) {
	sx = sx / 2 * 2
	r.screen.SetContent(sx, sy, left, nil, style)
	r.screen.SetContent(sx+1, sy, right, nil, style)
}

// putGlyph draws a single rune without claiming the whole cell.
func (r *Renderer) putGlyph(sx, sy int, ch rune, style tcell.Style) {
	r.screen.SetContent(sx, sy, ch, nil, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
