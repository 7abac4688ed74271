package render

import (
	"ninedraft/assets"
	"ninedraft/internal/block"
	"ninedraft/internal/core"
	"ninedraft/internal/mob"
	"ninedraft/internal/physics"
	"ninedraft/internal/world"

	"github.com/gdamore/tcell/v2"
)

// drawRule pairs a predicate with the draw routine for things it matches.
// Rules are tried in order; the first match wins.
type drawRule struct {
	match func(t world.Thing) bool
	draw  func(r *Renderer, t world.Thing)
}

var drawRules = []drawRule{
	{matchCandle, (*Renderer).drawCandle},
	{matchCategory(world.CategoryBlock), (*Renderer).drawBlock},
	{matchCategory(world.CategoryItem), (*Renderer).drawItem},
	{matchCategory(world.CategoryPlayer), (*Renderer).drawPlayer},
	{matchSpecies(mob.SpeciesBird), (*Renderer).drawBird},
	{matchSpecies(mob.SpeciesSheep), (*Renderer).drawSheep},
	{matchSpecies(mob.SpeciesBee), (*Renderer).drawBee},
}

// drawThing routes one world thing to its draw rule. Unmatched things
// (boundary walls, unknown categories) are not drawn.
func (r *Renderer) drawThing(t world.Thing) {
	for _, rule := range drawRules {
		if rule.match(t) {
			rule.draw(r, t)
			return
		}
	}
}

func matchCategory(c physics.Category) func(world.Thing) bool {
	return func(t world.Thing) bool { return t.Category == c }
}

func matchSpecies(s mob.Species) func(world.Thing) bool {
	return func(t world.Thing) bool {
		m, ok := t.Owner.(*mob.Mob)
		return ok && m.Species() == s
	}
}

func matchCandle(t world.Thing) bool {
	_, ok := t.Owner.(*block.TrickCandleFlameBlock)
	return ok
}

func thingPosition(t world.Thing) core.Point {
	v := t.Shape.Body().Position()
	return core.Point{X: v.X, Y: v.Y}
}

func (r *Renderer) drawBlock(t world.Thing) {
	b, ok := t.Owner.(block.Block)
	if !ok {
		return
	}
	sx, sy := r.PixelToScreen(thingPosition(t))
	colour, ok := assets.BlockColours[b.ID()]
	if !ok {
		r.putCell(sx, sy, '?', '?', tcell.StyleDefault.Foreground(tcell.ColorWhite))
		return
	}
	style := tcell.StyleDefault.Background(colour)
	left := ' '
	if b.BeingMined() {
		// Cracks appear once mining has started.
		left = '×'
		style = style.Foreground(tcell.ColorBlack)
	}
	r.putCell(sx, sy, left, ' ', style)
}

// drawCandle colours the trick candle by its cycle position, so repeated
// breaks visibly march through the flame palette.
func (r *Renderer) drawCandle(t world.Thing) {
	b := t.Owner.(*block.TrickCandleFlameBlock)
	sx, sy := r.PixelToScreen(thingPosition(t))
	colour := assets.MayhemColours[b.Index()%len(assets.MayhemColours)]
	r.putCell(sx, sy, ' ', ' ', tcell.StyleDefault.Background(colour))
}

func (r *Renderer) drawItem(t world.Thing) {
	d, ok := t.Owner.(*world.DroppedItem)
	if !ok {
		return
	}
	sx, sy := r.PixelToScreen(thingPosition(t))
	colour, ok := assets.ItemColours[d.Item().ID()]
	if !ok {
		colour = tcell.ColorWhite
	}
	r.putGlyph(sx, sy, '•', tcell.StyleDefault.Foreground(colour))
}

func (r *Renderer) drawPlayer(t world.Thing) {
	sx, sy := r.PixelToScreen(thingPosition(t))
	style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	r.putGlyph(sx, sy, '@', style)
}

func (r *Renderer) drawBird(t world.Thing) {
	sx, sy := r.PixelToScreen(thingPosition(t))
	r.putGlyph(sx, sy, 'v', tcell.StyleDefault.Foreground(tcell.ColorBlue))
}

func (r *Renderer) drawSheep(t world.Thing) {
	sx, sy := r.PixelToScreen(thingPosition(t))
	r.putCell(sx, sy, 'O', 'o', tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawBee(t world.Thing) {
	sx, sy := r.PixelToScreen(thingPosition(t))
	r.putGlyph(sx, sy, '×', tcell.StyleDefault.Foreground(tcell.ColorYellow))
}
