package render

import (
	"fmt"

	"ninedraft/internal/grid"
	"ninedraft/internal/player"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// slotLabelWidth is the column budget for one hotbar slot.
const slotLabelWidth = 11

// DrawHUD renders the vitals line, hotbar, and message log at the bottom
// of the screen, then flips the frame.
func (r *Renderer) DrawHUD(p *player.Player, hotbar *grid.SelectableGrid, messages []string) {
	_, sh := r.screen.Size()
	hudY := sh - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	vitals := fmt.Sprintf("HP: %.1f/%.0f  Food: %.1f/%.0f",
		p.Health(), player.MaxHealth, p.Food(), player.MaxFood)
	r.drawText(0, hudY+1, vitals, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.drawHotbar(hudY+2, hotbar)

	// Last two messages.
	start := len(messages) - 2
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// drawHotbar renders the ten hotbar slots as "n:name×qty" labels with the
// selected slot highlighted. Keys 1–9 and 0 map to slots left to right.
func (r *Renderer) drawHotbar(y int, hotbar *grid.SelectableGrid) {
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	highlight := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	_, columns := hotbar.Size()
	selected := hotbar.Selected()
	for col := 0; col < columns; col++ {
		c := grid.Cell{Row: 0, Column: col}
		key := (col + 1) % 10

		label := fmt.Sprintf("%d:", key)
		if s := hotbar.Get(c); s != nil && !s.Empty() {
			label += fmt.Sprintf("%s×%d", s.Item().ID(), s.Quantity())
		} else {
			label += "--"
		}
		label = runewidth.Truncate(label, slotLabelWidth-1, "…")

		style := white
		if s := hotbar.Get(c); s == nil || s.Empty() {
			style = dim
		}
		if selected != nil && *selected == c {
			style = highlight
		}
		r.drawText(col*slotLabelWidth, y, runewidth.FillRight(label, slotLabelWidth-1), style)
	}
}
