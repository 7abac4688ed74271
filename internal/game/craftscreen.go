package game

import (
	"fmt"

	"ninedraft/internal/grid"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// craftPanel identifies which side of the crafting screen has the cursor.
type craftPanel uint8

const (
	panelCrafter craftPanel = iota
	panelPlayer
)

// runCraftingScreen opens a blocking crafting UI over the paused
// simulation. cont is false when the player quit the game outright.
func (g *Game) runCraftingScreen(events <-chan tcell.Event) (cont bool, err error) {
	panel := panelPlayer
	craftCursor := grid.Cell{}  // cell within the crafter input
	playerCursor := grid.Cell{} // row 0 = hotbar, rows 1+ = inventory
	statusMsg := ""

	for {
		c := g.session.Crafter()
		if c == nil {
			return true, nil
		}
		inRows, inCols := c.Input().Size()

		// Clamp cursors to their grids.
		craftCursor = clampCell(craftCursor, inRows+1, inCols) // +1 row for output
		playerCursor = clampCell(playerCursor, 1+inventoryRows, hotbarColumns)

		g.drawCraftingScreen(panel, craftCursor, playerCursor, statusMsg)

		ev, ok := <-events
		if !ok {
			return false, nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			continue
		case *tcell.EventKey:
			statusMsg = ""
			cursor := &playerCursor
			if panel == panelCrafter {
				cursor = &craftCursor
			}
			switch ev.Key() {
			case tcell.KeyEscape:
				g.session.CloseCrafting()
				return true, nil
			case tcell.KeyTab:
				panel = 1 - panel
			case tcell.KeyUp:
				cursor.Row--
			case tcell.KeyDown:
				cursor.Row++
			case tcell.KeyLeft:
				cursor.Column--
			case tcell.KeyRight:
				cursor.Column++
			case tcell.KeyEnter:
				statusMsg = g.craftTransfer(panel, craftCursor, playerCursor)
			default:
				switch ev.Rune() {
				case 'k', 'K':
					cursor.Row--
				case 'j', 'J':
					cursor.Row++
				case 'h', 'H':
					cursor.Column--
				case 'l', 'L':
					cursor.Column++
				case 'c', 'C':
					if err := g.session.CraftSelected(); err != nil {
						return false, err
					}
				case 'e', 'E', 'q', 'Q':
					g.session.CloseCrafting()
					return true, nil
				}
			}
		}
	}
}

// craftTransfer moves one unit between the player's grids and the crafter.
// On the crafter panel the extra bottom row is the output cell, which is
// taken whole.
func (g *Game) craftTransfer(panel craftPanel, craftCursor, playerCursor grid.Cell) string {
	s := g.session
	c := s.Crafter()
	inRows, _ := c.Input().Size()

	if panel == panelCrafter {
		if craftCursor.Row == inRows {
			out := c.TakeOutput()
			if out == nil || out.Empty() {
				return "Nothing crafted yet."
			}
			s.returnStack(out)
			return "Took crafted output."
		}
		st := c.Input().Get(craftCursor)
		if st == nil || st.Empty() {
			return "That cell is empty."
		}
		if !s.hotbar.AddItem(st.Item()) && !s.inventory.AddItem(st.Item()) {
			return "No room in your grids."
		}
		st.Subtract(1)
		if st.Empty() {
			c.Input().Set(craftCursor, nil)
		}
		return ""
	}

	// Player panel: push one unit into the crafter's selected input cell.
	src := g.playerCellStack(playerCursor)
	if src == nil || src.Empty() {
		return "That cell is empty."
	}
	if craftCursor.Row >= inRows {
		return "Select a crafter input cell first."
	}
	dst := c.Input().Get(craftCursor)
	switch {
	case dst == nil:
		c.Input().Set(craftCursor, grid.NewStack(src.Item(), 1))
	case dst.Matches(grid.NewStack(src.Item(), 1)) && dst.Space() > 0:
		dst.Add(1)
	default:
		return "That crafter cell holds something else."
	}
	src.Subtract(1)
	if src.Empty() {
		g.clearPlayerCell(playerCursor)
	}
	return ""
}

// playerCellStack resolves a combined-panel cursor: row 0 is the hotbar,
// rows 1+ are the inventory.
func (g *Game) playerCellStack(c grid.Cell) *grid.Stack {
	if c.Row == 0 {
		return g.session.hotbar.Get(grid.Cell{Row: 0, Column: c.Column})
	}
	return g.session.inventory.Get(grid.Cell{Row: c.Row - 1, Column: c.Column})
}

func (g *Game) clearPlayerCell(c grid.Cell) {
	if c.Row == 0 {
		g.session.hotbar.Set(grid.Cell{Row: 0, Column: c.Column}, nil)
		return
	}
	g.session.inventory.Set(grid.Cell{Row: c.Row - 1, Column: c.Column}, nil)
}

// drawCraftingScreen renders the full crafting UI.
func (g *Game) drawCraftingScreen(panel craftPanel, craftCursor, playerCursor grid.Cell, statusMsg string) {
	g.screen.Clear()
	sw, _ := g.screen.Size()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	highlight := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	c := g.session.Crafter()
	inRows, inCols := c.Input().Size()

	g.putText(0, 0, c.Name(), yellow)
	hints := "[hjkl] Move  [Tab] Switch  [Enter] Transfer  [c] Craft  [Esc] Close"
	if len(hints) < sw {
		g.putText(sw-len(hints), 0, hints, dim)
	}
	for x := 0; x < sw; x++ {
		g.screen.SetContent(x, 1, '─', nil, gray)
	}

	cellAt := func(x, y int, st *grid.Stack, selected bool) {
		label := "--"
		if st != nil && !st.Empty() {
			label = fmt.Sprintf("%s×%d", st.Item().ID(), st.Quantity())
		}
		label = runewidth.FillRight(runewidth.Truncate(label, craftCellWidth-1, "…"), craftCellWidth-1)
		style := white
		if st == nil || st.Empty() {
			style = dim
		}
		if selected {
			style = highlight
		}
		g.putText(x, y, label, style)
	}

	// Crafter input grid.
	for row := 0; row < inRows; row++ {
		for col := 0; col < inCols; col++ {
			cell := grid.Cell{Row: row, Column: col}
			sel := panel == panelCrafter && craftCursor == cell
			cellAt(col*craftCellWidth, 3+row, c.Input().Get(cell), sel)
		}
	}

	// Output row, with the pending recipe preview.
	outY := 3 + inRows
	g.putText(0, outY, "out:", white)
	selOut := panel == panelCrafter && craftCursor.Row == inRows
	cellAt(5, outY, c.Output(), selOut)
	if preview := c.Match(); preview != nil {
		if st, err := preview.Stack(); err == nil {
			g.putText(5+craftCellWidth+2, outY,
				fmt.Sprintf("makes %s×%d", st.Item().ID(), st.Quantity()), green)
		}
	}

	// Player grids: hotbar row, then inventory.
	py := outY + 2
	g.putText(0, py, "── YOURS ──", white)
	py++
	for row := 0; row < 1+inventoryRows; row++ {
		for col := 0; col < hotbarColumns; col++ {
			cell := grid.Cell{Row: row, Column: col}
			sel := panel == panelPlayer && playerCursor == cell
			cellAt(col*craftCellWidth, py+row, g.playerCellStack(cell), sel)
		}
	}

	if statusMsg != "" {
		g.putText(0, py+1+inventoryRows+1, statusMsg, green)
	}
	g.screen.Show()
}

// craftCellWidth is the column budget for one grid cell label.
const craftCellWidth = 12

// clampCell keeps a cursor inside a rows×cols grid.
func clampCell(c grid.Cell, rows, cols int) grid.Cell {
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row >= rows {
		c.Row = rows - 1
	}
	if c.Column < 0 {
		c.Column = 0
	}
	if c.Column >= cols {
		c.Column = cols - 1
	}
	return c
}
