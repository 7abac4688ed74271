package grid

import "ninedraft/internal/item"

// Cell addresses one slot of a Grid by row and column.
type Cell struct {
	Row, Column int
}

// Grid is a fixed rows×columns array of optional stacks.
type Grid struct {
	rows, columns int
	cells         [][]*Stack
}

// New creates an empty grid.
func New(rows, columns int) *Grid {
	cells := make([][]*Stack, rows)
	for r := range cells {
		cells[r] = make([]*Stack, columns)
	}
	return &Grid{rows: rows, columns: columns, cells: cells}
}

// Size returns the grid's dimensions.
func (g *Grid) Size() (rows, columns int) { return g.rows, g.columns }

// InBounds reports whether the cell addresses a real slot.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Column >= 0 && c.Column < g.columns
}

// Get returns the stack at c, or nil for an empty or out-of-bounds cell.
func (g *Grid) Get(c Cell) *Stack {
	if !g.InBounds(c) {
		return nil
	}
	return g.cells[c.Row][c.Column]
}

// Set places a stack at c, replacing whatever was there. A nil stack (or an
// exhausted one) clears the cell.
func (g *Grid) Set(c Cell, s *Stack) {
	if !g.InBounds(c) {
		return
	}
	if s != nil && s.Empty() {
		s = nil
	}
	g.cells[c.Row][c.Column] = s
}

// Cells iterates every cell in row-major order.
func (g *Grid) Cells(fn func(c Cell, s *Stack)) {
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.columns; col++ {
			fn(Cell{r, col}, g.cells[r][col])
		}
	}
}

// AddItem inserts one unit of the item: first by merging into a compatible
// stack with room, otherwise into the first empty cell. Returns false when
// no slot can accept the item — a capacity condition, not an error.
func (g *Grid) AddItem(it item.Item) bool {
	probe := NewStack(it, 1)
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.columns; col++ {
			s := g.cells[r][col]
			if s != nil && s.Matches(probe) && s.Space() > 0 {
				s.Add(1)
				return true
			}
		}
	}
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.columns; col++ {
			if g.cells[r][col] == nil {
				g.cells[r][col] = probe
				return true
			}
		}
	}
	return false
}

// AddStack merges an entire stack into the grid, spreading across compatible
// and empty cells. Returns false if any units could not be placed (the
// remainder stays in s).
func (g *Grid) AddStack(s *Stack) bool {
	for r := 0; r < g.rows && !s.Empty(); r++ {
		for col := 0; col < g.columns && !s.Empty(); col++ {
			t := g.cells[r][col]
			if t != nil && t.Matches(s) {
				t.AbsorbFrom(s)
			}
		}
	}
	for r := 0; r < g.rows && !s.Empty(); r++ {
		for col := 0; col < g.columns && !s.Empty(); col++ {
			if g.cells[r][col] == nil {
				g.cells[r][col] = NewStack(s.Item(), 0)
				g.cells[r][col].AbsorbFrom(s)
			}
		}
	}
	return s.Empty()
}

// Compact clears any cells holding exhausted stacks.
func (g *Grid) Compact() {
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.columns; col++ {
			if s := g.cells[r][col]; s != nil && s.Empty() {
				g.cells[r][col] = nil
			}
		}
	}
}

// SelectableGrid is a Grid with zero or one selected cell.
type SelectableGrid struct {
	*Grid
	selected *Cell
}

// NewSelectable creates an empty selectable grid with nothing selected.
func NewSelectable(rows, columns int) *SelectableGrid {
	return &SelectableGrid{Grid: New(rows, columns)}
}

// Select marks c as the selected cell.
func (g *SelectableGrid) Select(c Cell) {
	if !g.InBounds(c) {
		return
	}
	g.selected = &c
}

// Deselect clears the selection.
func (g *SelectableGrid) Deselect() { g.selected = nil }

// ToggleSelection selects c, or deselects it if it was already selected.
func (g *SelectableGrid) ToggleSelection(c Cell) {
	if g.selected != nil && *g.selected == c {
		g.selected = nil
		return
	}
	g.Select(c)
}

// Selected returns the selected cell, or nil.
func (g *SelectableGrid) Selected() *Cell { return g.selected }

// SelectedStack returns the stack in the selected cell, or nil.
func (g *SelectableGrid) SelectedStack() *Stack {
	if g.selected == nil {
		return nil
	}
	return g.Get(*g.selected)
}
