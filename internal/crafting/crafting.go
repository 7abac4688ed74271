// Package crafting implements the recipe-pattern resolver: a fixed-shape
// input grid matched positionally against an ordered recipe list. Matching
// is a pure function of the grid's current contents, so the UI can re-query
// after every edit; declaration order is the priority order, which makes the
// recipe list's ordering part of the content contract.
package crafting

import (
	"ninedraft/internal/grid"
	"ninedraft/internal/item"
)

// Recipe pairs a positional ingredient pattern with its result. A pattern
// cell holds a required item id, or "" for a cell that must be empty.
// Recipes are immutable once declared.
type Recipe struct {
	Pattern [][]string
	Result  Result
}

// Result names what a recipe yields: the item factory identifier of the
// product and how many units one craft produces. The product is minted
// through the factory on every craft, so items carrying per-instance state
// (tool durability) never share an instance between crafts.
type Result struct {
	ItemID   []string
	Quantity int
}

// Stack mints a fresh stack of the product. An unknown product id is a
// configuration error.
func (r Result) Stack() (*grid.Stack, error) {
	it, err := item.Create(r.ItemID...)
	if err != nil {
		return nil, err
	}
	return grid.NewStack(it, r.Quantity), nil
}

// Rows and Columns report the pattern's shape.
func (r Recipe) Rows() int    { return len(r.Pattern) }
func (r Recipe) Columns() int { return len(r.Pattern[0]) }

// matches reports whether the candidate grid satisfies the pattern exactly:
// ingredient cells must hold an item with the required id (quantity is
// ignored) and empty pattern cells must be empty in the candidate. No
// rotation or reflection is considered.
func (r Recipe) matches(g *grid.Grid) bool {
	rows, columns := g.Size()
	if rows != r.Rows() || columns != r.Columns() {
		return false
	}
	for row, line := range r.Pattern {
		for column, want := range line {
			s := g.Get(grid.Cell{Row: row, Column: column})
			switch {
			case want == "" && s != nil:
				return false
			case want != "" && (s == nil || s.Item().ID() != want):
				return false
			}
		}
	}
	return true
}

// Crafter binds a fixed-shape input grid to an ordered recipe list and a
// single output slot.
type Crafter struct {
	input   *grid.Grid
	recipes []Recipe
	output  *grid.Stack
	name    string
}

// NewCrafter creates a crafter with a rows×columns input grid.
func NewCrafter(name string, recipes []Recipe, rows, columns int) *Crafter {
	return &Crafter{
		input:   grid.New(rows, columns),
		recipes: recipes,
		name:    name,
	}
}

// Name returns the crafter's display name.
func (c *Crafter) Name() string { return c.name }

// Input returns the crafter's input grid.
func (c *Crafter) Input() *grid.Grid { return c.input }

// Output returns the stack waiting in the output slot, or nil.
func (c *Crafter) Output() *grid.Stack { return c.output }

// TakeOutput removes and returns the output stack.
func (c *Crafter) TakeOutput() *grid.Stack {
	out := c.output
	c.output = nil
	return out
}

// Match scans the recipe list in declaration order and returns the result of
// the first recipe the current input satisfies, or nil if none match. It
// never mutates the crafter; a no-match outcome is normal, not an error.
func (c *Crafter) Match() *Result {
	for i := range c.recipes {
		if c.recipes[i].matches(c.input) {
			return &c.recipes[i].Result
		}
	}
	return nil
}

// Craft resolves the current input against the recipe list. On a match it
// deducts one unit from every non-empty input cell and merges a freshly
// minted result into the output slot. Crafted reports false when nothing
// matched or when the output slot cannot absorb the result; the error is
// non-nil only for an unknown product id in the recipe table.
func (c *Crafter) Craft() (crafted bool, err error) {
	result := c.Match()
	if result == nil {
		return false, nil
	}
	out, err := result.Stack()
	if err != nil {
		return false, err
	}
	if c.output != nil {
		if c.output.Item().ID() != out.Item().ID() || c.output.Space() < out.Quantity() {
			return false, nil
		}
	}

	c.input.Cells(func(cell grid.Cell, s *grid.Stack) {
		if s == nil {
			return
		}
		s.Subtract(1)
	})
	c.input.Compact()

	if c.output == nil {
		c.output = out
	} else {
		c.output.Add(out.Quantity())
	}
	return true, nil
}
