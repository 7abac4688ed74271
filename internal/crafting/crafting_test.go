package crafting

import (
	"testing"

	"ninedraft/internal/grid"
	"ninedraft/internal/item"
)

var (
	plankResult = Result{ItemID: []string{"wood_plank"}, Quantity: 4}
	stickResult = Result{ItemID: []string{"stick"}, Quantity: 1}
)

func fill(t *testing.T, c *Crafter, pattern [][]string) {
	t.Helper()
	for row, line := range pattern {
		for column, id := range line {
			if id == "" {
				continue
			}
			it, err := item.Create(id)
			if err != nil {
				t.Fatalf("Create(%s): %v", id, err)
			}
			c.Input().Set(grid.Cell{Row: row, Column: column}, grid.NewStack(it, 2))
		}
	}
}

func craft(t *testing.T, c *Crafter) bool {
	t.Helper()
	crafted, err := c.Craft()
	if err != nil {
		t.Fatalf("Craft: %v", err)
	}
	return crafted
}

func TestMatchExactPositional(t *testing.T) {
	recipes := []Recipe{
		{
			Pattern: [][]string{
				{"wood", ""},
				{"", ""},
			},
			Result: plankResult,
		},
	}
	c := NewCrafter("basic", recipes, 2, 2)

	if c.Match() != nil {
		t.Fatalf("empty grid matched")
	}

	fill(t, c, [][]string{{"wood", ""}, {"", ""}})
	if got := c.Match(); got == nil || got.ItemID[0] != "wood_plank" {
		t.Fatalf("Match = %+v, want wood_plank", got)
	}

	// The same ingredient in the wrong cell must not match.
	c2 := NewCrafter("basic", recipes, 2, 2)
	fill(t, c2, [][]string{{"", "wood"}, {"", ""}})
	if c2.Match() != nil {
		t.Fatalf("misplaced ingredient matched")
	}
}

func TestEmptyPatternCellMustBeEmpty(t *testing.T) {
	recipes := []Recipe{
		{
			Pattern: [][]string{
				{"wood", ""},
				{"", ""},
			},
			Result: plankResult,
		},
	}
	c := NewCrafter("basic", recipes, 2, 2)
	fill(t, c, [][]string{{"wood", "wood"}, {"", ""}})
	if c.Match() != nil {
		t.Fatalf("extra ingredient in a must-be-empty cell matched")
	}
}

func TestDeclarationOrderIsPriority(t *testing.T) {
	pattern := [][]string{
		{"wood", ""},
		{"", ""},
	}
	recipes := []Recipe{
		{Pattern: pattern, Result: plankResult},
		{Pattern: pattern, Result: stickResult},
	}
	c := NewCrafter("basic", recipes, 2, 2)
	fill(t, c, pattern)

	if got := c.Match(); got == nil || got.ItemID[0] != "wood_plank" {
		t.Fatalf("Match = %+v, want the first declared recipe to win", got)
	}
}

func TestMatchIsPure(t *testing.T) {
	recipes := []Recipe{
		{Pattern: [][]string{{"wood"}}, Result: plankResult},
	}
	c := NewCrafter("basic", recipes, 1, 1)
	fill(t, c, [][]string{{"wood"}})

	c.Match()
	c.Match()

	if got := c.Input().Get(grid.Cell{}).Quantity(); got != 2 {
		t.Fatalf("Match consumed ingredients: quantity = %d, want 2", got)
	}
	if c.Output() != nil {
		t.Fatalf("Match filled the output slot")
	}
}

func TestCraftDeductsAndFillsOutput(t *testing.T) {
	recipes := []Recipe{
		{Pattern: [][]string{{"wood"}}, Result: plankResult},
	}
	c := NewCrafter("basic", recipes, 1, 1)
	fill(t, c, [][]string{{"wood"}})

	if !craft(t, c) {
		t.Fatalf("Craft failed on a matching grid")
	}
	if got := c.Input().Get(grid.Cell{}).Quantity(); got != 1 {
		t.Fatalf("ingredient quantity = %d, want 1 after one craft", got)
	}
	out := c.Output()
	if out == nil || out.Item().ID() != "wood_plank" || out.Quantity() != 4 {
		t.Fatalf("output = %+v, want 4 wood_plank", out)
	}

	// Crafting again merges into the same output stack,
	// and exhausts the ingredient cell.
	if !craft(t, c) {
		t.Fatalf("second craft failed")
	}
	if got := c.Output().Quantity(); got != 8 {
		t.Fatalf("output quantity = %d, want 8", got)
	}
	if c.Input().Get(grid.Cell{}) != nil {
		t.Fatalf("exhausted ingredient cell should be cleared")
	}

	// Nothing left to craft with.
	if craft(t, c) {
		t.Fatalf("craft succeeded with an empty grid")
	}
}

func TestCraftMintsFreshItems(t *testing.T) {
	recipes := []Recipe{
		{Pattern: [][]string{{"stick"}}, Result: Result{ItemID: []string{"pickaxe", "wood"}, Quantity: 1}},
	}
	c := NewCrafter("table", recipes, 1, 1)

	fill(t, c, [][]string{{"stick"}})
	if !craft(t, c) {
		t.Fatalf("first craft failed")
	}
	first := c.TakeOutput().Item()

	if !craft(t, c) {
		t.Fatalf("second craft failed")
	}
	second := c.TakeOutput().Item()

	if first == second {
		t.Fatalf("both crafts yielded the same item instance")
	}

	// Wearing the first tool must not touch the second.
	for i := 0; i < 10; i++ {
		first.Attack(false)
	}
	full := item.ToolDurabilities["wood"]
	tool, ok := second.(*item.ToolItem)
	if !ok {
		t.Fatalf("crafted item is %T, want *item.ToolItem", second)
	}
	if got := tool.Durability(); got != full {
		t.Fatalf("second tool durability = %d, want %d", got, full)
	}
}

func TestCraftRejectsUnknownProduct(t *testing.T) {
	recipes := []Recipe{
		{Pattern: [][]string{{"wood"}}, Result: Result{ItemID: []string{"nonsuch"}, Quantity: 1}},
	}
	c := NewCrafter("basic", recipes, 1, 1)
	fill(t, c, [][]string{{"wood"}})

	crafted, err := c.Craft()
	if crafted || err == nil {
		t.Fatalf("Craft = (%t, %v), want a configuration error", crafted, err)
	}
	if got := c.Input().Get(grid.Cell{}).Quantity(); got != 2 {
		t.Fatalf("failed craft consumed ingredients: quantity = %d, want 2", got)
	}
}

func TestCraftRejectsIncompatibleOutput(t *testing.T) {
	recipes := []Recipe{
		{Pattern: [][]string{{"wood"}}, Result: plankResult},
		{Pattern: [][]string{{"stone"}}, Result: stickResult},
	}
	c := NewCrafter("basic", recipes, 1, 1)
	fill(t, c, [][]string{{"wood"}})
	if !craft(t, c) {
		t.Fatalf("first craft failed")
	}

	// Swap the ingredient so a different recipe matches; the occupied
	// output slot must block it.
	c.Input().Set(grid.Cell{}, grid.NewStack(item.NewBlockItem("stone"), 1))
	if craft(t, c) {
		t.Fatalf("craft overwrote a mismatched output stack")
	}
	if got := c.Output().Item().ID(); got != "wood_plank" {
		t.Fatalf("output changed to %q", got)
	}
}

func TestTakeOutput(t *testing.T) {
	recipes := []Recipe{
		{Pattern: [][]string{{"wood"}}, Result: plankResult},
	}
	c := NewCrafter("basic", recipes, 1, 1)
	fill(t, c, [][]string{{"wood"}})
	craft(t, c)

	out := c.TakeOutput()
	if out == nil || out.Quantity() != 4 {
		t.Fatalf("TakeOutput = %+v, want the 4-plank stack", out)
	}
	if c.Output() != nil {
		t.Fatalf("output slot not cleared")
	}
}
