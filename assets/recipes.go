// Package assets holds the game's static content tables: crafting recipes,
// block and item colours, and the starting world layout.
package assets

import "ninedraft/internal/crafting"

// CraftingRecipes2x2 is the basic crafter's recipe list. Order matters:
// the first matching recipe wins, so more specific patterns that overlap a
// later one must be declared first.
var CraftingRecipes2x2 = []crafting.Recipe{
	{
		Pattern: [][]string{
			{"", ""},
			{"wood", ""},
		},
		Result: crafting.Result{ItemID: []string{"wood_plank"}, Quantity: 4},
	},
	{
		Pattern: [][]string{
			{"stone", "stone"},
			{"", ""},
		},
		Result: crafting.Result{ItemID: []string{"stone_slab"}, Quantity: 2},
	},
	{
		Pattern: [][]string{
			{"stone", "stone"},
			{"stone", "stone"},
		},
		Result: crafting.Result{ItemID: []string{"refined_stone"}, Quantity: 1},
	},
	{
		Pattern: [][]string{
			{"wood", ""},
			{"wood", ""},
		},
		Result: crafting.Result{ItemID: []string{"stick"}, Quantity: 4},
	},
	{
		Pattern: [][]string{
			{"wood", "wood"},
			{"wood", "wood"},
		},
		Result: crafting.Result{ItemID: []string{"crafting_table"}, Quantity: 1},
	},
}

// CraftingRecipes3x3 is the crafting table's recipe list.
var CraftingRecipes3x3 = []crafting.Recipe{
	{
		Pattern: [][]string{
			{"stone", "stone", "stone"},
			{"stone", "", "stone"},
			{"stone", "stone", "stone"},
		},
		Result: crafting.Result{ItemID: []string{"furnace"}, Quantity: 1},
	},
	{
		Pattern: [][]string{
			{"wood", "wood", "wood"},
			{"", "stick", ""},
			{"", "stick", ""},
		},
		Result: crafting.Result{ItemID: []string{"pickaxe", "wood"}, Quantity: 1},
	},
	{
		Pattern: [][]string{
			{"wood", "wood", ""},
			{"wood", "stick", ""},
			{"", "stick", ""},
		},
		Result: crafting.Result{ItemID: []string{"axe", "wood"}, Quantity: 1},
	},
	{
		Pattern: [][]string{
			{"wool", "wool", "wool"},
			{"wood", "wood", "wood"},
			{"", "", ""},
		},
		Result: crafting.Result{ItemID: []string{"bed"}, Quantity: 1},
	},
	{
		Pattern: [][]string{
			{"stone", "stone", "stone"},
			{"", "stick", ""},
			{"", "stick", ""},
		},
		Result: crafting.Result{ItemID: []string{"pickaxe", "stone"}, Quantity: 1},
	},
	{
		Pattern: [][]string{
			{"stone", "stone", ""},
			{"stone", "stick", ""},
			{"", "stick", ""},
		},
		Result: crafting.Result{ItemID: []string{"axe", "stone"}, Quantity: 1},
	},
}

// FurnaceRecipes is the furnace's recipe list: a 3×1 column of
// (ingredient, empty, fuel).
var FurnaceRecipes = []crafting.Recipe{
	{
		Pattern: [][]string{
			{"apple"},
			{""},
			{"wood"},
		},
		Result: crafting.Result{ItemID: []string{"cooked_apple"}, Quantity: 1},
	},
}

// CrafterShapes maps a craft type to its input grid shape. The three-way
// set is closed; anything else is a content bug.
var CrafterShapes = map[string][2]int{
	"basic":          {2, 2},
	"crafting_table": {3, 3},
	"furnace":        {3, 1},
}

// RecipesFor returns the recipe list for a craft type.
var RecipesFor = map[string][]crafting.Recipe{
	"basic":          CraftingRecipes2x2,
	"crafting_table": CraftingRecipes3x3,
	"furnace":        FurnaceRecipes,
}

// CrafterNames maps a craft type to its window title.
var CrafterNames = map[string]string{
	"basic":          "Basic Crafter",
	"crafting_table": "Crafting Table",
	"furnace":        "Furnace",
}
