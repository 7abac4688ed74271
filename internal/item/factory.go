package item

import (
	"fmt"
	"strings"

	"ninedraft/internal/core"
)

// ToolDurabilities maps a tool material to the starting durability of every
// tool made from it.
var ToolDurabilities = map[string]int{
	"wood":    60,
	"stone":   132,
	"iron":    251,
	"golden":  33,
	"diamond": 1562,
}

// MaterialToolKinds lists the tool shapes that can be made from a material.
var MaterialToolKinds = []string{"axe", "pickaxe", "shovel", "hoe", "sword"}

// foodStrengths maps food item ids to the food they restore.
var foodStrengths = map[string]float64{
	"apple":        2,
	"cooked_apple": 4,
	"honey":        5,
}

// blockItemIDs lists the items that place a block of the same id.
var blockItemIDs = map[string]bool{
	"dirt":           true,
	"stone":          true,
	"diamond":        true,
	"wood":           true,
	"wood_plank":     true,
	"stone_slab":     true,
	"refined_stone":  true,
	"crafting_table": true,
	"furnace":        true,
	"wool":           true,
	"bed":            true,
}

func isToolKind(kind string) bool {
	for _, k := range MaterialToolKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Create is the item factory. One-part identifiers name simple, food, and
// block items; two-part identifiers name tools as (shape, material), e.g.
// Create("pickaxe", "wood"). Unknown identifiers are a configuration error.
func Create(parts ...string) (Item, error) {
	switch len(parts) {
	case 1:
		id := parts[0]
		switch {
		case id == "hands":
			return NewHandItem(id), nil
		case id == "stick":
			return NewSimpleItem(id), nil
		case blockItemIDs[id]:
			return NewBlockItem(id), nil
		default:
			if strength, ok := foodStrengths[id]; ok {
				return NewFoodItem(id, strength), nil
			}
		}
	case 2:
		shape, material := parts[0], parts[1]
		if durability, ok := ToolDurabilities[material]; ok && isToolKind(shape) {
			id := fmt.Sprintf("%s_%s", material, shape)
			return NewToolItem(id, id, durability), nil
		}
	}
	return nil, core.ConfigErrorf("no item defined for %q", strings.Join(parts, " "))
}
