package block

import (
	"strconv"
	"strings"

	"ninedraft/internal/core"
)

// Create is the block factory. One-part identifiers name ordinary blocks;
// the two-part form ("mayhem", index) names a trick candle. Unknown
// identifiers are a configuration error.
func Create(parts ...string) (Block, error) {
	switch len(parts) {
	case 1:
		id := parts[0]
		switch id {
		case "leaf":
			return NewLeafBlock(), nil
		case "crafting_table":
			return NewCraftingTableBlock(), nil
		case "furnace":
			return NewFurnaceBlock(), nil
		case "hive":
			return NewHiveBlock(), nil
		}
		if table, ok := CraftedBreakTables[id]; ok {
			return NewResourceBlock(id, table), nil
		}
		if table, ok := PrimaryBreakTables[id]; ok {
			return NewResourceBlock(id, table), nil
		}
	case 2:
		if parts[0] == "mayhem" {
			index, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, core.ConfigErrorf("bad mayhem index %q", parts[1])
			}
			return NewTrickCandleFlameBlock(index), nil
		}
	}
	return nil, core.ConfigErrorf("no block defined for %q", strings.Join(parts, " "))
}
