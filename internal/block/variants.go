package block

import (
	"strconv"

	"ninedraft/internal/item"
)

// LeafBlock breaks in one hit. Its break table carries only the hand entry,
// so every tool falls back to it, and the apple drop chance never depends on
// the tool used.
type LeafBlock struct {
	ResourceBlock
}

// appleChance is the probability a broken leaf block drops an apple.
const appleChance = 0.14

// NewLeafBlock creates a leaf block.
func NewLeafBlock() *LeafBlock {
	return &LeafBlock{ResourceBlock: *NewResourceBlock("leaf", BreakTable{
		item.HandToolKind: {TimeToBreak: 1, AlwaysDrops: false},
	})}
}

// Drops yields an apple on a lucky draw, nothing otherwise.
func (b *LeafBlock) Drops(luck float64, correctToolUsed bool) []item.Drop {
	if luck < appleChance {
		return []item.Drop{{Category: item.DropItem, IDParts: []string{"apple"}}}
	}
	return nil
}

// TrickCandleCount is how many mayhem candles exist in the relight cycle.
const TrickCandleCount = 5

// TrickCandleFlameBlock is the "mayhem" block: breaking it drops the next
// candle in the cycle as a block, so it effectively relights itself.
type TrickCandleFlameBlock struct {
	ResourceBlock
	index int
}

// NewTrickCandleFlameBlock creates the candle with the given cycle index.
func NewTrickCandleFlameBlock(index int) *TrickCandleFlameBlock {
	return &TrickCandleFlameBlock{
		ResourceBlock: *NewResourceBlock("mayhem", BreakTable{
			item.HandToolKind: {TimeToBreak: 1, AlwaysDrops: true},
		}),
		index: index % TrickCandleCount,
	}
}

// Index returns the candle's position in the relight cycle.
func (b *TrickCandleFlameBlock) Index() int { return b.index }

// Drops yields the next candle in the cycle as a block drop.
func (b *TrickCandleFlameBlock) Drops(luck float64, correctToolUsed bool) []item.Drop {
	next := (b.index + 1) % TrickCandleCount
	return []item.Drop{{Category: item.DropBlock, IDParts: []string{"mayhem", strconv.Itoa(next)}}}
}

// CraftingTableBlock opens the 3×3 crafter when used and drops itself only
// when mined with a suitable tool.
type CraftingTableBlock struct {
	ResourceBlock
}

// NewCraftingTableBlock creates a crafting table.
func NewCraftingTableBlock() *CraftingTableBlock {
	return &CraftingTableBlock{ResourceBlock: *NewResourceBlock("crafting_table", BreakTable{
		item.HandToolKind: {TimeToBreak: 3, AlwaysDrops: false},
		"wood_axe":        {TimeToBreak: 2, AlwaysDrops: true},
		"stone_axe":       {TimeToBreak: 1, AlwaysDrops: true},
		"golden_axe":      {TimeToBreak: 0.6, AlwaysDrops: true},
		"iron_axe":        {TimeToBreak: 0.5, AlwaysDrops: true},
		"diamond_axe":     {TimeToBreak: 0.1, AlwaysDrops: true},
	})}
}

// Use opens the crafting-table crafter.
func (b *CraftingTableBlock) Use() *item.Effect {
	return &item.Effect{Kind: item.EffectCrafting, CraftType: "crafting_table"}
}

// Drops yields the table itself, but only for a suitable tool.
func (b *CraftingTableBlock) Drops(luck float64, correctToolUsed bool) []item.Drop {
	if correctToolUsed {
		return []item.Drop{{Category: item.DropItem, IDParts: []string{"crafting_table"}}}
	}
	return nil
}

// FurnaceBlock opens the furnace crafter when used and drops itself only
// when mined with a suitable tool.
type FurnaceBlock struct {
	ResourceBlock
}

// NewFurnaceBlock creates a furnace.
func NewFurnaceBlock() *FurnaceBlock {
	return &FurnaceBlock{ResourceBlock: *NewResourceBlock("furnace", BreakTable{
		item.HandToolKind: {TimeToBreak: 5, AlwaysDrops: false},
		"wood_pickaxe":    {TimeToBreak: 2, AlwaysDrops: true},
		"stone_pickaxe":   {TimeToBreak: 1, AlwaysDrops: true},
		"golden_pickaxe":  {TimeToBreak: 0.6, AlwaysDrops: true},
		"iron_pickaxe":    {TimeToBreak: 0.5, AlwaysDrops: true},
		"diamond_pickaxe": {TimeToBreak: 0.1, AlwaysDrops: true},
	})}
}

// Use opens the furnace crafter.
func (b *FurnaceBlock) Use() *item.Effect {
	return &item.Effect{Kind: item.EffectCrafting, CraftType: "furnace"}
}

// Drops yields the furnace itself, but only for a suitable tool.
func (b *FurnaceBlock) Drops(luck float64, correctToolUsed bool) []item.Drop {
	if correctToolUsed {
		return []item.Drop{{Category: item.DropItem, IDParts: []string{"furnace"}}}
	}
	return nil
}

// HiveBlock reports no generic drops: breaking a hive spawns bees, which the
// interaction layer handles by special-casing the block id.
type HiveBlock struct {
	ResourceBlock
}

// NewHiveBlock creates a hive.
func NewHiveBlock() *HiveBlock {
	return &HiveBlock{ResourceBlock: *NewResourceBlock("hive", BreakTable{
		item.HandToolKind: {TimeToBreak: 1, AlwaysDrops: true},
	})}
}

// Drops reports nothing; the bee spawn happens outside the drop pipeline.
func (b *HiveBlock) Drops(luck float64, correctToolUsed bool) []item.Drop { return nil }
