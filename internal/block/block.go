// Package block defines the closed set of block variants, the per-block
// break tables, and the probabilistic mining model. Blocks are created
// through Create, the single authority on which block identifiers exist.
package block

import "ninedraft/internal/item"

// BreakInfo is one break-table entry: how many mining hits a tool kind needs
// to break the block, and whether a break with that tool always drops.
type BreakInfo struct {
	TimeToBreak float64
	AlwaysDrops bool
}

// BreakTable maps a tool kind to its break entry. Every table carries an
// entry for item.HandToolKind, the fallback used for unsuited tools.
type BreakTable map[string]BreakInfo

// MineProgressUnit is how much progress a single mining hit contributes.
// One hit represents one discrete attack tick, not continuous time.
const MineProgressUnit = 1.0

// Block is one of the closed set of block variants.
type Block interface {
	// ID identifies the block kind, e.g. "dirt" or "hive".
	ID() string
	// Mine advances mining by one hit with the given effective tool.
	// toolSuitable reports whether the break entry used came from the
	// tool's own kind rather than the hand fallback; attackSucceeded is
	// true only on the hit that breaks the block.
	Mine(effective, active item.Item, luck float64) (toolSuitable, attackSucceeded bool)
	// IsMined reports whether the block has been broken.
	IsMined() bool
	// BeingMined reports whether at least one mining hit has landed.
	BeingMined() bool
	// Drops returns the block's drop payloads for a finished break.
	// correctToolUsed is the toolSuitable value of the finishing hit.
	Drops(luck float64, correctToolUsed bool) []item.Drop
	// Use returns the effect of right-clicking the block, or nil.
	Use() *item.Effect
}

// ResourceBlock is the generic mineable block: it tracks mining progress
// against its break table and drops one item of its own kind.
type ResourceBlock struct {
	id         string
	table      BreakTable
	progress   float64
	mined      bool
	beingMined bool

	// lastInfo is the break entry used by the most recent hit; its
	// AlwaysDrops flag gates the drop draw.
	lastInfo BreakInfo
}

// NewResourceBlock creates a resource block with the given break table.
func NewResourceBlock(id string, table BreakTable) *ResourceBlock {
	return &ResourceBlock{id: id, table: table}
}

func (b *ResourceBlock) ID() string { return b.id }

// lookup finds the break entry for a tool kind, falling back to the hand
// entry. suitable is true only for a direct hit on the tool's own kind.
func (b *ResourceBlock) lookup(toolKind string) (info BreakInfo, suitable bool) {
	if info, ok := b.table[toolKind]; ok {
		return info, true
	}
	return b.table[item.HandToolKind], false
}

// Mine lands one hit on the block.
func (b *ResourceBlock) Mine(effective, active item.Item, luck float64) (bool, bool) {
	info, suitable := b.lookup(effective.ToolKind())
	b.lastInfo = info
	b.beingMined = true
	b.progress += MineProgressUnit
	if !b.mined && b.progress >= info.TimeToBreak {
		b.mined = true
		return suitable, true
	}
	return suitable, false
}

func (b *ResourceBlock) IsMined() bool    { return b.mined }
func (b *ResourceBlock) BeingMined() bool { return b.beingMined }

// dropChance is the probability that a break whose entry is not AlwaysDrops
// still yields its drop.
const dropChance = 0.5

// Drops yields one item of the block's own kind, gated by the finishing
// entry's AlwaysDrops flag or a luck draw.
func (b *ResourceBlock) Drops(luck float64, correctToolUsed bool) []item.Drop {
	if b.lastInfo.AlwaysDrops || luck < dropChance {
		return []item.Drop{{Category: item.DropItem, IDParts: []string{b.id}}}
	}
	return nil
}

// Use has no effect on plain resource blocks.
func (b *ResourceBlock) Use() *item.Effect { return nil }
