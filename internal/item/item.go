// Package item defines the closed set of item variants the game uses:
// plain stackables, the player's bare hands, placeable block items, tools
// with durability, and food. Items are created through Create, which is the
// single authority on which identifiers exist.
package item

// DropCategory classifies a drop payload.
type DropCategory string

const (
	DropItem   DropCategory = "item"
	DropBlock  DropCategory = "block"
	DropEffect DropCategory = "effect"
)

// Drop is one (category, payload) pair produced by mining a block, killing a
// mob, or placing an item. IDParts carries the item/block identifier tuple;
// Effect carries the payload for effect drops.
type Drop struct {
	Category DropCategory
	IDParts  []string
	Effect   *Effect
}

// EffectKind enumerates the effects an interaction can trigger.
type EffectKind string

const (
	// EffectCrafting opens a crafter; CraftType selects which one.
	EffectCrafting EffectKind = "crafting"
	// EffectFood restores the player's food (or health once food is full).
	EffectFood EffectKind = "food"
	// EffectHealth restores the player's health directly.
	EffectHealth EffectKind = "health"
)

// Effect is the payload of an effect drop or a usable block.
type Effect struct {
	Kind      EffectKind
	CraftType string  // for EffectCrafting: basic, crafting_table, furnace
	Strength  float64 // for EffectFood / EffectHealth
}

// Item is one of the closed set of item variants.
type Item interface {
	// ID uniquely identifies the item kind, e.g. "dirt" or "wood_pickaxe".
	ID() string
	// MaxStack is the largest quantity a single stack may hold.
	MaxStack() int
	// ToolKind is the identifier looked up in block break tables. Items
	// that are not mining tools report an id no table contains, so mining
	// with them falls back to the bare-hand entry.
	ToolKind() string
	// CanAttack reports whether the item can currently be used to attack.
	CanAttack() bool
	// Attack records the outcome of one attack made with this item.
	Attack(successful bool)
	// AttackRange is the reach of the item, in grid cells.
	AttackRange() float64
	// Place returns the drops produced by placing this item, or nil if it
	// cannot be placed.
	Place() []Drop
}

// defaultMaxStack is the stack limit for ordinary items.
const defaultMaxStack = 64

// defaultAttackRange is the reach, in grid cells, of ordinary items.
const defaultAttackRange = 10

// SimpleItem is a plain stackable with no special behaviour, e.g. a stick.
type SimpleItem struct {
	id string
}

// NewSimpleItem creates a plain item with the given id.
func NewSimpleItem(id string) *SimpleItem { return &SimpleItem{id: id} }

func (i *SimpleItem) ID() string           { return i.id }
func (i *SimpleItem) MaxStack() int        { return defaultMaxStack }
func (i *SimpleItem) ToolKind() string     { return i.id }
func (i *SimpleItem) CanAttack() bool      { return true }
func (i *SimpleItem) Attack(bool)          {}
func (i *SimpleItem) AttackRange() float64 { return defaultAttackRange }
func (i *SimpleItem) Place() []Drop        { return nil }

// HandItem is the player's bare hands: unstackable, unplaceable, and the
// fallback tool when the held item cannot attack.
type HandItem struct {
	id string
}

// NewHandItem creates the bare-hands item.
func NewHandItem(id string) *HandItem { return &HandItem{id: id} }

func (i *HandItem) ID() string           { return i.id }
func (i *HandItem) MaxStack() int        { return 1 }
func (i *HandItem) ToolKind() string     { return HandToolKind }
func (i *HandItem) CanAttack() bool      { return true }
func (i *HandItem) Attack(bool)          {}
func (i *HandItem) AttackRange() float64 { return defaultAttackRange }
func (i *HandItem) Place() []Drop        { return nil }

// HandToolKind is the break-table key every block must define; it is the
// fallback entry used when a tool's own kind is absent from the table.
const HandToolKind = "hand"

// BlockItem is an item that places the block of the same id.
type BlockItem struct {
	id string
}

// NewBlockItem creates a placeable block item.
func NewBlockItem(id string) *BlockItem { return &BlockItem{id: id} }

func (i *BlockItem) ID() string           { return i.id }
func (i *BlockItem) MaxStack() int        { return defaultMaxStack }
func (i *BlockItem) ToolKind() string     { return i.id }
func (i *BlockItem) CanAttack() bool      { return true }
func (i *BlockItem) Attack(bool)          {}
func (i *BlockItem) AttackRange() float64 { return defaultAttackRange }

// Place yields the block this item stands for.
func (i *BlockItem) Place() []Drop {
	return []Drop{{Category: DropBlock, IDParts: []string{i.id}}}
}

// ToolItem is a mining/fighting tool with finite durability.
type ToolItem struct {
	id            string
	kind          string
	durability    int
	maxDurability int
}

// NewToolItem creates a tool. kind is the break-table key the tool mines
// under, e.g. "wood_pickaxe".
func NewToolItem(id, kind string, durability int) *ToolItem {
	return &ToolItem{id: id, kind: kind, durability: durability, maxDurability: durability}
}

func (i *ToolItem) ID() string       { return i.id }
func (i *ToolItem) MaxStack() int    { return 1 }
func (i *ToolItem) ToolKind() string { return i.kind }

// Durability returns the tool's remaining durability.
func (i *ToolItem) Durability() int { return i.durability }

// MaxDurability returns the tool's starting durability.
func (i *ToolItem) MaxDurability() int { return i.maxDurability }

// CanAttack reports whether the tool has durability left.
func (i *ToolItem) CanAttack() bool { return i.durability > 0 }

// Attack wears the tool by one point on a failed attack. The finishing
// swing of a successful break costs nothing.
func (i *ToolItem) Attack(successful bool) {
	if !successful && i.durability > 0 {
		i.durability--
	}
}

func (i *ToolItem) AttackRange() float64 { return defaultAttackRange }
func (i *ToolItem) Place() []Drop        { return nil }

// FoodItem restores the player's food (or health, once food is full) when
// used. Food cannot be used to attack.
type FoodItem struct {
	id       string
	strength float64
}

// NewFoodItem creates a food item with the given healing strength.
func NewFoodItem(id string, strength float64) *FoodItem {
	return &FoodItem{id: id, strength: strength}
}

func (i *FoodItem) ID() string       { return i.id }
func (i *FoodItem) MaxStack() int    { return defaultMaxStack }
func (i *FoodItem) ToolKind() string { return i.id }

// Strength returns the amount of food the item restores.
func (i *FoodItem) Strength() float64 { return i.strength }

func (i *FoodItem) CanAttack() bool      { return false }
func (i *FoodItem) Attack(bool)          {}
func (i *FoodItem) AttackRange() float64 { return defaultAttackRange }

// Place yields a food effect rather than a physical thing.
func (i *FoodItem) Place() []Drop {
	return []Drop{{Category: DropEffect, Effect: &Effect{Kind: EffectFood, Strength: i.strength}}}
}
