package assets

import "ninedraft/internal/core"

// TerrainWeights is the weighted block distribution for generated ground.
var TerrainWeights = []struct {
	Weight int
	Block  string
}{
	{100, "dirt"},
	{30, "stone"},
}

// TreeTrunks and TreeLeaves are the starting tree, in grid cells.
var TreeTrunks = []core.Cell{{X: 3, Y: 8}, {X: 3, Y: 7}, {X: 3, Y: 6}, {X: 3, Y: 5}}

var TreeLeaves = []core.Cell{
	{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 2}, {X: 4, Y: 3},
	{X: 2, Y: 2}, {X: 4, Y: 4}, {X: 3, Y: 4}, {X: 2, Y: 4},
}

// Fixed starting features, in grid cells.
var (
	HoneyCell  = core.Cell{X: 4, Y: 2}
	HiveCells  = []core.Cell{{X: 2, Y: 5}, {X: 4, Y: 5}}
	MayhemCell = core.Cell{X: 14, Y: 8}
)

// MobSpawn places one starting mob at a pixel position.
type MobSpawn struct {
	ID      string
	Species string
	X, Y    float64
}

// StartingMobs lists the mobs present at world load.
var StartingMobs = []MobSpawn{
	{ID: "friendly_bird", Species: "bird", X: 400, Y: 100},
	{ID: "sheep", Species: "sheep", X: 600, Y: 270},
	{ID: "bee", Species: "bee", X: 500, Y: 275},
}

// PlayerSpawnX and PlayerSpawnY are the player's starting pixel position.
const (
	PlayerSpawnX = 250.0
	PlayerSpawnY = 150.0
)

// StartingStack describes one pre-filled inventory or hotbar slot.
type StartingStack struct {
	ItemID   []string
	Quantity int
	Row, Col int
}

// StartingHotbar fills the hotbar's leftmost slots at game start.
var StartingHotbar = []StartingStack{
	{ItemID: []string{"dirt"}, Quantity: 20, Row: 0, Col: 0},
	{ItemID: []string{"apple"}, Quantity: 4, Row: 0, Col: 1},
	{ItemID: []string{"furnace"}, Quantity: 1, Row: 0, Col: 2},
	{ItemID: []string{"stone"}, Quantity: 20, Row: 0, Col: 3},
}

// StartingInventory pre-fills the backpack.
var StartingInventory = []StartingStack{
	{ItemID: []string{"dirt"}, Quantity: 10, Row: 1, Col: 5},
	{ItemID: []string{"wood"}, Quantity: 10, Row: 0, Col: 2},
}
