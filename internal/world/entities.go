package world

import (
	"ninedraft/internal/block"
	"ninedraft/internal/core"
	"ninedraft/internal/item"
	"ninedraft/internal/mob"
	"ninedraft/internal/physics"
	"ninedraft/internal/player"
)

// DroppedItem is an item physically present in the world, waiting to be
// picked up.
type DroppedItem struct {
	item item.Item
}

// NewDroppedItem wraps an item for physical placement.
func NewDroppedItem(it item.Item) *DroppedItem { return &DroppedItem{item: it} }

// Item returns the wrapped item.
func (d *DroppedItem) Item() item.Item { return d.item }

// droppedItemSize is the pixel extent of a dropped item's box.
const droppedItemSize = 10.0

// AddPlayer places the player at pixel position (x, y) and creates its
// physics body. There is exactly one player; calling this again replaces it.
func (w *World) AddPlayer(p *player.Player, x, y float64) {
	if w.player != nil {
		w.removeThing(w.player)
	}
	w.player = p
	w.playerBody = physics.NewBody(physics.Dynamic, x, y)
	shape := physics.NewBoxShape(w.playerBody, 0.75*w.cellSize, 1.9*w.cellSize, CategoryPlayer, p)
	w.space.AddShape(shape)
	w.things = append(w.things, Thing{Owner: p, Shape: shape, Category: CategoryPlayer})
}

// Player returns the player, or nil before AddPlayer.
func (w *World) Player() *player.Player { return w.player }

// PlayerBody returns the player's physics body.
func (w *World) PlayerBody() *physics.Body { return w.playerBody }

// PlayerPosition returns the player's pixel position.
func (w *World) PlayerPosition() core.Point {
	p := w.playerBody.Position()
	return core.Point{X: p.X, Y: p.Y}
}

// AddBlockToGrid places a block into grid cell c, creating its static body
// and shape in the same operation. Fails if the cell is occupied or outside
// the grid.
func (w *World) AddBlockToGrid(b block.Block, c core.Cell) error {
	if !w.InGrid(c) {
		return core.InvariantErrorf("cell (%d,%d) outside the %dx%d grid", c.X, c.Y, w.columns, w.rows)
	}
	if _, occupied := w.blocks[c]; occupied {
		return core.InvariantErrorf("cell (%d,%d) already holds a block", c.X, c.Y)
	}
	centre := w.GridToPixelCentre(c)
	body := physics.NewBody(physics.Static, centre.X, centre.Y)
	shape := physics.NewBoxShape(body, w.cellSize, w.cellSize, CategoryBlock, b)
	w.blocks[c] = b
	w.space.AddShape(shape)
	w.things = append(w.things, Thing{Owner: b, Shape: shape, Category: CategoryBlock})
	return nil
}

// AddBlock places a block at the cell containing pixel position p.
func (w *World) AddBlock(b block.Block, p core.Point) error {
	return w.AddBlockToGrid(b, w.PixelToGrid(p))
}

// RemoveBlock removes a block and its physics shape atomically.
func (w *World) RemoveBlock(b block.Block) {
	for c, existing := range w.blocks {
		if existing == b {
			delete(w.blocks, c)
			break
		}
	}
	w.removeThing(b)
}

// BlockAt returns the block in the cell containing p, or nil.
func (w *World) BlockAt(p core.Point) block.Block {
	return w.blocks[w.PixelToGrid(p)]
}

// BlockPosition returns the pixel centre of a block's cell.
func (w *World) BlockPosition(b block.Block) (core.Point, bool) {
	for c, existing := range w.blocks {
		if existing == b {
			return w.GridToPixelCentre(c), true
		}
	}
	return core.Point{}, false
}

// BlockPositions returns the pixel centres of every block with the given id.
func (w *World) BlockPositions(blockID string) []core.Point {
	var out []core.Point
	for c, b := range w.blocks {
		if b.ID() == blockID {
			out = append(out, w.GridToPixelCentre(c))
		}
	}
	return out
}

// AddMob places a mob at pixel position (x, y), creating its dynamic body.
func (w *World) AddMob(m *mob.Mob, x, y float64) {
	body := physics.NewBody(physics.Dynamic, x, y)
	m.SetBody(body)
	mw, mh := m.Size()
	shape := physics.NewBoxShape(body, mw, mh, CategoryMob, m)
	w.mobs = append(w.mobs, m)
	w.space.AddShape(shape)
	w.things = append(w.things, Thing{Owner: m, Shape: shape, Category: CategoryMob})
}

// RemoveMob removes a mob and its physics shape atomically.
func (w *World) RemoveMob(m *mob.Mob) {
	for i, existing := range w.mobs {
		if existing == m {
			w.mobs = append(w.mobs[:i], w.mobs[i+1:]...)
			break
		}
	}
	w.removeThing(m)
}

// Mobs returns the live mobs in step order.
func (w *World) Mobs() []*mob.Mob { return w.mobs }

// MobsNear returns every mob within radius pixels of p (inclusive).
func (w *World) MobsNear(p core.Point, radius float64) []*mob.Mob {
	var out []*mob.Mob
	for _, m := range w.mobs {
		if core.InRange(p, m.Position(), radius) {
			out = append(out, m)
		}
	}
	return out
}

// AddItem drops an item into the world at pixel position (x, y).
func (w *World) AddItem(d *DroppedItem, x, y float64) {
	body := physics.NewBody(physics.Dynamic, x, y)
	shape := physics.NewBoxShape(body, droppedItemSize, droppedItemSize, CategoryItem, d)
	w.items = append(w.items, d)
	w.space.AddShape(shape)
	w.things = append(w.things, Thing{Owner: d, Shape: shape, Category: CategoryItem})
}

// RemoveItem removes a dropped item and its physics shape atomically. Safe
// to call from inside a collision handler.
func (w *World) RemoveItem(d *DroppedItem) {
	for i, existing := range w.items {
		if existing == d {
			w.items = append(w.items[:i], w.items[i+1:]...)
			break
		}
	}
	w.removeThing(d)
}

// Items returns the dropped items currently in the world.
func (w *World) Items() []*DroppedItem { return w.items }

// ThingAt returns the first thing whose shape contains pixel position p,
// or nil. Boundary walls are skipped.
func (w *World) ThingAt(p core.Point) *Thing {
	for i := range w.things {
		t := &w.things[i]
		if t.Category == CategoryWall {
			continue
		}
		l, top, r, bottom := t.Shape.BB()
		if p.X >= l && p.X <= r && p.Y >= top && p.Y <= bottom {
			return t
		}
	}
	return nil
}
