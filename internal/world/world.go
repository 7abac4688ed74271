// Package world owns all simulation state: the grid-indexed block map, live
// mobs, dropped items, the player, and the physics backend's body/shape
// registry. Every add/remove keeps the spatial index and the physics
// registry consistent as one operation, so no entity ever exists in one
// without the other.
package world

import (
	"ninedraft/internal/block"
	"ninedraft/internal/core"
	"ninedraft/internal/mob"
	"ninedraft/internal/physics"
	"ninedraft/internal/player"
)

// Categories tag physics shapes with the kind of thing they belong to.
// Collision handlers are registered per unordered pair of these.
const (
	CategoryPlayer physics.Category = "player"
	CategoryBlock  physics.Category = "block"
	CategoryItem   physics.Category = "item"
	CategoryMob    physics.Category = "mob"
	CategoryWall   physics.Category = "wall"
)

// Thing is one entry of the ordered render sequence: the simulation entity,
// its physics shape, and its category tag. The view layer decides how each
// category is drawn.
type Thing struct {
	Owner    any
	Shape    *physics.Shape
	Category physics.Category
}

// BoundaryWall is an invisible static wall closing off a world edge.
type BoundaryWall struct {
	id string
}

// ID returns which edge the wall closes ("top", "bottom", "left", "right").
func (w *BoundaryWall) ID() string { return w.id }

// World is the simulation's single source of truth.
type World struct {
	columns, rows int
	cellSize      float64

	space  *physics.Space
	things []Thing

	blocks map[core.Cell]block.Block
	mobs   []*mob.Mob
	items  []*DroppedItem

	player     *player.Player
	playerBody *physics.Body
}

// New creates a world of columns×rows cells of cellSize pixels each, with
// boundary walls already in place.
func New(columns, rows int, cellSize float64, gravity physics.Vec, damping float64) *World {
	w := &World{
		columns:  columns,
		rows:     rows,
		cellSize: cellSize,
		space:    physics.NewSpace(gravity, damping),
		blocks:   make(map[core.Cell]block.Block),
	}
	w.addBoundaryWalls()
	return w
}

func (w *World) addBoundaryWalls() {
	width, height := w.PixelSize()
	const thickness = 10.0
	walls := []struct {
		id   string
		x, y float64
		w, h float64
	}{
		{"top", width / 2, -thickness / 2, width, thickness},
		{"bottom", width / 2, height + thickness/2, width, thickness},
		{"left", -thickness / 2, height / 2, thickness, height},
		{"right", width + thickness/2, height / 2, thickness, height},
	}
	for _, def := range walls {
		wall := &BoundaryWall{id: def.id}
		body := physics.NewBody(physics.Static, def.x, def.y)
		shape := physics.NewBoxShape(body, def.w, def.h, CategoryWall, wall)
		w.space.AddShape(shape)
		w.things = append(w.things, Thing{Owner: wall, Shape: shape, Category: CategoryWall})
	}
}

// GridSize returns the world's dimensions in cells.
func (w *World) GridSize() (columns, rows int) { return w.columns, w.rows }

// PixelSize returns the world's dimensions in pixels.
func (w *World) PixelSize() (width, height float64) {
	return float64(w.columns) * w.cellSize, float64(w.rows) * w.cellSize
}

// CellExpanse returns the pixel size of one grid cell.
func (w *World) CellExpanse() float64 { return w.cellSize }

// GridToPixelCentre returns the pixel centre of a grid cell.
func (w *World) GridToPixelCentre(c core.Cell) core.Point {
	return core.Point{
		X: (float64(c.X) + 0.5) * w.cellSize,
		Y: (float64(c.Y) + 0.5) * w.cellSize,
	}
}

// PixelToGrid returns the grid cell containing a pixel position.
func (w *World) PixelToGrid(p core.Point) core.Cell {
	return core.Cell{X: int(p.X / w.cellSize), Y: int(p.Y / w.cellSize)}
}

// InGrid reports whether the cell lies inside the world.
func (w *World) InGrid(c core.Cell) bool {
	return c.X >= 0 && c.X < w.columns && c.Y >= 0 && c.Y < w.rows
}

// Things returns the ordered render sequence of everything in the world.
func (w *World) Things() []Thing { return w.things }

// OnCollision registers a collision-begin handler for an unordered category
// pair. The handler's return value decides whether the contact is solid.
func (w *World) OnCollision(a, b physics.Category, h physics.Handler) {
	w.space.OnCollision(a, b, h)
}

// Step advances physics by dt seconds, then steps every live mob with this
// world as its view. Mob order is stable but unspecified; no mob's step may
// depend on another's within the same tick.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
	for _, m := range w.mobs {
		m.Step(dt, w)
	}
}

func (w *World) removeThing(owner any) *physics.Shape {
	for i, t := range w.things {
		if t.Owner == owner {
			w.things = append(w.things[:i], w.things[i+1:]...)
			w.space.RemoveShape(t.Shape)
			return t.Shape
		}
	}
	return nil
}

func (w *World) shapeOf(owner any) *physics.Shape {
	for _, t := range w.things {
		if t.Owner == owner {
			return t.Shape
		}
	}
	return nil
}
