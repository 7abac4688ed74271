// Package mob implements world creatures as a closed set of species, each
// carrying a behavior policy (step, damage, death, drops) selected by its
// species tag. Species-specific velocity updates run on a per-species
// cadence gated by the mob's step counter; recomputing every tick would make
// motion erratic, so the cadence is a tuning parameter of each species.
package mob

import (
	"math/rand"

	"ninedraft/internal/core"
	"ninedraft/internal/item"
	"ninedraft/internal/physics"
)

// Species tags a mob with its behavior policy.
type Species string

const (
	SpeciesBird  Species = "bird"
	SpeciesSheep Species = "sheep"
	SpeciesBee   Species = "bee"
)

// WorldView is the world state a mob may observe during a step. The world
// implements it; declaring it here keeps mob free of a world import cycle.
type WorldView interface {
	// PixelToGrid converts a pixel position to its grid cell.
	PixelToGrid(p core.Point) core.Cell
	// BlockPositions returns the pixel centres of every block with the
	// given id, in no particular order.
	BlockPositions(blockID string) []core.Point
	// PlayerPosition returns the player's current pixel position.
	PlayerPosition() core.Point
}

// behavior is the per-species policy table entry.
type behavior struct {
	maxHealth  float64
	width      float64
	height     float64
	step       func(m *Mob, dt float64, view WorldView)
	takeDamage func(m *Mob, amount float64)
	dead       func(m *Mob) bool
	drops      func(m *Mob, luck float64) []item.Drop
	// removable reports whether death processing removes the mob from
	// the world. The sheep is deliberately never removed.
	removable bool
}

// Mob is one creature in the world. Its position and velocity live on the
// physics body the world assigns when the mob is added.
type Mob struct {
	id      string
	species Species
	health  float64
	steps   uint64
	body    *physics.Body
	rng     *rand.Rand
}

// New creates a mob of the given species.
func New(id string, species Species, rng *rand.Rand) *Mob {
	return &Mob{
		id:      id,
		species: species,
		health:  behaviors[species].maxHealth,
		rng:     rng,
	}
}

// ID returns the mob's identifier.
func (m *Mob) ID() string { return m.id }

// Species returns the mob's species tag.
func (m *Mob) Species() Species { return m.species }

// Health returns the mob's remaining health.
func (m *Mob) Health() float64 { return m.health }

// Steps returns how many times the mob has been stepped.
func (m *Mob) Steps() uint64 { return m.steps }

// SetBody attaches the physics body the world created for this mob.
func (m *Mob) SetBody(b *physics.Body) { m.body = b }

// Body returns the mob's physics body.
func (m *Mob) Body() *physics.Body { return m.body }

// Position returns the mob's pixel position.
func (m *Mob) Position() core.Point {
	p := m.body.Position()
	return core.Point{X: p.X, Y: p.Y}
}

// Step advances the mob by one tick: the step counter always increments, and
// the species policy decides whether this tick recomputes velocity. Position
// integration itself is the physics backend's job.
func (m *Mob) Step(dt float64, view WorldView) {
	m.steps++
	behaviors[m.species].step(m, dt, view)
}

// TakeDamage applies amount points of damage under the species policy.
func (m *Mob) TakeDamage(amount float64) {
	behaviors[m.species].takeDamage(m, amount)
}

// Dead reports whether the mob is eligible for death processing.
func (m *Mob) Dead() bool { return behaviors[m.species].dead(m) }

// Drops returns the mob's death drops, or nil.
func (m *Mob) Drops(luck float64) []item.Drop {
	return behaviors[m.species].drops(m, luck)
}

// Removable reports whether death processing removes the mob from the world.
func (m *Mob) Removable() bool { return behaviors[m.species].removable }

// Size returns the species' physical width and height in pixels.
func (m *Mob) Size() (w, h float64) {
	b := behaviors[m.species]
	return b.width, b.height
}

func damageHealth(m *Mob, amount float64) {
	m.health -= amount
	if m.health < 0 {
		m.health = 0
	}
}
