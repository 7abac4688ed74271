package mob

import (
	"math"

	"ninedraft/internal/core"
	"ninedraft/internal/item"
	"ninedraft/internal/physics"
)

const (
	// birdCadence / sheepCadence / beeCadence are how many steps pass
	// between velocity recomputations for each species.
	birdCadence  = 20
	sheepCadence = 50
	beeCadence   = 7

	// beeLift counteracts gravity so bees hover rather than sink.
	beeLift = 100
	// beeXScale stretches the bee's random jitter onto an ellipse wider
	// on the horizontal axis, so swarms never fly in straight lines.
	beeXScale = 2.5
	// beeAttractantRange is the grid-cell radius within which honey
	// blocks attract bees.
	beeAttractantRange = 10
	// beeAttractant is the block id bees seek in preference to the player.
	beeAttractant = "honey"
)

var behaviors = map[Species]behavior{
	SpeciesBird: {
		maxHealth:  20,
		width:      12,
		height:     12,
		step:       birdStep,
		takeDamage: damageHealth,
		dead:       func(m *Mob) bool { return m.health <= 0 },
		drops:      func(m *Mob, luck float64) []item.Drop { return nil },
		removable:  true,
	},
	SpeciesSheep: {
		maxHealth: 20,
		width:     40,
		height:    25,
		// Sheep cannot take damage.
		takeDamage: func(m *Mob, amount float64) {},
		// Always "dead": attacking a sheep immediately yields its drops,
		// but the sheep itself is never removed from the world.
		dead: func(m *Mob) bool { return true },
		drops: func(m *Mob, luck float64) []item.Drop {
			return []item.Drop{{Category: item.DropItem, IDParts: []string{"wool"}}}
		},
		step:      sheepStep,
		removable: false,
	},
	SpeciesBee: {
		maxHealth:  20,
		width:      5,
		height:     5,
		step:       beeStep,
		takeDamage: damageHealth,
		dead:       func(m *Mob) bool { return m.health <= 0 },
		drops:      func(m *Mob, luck float64) []item.Drop { return nil },
		removable:  true,
	},
}

// birdStep gives the bird a fresh gentle flight vector on its cadence.
func birdStep(m *Mob, dt float64, view WorldView) {
	if m.steps%birdCadence != 0 {
		return
	}
	vx := float64(m.rng.Intn(201) - 100)
	vy := float64(m.rng.Intn(81)) - 120
	m.body.SetVelocity(physics.Vec{X: vx, Y: vy})
}

// sheepStep is a simple random walk: a bounded horizontal perturbation plus
// a fixed vertical hop, applied every sheepCadence steps.
func sheepStep(m *Mob, dt float64, view WorldView) {
	if m.steps%sheepCadence != 0 {
		return
	}
	v := m.body.Velocity()
	movement := float64(m.rng.Intn(101) - 50)
	m.body.SetVelocity(physics.Vec{X: v.X + movement, Y: -150})
}

// beeStep implements target-seeking steering: bees swarm the honey block
// whose position sorts first lexicographically among those within range, or
// the player when no honey is near. The steering vector gets a random
// angular perturbation stretched wider on the horizontal axis, plus a
// constant lift term against gravity.
func beeStep(m *Mob, dt float64, view WorldView) {
	if m.steps%beeCadence != 0 {
		return
	}

	pos := m.Position()
	cell := view.PixelToGrid(pos)

	target, found := m.nearestAttractant(view, cell)
	if !found {
		target = view.PlayerPosition()
	}
	xdist := target.X - pos.X
	ydist := target.Y - pos.Y

	// Random point on the unit quarter-circle, stretched onto an ellipse
	// wider on the x-axis.
	angle := m.rng.Float64() * 0.5 * math.Pi
	dx := math.Cos(angle) * beeXScale
	dy := math.Sin(angle)

	v := m.body.Velocity()
	m.body.SetVelocity(physics.Vec{
		X: v.X + xdist + dx,
		Y: v.Y + ydist + dy - beeLift,
	})
}

// nearestAttractant selects the in-range attractant block position that
// sorts first lexicographically. The tie-break is deliberately positional,
// not nearest-distance, so target selection is deterministic and
// reproducible for a given world state.
func (m *Mob) nearestAttractant(view WorldView, cell core.Cell) (core.Point, bool) {
	var best core.Point
	found := false
	for _, p := range view.BlockPositions(beeAttractant) {
		c := view.PixelToGrid(p)
		if abs(c.X-cell.X) > beeAttractantRange || abs(c.Y-cell.Y) > beeAttractantRange {
			continue
		}
		if !found || p.Less(best) {
			best = p
			found = true
		}
	}
	return best, found
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
