// Package player holds the player's vital state. The player's physical
// presence (position, velocity, collisions) lives in the world's physics
// registry like every other entity.
package player

// MaxHealth and MaxFood are the caps on the player's vitals.
const (
	MaxHealth = 20.0
	MaxFood   = 20.0
)

// Player tracks health and food, both clamped to [0, max].
type Player struct {
	name   string
	health float64
	food   float64
}

// New creates a player with full health and food.
func New(name string) *Player {
	return &Player{name: name, health: MaxHealth, food: MaxFood}
}

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Health returns the current health.
func (p *Player) Health() float64 { return p.health }

// Food returns the current food level.
func (p *Player) Food() float64 { return p.food }

// ChangeHealth adjusts health by delta, clamped to [0, MaxHealth].
func (p *Player) ChangeHealth(delta float64) {
	p.health = clamp(p.health+delta, 0, MaxHealth)
}

// ChangeFood adjusts food by delta, clamped to [0, MaxFood].
func (p *Player) ChangeFood(delta float64) {
	p.food = clamp(p.food+delta, 0, MaxFood)
}

// Reset restores full health and food.
func (p *Player) Reset() {
	p.health = MaxHealth
	p.food = MaxFood
}

// Dead reports whether the player's health has reached zero.
func (p *Player) Dead() bool { return p.health <= 0 }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
