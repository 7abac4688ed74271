package game

import (
	"ninedraft/internal/grid"
	"ninedraft/internal/physics"
)

// movementImpulse is the velocity added per move command, and jumpSpeed the
// vertical speed of a jump.
const (
	movementImpulse = 80.0
	jumpSpeed       = -200.0
	jumpBrake       = 50.0
)

// Move nudges the player's velocity by one movement impulse in (dx, dy).
func (s *Session) Move(dx, dy int) {
	body := s.world.PlayerBody()
	v := body.Velocity()
	s.checkTarget()
	body.SetVelocity(physics.Vec{
		X: v.X + float64(dx)*movementImpulse,
		Y: v.Y + float64(dy)*movementImpulse,
	})
}

// Jump launches the player upward, braking horizontal drift so repeated
// jumps do not build unbounded speed.
func (s *Session) Jump() {
	body := s.world.PlayerBody()
	v := body.Velocity()
	s.checkTarget()
	switch {
	case v.X < 0:
		body.SetVelocity(physics.Vec{X: v.X + jumpBrake, Y: jumpSpeed})
	case v.X > 0:
		body.SetVelocity(physics.Vec{X: v.X - jumpBrake, Y: jumpSpeed})
	default:
		body.SetVelocity(physics.Vec{X: 0, Y: jumpSpeed})
	}
}

// SelectSlot toggles hotbar slot index (0-based) as the active selection.
func (s *Session) SelectSlot(index int) {
	s.hotbar.ToggleSelection(grid.Cell{Row: 0, Column: index})
}
