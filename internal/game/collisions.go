package game

import (
	"ninedraft/internal/mob"
	"ninedraft/internal/physics"
	"ninedraft/internal/world"
)

// handlePlayerCollideItem picks up a dropped item the player walks into.
// The hotbar is tried first, then the inventory; when both are full the
// item stays in the world and the contact is left solid so the player
// bumps into it.
func (s *Session) handlePlayerCollideItem(_, b *physics.Shape, _ *physics.Arbiter) bool {
	d, ok := b.Owner.(*world.DroppedItem)
	if !ok {
		return true
	}
	if !s.hotbar.AddItem(d.Item()) && !s.inventory.AddItem(d.Item()) {
		s.addMessage("No room to pick up %s", d.Item().ID())
		return true
	}
	s.world.RemoveItem(d)
	s.addMessage("Picked up %s", d.Item().ID())
	return false
}

// handlePlayerCollideMob hurts the player on bee contact. Mobs always
// block movement.
func (s *Session) handlePlayerCollideMob(_, b *physics.Shape, _ *physics.Arbiter) bool {
	m, ok := b.Owner.(*mob.Mob)
	if !ok {
		return true
	}
	if m.Species() == mob.SpeciesBee {
		s.player.ChangeHealth(-beeContactDamage)
	}
	return true
}
