package game

import (
	"ninedraft/internal/block"
	"ninedraft/internal/core"
	"ninedraft/internal/item"
	"ninedraft/internal/mob"
	"ninedraft/internal/player"
	"ninedraft/internal/world"
)

// Interaction tuning.
const (
	mobAttackRadius = 10.0 // pixels around the click searched for a mob
	mobAttackDamage = 20.0
	beesPerHive     = 5

	// Mining costs food, or health once the player is starving.
	miningFoodCost   = 0.1
	starvingHPCost   = 0.5
	beeContactDamage = 0.5
)

// LeftClick attacks whatever is at the target point: a block is mined, and
// failing that, a nearby mob is struck. Out-of-range clicks do nothing.
func (s *Session) LeftClick(p core.Point) error {
	s.SetTarget(p)
	if !s.targetInRange {
		return nil
	}
	if b := s.world.BlockAt(p); b != nil {
		return s.mineBlock(b)
	}
	if mobs := s.world.MobsNear(p, mobAttackRadius); len(mobs) > 0 {
		return s.attackMob(mobs[0])
	}
	return nil
}

// mineBlock lands one mining hit on the block. Tool durability is charged
// only for failed hits; the finishing hit is free. A finished break costs
// the player food (or health while starving), removes the block, and
// realises its drops — bees for a hive, generic drops otherwise.
func (s *Session) mineBlock(b block.Block) error {
	luck := s.rng.Float64()
	active, effective := s.holding()

	suitable, succeeded := b.Mine(effective, active, luck)
	effective.Attack(succeeded)

	if !b.IsMined() {
		return nil
	}

	pos, ok := s.world.BlockPosition(b)
	if !ok {
		return core.InvariantErrorf("mined block %q is not in the world", b.ID())
	}

	// Resolve every drop before mutating anything, so a content error
	// aborts the whole action rather than leaving it half-applied.
	var place []func()
	if b.ID() == "hive" {
		place = append(place, func() { s.spawnBees(pos, beesPerHive) })
	} else {
		drops := b.Drops(luck, suitable)
		for i, d := range drops {
			commit, err := s.resolveDrop(d, pos, i)
			if err != nil {
				return err
			}
			place = append(place, commit)
		}
	}

	if s.player.Food() <= 0 {
		s.player.ChangeHealth(-starvingHPCost)
	} else {
		s.player.ChangeFood(-miningFoodCost)
	}

	s.world.RemoveBlock(b)
	s.addMessage("Mined %s", b.ID())
	for _, commit := range place {
		commit()
	}
	return nil
}

// resolveDrop validates one drop payload and returns the closure that
// places it. i scatters successive item drops around the break position.
func (s *Session) resolveDrop(d item.Drop, origin core.Point, i int) (func(), error) {
	switch d.Category {
	case item.DropItem:
		it, err := item.Create(d.IDParts...)
		if err != nil {
			return nil, err
		}
		half := s.world.CellExpanse() / 2
		x := origin.X - half + 5 + float64(i%3)*11 + float64(s.rng.Intn(3))
		y := origin.Y - half + 5 + float64((i/3)%3)*11 + float64(s.rng.Intn(3))
		return func() { s.world.AddItem(world.NewDroppedItem(it), x, y) }, nil
	case item.DropBlock:
		nb, err := block.Create(d.IDParts...)
		if err != nil {
			return nil, err
		}
		return func() {
			if err := s.world.AddBlock(nb, origin); err != nil {
				s.addMessage("No room to place %s", nb.ID())
			}
		}, nil
	default:
		return nil, core.ConfigErrorf("unknown drop category %q", d.Category)
	}
}

// attackMob strikes a mob and processes its death. Sheep never take the
// damage but still yield drops; they are also never removed.
func (s *Session) attackMob(m *mob.Mob) error {
	if m.Species() != mob.SpeciesSheep {
		m.TakeDamage(mobAttackDamage)
		s.addMessage("Did %.0f damage to %s", mobAttackDamage, m.ID())
	}
	return s.mobDrops(m)
}

// mobDrops runs death processing for a mob: removal (species permitting)
// and drop placement beside where it stood.
func (s *Session) mobDrops(m *mob.Mob) error {
	luck := s.rng.Float64()
	drops := m.Drops(luck)
	pos := m.Position()
	dead := m.Dead()

	if dead && m.Removable() {
		s.world.RemoveMob(m)
		s.addMessage("%s died", m.ID())
	}
	if !dead || drops == nil {
		return nil
	}
	for _, d := range drops {
		if d.Category != item.DropItem {
			return core.ConfigErrorf("unknown mob drop category %q", d.Category)
		}
		it, err := item.Create(d.IDParts...)
		if err != nil {
			return err
		}
		s.world.AddItem(world.NewDroppedItem(it), pos.X-10, pos.Y)
	}
	return nil
}

// RightClick uses the thing at the target point, or failing that places
// (or consumes) the held item at the target cell.
func (s *Session) RightClick(p core.Point) error {
	s.SetTarget(p)

	if t := s.world.ThingAt(p); t != nil {
		if b, ok := t.Owner.(block.Block); ok {
			if effect := b.Use(); effect != nil {
				return s.runEffect(effect)
			}
		}
		return nil
	}

	if !s.targetInRange {
		return nil
	}

	stack := s.hotbar.SelectedStack()
	if stack == nil {
		return nil
	}
	drops := stack.Item().Place()
	if len(drops) == 0 {
		return nil
	}
	// The interaction model supports a single placement payload.
	if len(drops) > 1 {
		return core.InvariantErrorf("cannot place more than one payload (%d)", len(drops))
	}

	d := drops[0]
	switch d.Category {
	case item.DropBlock:
		if s.world.BlockAt(p) != nil {
			s.addMessage("That cell is occupied")
			return nil
		}
		nb, err := block.Create(d.IDParts...)
		if err != nil {
			return err
		}
		if err := s.world.AddBlock(nb, p); err != nil {
			return err
		}
	case item.DropEffect:
		if err := s.runEffect(d.Effect); err != nil {
			return err
		}
	default:
		return core.ConfigErrorf("unknown drop category %q", d.Category)
	}

	stack.Subtract(1)
	if stack.Empty() {
		if sel := s.hotbar.Selected(); sel != nil {
			s.hotbar.Set(*sel, nil)
		}
	}
	return nil
}

// runEffect applies an interaction effect: opening/closing a crafter, or
// feeding the player. Once food is full, food effects heal instead.
func (s *Session) runEffect(e *item.Effect) error {
	switch e.Kind {
	case item.EffectCrafting:
		return s.ToggleCrafting(e.CraftType)
	case item.EffectFood, item.EffectHealth:
		if e.Kind == item.EffectHealth || s.player.Food() >= player.MaxFood {
			s.player.ChangeHealth(e.Strength)
			s.addMessage("Gained %.0f health", e.Strength)
		} else {
			s.player.ChangeFood(e.Strength)
			s.addMessage("Gained %.0f food", e.Strength)
		}
		return nil
	default:
		return core.ConfigErrorf("no effect defined for %q", e.Kind)
	}
}
