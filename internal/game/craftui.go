package game

import (
	"ninedraft/assets"
	"ninedraft/internal/core"
	"ninedraft/internal/crafting"
	"ninedraft/internal/grid"
	"ninedraft/internal/world"
)

// ToggleCrafting opens a crafter of the given type, or closes the current
// one if any is open. Closing returns all held stacks to the player.
func (s *Session) ToggleCrafting(craftType string) error {
	if s.crafter != nil {
		s.CloseCrafting()
		return nil
	}
	return s.OpenCrafting(craftType)
}

// OpenCrafting creates and presents a crafter of the given type.
func (s *Session) OpenCrafting(craftType string) error {
	shape, ok := assets.CrafterShapes[craftType]
	if !ok {
		return core.ConfigErrorf("unknown craft type %q", craftType)
	}
	recipes := assets.RecipesFor[craftType]
	s.crafter = crafting.NewCrafter(assets.CrafterNames[craftType], recipes, shape[0], shape[1])
	return nil
}

// CloseCrafting dismisses the open crafter, handing its input cells and
// pending output back to the player. Stacks that fit nowhere are dropped
// at the player's feet.
func (s *Session) CloseCrafting() {
	c := s.crafter
	if c == nil {
		return
	}
	s.crafter = nil

	c.Input().Cells(func(_ grid.Cell, st *grid.Stack) {
		s.returnStack(st)
	})
	s.returnStack(c.TakeOutput())
}

// CraftSelected runs one crafting action on the open crafter.
func (s *Session) CraftSelected() error {
	if s.crafter == nil {
		return nil
	}
	crafted, err := s.crafter.Craft()
	if err != nil {
		return err
	}
	if !crafted {
		s.addMessage("Nothing to craft")
	}
	return nil
}

// returnStack places a stack back into the hotbar or inventory, spilling
// any remainder into the world at the player's position.
func (s *Session) returnStack(st *grid.Stack) {
	if st == nil || st.Empty() {
		return
	}
	if s.hotbar.AddStack(st) || s.inventory.AddStack(st) {
		return
	}
	pos := s.world.PlayerPosition()
	for !st.Empty() {
		st.Subtract(1)
		s.world.AddItem(world.NewDroppedItem(st.Item()), pos.X, pos.Y)
	}
}
