package game

import (
	"testing"

	"ninedraft/assets"
	"ninedraft/internal/block"
	"ninedraft/internal/config"
	"ninedraft/internal/core"
	"ninedraft/internal/grid"
	"ninedraft/internal/item"
	"ninedraft/internal/mob"
	"ninedraft/internal/physics"
	"ninedraft/internal/player"
	"ninedraft/internal/world"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionWorldContent(t *testing.T) {
	s := newTestSession(t)

	if s.Player().Dead() {
		t.Fatalf("fresh player is dead")
	}
	if got := len(s.World().Mobs()); got != len(assets.StartingMobs) {
		t.Fatalf("starting mobs = %d, want %d", got, len(assets.StartingMobs))
	}
	if got := s.World().BlockPositions("hive"); len(got) != len(assets.HiveCells) {
		t.Fatalf("hives = %d, want %d", len(got), len(assets.HiveCells))
	}
	if got := s.World().BlockPositions("mayhem"); len(got) != 1 {
		t.Fatalf("mayhem blocks = %d, want 1", len(got))
	}
	if got := s.World().BlockPositions("honey"); len(got) != 1 {
		t.Fatalf("honey blocks = %d, want 1", len(got))
	}

	// The first hotbar slot starts selected and holds dirt.
	sel := s.Hotbar().Selected()
	if sel == nil || sel.Column != 0 {
		t.Fatalf("selection = %v, want slot 0", sel)
	}
	stack := s.Hotbar().SelectedStack()
	if stack == nil || stack.Item().ID() != "dirt" || stack.Quantity() != 20 {
		t.Fatalf("slot 0 = %+v, want 20 dirt", stack)
	}
}

func TestMineDirtCostsFoodAndDrops(t *testing.T) {
	s := newTestSession(t)

	positions := s.World().BlockPositions("dirt")
	if len(positions) == 0 {
		t.Fatalf("generated terrain holds no dirt")
	}
	pos := positions[0]
	b := s.World().BlockAt(pos)

	if err := s.mineBlock(b); err != nil {
		t.Fatalf("mineBlock: %v", err)
	}

	if s.World().BlockAt(pos) != nil {
		t.Fatalf("mined dirt still in the world")
	}
	if got := s.Player().Food(); got != player.MaxFood-0.1 {
		t.Fatalf("food = %v, want %v", got, player.MaxFood-0.1)
	}
	// Dirt by hand always drops.
	if got := len(s.World().Items()); got != 1 {
		t.Fatalf("dropped items = %d, want 1", got)
	}
}

func TestMiningWhileStarvingCostsHealth(t *testing.T) {
	s := newTestSession(t)
	s.Player().ChangeFood(-player.MaxFood)

	positions := s.World().BlockPositions("dirt")
	b := s.World().BlockAt(positions[0])
	if err := s.mineBlock(b); err != nil {
		t.Fatalf("mineBlock: %v", err)
	}

	if got := s.Player().Health(); got != player.MaxHealth-0.5 {
		t.Fatalf("health = %v, want %v", got, player.MaxHealth-0.5)
	}
}

func TestMineHiveSpawnsBees(t *testing.T) {
	s := newTestSession(t)

	positions := s.World().BlockPositions("hive")
	if len(positions) == 0 {
		t.Fatalf("no hives in the world")
	}
	b := s.World().BlockAt(positions[0])
	before := len(s.World().Mobs())

	if err := s.mineBlock(b); err != nil {
		t.Fatalf("mineBlock: %v", err)
	}

	if got := len(s.World().Mobs()); got != before+beesPerHive {
		t.Fatalf("mobs = %d, want %d after a hive break", got, before+beesPerHive)
	}
	if got := len(s.World().Items()); got != 0 {
		t.Fatalf("hive breaks must not drop items, got %d", got)
	}
}

func TestAttackSheepDropsWoolWithoutRemoval(t *testing.T) {
	s := newTestSession(t)

	var sheep *mob.Mob
	for _, m := range s.World().Mobs() {
		if m.Species() == mob.SpeciesSheep {
			sheep = m
			break
		}
	}
	if sheep == nil {
		t.Fatalf("no starting sheep")
	}
	before := len(s.World().Mobs())

	if err := s.attackMob(sheep); err != nil {
		t.Fatalf("attackMob: %v", err)
	}

	if len(s.World().Mobs()) != before {
		t.Fatalf("sheep was removed from the world")
	}
	items := s.World().Items()
	if len(items) != 1 || items[0].Item().ID() != "wool" {
		t.Fatalf("drops = %+v, want one wool", items)
	}
}

func TestAttackBeeToDeath(t *testing.T) {
	s := newTestSession(t)

	var bee *mob.Mob
	for _, m := range s.World().Mobs() {
		if m.Species() == mob.SpeciesBee {
			bee = m
			break
		}
	}
	if bee == nil {
		t.Fatalf("no starting bee")
	}
	before := len(s.World().Mobs())

	if err := s.attackMob(bee); err != nil {
		t.Fatalf("attackMob: %v", err)
	}

	// One hit deals 20, the bee's full health.
	if got := len(s.World().Mobs()); got != before-1 {
		t.Fatalf("mobs = %d, want %d after the bee dies", got, before-1)
	}
}

func TestPickupFullGridsLeavesItemInWorld(t *testing.T) {
	s := newTestSession(t)

	// Fill both grids with unstackable tools.
	fillAll := func(g *grid.Grid) {
		rows, columns := g.Size()
		for row := 0; row < rows; row++ {
			for column := 0; column < columns; column++ {
				g.Set(grid.Cell{Row: row, Column: column},
					grid.NewStack(item.NewToolItem("wood_axe", "wood_axe", 1), 1))
			}
		}
	}
	fillAll(s.Hotbar().Grid)
	fillAll(s.Inventory())

	apple, err := item.Create("apple")
	if err != nil {
		t.Fatalf("Create(apple): %v", err)
	}
	d := world.NewDroppedItem(apple)
	s.World().AddItem(d, 100, 100)

	solid := s.handlePlayerCollideItem(nil, shapeFor(s, d), nil)

	if !solid {
		t.Fatalf("failed pickup must leave the contact solid")
	}
	if len(s.World().Items()) != 1 {
		t.Fatalf("item should stay in the world when both grids are full")
	}
}

func TestPickupGoesToHotbarFirst(t *testing.T) {
	s := newTestSession(t)

	apple, err := item.Create("apple")
	if err != nil {
		t.Fatalf("Create(apple): %v", err)
	}
	d := world.NewDroppedItem(apple)
	s.World().AddItem(d, 100, 100)

	solid := s.handlePlayerCollideItem(nil, shapeFor(s, d), nil)

	if solid {
		t.Fatalf("successful pickup should pass through")
	}
	if len(s.World().Items()) != 0 {
		t.Fatalf("picked-up item still in the world")
	}
	// The hotbar already holds apples; the pickup merges there.
	found := false
	s.Hotbar().Cells(func(_ grid.Cell, st *grid.Stack) {
		if st != nil && st.Item().ID() == "apple" && st.Quantity() == 5 {
			found = true
		}
	})
	if !found {
		t.Fatalf("apple did not merge into the hotbar stack")
	}
}

func TestBeeContactHurtsPlayer(t *testing.T) {
	s := newTestSession(t)

	var bee *mob.Mob
	for _, m := range s.World().Mobs() {
		if m.Species() == mob.SpeciesBee {
			bee = m
			break
		}
	}
	solid := s.handlePlayerCollideMob(nil, shapeFor(s, bee), nil)

	if !solid {
		t.Fatalf("mob contact must stay solid")
	}
	if got := s.Player().Health(); got != player.MaxHealth-beeContactDamage {
		t.Fatalf("health = %v, want %v", got, player.MaxHealth-beeContactDamage)
	}
}

func TestEatAppleAtFullFoodHeals(t *testing.T) {
	s := newTestSession(t)
	s.Player().ChangeHealth(-5)

	err := s.runEffect(&item.Effect{Kind: item.EffectFood, Strength: 2})
	if err != nil {
		t.Fatalf("runEffect: %v", err)
	}
	if got := s.Player().Health(); got != player.MaxHealth-3 {
		t.Fatalf("health = %v, want %v (food full, so food effects heal)", got, player.MaxHealth-3)
	}
}

func TestEatAppleRestoresFood(t *testing.T) {
	s := newTestSession(t)
	s.Player().ChangeFood(-6)

	err := s.runEffect(&item.Effect{Kind: item.EffectFood, Strength: 2})
	if err != nil {
		t.Fatalf("runEffect: %v", err)
	}
	if got := s.Player().Food(); got != player.MaxFood-4 {
		t.Fatalf("food = %v, want %v", got, player.MaxFood-4)
	}
}

func TestPlaceBlockFromHotbar(t *testing.T) {
	s := newTestSession(t)

	target, ok := findFreeCellInRange(s)
	if !ok {
		t.Fatalf("no free cell within reach of the spawn")
	}
	before := s.Hotbar().SelectedStack().Quantity()

	if err := s.RightClick(target); err != nil {
		t.Fatalf("RightClick: %v", err)
	}

	b := s.World().BlockAt(target)
	if b == nil || b.ID() != "dirt" {
		t.Fatalf("BlockAt = %v, want placed dirt", b)
	}
	if got := s.Hotbar().SelectedStack().Quantity(); got != before-1 {
		t.Fatalf("hotbar quantity = %d, want %d", got, before-1)
	}
}

func TestRightClickOnBlockDoesNotPlace(t *testing.T) {
	s := newTestSession(t)

	positions := s.World().BlockPositions("dirt")
	before := s.Hotbar().SelectedStack().Quantity()

	if err := s.RightClick(positions[0]); err != nil {
		t.Fatalf("RightClick: %v", err)
	}
	if got := s.Hotbar().SelectedStack().Quantity(); got != before {
		t.Fatalf("clicking an occupied cell consumed an item")
	}
}

func TestUseCraftingTableOpensCrafter(t *testing.T) {
	s := newTestSession(t)

	target, ok := findFreeCellInRange(s)
	if !ok {
		t.Fatalf("no free cell within reach")
	}
	tableBlock, err := block.Create("crafting_table")
	if err != nil {
		t.Fatalf("Create(crafting_table): %v", err)
	}
	if err := s.World().AddBlock(tableBlock, target); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}

	if err := s.RightClick(target); err != nil {
		t.Fatalf("RightClick: %v", err)
	}
	c := s.Crafter()
	if c == nil {
		t.Fatalf("crafter not opened")
	}
	if rows, columns := c.Input().Size(); rows != 3 || columns != 3 {
		t.Fatalf("crafting table grid = %dx%d, want 3x3", rows, columns)
	}
}

func TestCloseCraftingReturnsContents(t *testing.T) {
	s := newTestSession(t)
	if err := s.OpenCrafting("basic"); err != nil {
		t.Fatalf("OpenCrafting: %v", err)
	}

	wood, err := item.Create("wood")
	if err != nil {
		t.Fatalf("Create(wood): %v", err)
	}
	s.Crafter().Input().Set(grid.Cell{}, grid.NewStack(wood, 3))

	s.CloseCrafting()

	if s.Crafter() != nil {
		t.Fatalf("crafter still open")
	}
	total := 0
	count := func(_ grid.Cell, st *grid.Stack) {
		if st != nil && st.Item().ID() == "wood" {
			total += st.Quantity()
		}
	}
	s.Hotbar().Cells(count)
	s.Inventory().Cells(count)
	// The inventory starts with 10 wood; the 3 from the crafter return.
	if total != 13 {
		t.Fatalf("wood across grids = %d, want 13", total)
	}
}

func TestRestartRebuilds(t *testing.T) {
	s := newTestSession(t)
	s.Player().ChangeHealth(-player.MaxHealth)
	if !s.Player().Dead() {
		t.Fatalf("player should be dead")
	}

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if s.Player().Dead() {
		t.Fatalf("restarted player is dead")
	}
	if got := len(s.World().Mobs()); got != len(assets.StartingMobs) {
		t.Fatalf("restart mobs = %d, want %d", got, len(assets.StartingMobs))
	}
}

// shapeFor digs the physics shape out of the world's thing list.
func shapeFor(s *Session, owner any) *physics.Shape {
	for _, t := range s.World().Things() {
		if t.Owner == owner {
			return t.Shape
		}
	}
	return nil
}

// findFreeCellInRange scans for an empty, reachable cell near the player.
func findFreeCellInRange(s *Session) (core.Point, bool) {
	columns, rows := s.World().GridSize()
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			p := s.World().GridToPixelCentre(core.Cell{X: x, Y: y})
			if s.World().ThingAt(p) != nil {
				continue
			}
			reach := defaultReach(s)
			if core.Distance(s.World().PlayerPosition(), p) <= reach {
				return p, true
			}
		}
	}
	return core.Point{}, false
}

func defaultReach(s *Session) float64 {
	active, _ := s.holding()
	return active.AttackRange() * s.World().CellExpanse()
}
