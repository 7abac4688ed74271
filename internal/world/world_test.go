package world

import (
	"errors"
	"math/rand"
	"testing"

	"ninedraft/internal/block"
	"ninedraft/internal/core"
	"ninedraft/internal/item"
	"ninedraft/internal/mob"
	"ninedraft/internal/physics"
	"ninedraft/internal/player"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return New(32, 16, 32, physics.Vec{X: 0, Y: 300}, 0.9)
}

func mustBlock(t *testing.T, parts ...string) block.Block {
	t.Helper()
	b, err := block.Create(parts...)
	if err != nil {
		t.Fatalf("Create(%v): %v", parts, err)
	}
	return b
}

func TestGridPixelRoundTrip(t *testing.T) {
	w := newTestWorld(t)
	for _, c := range []core.Cell{{X: 0, Y: 0}, {X: 31, Y: 15}, {X: 14, Y: 8}} {
		if got := w.PixelToGrid(w.GridToPixelCentre(c)); got != c {
			t.Errorf("round trip %v -> %v", c, got)
		}
	}
}

func TestAddBlockToGrid(t *testing.T) {
	w := newTestWorld(t)
	c := core.Cell{X: 5, Y: 5}

	if err := w.AddBlockToGrid(mustBlock(t, "dirt"), c); err != nil {
		t.Fatalf("AddBlockToGrid: %v", err)
	}
	if got := w.BlockAt(w.GridToPixelCentre(c)); got == nil || got.ID() != "dirt" {
		t.Fatalf("BlockAt = %v, want the placed dirt", got)
	}

	err := w.AddBlockToGrid(mustBlock(t, "stone"), c)
	if !errors.Is(err, core.ErrInvariant) {
		t.Fatalf("occupied cell error = %v, want ErrInvariant", err)
	}

	err = w.AddBlockToGrid(mustBlock(t, "stone"), core.Cell{X: 99, Y: 0})
	if !errors.Is(err, core.ErrInvariant) {
		t.Fatalf("out-of-grid error = %v, want ErrInvariant", err)
	}
}

func TestRemoveBlockIsAtomic(t *testing.T) {
	w := newTestWorld(t)
	c := core.Cell{X: 3, Y: 3}
	b := mustBlock(t, "dirt")
	if err := w.AddBlockToGrid(b, c); err != nil {
		t.Fatalf("AddBlockToGrid: %v", err)
	}
	before := len(w.Things())

	w.RemoveBlock(b)

	if w.BlockAt(w.GridToPixelCentre(c)) != nil {
		t.Fatalf("block still present in the grid index")
	}
	if len(w.Things()) != before-1 {
		t.Fatalf("thing list not trimmed: %d, want %d", len(w.Things()), before-1)
	}
	// The cell is reusable immediately.
	if err := w.AddBlockToGrid(mustBlock(t, "stone"), c); err != nil {
		t.Fatalf("reuse after removal: %v", err)
	}
}

func TestBlockPositionsByID(t *testing.T) {
	w := newTestWorld(t)
	cells := []core.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}}
	for _, c := range cells {
		if err := w.AddBlockToGrid(mustBlock(t, "honey"), c); err != nil {
			t.Fatalf("AddBlockToGrid: %v", err)
		}
	}
	if err := w.AddBlockToGrid(mustBlock(t, "dirt"), core.Cell{X: 3, Y: 1}); err != nil {
		t.Fatalf("AddBlockToGrid: %v", err)
	}

	if got := w.BlockPositions("honey"); len(got) != 2 {
		t.Fatalf("BlockPositions(honey) = %d positions, want 2", len(got))
	}
	if got := w.BlockPositions("hive"); got != nil {
		t.Fatalf("BlockPositions(hive) = %v, want none", got)
	}
}

func TestMobsNearInclusive(t *testing.T) {
	w := newTestWorld(t)
	rng := rand.New(rand.NewSource(1))

	inside := mob.New("near", mob.SpeciesBee, rng)
	w.AddMob(inside, 100, 100)
	boundary := mob.New("edge", mob.SpeciesBee, rng)
	w.AddMob(boundary, 110, 100) // exactly 10 away
	outside := mob.New("far", mob.SpeciesBee, rng)
	w.AddMob(outside, 111, 100)

	got := w.MobsNear(core.Point{X: 100, Y: 100}, 10)
	if len(got) != 2 {
		t.Fatalf("MobsNear = %d mobs, want 2 (boundary inclusive)", len(got))
	}
	for _, m := range got {
		if m.ID() == "far" {
			t.Fatalf("out-of-range mob returned")
		}
	}
}

func TestRemoveMob(t *testing.T) {
	w := newTestWorld(t)
	m := mob.New("bee", mob.SpeciesBee, rand.New(rand.NewSource(1)))
	w.AddMob(m, 50, 50)
	before := len(w.Things())

	w.RemoveMob(m)

	if len(w.Mobs()) != 0 {
		t.Fatalf("mob list not trimmed")
	}
	if len(w.Things()) != before-1 {
		t.Fatalf("thing list not trimmed")
	}
}

func TestItemsLifecycle(t *testing.T) {
	w := newTestWorld(t)
	it, err := item.Create("apple")
	if err != nil {
		t.Fatalf("Create(apple): %v", err)
	}
	d := NewDroppedItem(it)
	w.AddItem(d, 64, 64)
	if len(w.Items()) != 1 {
		t.Fatalf("item not registered")
	}

	w.RemoveItem(d)
	if len(w.Items()) != 0 {
		t.Fatalf("item not removed")
	}
}

func TestThingAtSkipsWalls(t *testing.T) {
	w := newTestWorld(t)

	// A point just outside the grid lies inside a boundary wall.
	if got := w.ThingAt(core.Point{X: -2, Y: 100}); got != nil {
		t.Fatalf("ThingAt returned a wall thing: %+v", got)
	}

	c := core.Cell{X: 4, Y: 4}
	if err := w.AddBlockToGrid(mustBlock(t, "dirt"), c); err != nil {
		t.Fatalf("AddBlockToGrid: %v", err)
	}
	got := w.ThingAt(w.GridToPixelCentre(c))
	if got == nil || got.Category != CategoryBlock {
		t.Fatalf("ThingAt = %+v, want the block thing", got)
	}
}

func TestPlayerPlacement(t *testing.T) {
	w := newTestWorld(t)
	p := player.New("tester")
	w.AddPlayer(p, 250, 150)

	if w.Player() != p {
		t.Fatalf("Player() = %v", w.Player())
	}
	if got := w.PlayerPosition(); got.X != 250 || got.Y != 150 {
		t.Fatalf("PlayerPosition = %v", got)
	}

	// Replacing the player swaps the thing, not duplicates it.
	before := len(w.Things())
	w.AddPlayer(player.New("other"), 10, 10)
	if len(w.Things()) != before {
		t.Fatalf("replacing the player changed the thing count")
	}
}

func TestStepRunsMobPolicies(t *testing.T) {
	w := newTestWorld(t)
	m := mob.New("sheep", mob.SpeciesSheep, rand.New(rand.NewSource(1)))
	w.AddMob(m, 200, 200)

	for i := 0; i < 50; i++ {
		w.Step(0.015)
	}
	if m.Steps() != 50 {
		t.Fatalf("mob stepped %d times, want 50", m.Steps())
	}
}
