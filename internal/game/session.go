// Package game wires the simulation together: it owns the session state
// (world, player, hotbar, inventory, crafter), exposes the input command
// surface, and runs the fixed-interval tick loop behind a terminal UI.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"ninedraft/assets"
	"ninedraft/internal/config"
	"ninedraft/internal/core"
	"ninedraft/internal/crafting"
	"ninedraft/internal/grid"
	"ninedraft/internal/item"
	"ninedraft/internal/physics"
	"ninedraft/internal/player"
	"ninedraft/internal/world"
)

// The hotbar is a single row of ten slots; the inventory adds three more rows.
const (
	hotbarColumns    = 10
	inventoryRows    = 3
	inventoryColumns = 10
)

// maxMessages caps the session's message log.
const maxMessages = 50

// Session is the explicit simulation context: everything an interaction or
// a tick reads or mutates hangs off it. There are no globals.
type Session struct {
	cfg config.Config
	rng *rand.Rand

	world  *world.World
	player *player.Player

	hotbar    *grid.SelectableGrid
	inventory *grid.Grid
	hands     item.Item

	// crafter is the currently open crafter, or nil.
	crafter *crafting.Crafter

	target        core.Point
	targetInRange bool

	messages []string
}

// NewSession builds a fresh session: world, terrain, player, starting
// grids, and collision handlers.
func NewSession(cfg config.Config) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// reset builds a new world and player, preserving the session's rng.
func (s *Session) reset() error {
	s.world = world.New(s.cfg.GridColumns, s.cfg.GridRows, s.cfg.BlockSize,
		physics.Vec{X: 0, Y: s.cfg.Gravity}, s.cfg.Damping)
	s.player = player.New("player")
	s.world.AddPlayer(s.player, assets.PlayerSpawnX, assets.PlayerSpawnY)

	s.world.OnCollision(world.CategoryPlayer, world.CategoryItem, s.handlePlayerCollideItem)
	s.world.OnCollision(world.CategoryPlayer, world.CategoryMob, s.handlePlayerCollideMob)

	if err := s.loadWorld(); err != nil {
		return fmt.Errorf("load world: %w", err)
	}

	hands, err := item.Create("hands")
	if err != nil {
		return err
	}
	s.hands = hands

	s.hotbar = grid.NewSelectable(1, hotbarColumns)
	s.hotbar.Select(grid.Cell{Row: 0, Column: 0})
	if err := fillGrid(s.hotbar.Grid, assets.StartingHotbar); err != nil {
		return err
	}

	s.inventory = grid.New(inventoryRows, inventoryColumns)
	if err := fillGrid(s.inventory, assets.StartingInventory); err != nil {
		return err
	}

	s.crafter = nil
	s.messages = nil
	s.targetInRange = false
	return nil
}

// Restart rebuilds the session after a player death.
func (s *Session) Restart() error { return s.reset() }

func fillGrid(g *grid.Grid, stacks []assets.StartingStack) error {
	for _, st := range stacks {
		it, err := item.Create(st.ItemID...)
		if err != nil {
			return err
		}
		g.Set(grid.Cell{Row: st.Row, Column: st.Col}, grid.NewStack(it, st.Quantity))
	}
	return nil
}

// World returns the session's world.
func (s *Session) World() *world.World { return s.world }

// Player returns the session's player.
func (s *Session) Player() *player.Player { return s.player }

// Hotbar returns the player's hotbar.
func (s *Session) Hotbar() *grid.SelectableGrid { return s.hotbar }

// Inventory returns the player's inventory.
func (s *Session) Inventory() *grid.Grid { return s.inventory }

// Crafter returns the open crafter, or nil.
func (s *Session) Crafter() *crafting.Crafter { return s.crafter }

// Target returns the current target position and whether it is in range.
func (s *Session) Target() (core.Point, bool) { return s.target, s.targetInRange }

// Messages returns the session's message log, oldest first.
func (s *Session) Messages() []string { return s.messages }

func (s *Session) addMessage(format string, args ...any) {
	s.messages = append(s.messages, fmt.Sprintf(format, args...))
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}

// Step advances the simulation by dt seconds. Interactions never run
// concurrently with a step; the caller's tick loop guarantees that.
func (s *Session) Step(dt float64) {
	s.world.Step(dt)
}

// holding returns the item the player holds and the effective item used for
// attacks: the held item, or bare hands when it cannot attack.
func (s *Session) holding() (active, effective item.Item) {
	active = s.hands
	if stack := s.hotbar.SelectedStack(); stack != nil {
		active = stack.Item()
	}
	effective = active
	if !active.CanAttack() {
		effective = s.hands
	}
	return active, effective
}

// checkTarget recomputes whether the target position is within the held
// item's attack range.
func (s *Session) checkTarget() {
	active, _ := s.holding()
	reach := active.AttackRange() * s.world.CellExpanse()
	s.targetInRange = core.InRange(s.world.PlayerPosition(), s.target, reach)
}

// SetTarget moves the aim position (mouse hover).
func (s *Session) SetTarget(p core.Point) {
	s.target = p
	s.checkTarget()
}

// ClearTarget marks the target out of range (mouse left the view).
func (s *Session) ClearTarget() { s.targetInRange = false }
