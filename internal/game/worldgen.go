package game

import (
	"strconv"

	"ninedraft/assets"
	"ninedraft/internal/block"
	"ninedraft/internal/core"
	"ninedraft/internal/mob"
)

// loadWorld fills the fresh world with terrain, the starting tree, hives,
// honey, the mayhem block, and the starting mobs.
func (s *Session) loadWorld() error {
	columns, rows := s.world.GridSize()

	// Ground: a flat shelf on the left, a slope on the right.
	var ground []core.Cell
	for x := 0; x < columns; x++ {
		for y := 0; y < rows; y++ {
			if x < 22 {
				if y <= 8 {
					continue
				}
			} else if x+y < 30 {
				continue
			}
			ground = append(ground, core.Cell{X: x, Y: y})
		}
	}

	total := 0
	for _, tw := range assets.TerrainWeights {
		total += tw.Weight
	}
	for _, cell := range ground {
		roll := s.rng.Intn(total)
		kind := assets.TerrainWeights[len(assets.TerrainWeights)-1].Block
		for _, tw := range assets.TerrainWeights {
			if roll < tw.Weight {
				kind = tw.Block
				break
			}
			roll -= tw.Weight
		}
		if err := s.placeBlock(cell, kind); err != nil {
			return err
		}
	}

	for _, cell := range assets.TreeTrunks {
		if err := s.placeBlock(cell, "wood"); err != nil {
			return err
		}
	}
	for _, cell := range assets.TreeLeaves {
		if err := s.placeBlock(cell, "leaf"); err != nil {
			return err
		}
	}

	if err := s.placeBlock(assets.HoneyCell, "honey"); err != nil {
		return err
	}
	for _, cell := range assets.HiveCells {
		if err := s.placeBlock(cell, "hive"); err != nil {
			return err
		}
	}

	mayhem, err := block.Create("mayhem", "0")
	if err != nil {
		return err
	}
	if err := s.world.AddBlockToGrid(mayhem, assets.MayhemCell); err != nil {
		return err
	}

	for _, spawn := range assets.StartingMobs {
		m := mob.New(spawn.ID, mob.Species(spawn.Species), s.rng)
		s.world.AddMob(m, spawn.X, spawn.Y)
	}
	return nil
}

func (s *Session) placeBlock(cell core.Cell, parts ...string) error {
	b, err := block.Create(parts...)
	if err != nil {
		return err
	}
	return s.world.AddBlockToGrid(b, cell)
}

// spawnBees releases count bees around a broken hive.
func (s *Session) spawnBees(at core.Point, count int) {
	for i := 0; i < count; i++ {
		id := "bee-" + strconv.Itoa(i)
		b := mob.New(id, mob.SpeciesBee, s.rng)
		s.world.AddMob(b, at.X-float64(i), at.Y+float64(i))
	}
}
