package solver

import (
	"github.com/holly-hacker/atelier-sophie-synth-solver/internal/cauldron"
	"github.com/holly-hacker/atelier-sophie-synth-solver/internal/shape"
)

// uniBag5x5Bonus1 ports the reference fixture of the same name: a 5x5
// board seeded with a fixed color/level layout and bonus scores
// (3, 5, 7).
func uniBag5x5Bonus1() *cauldron.Cauldron {
	type cell struct {
		color cauldron.Color
		level int
	}
	layout := []cell{
		{cauldron.Blue, 0}, {cauldron.Green, 0}, {cauldron.Yellow, 0}, {cauldron.Yellow, 0}, {cauldron.White, 0},
		{cauldron.White, 0}, {cauldron.Yellow, 0}, {cauldron.Yellow, 0}, {cauldron.Yellow, 0}, {cauldron.Yellow, 1},
		{cauldron.Red, 0}, {cauldron.Yellow, 0}, {cauldron.Red, 1}, {cauldron.Red, 0}, {cauldron.Yellow, 0},
		{cauldron.Red, 0}, {cauldron.Yellow, 0}, {cauldron.Red, 0}, {cauldron.Red, 0}, {cauldron.Yellow, 1},
		{cauldron.White, 0}, {cauldron.Yellow, 2}, {cauldron.Yellow, 0}, {cauldron.Yellow, 0}, {cauldron.Yellow, 0},
	}

	c := cauldron.NewCauldron(5, cauldron.BonusScores{Level1: 3, Level2: 5, Level3: 7}, cauldron.White, 0)
	for i, cl := range layout {
		x, y := c.GetPosition(i)
		c.SetTile(x, y, &cauldron.Tile{Color: cl.color, Level: cl.level})
	}
	return c
}

// uniBagGoals is a fixed goal set used across the search tests.
func uniBagGoals() []cauldron.Goal {
	return []cauldron.Goal{
		cauldron.NewGoal(50, 100),
		cauldron.NewGoal(30, 50),
		cauldron.NewGoal(30, 55),
	}
}

func materialUni() cauldron.Material {
	return cauldron.NewMaterial(cauldron.Yellow, 15, shape.FromBinary([3]uint8{0b100, 0b100, 0b100}))
}

func materialBeehive() cauldron.Material {
	return cauldron.NewMaterial(cauldron.Yellow, 10, shape.FromBinary([3]uint8{0b100, 0b110, 0b000}))
}

func materialBrokenStone() cauldron.Material {
	return cauldron.NewMaterial(cauldron.White, 15, shape.FromBinary([3]uint8{0b100, 0b100, 0b100}))
}

func uniBagMaterials() cauldron.MaterialGroups {
	return cauldron.MaterialGroups{
		{materialUni(), materialUni()},
		{materialBeehive()},
		{materialBrokenStone()},
	}
}
