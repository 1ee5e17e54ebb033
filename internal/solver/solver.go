// Package solver implements the exhaustive, Pareto-optimal search for
// material placements in a cauldron: which materials to place, with
// which transformation, on which tile, to best satisfy a set of
// per-group goals.
package solver

import (
	"github.com/holly-hacker/atelier-sophie-synth-solver/internal/cauldron"
	"github.com/holly-hacker/atelier-sophie-synth-solver/internal/shape"
)

// MaxGoals bounds the number of material groups/goals a single search
// handles at once.
const MaxGoals = 4

// MaxItemsInGroup bounds the number of materials a single group can
// contain.
const MaxItemsInGroup = 5

// MaxItems bounds the total number of materials across all groups,
// and therefore the maximum depth of the search's move path.
const MaxItems = MaxGoals * MaxItemsInGroup

// Settings controls which transformations the search is allowed to
// try for each material, and whether placements may overlap.
type Settings struct {
	Transformations shape.TransformationType
	AllowOverlaps   bool
}

// Route is one Pareto-optimal outcome: the goal-achievement counts it
// reaches, and the sequence of moves that reaches it.
type Route struct {
	Result GoalResult
	Path   []cauldron.Move
}
