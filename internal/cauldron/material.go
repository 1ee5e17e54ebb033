package cauldron

import "github.com/holly-hacker/atelier-sophie-synth-solver/internal/shape"

// Material is an immutable item that can be placed in a cauldron: a
// color, a base effect value, and a 3x3 shape.
type Material struct {
	Color       Color
	EffectValue uint32
	Shape       shape.Shape
}

// NewMaterial constructs a Material.
func NewMaterial(color Color, effectValue uint32, s shape.Shape) Material {
	return Material{Color: color, EffectValue: effectValue, Shape: s}
}

// Goal is an ordered, strictly ascending list of score thresholds for
// a material group. A goal of length k can be achieved to a degree of
// 0..k, counting how many thresholds a group's final score clears.
type Goal struct {
	Thresholds []uint32
}

// NewGoal constructs a Goal from ascending thresholds.
func NewGoal(thresholds ...uint32) Goal {
	return Goal{Thresholds: thresholds}
}
