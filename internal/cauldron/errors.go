package cauldron

import "errors"

// Placement errors. These are internal pruning signals for the
// search engine (see the solver package), never user-visible
// failures — callers that construct an invalid board (a placement on
// a hole tile) trigger a panic instead, since that represents a
// programmer error rather than a prunable branch.
var (
	// ErrOutOfBounds is returned when a shape's bounding box would
	// extend past the cauldron's edge at the given origin.
	ErrOutOfBounds = errors.New("cauldron: placement out of bounds")

	// ErrDisallowedOverlap is returned when a placement would cover at
	// least one tile already played by another material, and overlaps
	// are not allowed.
	ErrDisallowedOverlap = errors.New("cauldron: overlapping placement not allowed")

	// ErrSynergyUnsupported is returned by Place when the cauldron has
	// the Synergy property set but no SynergyBonus plug-in has been
	// installed, rather than panicking.
	ErrSynergyUnsupported = errors.New("cauldron: synergy bonus not supported")
)
