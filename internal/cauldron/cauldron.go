package cauldron

import (
	"fmt"
	"log"

	"github.com/holly-hacker/atelier-sophie-synth-solver/internal/shape"
)

// MaterialGroups is the full set of material groups supplied to the
// solver: one ordered []Material per goal.
type MaterialGroups [][]Material

// Properties are cauldron-wide bit flags that change how placement
// scoring behaves.
type Properties uint32

// PropertySynergy amplifies bonuses matching the cauldron's own liquid
// color. The scoring rule itself is intentionally unspecified (see
// SynergyBonus below).
const PropertySynergy Properties = 1 << 0

// Has reports whether flag is set.
func (p Properties) Has(flag Properties) bool {
	return p&flag != 0
}

// BonusScores gives the points awarded for stepping on a tile at
// bonus level 1, 2, or 3 respectively (level 0 always scores 0).
type BonusScores struct {
	Level1, Level2, Level3 uint32
}

// forLevel returns the raw bonus points for the given tile level
// (1..3). Any other level is an invariant violation.
func (b BonusScores) forLevel(level int) uint32 {
	switch level {
	case 1:
		return b.Level1
	case 2:
		return b.Level2
	case 3:
		return b.Level3
	default:
		panic(fmt.Sprintf("cauldron: invalid tile level %d", level))
	}
}

// Placement describes where and how a material is laid down: a tile
// index (y*size+x) and an optional transformation. A nil
// Transformation means the material's shape is used as given
// (normalized, untransformed).
type Placement struct {
	Index          int
	Transformation *shape.Transformation
}

// Move is a material identifier plus where/how to place it.
type Move struct {
	MaterialIndex MaterialRef
	Placement     Placement
}

// Cauldron is the puzzle board: an NxN grid (N in {4,5,6}) of tiles or
// holes, plus the bonus-scoring and liquid-color configuration shared
// by every placement on it.
//
// tiles is a fixed-capacity array of tile pointers sized for the
// largest supported board (6x6=36). Copying a Cauldron by value shares
// the tiles themselves; Clone makes an independent copy and allocates
// one new Tile per non-hole slot to do so.
type Cauldron struct {
	Size        int
	tiles       [maxTiles]*Tile
	BonusScores BonusScores
	Color       Color
	Properties  Properties

	// SynergyBonus, if non-nil, computes the extra points a placement
	// earns under the Synergy property. It's consulted once per played
	// cell, after the base placement score for that cell is computed.
	// Left nil, Place returns ErrSynergyUnsupported for any cauldron
	// with PropertySynergy set, instead of panicking.
	SynergyBonus func(cauldron *Cauldron, material Material, tile *Tile) float64
}

const maxTiles = 6 * 6

// NewCauldron builds an empty (all-holes) cauldron of the given size,
// ready to have its tiles assigned directly.
func NewCauldron(size int, bonusScores BonusScores, color Color, properties Properties) *Cauldron {
	return &Cauldron{
		Size:        size,
		BonusScores: bonusScores,
		Color:       color,
		Properties:  properties,
	}
}

// TileCount returns the number of tile slots on the board (size*size),
// holes included.
func (c *Cauldron) TileCount() int {
	return c.Size * c.Size
}

// SetTile assigns the tile at grid position (x, y). Pass nil to make
// that position a hole.
func (c *Cauldron) SetTile(x, y int, tile *Tile) {
	c.tiles[y*c.Size+x] = tile
}

// GetPosition converts a flat tile index into (x, y) grid coordinates.
func (c *Cauldron) GetPosition(index int) (x, y int) {
	return index % c.Size, index / c.Size
}

// GetTile returns the tile at (x, y), or nil if that position is a
// hole.
func (c *Cauldron) GetTile(x, y int) *Tile {
	return c.tiles[y*c.Size+x]
}

// Clone returns a deep-enough copy of the cauldron for an independent
// search branch: the tile pointers are replaced with copies of their
// pointees so mutating the clone never affects the original. This is
// the "copy-on-recurse" step the search engine performs before every
// placement attempt.
func (c *Cauldron) Clone() *Cauldron {
	clone := *c
	for i, t := range c.tiles {
		if t != nil {
			tCopy := *t
			clone.tiles[i] = &tCopy
		}
	}
	return &clone
}

// Place attempts to lay material (identified by ref) down at
// placement on the cauldron, accumulating its score into
// scores[ref.Group].
//
// Validation runs as a single pass over the shape's footprint before
// any tile is mutated (an atomic check-then-commit), so a failed
// placement never partially mutates the board.
func (c *Cauldron) Place(materials MaterialGroups, ref MaterialRef, placement Placement, allowOverlap bool, scores []ColorScoreSet) error {
	if len(materials) != len(scores) {
		panic("cauldron: len(materials) != len(scores)")
	}

	material := materials[ref.Group][ref.Item]

	var effectiveShape = material.Shape.Normalize()
	if placement.Transformation != nil {
		effectiveShape = material.Shape.ApplyTransformation(*placement.Transformation)
	}

	px, py := c.GetPosition(placement.Index)
	if px+effectiveShape.GetMaxX() >= c.Size || py+effectiveShape.GetMaxY() >= c.Size {
		return ErrOutOfBounds
	}

	// Validation pass: every occupied cell must land on a real tile,
	// and (unless overlaps are allowed) on an unplayed one.
	type cell struct {
		x, y int
		tile *Tile
	}
	cells := make([]cell, 0, shape.Width*shape.Height)
	for sy := 0; sy < shape.Height; sy++ {
		for sx := 0; sx < shape.Width; sx++ {
			if !effectiveShape.Get(sx, sy) {
				continue
			}
			x, y := px+sx, py+sy
			tile := c.GetTile(x, y)
			if tile == nil {
				// The search engine never produces placements whose
				// footprint lands on a hole; the out-of-bounds check
				// above only bounds the shape's bounding box, not the
				// cauldron's hole layout. A caller reaching this is a
				// programmer error in how the board was constructed.
				log.Printf("cauldron: placement of material %v at (%d,%d) lands on hole tile", ref, x, y)
				panic("cauldron: cannot place material on hole tile")
			}
			if tile.IsPlayed() && !allowOverlap {
				return ErrDisallowedOverlap
			}
			cells = append(cells, cell{x: x, y: y, tile: tile})
		}
	}

	if c.Properties.Has(PropertySynergy) && c.SynergyBonus == nil {
		return ErrSynergyUnsupported
	}

	// Commit pass: score, overwrite played_by, reset level, and track
	// every distinct prior material touched (a placement's footprint
	// can span tiles left behind by two or more different earlier
	// materials, each of which gets fully cleared below). A tile already
	// played by the material being placed is not a displacement, so
	// re-placing a material never clears its own new footprint.
	var scoreAccum float64
	var displaced [shape.Width * shape.Height]MaterialRef
	var displacedLen int
	for _, cl := range cells {
		tile := cl.tile

		multiplier := 1.0
		if material.Color == tile.Color {
			multiplier = 1.5
		}
		if tile.Level > 0 {
			scoreAccum += float64(c.BonusScores.forLevel(tile.Level)) * multiplier
		}

		if c.Properties.Has(PropertySynergy) {
			scoreAccum += c.SynergyBonus(c, material, tile)
		}

		if tile.PlayedBy != nil && *tile.PlayedBy != ref {
			prev := *tile.PlayedBy
			alreadySeen := false
			for i := 0; i < displacedLen; i++ {
				if displaced[i] == prev {
					alreadySeen = true
					break
				}
			}
			if !alreadySeen {
				displaced[displacedLen] = prev
				displacedLen++
			}
		}

		refCopy := ref
		tile.PlayedBy = &refCopy
		tile.Level = 0
	}

	if displacedLen > 0 {
		for _, t := range c.tiles {
			if t == nil || t.PlayedBy == nil {
				continue
			}
			for i := 0; i < displacedLen; i++ {
				if *t.PlayedBy == displaced[i] {
					t.PlayedBy = nil
					break
				}
			}
		}
	}

	score := uint32(scoreAccum)

	// Bonus propagation: bump the level of every empty, unplayed
	// neighbour cell, capped at level 3.
	for _, off := range effectiveShape.GetNeighbours().Offsets() {
		nx, ny := px+off.X, py+off.Y
		if nx < 0 || nx >= c.Size || ny < 0 || ny >= c.Size {
			continue
		}
		tile := c.GetTile(nx, ny)
		if tile == nil || tile.IsPlayed() {
			continue
		}
		if tile.Level < 3 {
			tile.Level++
		}
	}

	scores[ref.Group].Add(material.Color, score)

	return nil
}

// PlaceAll applies each move in order via Place, accumulating and
// returning the per-group score sets. It stops and returns the error
// from the first failing placement, leaving the cauldron in whatever
// state the successful prefix of moves produced.
func (c *Cauldron) PlaceAll(materials MaterialGroups, moves []Move, allowOverlap bool) ([]ColorScoreSet, error) {
	scores := make([]ColorScoreSet, len(materials))
	for _, m := range moves {
		if err := c.Place(materials, m.MaterialIndex, m.Placement, allowOverlap, scores); err != nil {
			return scores, err
		}
	}
	return scores, nil
}

// CalculateCoverage counts, for every tile currently played, the
// color of the material that plays it.
func (c *Cauldron) CalculateCoverage(materials MaterialGroups) CoverageInfo {
	var coverage CoverageInfo
	for _, t := range c.tiles {
		if t == nil || t.PlayedBy == nil {
			continue
		}
		color := materials[t.PlayedBy.Group][t.PlayedBy.Item].Color
		coverage = coverage.addColor(color)
	}
	return coverage
}

// CalculateFinalScore turns per-group raw ColorScoreSets into final
// per-group scores, applying each color's coverage multiplier.
func (c *Cauldron) CalculateFinalScore(materials MaterialGroups, scoreSets []ColorScoreSet) []uint32 {
	coverage := c.CalculateCoverage(materials)
	totalTiles := c.TileCount()

	final := make([]uint32, len(scoreSets))
	for g, scoreSet := range scoreSets {
		var groupScore uint32
		for colorIdx := 0; colorIdx < numColors; colorIdx++ {
			color := ColorFromIndex(colorIdx)

			var base uint32
			for _, m := range materials[g] {
				if m.Color == color {
					base += m.EffectValue
				}
			}

			raw := scoreSet.Get(color)
			ratio := coverage.ConditionalRatio(color, totalTiles)

			contribution := float64(base+raw) * (1 + ratio)
			groupScore += uint32(contribution)
		}
		final[g] = groupScore
	}
	return final
}
