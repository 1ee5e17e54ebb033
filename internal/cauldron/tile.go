package cauldron

// MaterialRef identifies a specific material: its group index and its
// index within that group.
type MaterialRef struct {
	Group int
	Item  int
}

// Tile is a single cell of a cauldron's grid. A nil *Tile (in
// Cauldron.tiles) represents a hole — a cell with no tile at all.
type Tile struct {
	// Color is the tile's native color.
	Color Color

	// Level is the tile's bonus level, 0..3 inclusive.
	Level int

	// PlayedBy is set once a material covers this tile, and cleared
	// again if that material's footprint is later displaced by an
	// overlapping placement.
	PlayedBy *MaterialRef
}

// IsPlayed reports whether a material currently covers this tile.
func (t *Tile) IsPlayed() bool {
	return t.PlayedBy != nil
}
