package shape

// ShapeNeighbours is the set of cells in the 5x5 region
// [-1..Width+1) x [-1..Height+1) that are empty in a shape's mask but
// 8-adjacent to at least one occupied cell. Packed into the low 25
// bits of a uint32.
type ShapeNeighbours uint32

const (
	neighbourMinX = -1
	neighbourMinY = -1
	neighbourW    = Width + 2
	neighbourH    = Height + 2
)

// offsetBit returns the bit index for offset (x, y), x and y in
// [-1, Width] / [-1, Height].
func offsetBit(x, y int) uint {
	absX := uint(x - neighbourMinX)
	absY := uint(y - neighbourMinY)
	return absX + absY*neighbourW
}

func (n ShapeNeighbours) has(x, y int) bool {
	return n&(1<<offsetBit(x, y)) != 0
}

func (n *ShapeNeighbours) set(x, y int) {
	*n |= 1 << offsetBit(x, y)
}

// Offset is a relative (dx, dy) coordinate in the neighbour set.
type Offset struct {
	X, Y int
}

// Offsets returns every (x, y) offset in the neighbour set, ordered
// row-major: a single fixed, documented iteration order.
func (n ShapeNeighbours) Offsets() []Offset {
	offsets := make([]Offset, 0, n.popCount())
	for y := neighbourMinY; y < neighbourMinY+neighbourH; y++ {
		for x := neighbourMinX; x < neighbourMinX+neighbourW; x++ {
			if n.has(x, y) {
				offsets = append(offsets, Offset{X: x, Y: y})
			}
		}
	}
	return offsets
}

// Iterate calls fn for every (dx, dy) offset in the neighbour set, in
// the same row-major order as Offsets, stopping early if fn returns
// false.
func (n ShapeNeighbours) Iterate(fn func(dx, dy int) bool) {
	for y := neighbourMinY; y < neighbourMinY+neighbourH; y++ {
		for x := neighbourMinX; x < neighbourMinX+neighbourW; x++ {
			if n.has(x, y) {
				if !fn(x, y) {
					return
				}
			}
		}
	}
}

func (n ShapeNeighbours) popCount() int {
	count := 0
	for v := n; v != 0; v &= v - 1 {
		count++
	}
	return count
}

// neighbourCache is the process-wide, write-once table mapping every
// one of the 512 possible shape masks to its neighbour set. Built
// eagerly in init() rather than lazily guarded per lookup.
var neighbourCache [MaxShapeCount]ShapeNeighbours

func init() {
	for i := 0; i < MaxShapeCount; i++ {
		neighbourCache[i] = Shape(i).calculateNeighbours()
	}
}

// GetNeighbours returns the (cached) neighbour set for the shape.
func (s Shape) GetNeighbours() ShapeNeighbours {
	return neighbourCache[s]
}

// calculateNeighbours computes the neighbour set directly, without
// consulting the cache. Used to build the cache itself and to verify
// cache correctness in tests.
func (s Shape) calculateNeighbours() ShapeNeighbours {
	var neighbours ShapeNeighbours

	for probeY := neighbourMinY; probeY < neighbourMinY+neighbourH; probeY++ {
	probe:
		for probeX := neighbourMinX; probeX < neighbourMinX+neighbourW; probeX++ {
			if inBounds(probeX, probeY) && s.Get(probeX, probeY) {
				// occupied cell: not a neighbour.
				continue
			}

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := probeX+dx, probeY+dy
					if inBounds(nx, ny) && s.Get(nx, ny) {
						neighbours.set(probeX, probeY)
						continue probe
					}
				}
			}
		}
	}

	return neighbours
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}
