package solver

import (
	"sync/atomic"

	"github.com/holly-hacker/atelier-sophie-synth-solver/internal/cauldron"
	"github.com/holly-hacker/atelier-sophie-synth-solver/internal/shape"
)

// moveSeq is a fixed-capacity move path: copying a moveSeq by value
// (as every recursive call below does) never allocates.
type moveSeq struct {
	items [MaxItems]cauldron.Move
	len   int
}

func (m moveSeq) push(mv cauldron.Move) moveSeq {
	m.items[m.len] = mv
	m.len++
	return m
}

func (m moveSeq) contains(ref cauldron.MaterialRef) bool {
	for i := 0; i < m.len; i++ {
		if m.items[i].MaterialIndex == ref {
			return true
		}
	}
	return false
}

func (m moveSeq) slice() []cauldron.Move {
	out := make([]cauldron.Move, m.len)
	copy(out, m.items[:m.len])
	return out
}

// scoreSetSeq is the search's fixed-capacity per-group score
// accumulator: copying it by value (as every recursive call below
// does) never allocates, the same discipline moveSeq follows above.
type scoreSetSeq struct {
	items [MaxGoals]cauldron.ColorScoreSet
	len   int
}

func newScoreSetSeq(n int) scoreSetSeq {
	return scoreSetSeq{len: n}
}

// slice returns a view over the populated prefix, for passing into
// cauldron.Cauldron methods that take []cauldron.ColorScoreSet.
func (s *scoreSetSeq) slice() []cauldron.ColorScoreSet {
	return s.items[:s.len]
}

// Searcher runs one exhaustive search over a cauldron and a set of
// material groups. A Searcher is single-use: construct a new one per
// call to FindOptimalRoutes.
//
// stopped is an atomic.Bool: both a user-requested cancellation (the
// Reporter returning Break) and an internal perfect-solution early
// exit set it, and every recursive call checks it before doing any
// further work.
type Searcher struct {
	stopped atomic.Bool
}

// NewSearcher constructs an idle Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Stop requests cancellation from outside the search goroutine. Safe
// to call concurrently with FindOptimalRoutes.
func (s *Searcher) Stop() {
	s.stopped.Store(true)
}

// FindOptimalRoutes exhaustively enumerates every legal assignment of
// materials to cauldron placements and returns the Pareto-optimal
// frontier over per-group goal achievement.
func (s *Searcher) FindOptimalRoutes(playfield *cauldron.Cauldron, materials cauldron.MaterialGroups, goals []cauldron.Goal, settings Settings, reporter Reporter) []Route {
	if len(materials) != len(goals) {
		panic("solver: len(materials) != len(goals)")
	}

	t := newTracker(reporter)
	f := newFrontier()
	scoreSets := newScoreSetSeq(len(materials))

	s.recurse(playfield, materials, goals, settings, t, moveSeq{}, scoreSets, f)

	return f.Routes()
}

func totalMaterialCount(materials cauldron.MaterialGroups) int {
	n := 0
	for _, g := range materials {
		n += len(g)
	}
	return n
}

func (s *Searcher) recurse(
	playfield *cauldron.Cauldron,
	materials cauldron.MaterialGroups,
	goals []cauldron.Goal,
	settings Settings,
	t *tracker,
	path moveSeq,
	scoreSets scoreSetSeq,
	f *frontier,
) {
	if s.stopped.Load() {
		return
	}

	materialCount := totalMaterialCount(materials)
	if path.len == materialCount {
		s.checkEndOfPath(playfield, materials, goals, path, scoreSets, f)
		return
	}

	// extended tracks whether any remaining material could be placed
	// anywhere from this node. If none can (every position/transform
	// for every unplaced material fails), this path is itself a leaf:
	// it still gets scored and considered for the frontier, which is
	// what guarantees the search never returns an empty result set
	// purely because the board or shapes rule out every placement.
	extended := false

	// pristine holds this node's score sets before any trial
	// placement. Place never mutates its scores argument on a failed
	// attempt (every error path returns before the commit pass), so
	// every sibling branch below can trial a placement directly
	// against scoreSets and only needs pristine to roll back after a
	// successful one before trying the next sibling.
	pristine := scoreSets

	t.startLoop(materialCount - path.len)
	for groupIdx, group := range materials {
		for itemIdx := range group {
			ref := cauldron.MaterialRef{Group: groupIdx, Item: itemIdx}
			if path.contains(ref) {
				continue
			}
			if s.stopped.Load() {
				t.endLoop()
				return
			}
			if t.reportProgress(f.Routes()) == Break {
				s.stopped.Store(true)
				t.endLoop()
				return
			}

			transformations := shape.GenerateTransformations(materials[groupIdx][itemIdx].Shape, settings.Transformations)
			t.startLoop(len(transformations))
			for _, transformation := range transformations {
				if s.stopped.Load() {
					break
				}
				if t.reportProgress(f.Routes()) == Break {
					s.stopped.Store(true)
					break
				}

				t.startLoop(playfield.TileCount())
				for tileIndex := 0; tileIndex < playfield.TileCount(); tileIndex++ {
					if s.stopped.Load() {
						break
					}
					if t.reportProgress(f.Routes()) == Break {
						s.stopped.Store(true)
						break
					}

					placement := cauldron.Placement{Index: tileIndex, Transformation: transformation}
					newPlayfield := playfield.Clone()

					if err := newPlayfield.Place(materials, ref, placement, settings.AllowOverlaps, scoreSets.slice()); err == nil {
						extended = true
						newPath := path.push(cauldron.Move{MaterialIndex: ref, Placement: placement})
						s.recurse(newPlayfield, materials, goals, settings, t, newPath, scoreSets, f)
						scoreSets = pristine
					}

					t.bumpLoopProgress()
				}
				t.endLoop()
				t.bumpLoopProgress()
			}
			t.endLoop()
			t.bumpLoopProgress()
		}
	}
	t.endLoop()

	if !extended && !s.stopped.Load() {
		s.checkEndOfPath(playfield, materials, goals, path, scoreSets, f)
	}
}

func (s *Searcher) checkEndOfPath(
	playfield *cauldron.Cauldron,
	materials cauldron.MaterialGroups,
	goals []cauldron.Goal,
	path moveSeq,
	scoreSets scoreSetSeq,
	f *frontier,
) {
	finalScores := playfield.CalculateFinalScore(materials, scoreSets.slice())
	result := NewGoalResultFromScores(finalScores, goals)

	f.consider(Route{Result: result, Path: path.slice()})

	if result.fullyAchieved(goals) {
		s.stopped.Store(true)
	}
}
