package solver

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// frontier maintains the set of Pareto-optimal routes found so far:
// no kept route weakly dominates another, and every kept route is not
// weakly dominated by any other.
//
// Kept routes are hash-bucketed by their packed goal-achievement
// counts, the same way engine/transposition.go buckets TTEntry by
// position hash: a cheap xxhash.Sum64 finds an exact duplicate of a
// candidate by comparing only the (usually tiny) set of results
// sharing its bucket. The WeaklyDominates scan that follows for a
// non-duplicate still visits every kept route.
type frontier struct {
	routes  []Route
	buckets map[uint64][]int
}

func newFrontier() *frontier {
	return &frontier{buckets: make(map[uint64][]int)}
}

func hashGoalResult(r GoalResult) uint64 {
	var buf [MaxGoals * 8]byte
	for i := 0; i < r.Len; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(r.Achieved[i]))
	}
	return xxhash.Sum64(buf[:r.Len*8])
}

// consider inserts candidate if no kept route weakly dominates it, and
// removes every kept route that candidate weakly dominates. Mirrors
// the two-step update law: drop dominated incumbents, then admit the
// candidate unless an equal or better incumbent already exists.
//
// The search revisits the same achieved GoalResult many times over
// (different move orderings reaching an identical outcome), so the
// hash bucket is checked first: if an exact duplicate is already on
// the frontier, consider returns immediately without the O(n)
// dominance scan below.
func (f *frontier) consider(candidate Route) {
	h := hashGoalResult(candidate.Result)
	for _, idx := range f.buckets[h] {
		if f.routes[idx].Result == candidate.Result {
			return
		}
	}

	kept := f.routes[:0]
	dominatedByExisting := false

	for _, existing := range f.routes {
		if existing.Result.WeaklyDominates(candidate.Result) {
			dominatedByExisting = true
			kept = append(kept, existing)
			continue
		}
		if candidate.Result.WeaklyDominates(existing.Result) {
			// existing is strictly worse (and not equal, ruled out above):
			// drop it.
			continue
		}
		kept = append(kept, existing)
	}
	f.routes = kept

	if !dominatedByExisting {
		f.routes = append(f.routes, candidate)
	}

	f.rebuildIndex()
}

// rebuildIndex recomputes the hash buckets after routes is mutated.
// The frontier is expected to stay small (bounded by the number of
// distinct achievable goal-count tuples), so a full rebuild per update
// is cheap relative to the placement search it's called from.
func (f *frontier) rebuildIndex() {
	for k := range f.buckets {
		delete(f.buckets, k)
	}
	for i, r := range f.routes {
		h := hashGoalResult(r.Result)
		f.buckets[h] = append(f.buckets[h], i)
	}
}

// Routes returns the frontier's current contents.
func (f *frontier) Routes() []Route {
	return f.routes
}
