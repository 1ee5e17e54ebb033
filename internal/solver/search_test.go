package solver

import (
	"testing"

	"github.com/holly-hacker/atelier-sophie-synth-solver/internal/cauldron"
	"github.com/holly-hacker/atelier-sophie-synth-solver/internal/shape"
)

func TestFindOptimalRoutesBasicUniBag(t *testing.T) {
	playfield := uniBag5x5Bonus1()
	goals := uniBagGoals()
	materials := uniBagMaterials()

	searcher := NewSearcher()
	routes := searcher.FindOptimalRoutes(playfield, materials, goals, Settings{}, nil)

	if len(routes) != 2 {
		t.Fatalf("len(routes) = %d, want 2", len(routes))
	}

	want := map[[3]int]bool{{1, 1, 1}: false, {2, 0, 0}: false}
	for _, r := range routes {
		key := [3]int{r.Result.Achieved[0], r.Result.Achieved[1], r.Result.Achieved[2]}
		if _, ok := want[key]; !ok {
			t.Fatalf("unexpected route result %v", key)
		}
		want[key] = true
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("expected route result %v not found", k)
		}
	}
}

func TestFindOptimalRoutesWithRotations(t *testing.T) {
	playfield := uniBag5x5Bonus1()
	goals := uniBagGoals()
	materials := uniBagMaterials()

	searcher := NewSearcher()
	settings := Settings{Transformations: shape.TransformRotate, AllowOverlaps: false}
	routes := searcher.FindOptimalRoutes(playfield, materials, goals, settings, nil)

	if len(routes) != 3 {
		t.Fatalf("len(routes) = %d, want 3", len(routes))
	}

	want := map[[3]int]bool{{1, 1, 1}: false, {1, 2, 0}: false, {2, 0, 0}: false}
	for _, r := range routes {
		key := [3]int{r.Result.Achieved[0], r.Result.Achieved[1], r.Result.Achieved[2]}
		if _, ok := want[key]; !ok {
			t.Fatalf("unexpected route result %v", key)
		}
		want[key] = true
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("expected route result %v not found", k)
		}
	}
}

func TestFindOptimalRoutesPerfectSolutionStopsEarly(t *testing.T) {
	// A goal with no thresholds is trivially fully achieved by any
	// score, so the very first complete path the search reaches should
	// set the stop flag and cut the walk short instead of exploring
	// every remaining tile/transformation combination.
	playfield := uniBag5x5Bonus1()
	materials := cauldron.MaterialGroups{{materialUni()}}
	goals := []cauldron.Goal{{}}

	searcher := NewSearcher()
	routes := searcher.FindOptimalRoutes(playfield, materials, goals, Settings{}, nil)

	if !searcher.stopped.Load() {
		t.Error("searcher did not set the stop flag after a fully-achieved result")
	}
	if len(routes) != 1 {
		t.Errorf("len(routes) = %d, want exactly 1 (search should stop after the first perfect match)", len(routes))
	}
}

func TestFindOptimalRoutesCancellation(t *testing.T) {
	playfield := uniBag5x5Bonus1()
	goals := uniBagGoals()
	materials := uniBagMaterials()

	searcher := NewSearcher()
	calls := 0
	reporter := func(progress float64, best []Route) Signal {
		calls++
		return Break
	}
	routes := searcher.FindOptimalRoutes(playfield, materials, goals, Settings{}, reporter)

	if calls == 0 {
		t.Fatal("reporter was never called")
	}
	if len(routes) > 2 {
		t.Errorf("len(routes) = %d, expected a small partial frontier after immediate cancellation", len(routes))
	}
}

func TestFindOptimalRoutesNeverEmptyWhenNoPlacementFits(t *testing.T) {
	// Every tile is already played and overlaps are disallowed, so no
	// position ever succeeds for the single material. The search must
	// still surface the empty-path outcome instead of returning nothing.
	c := cauldron.NewCauldron(4, cauldron.BonusScores{Level1: 3, Level2: 5, Level3: 7}, cauldron.White, 0)
	occupied := cauldron.MaterialRef{Group: 0, Item: 0}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c.SetTile(x, y, &cauldron.Tile{Color: cauldron.White, PlayedBy: &occupied})
		}
	}

	materials := cauldron.MaterialGroups{{materialUni()}}
	goals := []cauldron.Goal{cauldron.NewGoal(10)}

	searcher := NewSearcher()
	routes := searcher.FindOptimalRoutes(c, materials, goals, Settings{}, nil)

	if len(routes) != 1 {
		t.Fatalf("len(routes) = %d, want 1", len(routes))
	}
	if len(routes[0].Path) != 0 {
		t.Errorf("routes[0].Path = %v, want empty (no placement ever succeeded)", routes[0].Path)
	}
	// The group's base effect value (15) counts even with nothing
	// placed, and the pre-played tiles give Yellow full coverage
	// (ratio 1), so the score is 30 and clears the single threshold 10.
	if routes[0].Result.Achieved[0] != 1 {
		t.Errorf("routes[0].Result.Achieved[0] = %d, want 1", routes[0].Result.Achieved[0])
	}
}

func TestGoalResultWeaklyDominates(t *testing.T) {
	type pair struct {
		a, b   [3]int
		better bool
	}
	cases := []pair{
		{[3]int{1, 1, 1}, [3]int{1, 0, 1}, true},
		{[3]int{1, 1, 1}, [3]int{0, 1, 1}, true},
		{[3]int{1, 1, 1}, [3]int{0, 0, 1}, true},
		{[3]int{1, 0, 0}, [3]int{0, 0, 0}, true},
		{[3]int{1, 1, 1}, [3]int{2, 0, 0}, false},
		{[3]int{1, 0, 1}, [3]int{1, 1, 0}, false},
		{[3]int{0, 0, 1}, [3]int{2, 0, 0}, false},
	}

	toResult := func(a [3]int) GoalResult {
		var r GoalResult
		r.Len = 3
		r.Achieved[0], r.Achieved[1], r.Achieved[2] = a[0], a[1], a[2]
		return r
	}

	for _, c := range cases {
		got := toResult(c.a).WeaklyDominates(toResult(c.b))
		if got != c.better {
			t.Errorf("WeaklyDominates(%v, %v) = %v, want %v", c.a, c.b, got, c.better)
		}
	}
}
