package solver

import "github.com/holly-hacker/atelier-sophie-synth-solver/internal/cauldron"

// GoalResult records, for every material group, how many of that
// group's goal thresholds its final score has cleared.
type GoalResult struct {
	Achieved [MaxGoals]int
	Len      int
}

// NewGoalResultFromScores builds a GoalResult from each group's final
// score and its goal.
func NewGoalResultFromScores(scores []uint32, goals []cauldron.Goal) GoalResult {
	var r GoalResult
	r.Len = len(scores)
	for i, score := range scores {
		var count int
		for _, threshold := range goals[i].Thresholds {
			if score >= threshold {
				count++
			}
		}
		r.Achieved[i] = count
	}
	return r
}

// fullyAchieved reports whether every goal's thresholds are all met.
func (r GoalResult) fullyAchieved(goals []cauldron.Goal) bool {
	for i := 0; i < r.Len; i++ {
		if r.Achieved[i] != len(goals[i].Thresholds) {
			return false
		}
	}
	return true
}

// WeaklyDominates reports whether r is at least as good as other on
// every goal: r.Achieved[i] >= other.Achieved[i] for every i. This is
// a non-strict, weak-dominance test: two equal results weakly
// dominate each other.
func (r GoalResult) WeaklyDominates(other GoalResult) bool {
	for i := 0; i < r.Len; i++ {
		if r.Achieved[i] < other.Achieved[i] {
			return false
		}
	}
	return true
}
