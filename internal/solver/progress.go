package solver

// reportDepth is the number of innermost loop-nesting levels that skip
// progress reporting entirely. The search nests three loops per path
// element (material, transformation, tile index); reporting at every
// one of them at full recursion depth dominates the actual search
// cost, so only the outermost levels ever call the reporter.
const reportDepth = 3

// Signal is returned by a Reporter to tell the search whether to keep
// going or stop early.
type Signal int

const (
	// Continue lets the search proceed.
	Continue Signal = iota
	// Break stops the search at the next opportunity, the same way a
	// perfect-solution match does internally.
	Break
)

// Reporter receives the search's current fractional progress (0..1)
// and its best frontier so far, and decides whether to keep searching.
type Reporter func(progress float64, best []Route) Signal

// tracker keeps a stack of (current,total) counters, one per level of
// loop nesting, and folds them into a single fractional-progress
// estimate: every level pushes its iteration count, and report calls
// fold the stack from outermost to innermost.
type tracker struct {
	reporter         Reporter
	stack            []progressFrame
	maxDepthEncountered int
}

type progressFrame struct {
	current, total int
}

func newTracker(reporter Reporter) *tracker {
	return &tracker{reporter: reporter}
}

// startLoop pushes a new nesting level with the given iteration count.
func (t *tracker) startLoop(count int) {
	t.stack = append(t.stack, progressFrame{0, count})
	if len(t.stack) > t.maxDepthEncountered {
		t.maxDepthEncountered = len(t.stack)
	}
}

// endLoop pops the current nesting level. The caller must have bumped
// it to completion first.
func (t *tracker) endLoop() {
	t.stack = t.stack[:len(t.stack)-1]
}

// bumpLoopProgress advances the current nesting level by one
// iteration.
func (t *tracker) bumpLoopProgress() {
	if len(t.stack) == 0 {
		return
	}
	t.stack[len(t.stack)-1].current++
}

// reportProgress calls the reporter with the tracker's current
// fractional progress and best results so far, unless the current
// nesting depth is within reportDepth levels of the deepest level ever
// seen (the search's innermost, highest-frequency loops). Returns
// Break if the reporter asked to stop.
func (t *tracker) reportProgress(best []Route) Signal {
	threshold := t.maxDepthEncountered - reportDepth
	if threshold < 0 {
		threshold = 0
	}
	if len(t.stack) > threshold {
		return Continue
	}
	if t.reporter == nil {
		return Continue
	}
	return t.reporter(t.currentProgress(), best)
}

// currentProgress folds the progress stack into a single 0..1
// fraction: each level's fractional completion is divided by the
// product of all enclosing levels' total counts.
func (t *tracker) currentProgress() float64 {
	total := 0.0
	mult := 1.0
	for _, frame := range t.stack {
		fraction := float64(frame.current) / float64(frame.total)
		total += fraction * mult
		mult *= 1.0 / float64(frame.total)
	}
	return total
}
