package cube

import "time"

// searchResult is the outcome of one bounded find_solution pass: either the
// best sequence found within the bound, or the smallest bound that would
// need to be tried next.
type searchResult struct {
	found    bool
	moves    []Move
	nextTime time.Duration
}

// findSolution is a cost-bounded depth-first search (IDA*'s inner pass): it
// explores moveStack extensions of cc, pruning any branch whose admissible
// lower bound (evaluator.Eval(moveStack) + phase.MinTime(cc)) exceeds
// maxTime, and returns the cheapest solution it finds at or under maxTime.
// If none exists, it reports the smallest bound a retry would need.
func findSolution(evaluator Evaluator, maxTime time.Duration, cc CoordCube, moveStack *[]Move, phase *Phase) searchResult {
	thisTime := evaluator.Eval(*moveStack) + phase.MinTime(cc)
	if thisTime > maxTime {
		return searchResult{found: false, nextTime: thisTime}
	}

	if phase.IsFinished(cc.Raw) {
		found := make([]Move, len(*moveStack))
		copy(found, *moveStack)
		return searchResult{found: true, moves: found}
	}

	var lastMove *Move
	if n := len(*moveStack); n > 0 {
		lastMove = &(*moveStack)[n-1]
	}

	best := searchResult{found: false, nextTime: time.Duration(1<<63 - 1)}
	for _, m := range phase.AllowedMoves {
		if lastMove != nil && !CouldFollow(m, *lastMove) {
			continue
		}

		*moveStack = append(*moveStack, m)
		sub := findSolution(evaluator, maxTime, cc.Apply(m), moveStack, phase)
		*moveStack = (*moveStack)[:len(*moveStack)-1]

		switch {
		case !best.found && !sub.found:
			if sub.nextTime < best.nextTime {
				best.nextTime = sub.nextTime
			}
		case best.found && !sub.found:
			// keep best
		case !best.found && sub.found:
			best = sub
		case best.found && sub.found:
			if evaluator.Eval(sub.moves) < evaluator.Eval(best.moves) {
				best = sub
			}
		}
	}

	return best
}
