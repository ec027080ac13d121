package cube

// NaiveSolver is an unoptimized iterative-deepening solver kept around as a
// baseline to compare the two-phase Solver against: no coordinate pruning,
// no domino reduction, just brute-force search over the 18-move alphabet
// picking, among all exact-depth solutions, the evaluator's cheapest one.
type NaiveSolver struct {
	evaluator Evaluator
}

// NewNaiveSolver builds a naive solver for evaluator.
func NewNaiveSolver(evaluator Evaluator) *NaiveSolver {
	return &NaiveSolver{evaluator: evaluator}
}

// Solve tries successively larger exact move counts until one of them admits
// a solution, then returns the cheapest solution at that move count.
func (s *NaiveSolver) Solve(cube Cube) []Move {
	for depth := 0; ; depth++ {
		if sol, ok := s.findSolution(depth, cube, nil); ok {
			return sol
		}
	}
}

// findSolution looks for a solution using exactly remaining more moves,
// never repeating the face of the immediately preceding move (a same-face
// repeat is always replaceable by a single move of a different amount).
// Among all solutions it finds, it returns the one evaluator.Eval scores
// lowest.
func (s *NaiveSolver) findSolution(remaining int, cube Cube, lastMove *Move) ([]Move, bool) {
	if remaining == 0 {
		if cube.IsSolved() {
			return []Move{}, true
		}
		return nil, false
	}

	var best []Move
	var bestCost int64
	found := false

	for _, m := range allMoves {
		if lastMove != nil && lastMove.Face == m.Face {
			continue
		}

		next := cube.Apply(m)
		rest, ok := s.findSolution(remaining-1, next, &m)
		if !ok {
			continue
		}

		full := append([]Move{m}, rest...)
		cost := int64(s.evaluator.Eval(full))
		if !found || cost < bestCost {
			found, bestCost, best = true, cost, full
		}
	}

	return best, found
}
