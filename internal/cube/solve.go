package cube

import "time"

// Solver runs Kociemba's two-phase search against a caller-supplied cost
// model: reduce to the domino subgroup, then finish solving, at every step
// minimizing the evaluator's notion of cost rather than move count.
type Solver struct {
	evaluator  Evaluator
	toDomino   *Phase
	postDomino *Phase
}

// NewSolver builds a solver for evaluator, constructing both phases'
// heuristic tables up front. approxBudget bounds how long the post-domino
// phase's corner_position heuristic spends expanding before settling for
// whatever it found; zero selects DefaultApproximateHeuristicBudget.
func NewSolver(evaluator Evaluator, approxBudget time.Duration) *Solver {
	if approxBudget <= 0 {
		approxBudget = DefaultApproximateHeuristicBudget
	}
	return &Solver{
		evaluator:  evaluator,
		toDomino:   newToDominoPhase(evaluator),
		postDomino: newPostDominoPhase(evaluator, approxBudget),
	}
}

// Solve streams a solution for cube: a move sequence that leaves cube solved
// once fully applied. Moves arrive on the channel as soon as the first
// phase's prefix is known, rather than only once the entire two-phase
// solution is ready; the channel is closed after the last move.
func (s *Solver) Solve(cube Cube) <-chan Move {
	ch := make(chan Move, 32)
	go func() {
		defer close(ch)

		toDomino := s.solveTo(cube, s.toDomino, nil)
		for _, m := range toDomino {
			ch <- m
		}

		full := s.solveTo(cube, s.postDomino, toDomino)
		for _, m := range full[len(toDomino):] {
			ch <- m
		}
	}()
	return ch
}

// SolveSync runs Solve to completion and returns the full move sequence. It
// blocks until the solve finishes.
func (s *Solver) SolveSync(cube Cube) []Move {
	var moves []Move
	for m := range s.Solve(cube) {
		moves = append(moves, m)
	}
	return moves
}

// solveTo finds the cheapest sequence of phase moves that, appended after
// prefix, leaves cube satisfying phase's goal -- iterative deepening on the
// evaluator's cost bound until findSolution succeeds.
func (s *Solver) solveTo(cube Cube, phase *Phase, prefix []Move) []Move {
	working := NewCoordCube(cube.ApplyAll(prefix))
	moveStack := append([]Move{}, prefix...)

	bestTime := s.evaluator.Eval(moveStack)
	for {
		result := findSolution(s.evaluator, bestTime, working, &moveStack, phase)
		if result.found {
			return result.moves
		}
		bestTime = result.nextTime
	}
}
