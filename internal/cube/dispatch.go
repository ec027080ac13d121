package cube

import "fmt"

// Algorithm names the solvers selectable by CLI/HTTP collaborators.
const (
	AlgorithmKociemba = "kociemba"
	AlgorithmNaive    = "naive"
	AlgorithmMitm     = "mitm"
)

// Solve dispatches to the named algorithm and returns a full move sequence
// that solves c. mitm ignores evaluator -- it is a pure shortest-path
// baseline with no cost model, see MitmSolver.
func Solve(algorithm string, evaluator Evaluator, c Cube) ([]Move, error) {
	switch algorithm {
	case "", AlgorithmKociemba:
		return NewSolver(evaluator, 0).SolveSync(c), nil
	case AlgorithmNaive:
		return NewNaiveSolver(evaluator).Solve(c), nil
	case AlgorithmMitm:
		return NewMitmSolver().Solve(c), nil
	default:
		return nil, fmt.Errorf("cube: unknown algorithm %q", algorithm)
	}
}
