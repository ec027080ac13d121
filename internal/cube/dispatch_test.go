package cube

import "testing"

func TestSolveDispatchesEachAlgorithm(t *testing.T) {
	scramble := Solved().ApplyAll(mustParse(t, "R U"))

	for _, algorithm := range []string{AlgorithmKociemba, AlgorithmNaive, AlgorithmMitm} {
		t.Run(algorithm, func(t *testing.T) {
			solution, err := Solve(algorithm, UniformTestEvaluator{}, scramble)
			if err != nil {
				t.Fatalf("Solve(%q): %v", algorithm, err)
			}
			verifySolution(t, scramble, solution)
		})
	}
}

func TestSolveRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := Solve("not-an-algorithm", UniformTestEvaluator{}, Solved()); err == nil {
		t.Error("Solve with an unknown algorithm name should return an error")
	}
}
