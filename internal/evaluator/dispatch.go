package evaluator

import (
	"fmt"
	"time"
)

// defaultUnit is the per-move tick UniformEvaluator charges when selected by
// name rather than constructed directly with a caller-chosen unit.
const defaultUnit = 10 * time.Millisecond

// Parse resolves a CLI/HTTP evaluator name to an Evaluator. An empty name
// selects UniformEvaluator, matching the classical fewest-moves default.
func Parse(name string) (Evaluator, error) {
	switch name {
	case "", "uniform":
		return NewUniformEvaluator(defaultUnit), nil
	case "blast":
		return BlastMachineEvaluator{}, nil
	default:
		return nil, fmt.Errorf("evaluator: unknown evaluator %q", name)
	}
}
