package evaluator

import (
	"time"

	"github.com/behrlich/cubecost/internal/cube"
)

// UniformEvaluator costs every move in a sequence the same, regardless of
// face, direction, or neighboring moves. With Unit set to a single
// time.Duration "tick" this reduces the solver to the classical
// fewest-moves objective: Eval is just len(seq) ticks.
type UniformEvaluator struct {
	Unit time.Duration
}

// NewUniformEvaluator builds a UniformEvaluator charging unit per move.
func NewUniformEvaluator(unit time.Duration) UniformEvaluator {
	return UniformEvaluator{Unit: unit}
}

func (e UniformEvaluator) Eval(seq []cube.Move) time.Duration {
	return time.Duration(len(seq)) * e.Unit
}

// MinTime is the cost of every move except the first and last -- the same
// "drop both ends" rule the blast machine evaluator uses, so partial
// sequences built during search are scored consistently across evaluators.
func (e UniformEvaluator) MinTime(seq []cube.Move) time.Duration {
	if len(seq) <= 2 {
		return 0
	}
	return e.Eval(seq[1 : len(seq)-1])
}
