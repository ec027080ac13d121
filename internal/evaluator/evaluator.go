// Package evaluator supplies caller-defined cost models for move sequences.
// The solver in internal/cube never hardcodes "cost equals move count"; it
// asks an Evaluator instead, so the same search works for plain speedcubing
// move count, for a physical robot's per-turn timing, or for anything else
// that satisfies the Eval/MinTime contract.
package evaluator

import (
	"time"

	"github.com/behrlich/cubecost/internal/cube"
)

// Evaluator mirrors cube.Evaluator; implementations in this package satisfy
// cube.Evaluator structurally, without cube importing this package.
type Evaluator = cube.Evaluator

// EvaluatorFunc adapts a plain function to the Evaluator interface, mirroring
// the blanket `impl<F: Fn(&[Move]) -> Duration> Evaluator for F` from the
// original Rust. Since MinTime has no single-function equivalent, an
// EvaluatorFunc's MinTime conservatively returns 0 -- still admissible, just
// less informative than a purpose-built Evaluator's bound.
type EvaluatorFunc func(seq []cube.Move) time.Duration

func (f EvaluatorFunc) Eval(seq []cube.Move) time.Duration { return f(seq) }

func (f EvaluatorFunc) MinTime(seq []cube.Move) time.Duration { return 0 }

// Challenge bundles an evaluator with an inspection allowance. Inspection is
// informational only -- it is never subtracted from a solve's reported cost,
// it exists so a caller comparing solvers against a human or robot baseline
// can account for time spent looking at the scramble before the first move.
type Challenge struct {
	Inspection time.Duration
	Evaluator  Evaluator
}
