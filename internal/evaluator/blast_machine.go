package evaluator

import (
	"time"

	"github.com/behrlich/cubecost/internal/cube"
)

// singleMoveTime and doubleMoveTime are the reference "blast machine" robot's
// per-turn durations: a solenoid-driven cube turner that can flip a quarter
// turn faster than a half turn, and that can drive two faces on the same
// axis at once for free once the first one is already spinning.
const (
	singleMoveTime = 10 * time.Millisecond
	doubleMoveTime = 14 * time.Millisecond
)

// BlastMachineEvaluator is the reference non-uniform cost model: a quarter
// turn costs 10ms, a half turn costs 14ms, and any move sharing an axis with
// the move immediately before it is free, since the machine's opposite-face
// solenoids can fire together.
type BlastMachineEvaluator struct{}

func (BlastMachineEvaluator) Eval(seq []cube.Move) time.Duration {
	var total time.Duration
	var lastMove *cube.Move

	for i := range seq {
		m := seq[i]
		switch {
		case lastMove != nil && cube.SameAxis(lastMove.Face, m.Face):
			// free
		case m.Direction == cube.Double:
			total += doubleMoveTime
		default:
			total += singleMoveTime
		}
		lastMove = &seq[i]
	}
	return total
}

// MinTime drops the first and last move of seq: the first because its cost
// depends on whatever move preceded seq (not visible here), the last because
// a search path may still extend it into a cheaper combined move.
func (BlastMachineEvaluator) MinTime(seq []cube.Move) time.Duration {
	if len(seq) <= 2 {
		return 0
	}
	return BlastMachineEvaluator{}.Eval(seq[1 : len(seq)-1])
}
