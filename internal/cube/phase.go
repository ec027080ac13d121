package cube

import "time"

// DefaultApproximateHeuristicBudget is how long an APPROXIMATE heuristic
// table is allowed to spend expanding before the search has to make do with
// whatever it recorded. Callers can override it through NewSolver's
// approxBudget argument.
const DefaultApproximateHeuristicBudget = 3 * time.Second

// Phase is one leg of a two-phase search: a restricted move alphabet, a
// predicate for "this phase is done", and the pattern-database heuristics
// that bound the remaining cost of finishing it.
type Phase struct {
	AllowedMoves []Move
	FinishedWhen func(Cube) bool
	heuristics   []*heuristicTable
}

// MinTime is an admissible lower bound on the cost still needed to finish
// this phase from cc: the largest of its heuristics' bounds, since each is
// independently admissible and the true cost can't be less than any of them.
func (p *Phase) MinTime(cc CoordCube) time.Duration {
	var max time.Duration
	for _, h := range p.heuristics {
		if d := h.minTime(cc); d > max {
			max = d
		}
	}
	return max
}

// IsFinished reports whether cube satisfies this phase's goal.
func (p *Phase) IsFinished(cube Cube) bool {
	return p.FinishedWhen(cube)
}

// newToDominoPhase builds the first phase: reduce an arbitrary scramble into
// the domino subgroup <U, D, L2, R2, F2, B2> using the full 18-move
// alphabet. Both heuristics are built to a fixpoint (EXHAUSTIVE) since their
// coordinate ranges are small enough to fully expand.
func newToDominoPhase(evaluator Evaluator) *Phase {
	moves := All()
	return &Phase{
		AllowedMoves: moves,
		FinishedWhen: IsDominoCube,
		heuristics: []*heuristicTable{
			buildHeuristicTable("corner_orientation", CornerOrientation,
				func(cc CoordCube) int { return cc.cornerOrientation }, moves, evaluator, 0),
			buildHeuristicTable("edge_orientation", EdgeOrientation,
				func(cc CoordCube) int { return cc.edgeOrientation }, moves, evaluator, 0),
		},
	}
}

// newPostDominoPhase builds the second phase: finish solving a domino cube
// using only the 10 domino-subgroup moves. Its corner_position heuristic is
// built APPROXIMATE (bounded by budget) since 8! prefixes is too many to
// exhaust within a solve's startup latency.
func newPostDominoPhase(evaluator Evaluator, budget time.Duration) *Phase {
	moves := Domino()
	return &Phase{
		AllowedMoves: moves,
		FinishedWhen: Cube.IsSolved,
		heuristics: []*heuristicTable{
			buildHeuristicTable("corner_position", CornerPosition,
				func(cc CoordCube) int { return cc.cornerPosition }, moves, evaluator, budget),
		},
	}
}

// isDominoLocationOK reports whether loc currently shows a color consistent
// with the cube being in the domino subgroup: every sticker that must be on
// its home axis, is.
func isDominoLocationOK(loc Location, color Face) bool {
	switch {
	case loc.Kind == CenterKind:
		return true
	case loc.Kind == EdgeKind && SameAxis(loc.A, Up) && SameAxis(color, Up):
		return true
	case loc.Kind == CornerKind && SameAxis(loc.A, Up) && SameAxis(color, Up):
		return true
	case loc.Kind == EdgeKind && SameAxis(loc.A, Front) && SameAxis(loc.B, Left) && SameAxis(color, Front):
		return true
	case loc.Kind == EdgeKind && SameAxis(loc.A, Front) && !SameAxis(loc.B, Left):
		return true
	case loc.Kind == EdgeKind && SameAxis(loc.A, Left):
		return true
	case loc.Kind == CornerKind && !SameAxis(loc.A, Up):
		return true
	default:
		return false
	}
}

// IsDominoCube reports whether cube belongs to the domino subgroup: every
// Up/Down sticker is on the Up/Down axis, and every Front/Back-Left/Right
// edge keeps its Front/Back sticker on the Front/Back axis. This is phase
// one's goal predicate.
func IsDominoCube(cube Cube) bool {
	for _, loc := range allLocations {
		if !isDominoLocationOK(loc, cube.Get(loc)) {
			return false
		}
	}
	return true
}
