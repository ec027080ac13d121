package cube

import "time"

// Evaluator is the cost model a search minimizes against. Implementations
// live outside this package (internal/evaluator) and are handed in by the
// caller; this package only ever consumes the interface, never a concrete
// cost model, so the search stays agnostic to what "expensive" means.
type Evaluator interface {
	// Eval returns the cost of performing exactly this sequence of moves.
	Eval(seq []Move) time.Duration
	// MinTime returns a lower bound on the cost of any sequence that has seq
	// as a suffix -- used to admissibly bound a partial search path.
	MinTime(seq []Move) time.Duration
}

// heuristicTable is a backward pattern database: a map from coordinate value
// to the minimum evaluator cost of any move sequence whose inverse reaches a
// cube with that coordinate, starting from solved. Looked up forward during
// search, it gives an admissible lower bound on the remaining cost to reach
// a coordinate's target value.
type heuristicTable struct {
	name       string
	simplifier coordFunc
	coordOf    func(CoordCube) int
	table      map[int]time.Duration
	exhaustive bool
}

// buildHeuristicTable runs iterative-deepening backward expansion from the
// solved cube, exactly as the reference heuristic builder does: at each
// depth it revisits every prefix (not just depth's leaves) so an improved
// evaluator cost found late can overwrite an entry recorded by a shallower,
// worse path. maxSetup of zero means build to a fixpoint (EXHAUSTIVE); a
// positive maxSetup stops the expansion once that much wall-clock time has
// elapsed, leaving the table APPROXIMATE but still admissible for whatever
// it did manage to record. coordOf reads the same coordinate back off a
// CoordCube during search, so a live solve never has to re-derive it from
// sticker state.
func buildHeuristicTable(name string, simplifier coordFunc, coordOf func(CoordCube) int, allowedMoves []Move, evaluator Evaluator, maxSetup time.Duration) *heuristicTable {
	h := &heuristicTable{name: name, simplifier: simplifier, coordOf: coordOf, table: make(map[int]time.Duration), exhaustive: maxSetup == 0}

	start := time.Now()
	for depth := 0; depth < 21; depth++ {
		if maxSetup > 0 && time.Since(start) >= maxSetup {
			break
		}
		stack := make([]Move, 0, depth)
		if !h.expandToDepth(depth, &stack, evaluator, allowedMoves) {
			break
		}
	}

	return h
}

// expandToDepth mirrors the reference's recursive case structure exactly:
// the depth-0 arms always fire first regardless of whether the coordinate
// was already known, and only at a positive remaining depth does the
// "already known at a strictly lower cost" short-circuit apply. Order
// matters here. The node's cube is moveStack applied forward from solved;
// its inverse, the sequence back to solved, is what gets costed and checked
// with ShouldConsider.
func (h *heuristicTable) expandToDepth(depth int, moveStack *[]Move, evaluator Evaluator, allowedMoves []Move) bool {
	inverse := InverseSeq(*moveStack)
	if !ShouldConsider(inverse) {
		return false
	}
	cube := Solved().ApplyAll(*moveStack)
	value := h.simplifier(cube)
	t := evaluator.MinTime(inverse)

	already, ok := h.table[value]
	switch {
	case depth == 0 && !ok:
		h.table[value] = t
		return true
	case depth == 0 && ok && t < already:
		h.table[value] = t
		return true
	case depth == 0:
		return false
	case ok && already < t:
		return false
	case ok:
		any := false
		for _, m := range allowedMoves {
			*moveStack = append(*moveStack, m)
			if h.expandToDepth(depth-1, moveStack, evaluator, allowedMoves) {
				any = true
			}
			*moveStack = (*moveStack)[:len(*moveStack)-1]
		}
		return any
	default:
		panic(invariantViolation("heuristicTable.expandToDepth",
			"visited a prefix at positive remaining depth with no recorded value for its coordinate",
			[2]int{depth, value}))
	}
}

// minTime returns the table's recorded lower bound for cc's coordinate. A
// miss on an APPROXIMATE table is expected (its expansion stopped on a time
// budget before covering every coordinate) and falls back to zero, still an
// admissible bound. A miss on an EXHAUSTIVE table means a coordinate this
// package's own construction should have covered was never recorded, which
// indicates a bug rather than an incomplete budget, so it aborts instead of
// silently under-costing the remaining search.
func (h *heuristicTable) minTime(cc CoordCube) time.Duration {
	value := h.coordOf(cc)
	if d, ok := h.table[value]; ok {
		return d
	}
	if h.exhaustive {
		panic(invariantViolation("heuristicTable.minTime",
			"exhaustive heuristic table missing a coordinate value",
			struct {
				Coordinate string
				Value      int
				Cube       Cube
			}{h.name, value, cc.Raw}))
	}
	return 0
}
