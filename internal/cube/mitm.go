package cube

// MitmSolver is a meet-in-the-middle baseline solver: it grows a forward
// frontier from the scramble and a reverse frontier from solved one ply at a
// time, alternating sides, until a cube appears in both -- at which point
// the forward path to it and the reversed reverse-path from it concatenate
// into a solution. No cost model is consulted; this solver is a baseline for
// move count, not for an arbitrary evaluator.
type MitmSolver struct{}

// NewMitmSolver builds a meet-in-the-middle solver.
func NewMitmSolver() *MitmSolver { return &MitmSolver{} }

// maxMitmIterations bounds the number of alternating-expansion rounds tried
// before giving up; 11 rounds reach roughly 20+ plies of combined depth,
// comfortably past any scramble's god's-number diameter.
const maxMitmIterations = 11

// Solve returns a move sequence that solves cube.
func (s *MitmSolver) Solve(cube Cube) []Move {
	state := newMitmState()
	for i := 0; i < maxMitmIterations; i++ {
		if sol, ok := state.expand(cube); ok {
			return sol
		}
	}
	panic(invariantViolation("MitmSolver.Solve", "no solution found within iteration bound", maxMitmIterations))
}

type mitmState struct {
	forward map[Cube][]Move
	reverse map[Cube][]Move
}

func newMitmState() *mitmState {
	return &mitmState{forward: make(map[Cube][]Move), reverse: make(map[Cube][]Move)}
}

func (s *mitmState) expand(initial Cube) ([]Move, bool) {
	if len(s.forward) == 0 {
		if initial.IsSolved() {
			return []Move{}, true
		}
		s.forward[initial] = []Move{}
		s.reverse[Solved()] = []Move{}
		return nil, false
	}

	if forward, rev, ok := expandFrontier(s.forward, s.reverse); ok {
		return joinPaths(forward, rev), true
	}
	if rev, forward, ok := expandFrontier(s.reverse, s.forward); ok {
		return joinPaths(forward, rev), true
	}
	return nil, false
}

// expandFrontier replaces this's current frontier with the cubes one move
// further out, checking each newly-reached cube against other's current
// frontier as it goes. On the first match it returns the path to the match
// (from this's side) and other's recorded path to the same cube, without
// finishing the rest of the expansion.
func expandFrontier(this, other map[Cube][]Move) (thisPath, otherPath []Move, found bool) {
	type reached struct {
		cube  Cube
		moves []Move
	}

	expand := make([]reached, 0, len(this)*18)
	for cube, moves := range this {
		for _, m := range allMoves {
			next := cube.Apply(m)
			nextMoves := make([]Move, len(moves)+1)
			copy(nextMoves, moves)
			nextMoves[len(moves)] = m
			expand = append(expand, reached{next, nextMoves})
		}
	}

	for k := range this {
		delete(this, k)
	}

	for _, e := range expand {
		if otherMoves, ok := other[e.cube]; ok {
			return e.moves, otherMoves, true
		}
		if _, exists := this[e.cube]; !exists {
			this[e.cube] = e.moves
		}
	}
	return nil, nil, false
}

func joinPaths(forward, rev []Move) []Move {
	out := make([]Move, 0, len(forward)+len(rev))
	out = append(out, forward...)
	out = append(out, InverseSeq(rev)...)
	return out
}
