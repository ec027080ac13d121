package cube

import "sync"

// A transitionTable answers "given a cube currently at coordinate value v,
// what coordinate does move m land on?" in O(1), without re-deriving the
// coordinate from a freshly-turned Cube. It is built once, eagerly, by
// breadth-first exploration from the solved coordinate until every reachable
// value has had all 18 outgoing moves recorded -- the same fixpoint
// construction the reference coordinate tables use, adapted from a sparse
// per-move map to a dense array since every coordinate this package builds a
// table for has a small, known range.
type transitionTable struct {
	name string
	next [][18]int
}

type coordFunc func(Cube) int

func moveIndex(m Move) int {
	return int(m.Face)*3 + int(m.Direction)
}

// buildTransitionTable runs the BFS described above. It panics if two
// different cube states that share a coordinate value disagree about where a
// move sends them -- that would mean coordFn is not well-defined as a
// quotient of full cube state, which is a bug in the coordinate, not in the
// cube the caller handed it.
func buildTransitionTable(name string, size int, coordFn coordFunc) *transitionTable {
	t := &transitionTable{name: name, next: make([][18]int, size)}
	for i := range t.next {
		for j := range t.next[i] {
			t.next[i][j] = -1
		}
	}

	filled := make([]bool, size)
	queued := make([]bool, size)

	type frontier struct {
		coord int
		cube  Cube
	}

	solved := Solved()
	startCoord := coordFn(solved)
	queue := []frontier{{startCoord, solved}}
	queued[startCoord] = true

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]
		if filled[entry.coord] {
			continue
		}
		filled[entry.coord] = true

		for _, m := range allMoves {
			toCube := entry.cube.Apply(m)
			toCoord := coordFn(toCube)
			mi := moveIndex(m)

			if existing := t.next[entry.coord][mi]; existing != -1 && existing != toCoord {
				panic(invariantViolation("buildTransitionTable",
					name+": same (coord, move) produced two different results",
					[3]int{entry.coord, mi, toCoord}))
			}
			t.next[entry.coord][mi] = toCoord

			if !filled[toCoord] && !queued[toCoord] {
				queued[toCoord] = true
				queue = append(queue, frontier{toCoord, toCube})
			}
		}
	}

	return t
}

func (t *transitionTable) step(coord int, m Move) int {
	v := t.next[coord][moveIndex(m)]
	if v < 0 {
		panic(invariantViolation("transitionTable.step", t.name+": coordinate unreachable from solved", coord))
	}
	return v
}

var (
	cornerOrientationTableOnce sync.Once
	cornerOrientationTableVal  *transitionTable

	edgeOrientationTableOnce sync.Once
	edgeOrientationTableVal  *transitionTable

	cornerPositionTableOnce sync.Once
	cornerPositionTableVal  *transitionTable
)

// cornerOrientationTable, edgeOrientationTable and cornerPositionTable are
// the three dense transition tables the phase heuristics are built from.
// edge_position (12! reachable values) has no such table: nothing in this
// package's phase design needs fast coordinate-only stepping for it, so its
// coordinate function (still exercised directly off the raw Cube where
// needed) is left without a BFS-backed table that would otherwise need to
// hold hundreds of millions of entries.
func cornerOrientationTable() *transitionTable {
	cornerOrientationTableOnce.Do(func() {
		cornerOrientationTableVal = buildTransitionTable("corner_orientation", CornerOrientationCount, CornerOrientation)
	})
	return cornerOrientationTableVal
}

func edgeOrientationTable() *transitionTable {
	edgeOrientationTableOnce.Do(func() {
		edgeOrientationTableVal = buildTransitionTable("edge_orientation", EdgeOrientationCount, EdgeOrientation)
	})
	return edgeOrientationTableVal
}

func cornerPositionTable() *transitionTable {
	cornerPositionTableOnce.Do(func() {
		cornerPositionTableVal = buildTransitionTable("corner_position", CornerPositionCount, CornerPosition)
	})
	return cornerPositionTableVal
}

// InitTables forces construction of all transition tables. Callers that care
// about predictable latency can call this up front instead of paying for it
// inside the first solve.
func InitTables() {
	cornerOrientationTable()
	edgeOrientationTable()
	cornerPositionTable()
}
