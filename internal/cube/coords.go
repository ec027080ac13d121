package cube

// Coordinates project a Cube onto a small integer that a transition table can
// index. Each one is a direct port of the corresponding free function in the
// reference implementation; the arithmetic is load-bearing (table
// construction and the heuristic databases both depend on the exact
// encoding) so it is copied rather than redesigned.

// Coordinate range sizes, used to size dense transition/heuristic tables.
const (
	CornerOrientationCount = 2187      // 3^7: 7 corners, BRD determined by the rest
	EdgeOrientationCount   = 2048      // 2^11: 11 edges, BR determined by the rest
	CornerPositionCount    = 40320     // 8!
	EdgePositionCount      = 479001600 // 12!
)

func factorial(n int) int {
	v := 1
	for i := 2; i <= n; i++ {
		v *= i
	}
	return v
}

// cornerOrientationValue reports which axis the Up/Down-colored sticker of a
// corner cubie currently sits on: 0 for the Up/Down face itself, 1 for
// Front/Back, 2 for Left/Right. A solved cube (and any cube in the domino
// subgroup) has every corner at value 0.
func cornerOrientationValue(f Face) int {
	switch f {
	case Up, Down:
		return 0
	case Front, Back:
		return 1
	case Left, Right:
		return 2
	default:
		panic(invariantViolation("cornerOrientationValue", "unknown face", f))
	}
}

// CornerOrientation folds the 7 non-BRD corners' orientation values into a
// single base-3 number, in AllLocations order. The eighth corner's
// orientation is determined by the other seven (their sum is always
// congruent to the solved state mod 3) so it is skipped, exactly as the
// reference coordinate does.
func CornerOrientation(c Cube) int {
	value := 0
	count := 0
	for _, loc := range allLocations {
		if loc.Kind != CornerKind || IsDBRCorner(loc) {
			continue
		}
		shown := c.Get(loc)
		if shown != Up && shown != Down {
			continue
		}
		value = value*3 + cornerOrientationValue(loc.A)
		count++
	}
	if count != 7 {
		panic(invariantViolation("CornerOrientation", "expected 7 contributing corners", count))
	}
	return value
}

// edgeOrientationBit decides, for one edge sticker location, whether that
// edge is "good" (oriented) or "bad", and whether this location should be
// skipped in favor of its pair (each cubie contributes exactly once). The
// case order mirrors the reference match exactly and must not be reordered.
func edgeOrientationBit(thisAxis, otherAxis, majorAxis, minorAxis Axis) (good, skip bool) {
	switch {
	case otherAxis == AxisUD:
		return false, true
	case thisAxis == AxisUD && majorAxis == AxisUD:
		return true, false
	case thisAxis == AxisUD && majorAxis == AxisFB && minorAxis == AxisLR:
		return true, false
	case thisAxis == AxisUD:
		return false, false
	case otherAxis == AxisFB:
		return false, true
	case thisAxis == AxisFB && otherAxis == AxisLR && majorAxis == AxisUD:
		return true, false
	case thisAxis == AxisFB && otherAxis == AxisLR && majorAxis == AxisFB && minorAxis == AxisLR:
		return true, false
	case thisAxis == AxisFB && otherAxis == AxisLR:
		return false, false
	case thisAxis == AxisLR:
		return false, true
	default:
		panic(invariantViolation("edgeOrientationBit", "unreachable axis combination", [4]Axis{thisAxis, otherAxis, majorAxis, minorAxis}))
	}
}

// EdgeOrientation folds the 11 non-BR edges' good/bad bits into a single
// base-2 number, in AllLocations order. The twelfth edge's orientation is
// parity-determined by the other eleven, so it is skipped.
func EdgeOrientation(c Cube) int {
	value := 0
	count := 0
	for _, loc := range allLocations {
		if loc.Kind != EdgeKind || IsBRedge(loc) {
			continue
		}
		major, minor := loc.A, loc.B
		thisFace := c.Get(Edge(major, minor))
		otherFace := c.Get(Edge(minor, major))

		good, skip := edgeOrientationBit(thisFace.Axis(), otherFace.Axis(), major.Axis(), minor.Axis())
		if skip {
			continue
		}
		bit := 0
		if !good {
			bit = 1
		}
		value = value*2 + bit
		count++
	}
	if count != 11 {
		panic(invariantViolation("EdgeOrientation", "expected 11 contributing edges", count))
	}
	return value
}

// cornerCubieID identifies which of the 8 corner cubies is showing at a
// location by reading all three of its stickers and sorting them: exactly
// one face of the triple is Front or Back, one is Left or Right, one is Up
// or Down, and this package's face ordering (Front < Back < Left < Right <
// Up < Down, matching the reference) means the sorted triple is always
// (FB-face, LR-face, UD-face), same as classifying by axis.
func cornerCubieID(c Cube, a, b, cc Face) int {
	faces := [3]Face{c.Get(Corner(a, b, cc)), c.Get(Corner(b, a, cc)), c.Get(Corner(cc, a, b))}
	fb, lr, ud := sortCornerFaces(faces)
	return cornerIDTable[[3]Face{fb, lr, ud}]
}

func sortCornerFaces(faces [3]Face) (fb, lr, ud Face) {
	for _, f := range faces {
		switch f.Axis() {
		case AxisFB:
			fb = f
		case AxisLR:
			lr = f
		case AxisUD:
			ud = f
		}
	}
	return fb, lr, ud
}

// cornerIDTable assigns each corner cubie the ID the reference coordinate
// uses, keyed by its sorted (FB-face, LR-face, UD-face) triple.
var cornerIDTable = map[[3]Face]int{
	{Front, Left, Up}: 0, {Front, Left, Down}: 1, {Front, Right, Up}: 2, {Front, Right, Down}: 3,
	{Back, Left, Up}: 4, {Back, Left, Down}: 5, {Back, Right, Up}: 6, {Back, Right, Down}: 7,
}

// CornerPosition encodes the permutation of the 8 corner cubies as a
// Lehmer-style index in [0, 8!): for each cubie position (in AllLocations
// order) past the first, count how many earlier positions hold a
// numerically larger cubie ID, and weight that count by a factorial place
// value. This is the exact encoding the reference coordinate uses.
func CornerPosition(c Cube) int {
	var ids [8]int
	i := 0
	for _, loc := range allLocations {
		if loc.Kind != CornerKind {
			continue
		}
		if !(loc.A < loc.B && loc.B < loc.C) {
			continue
		}
		ids[i] = cornerCubieID(c, loc.A, loc.B, loc.C)
		i++
	}
	if i != 8 {
		panic(invariantViolation("CornerPosition", "expected 8 corner cubies", i))
	}
	return lehmerIndex(ids[:])
}

func edgeCubieID(c Cube, a, b Face) int {
	f1, f2 := c.Get(Edge(a, b)), c.Get(Edge(b, a))
	lo, hi := f1, f2
	if hi < lo {
		lo, hi = hi, lo
	}
	return edgeIDTable[[2]Face{lo, hi}]
}

// edgeIDTable assigns each edge cubie the ID the reference coordinate uses,
// keyed by its sorted (lower-face, higher-face) pair.
var edgeIDTable = map[[2]Face]int{
	{Front, Left}: 0, {Front, Right}: 1, {Front, Up}: 2, {Front, Down}: 3,
	{Back, Left}: 4, {Back, Right}: 5, {Back, Up}: 6, {Back, Down}: 7,
	{Left, Up}: 8, {Left, Down}: 9, {Right, Up}: 10, {Right, Down}: 11,
}

// EdgePosition encodes the permutation of the 12 edge cubies the same way
// CornerPosition does.
func EdgePosition(c Cube) int {
	var ids [12]int
	i := 0
	for _, loc := range allLocations {
		if loc.Kind != EdgeKind || !(loc.A < loc.B) {
			continue
		}
		ids[i] = edgeCubieID(c, loc.A, loc.B)
		i++
	}
	if i != 12 {
		panic(invariantViolation("EdgePosition", "expected 12 edge cubies", i))
	}
	return lehmerIndex(ids[:])
}

// lehmerIndex computes, for each position past the first, the count of
// earlier entries greater than it, weighted by the factorial of its
// (0-based) index, and sums the results.
func lehmerIndex(ids []int) int {
	value := 0
	for i := 1; i < len(ids); i++ {
		count := 0
		for k := 0; k < i; k++ {
			if ids[k] > ids[i] {
				count++
			}
		}
		value += factorial(i) * count
	}
	return value
}
