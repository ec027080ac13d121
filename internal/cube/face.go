// Package cube implements a fixed 3x3x3 Rubik's cube: its sticker state, the
// 18-move WCA alphabet, the Kociemba coordinate projections, the
// transition/pattern-database tables built from them, and the two-phase
// cost-bounded search that drives a solve.
package cube

import "fmt"

// Face is one of the six faces of the cube.
type Face int

const (
	Front Face = iota
	Back
	Left
	Right
	Up
	Down
)

// allFaces is the fixed ordering coordinate functions and table construction
// are defined relative to. Do not reorder: Location.All and the coordinates
// that fold over it depend on it, and the reference implementation's
// Face enum declares faces in this exact order so that its derived Ord
// (and hence its Location::all() traversal and cubie ID tables) lines up
// with this package's iota values and `<` comparisons.
var allFaces = [6]Face{Front, Back, Left, Right, Up, Down}

// AllFaces returns the six faces in canonical order.
func AllFaces() []Face {
	out := make([]Face, len(allFaces))
	copy(out, allFaces[:])
	return out
}

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Down:
		return "D"
	case Front:
		return "F"
	case Back:
		return "B"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// Axis identifies which pair of opposite faces a face belongs to.
type Axis int

const (
	AxisUD Axis = iota
	AxisFB
	AxisLR
)

func (f Face) Axis() Axis {
	switch f {
	case Up, Down:
		return AxisUD
	case Front, Back:
		return AxisFB
	case Left, Right:
		return AxisLR
	default:
		panic(invariantViolation("Face.Axis", "unknown face", f))
	}
}

// SameAxis reports whether a and b lie on the same axis (including a == b).
func SameAxis(a, b Face) bool {
	return a.Axis() == b.Axis()
}

// Opposite returns the face opposite f on the same axis.
func (f Face) Opposite() Face {
	switch f {
	case Up:
		return Down
	case Down:
		return Up
	case Front:
		return Back
	case Back:
		return Front
	case Left:
		return Right
	case Right:
		return Left
	default:
		panic(invariantViolation("Face.Opposite", "unknown face", f))
	}
}

// ParseFace parses a single WCA face letter, case-insensitively. It is
// exported for collaborators (such as internal/cfen) that need to parse a
// bare face letter outside of full move notation.
func ParseFace(b byte) (Face, bool) {
	return faceFromByte(b)
}

// faceFromByte parses a single WCA face letter, case-insensitively.
func faceFromByte(b byte) (Face, bool) {
	switch b {
	case 'U', 'u':
		return Up, true
	case 'D', 'd':
		return Down, true
	case 'F', 'f':
		return Front, true
	case 'B', 'b':
		return Back, true
	case 'L', 'l':
		return Left, true
	case 'R', 'r':
		return Right, true
	default:
		return 0, false
	}
}
