package cube

import (
	"fmt"
	"strings"
)

// surface is the 8 non-center stickers of one face, arranged as a ring:
// even indices are corner stickers, odd indices are edge stickers, matching
// the teacher's corner/edge alternation convention. The center sticker of a
// face never changes and is not stored here; Cube.Get synthesizes it.
type surface [8]Face

func solvedSurface(f Face) surface {
	var s surface
	for i := range s {
		s[i] = f
	}
	return s
}

// rotateSingle, rotateReverse and rotateDouble ring-shift a face's own
// stickers when that face is turned. The shift amounts were derived from
// (and must keep agreeing with) the reference ring-rotation semantics:
// a clockwise quarter turn moves the sticker at ring index i into index i+2.
func (s surface) rotateSingle() surface {
	var out surface
	for i := range out {
		out[i] = s[(i+6)%8]
	}
	return out
}

func (s surface) rotateReverse() surface {
	var out surface
	for i := range out {
		out[i] = s[(i+2)%8]
	}
	return out
}

func (s surface) rotateDouble() surface {
	var out surface
	for i := range out {
		out[i] = s[(i+4)%8]
	}
	return out
}

// ring3 is a named window of 3 stickers lifted out of a surface so the four
// faces adjacent to a turning face can be cycled uniformly.
type ring3 [3]Face

func (s surface) top() ring3   { return ring3{s[0], s[1], s[2]} }
func (s surface) bottom() ring3 { return ring3{s[4], s[5], s[6]} }
func (s surface) left() ring3  { return ring3{s[6], s[7], s[0]} }
func (s surface) right() ring3 { return ring3{s[2], s[3], s[4]} }

func (s *surface) setTop(r ring3)    { s[0], s[1], s[2] = r[0], r[1], r[2] }
func (s *surface) setBottom(r ring3) { s[4], s[5], s[6] = r[0], r[1], r[2] }
func (s *surface) setLeft(r ring3)   { s[6], s[7], s[0] = r[0], r[1], r[2] }
func (s *surface) setRight(r ring3)  { s[2], s[3], s[4] = r[0], r[1], r[2] }

// Cube is the full 3x3x3 sticker state: one 8-sticker ring per face plus the
// implicit, unchanging centers. Cubes are small value types, cheap to copy.
type Cube struct {
	up, down, front, back, left, right surface
}

// Solved returns the cube with every sticker on face f colored f.
func Solved() Cube {
	return Cube{
		up:    solvedSurface(Up),
		down:  solvedSurface(Down),
		front: solvedSurface(Front),
		back:  solvedSurface(Back),
		left:  solvedSurface(Left),
		right: solvedSurface(Right),
	}
}

func (c *Cube) surface(f Face) *surface {
	switch f {
	case Up:
		return &c.up
	case Down:
		return &c.down
	case Front:
		return &c.front
	case Back:
		return &c.back
	case Left:
		return &c.left
	case Right:
		return &c.right
	default:
		panic(invariantViolation("Cube.surface", "unknown face", f))
	}
}

// edgeRingIndex maps a (face, against) edge location to the index in that
// face's ring. This is the Kociemba-standard edge sticker layout: for each
// face, index 1 always touches Up-or-Down's neighbor, index 5 the opposite,
// and indices 3/7 the remaining two neighbors in WCA orientation.
func edgeRingIndex(s, against Face) int {
	switch {
	case against == Up:
		return 1
	case against == Down:
		return 5
	case s == Front && against == Left:
		return 7
	case s == Front && against == Right:
		return 3
	case s == Back && against == Left:
		return 3
	case s == Back && against == Right:
		return 7
	case s == Left && against == Front:
		return 3
	case s == Left && against == Back:
		return 7
	case s == Right && against == Front:
		return 7
	case s == Right && against == Back:
		return 3
	case (s == Up || s == Down) && against == Left:
		return 7
	case (s == Up || s == Down) && against == Right:
		return 3
	case s == Up && against == Front:
		return 5
	case s == Up && against == Back:
		return 1
	case s == Down && against == Front:
		return 1
	case s == Down && against == Back:
		return 5
	default:
		panic(invariantViolation("edgeRingIndex", "no edge sticker for (face, against)", [2]Face{s, against}))
	}
}

// cornerRingIndex maps a (face, edgeNeighbor, perpNeighbor) corner location
// to the index in that face's ring, again following the Kociemba-standard
// corner sticker layout.
func cornerRingIndex(s, e, p Face) int {
	type key struct{ s, e, p Face }
	table := map[key]int{
		{Front, Left, Up}: 0, {Front, Left, Down}: 6, {Front, Right, Up}: 2, {Front, Right, Down}: 4,
		{Back, Left, Up}: 2, {Back, Left, Down}: 4, {Back, Right, Up}: 0, {Back, Right, Down}: 6,
		{Left, Front, Up}: 2, {Left, Front, Down}: 4, {Left, Back, Up}: 0, {Left, Back, Down}: 6,
		{Right, Front, Up}: 0, {Right, Front, Down}: 6, {Right, Back, Up}: 2, {Right, Back, Down}: 4,
		{Up, Front, Left}: 6, {Up, Front, Right}: 4, {Up, Back, Left}: 0, {Up, Back, Right}: 2,
		{Down, Front, Left}: 0, {Down, Front, Right}: 2, {Down, Back, Left}: 6, {Down, Back, Right}: 4,
	}
	idx, ok := table[key{s, e, p}]
	if !ok {
		panic(invariantViolation("cornerRingIndex", "no corner sticker for (face, e, p)", [3]Face{s, e, p}))
	}
	return idx
}

// Get returns the color currently showing at loc.
func (c Cube) Get(loc Location) Face {
	switch loc.Kind {
	case CenterKind:
		return loc.A
	case EdgeKind:
		return (*c.surface(loc.A))[edgeRingIndex(loc.A, loc.B)]
	case CornerKind:
		return (*c.surface(loc.A))[cornerRingIndex(loc.A, loc.B, loc.C)]
	default:
		panic(invariantViolation("Cube.Get", "unknown location kind", loc.Kind))
	}
}

// set is the mutating counterpart of Get. Nothing in the package calls it:
// building a Cube from CFEN goes through SetFaceGrid, and Apply works by
// whole-ring rotation instead of per-sticker writes.
func (c *Cube) set(loc Location, f Face) {
	switch loc.Kind {
	case CenterKind:
		if f != loc.A {
			panic(invariantViolation("Cube.set", "center sticker must match its face", loc))
		}
	case EdgeKind:
		(*c.surface(loc.A))[edgeRingIndex(loc.A, loc.B)] = f
	case CornerKind:
		(*c.surface(loc.A))[cornerRingIndex(loc.A, loc.B, loc.C)] = f
	default:
		panic(invariantViolation("Cube.set", "unknown location kind", loc.Kind))
	}
}

// adjacentRings returns the four 3-sticker windows, in cycle order, that a
// turn of face f carries around -- the slice of each neighboring face that
// borders f.
func (c *Cube) adjacentRings(f Face) [4]ring3 {
	switch f {
	case Up:
		return [4]ring3{c.left.top(), c.back.top(), c.right.top(), c.front.top()}
	case Down:
		return [4]ring3{c.left.bottom(), c.front.bottom(), c.right.bottom(), c.back.bottom()}
	case Front:
		return [4]ring3{c.up.bottom(), c.right.left(), c.down.top(), c.left.right()}
	case Back:
		return [4]ring3{c.up.top(), c.left.left(), c.down.bottom(), c.right.right()}
	case Right:
		return [4]ring3{c.up.right(), c.back.left(), c.down.right(), c.front.right()}
	case Left:
		return [4]ring3{c.up.left(), c.front.left(), c.down.left(), c.back.right()}
	default:
		panic(invariantViolation("Cube.adjacentRings", "unknown face", f))
	}
}

func (c *Cube) setAdjacentRings(f Face, rings [4]ring3) {
	var setters [4]func(ring3)
	switch f {
	case Up:
		setters = [4]func(ring3){c.left.setTop, c.back.setTop, c.right.setTop, c.front.setTop}
	case Down:
		setters = [4]func(ring3){c.left.setBottom, c.front.setBottom, c.right.setBottom, c.back.setBottom}
	case Front:
		setters = [4]func(ring3){c.up.setBottom, c.right.setLeft, c.down.setTop, c.left.setRight}
	case Back:
		setters = [4]func(ring3){c.up.setTop, c.left.setLeft, c.down.setBottom, c.right.setRight}
	case Right:
		setters = [4]func(ring3){c.up.setRight, c.back.setLeft, c.down.setRight, c.front.setRight}
	case Left:
		setters = [4]func(ring3){c.up.setLeft, c.front.setLeft, c.down.setLeft, c.back.setRight}
	default:
		panic(invariantViolation("Cube.setAdjacentRings", "unknown face", f))
	}
	for i, set := range setters {
		set(rings[i])
	}
}

// Apply returns the cube obtained by turning m.Face by m.Direction.
func (c Cube) Apply(m Move) Cube {
	out := c

	s := out.surface(m.Face)
	switch m.Direction {
	case Single:
		*s = s.rotateSingle()
	case Reverse:
		*s = s.rotateReverse()
	case Double:
		*s = s.rotateDouble()
	default:
		panic(invariantViolation("Cube.Apply", "unknown direction", m.Direction))
	}

	rings := out.adjacentRings(m.Face)
	var rotated [4]ring3
	switch m.Direction {
	case Single:
		rotated = [4]ring3{rings[3], rings[0], rings[1], rings[2]}
	case Reverse:
		rotated = [4]ring3{rings[1], rings[2], rings[3], rings[0]}
	case Double:
		rotated = [4]ring3{rings[2], rings[3], rings[0], rings[1]}
	}
	out.setAdjacentRings(m.Face, rotated)

	return out
}

// ApplyAll folds Apply across a sequence of moves.
func (c Cube) ApplyAll(seq []Move) Cube {
	out := c
	for _, m := range seq {
		out = out.Apply(m)
	}
	return out
}

// IsSolved reports whether c equals the solved cube.
func (c Cube) IsSolved() bool {
	return c == Solved()
}

// String renders the cube as six labeled 3x3 grids.
func (c Cube) String() string {
	var sb strings.Builder
	for _, f := range allFaces {
		fmt.Fprintf(&sb, "%s:\n", f)
		grid := faceGrid(c, f)
		for _, row := range grid {
			for _, sticker := range row {
				fmt.Fprintf(&sb, "%s ", sticker)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// faceGrid lays a face's 9 stickers out as a 3x3 row-major grid for display:
// row 0 is the three corner/edge/corner stickers nearest the face's "up"
// neighbor in the ring, row 1 is the two ring edge stickers flanking the
// center, row 2 mirrors row 0 from the opposite side of the ring.
func faceGrid(c Cube, f Face) [3][3]Face {
	s := *c.surface(f)
	return [3][3]Face{
		{s[0], s[1], s[2]},
		{s[7], f, s[3]},
		{s[6], s[5], s[4]},
	}
}

// FaceGrid exports faceGrid's row-major layout for collaborators (such as
// internal/cfen) that need a face's facelets in the same order the cube
// displays them in.
func FaceGrid(c Cube, f Face) [3][3]Face {
	return faceGrid(c, f)
}

// SetFaceGrid is FaceGrid's inverse, used only while building a Cube from an
// external representation (CFEN) -- never during Apply, which works by
// whole-ring rotation instead of per-sticker writes.
func (c *Cube) SetFaceGrid(f Face, grid [3][3]Face) {
	s := c.surface(f)
	s[0], s[1], s[2] = grid[0][0], grid[0][1], grid[0][2]
	s[7], s[3] = grid[1][0], grid[1][2]
	s[6], s[5], s[4] = grid[2][0], grid[2][1], grid[2][2]
}
