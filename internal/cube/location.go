package cube

// LocationKind distinguishes which of the three cubie shapes a Location
// names a sticker on.
type LocationKind int

const (
	CenterKind LocationKind = iota
	EdgeKind
	CornerKind
)

// Location identifies one of the 54 stickers on a solved or scrambled cube:
// the sticker on face A of a center, edge, or corner cubie (edges and
// corners name the cubie by the full set of faces it touches; A is always
// the face the sticker in question is showing on).
type Location struct {
	Kind LocationKind
	A, B, C Face
}

// Center names the sticker at the center of face f.
func Center(f Face) Location { return Location{Kind: CenterKind, A: f} }

// Edge names the sticker on face a of the edge cubie shared by faces a and
// b (axis(a) != axis(b)). Edge(a, b) and Edge(b, a) are distinct stickers on
// the same cubie.
func Edge(a, b Face) Location { return Location{Kind: EdgeKind, A: a, B: b} }

// Corner names the sticker on face a of the corner cubie shared by faces a,
// b, c (pairwise different axes).
func Corner(a, b, c Face) Location { return Location{Kind: CornerKind, A: a, B: b, C: c} }

// allLocations is the fixed 54-element canonical traversal: 6 centers, then
// 24 edge stickers grouped by cubie, then 24 corner stickers grouped by
// cubie. Coordinate functions fold over this exact order, so it must never
// change independently of them.
var allLocations = buildAllLocations()

func buildAllLocations() []Location {
	locs := make([]Location, 0, 54)

	for _, f := range allFaces {
		locs = append(locs, Center(f))
	}

	for _, a := range allFaces {
		for _, b := range allFaces {
			if !SameAxis(a, b) && a < b {
				locs = append(locs, Edge(a, b), Edge(b, a))
			}
		}
	}

	for _, a := range allFaces {
		for _, b := range allFaces {
			if !SameAxis(a, b) && a < b {
				for _, c := range allFaces {
					if b < c && !SameAxis(a, c) && !SameAxis(b, c) {
						locs = append(locs, Corner(a, b, c), Corner(b, a, c), Corner(c, a, b))
					}
				}
			}
		}
	}

	if len(locs) != 54 {
		panic(invariantViolation("buildAllLocations", "expected 54 locations", len(locs)))
	}
	return locs
}

// AllLocations returns the 54 locations in canonical order.
func AllLocations() []Location {
	out := make([]Location, len(allLocations))
	copy(out, allLocations)
	return out
}

// IsDBRCorner reports whether loc is the corner cubie whose three faces are
// all in {Back, Right, Down} -- the corner skipped by CornerOrientation
// because its orientation is determined by the sum-mod-3 invariant of the
// other seven.
func IsDBRCorner(loc Location) bool {
	if loc.Kind != CornerKind {
		return false
	}
	return isDBRFace(loc.A) && isDBRFace(loc.B) && isDBRFace(loc.C)
}

func isDBRFace(f Face) bool {
	return f == Back || f == Right || f == Down
}

// IsBRedge reports whether loc is the edge cubie whose two faces are both in
// {Back, Right} -- the edge skipped by EdgeOrientation because its
// orientation is parity-determined by the other eleven.
func IsBRedge(loc Location) bool {
	if loc.Kind != EdgeKind {
		return false
	}
	isBR := func(f Face) bool { return f == Back || f == Right }
	return isBR(loc.A) && isBR(loc.B)
}
