package cube

// CoordCube pairs a raw Cube with its three tracked coordinates, updating
// all of them in O(1) per move via the package's transition tables instead
// of re-deriving a coordinate from scratch after every turn. The search and
// the heuristic lookups it drives both run in coordinate space far more
// often than they need the full sticker state, so this is the type that
// actually walks a solve.
type CoordCube struct {
	Raw Cube

	cornerOrientation int
	edgeOrientation   int
	cornerPosition    int
}

// NewCoordCube derives all three coordinates from c directly. Call this once
// per solve (for the starting cube); after that, Apply keeps them in sync.
func NewCoordCube(c Cube) CoordCube {
	return CoordCube{
		Raw:               c,
		cornerOrientation: CornerOrientation(c),
		edgeOrientation:   EdgeOrientation(c),
		cornerPosition:    CornerPosition(c),
	}
}

// Apply turns the cube by m, updating the raw state and all three tracked
// coordinates together.
func (cc CoordCube) Apply(m Move) CoordCube {
	return CoordCube{
		Raw:               cc.Raw.Apply(m),
		cornerOrientation: cornerOrientationTable().step(cc.cornerOrientation, m),
		edgeOrientation:   edgeOrientationTable().step(cc.edgeOrientation, m),
		cornerPosition:    cornerPositionTable().step(cc.cornerPosition, m),
	}
}
