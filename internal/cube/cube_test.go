package cube

import "testing"

func TestSolvedIsSolved(t *testing.T) {
	if !Solved().IsSolved() {
		t.Fatal("Solved() is not IsSolved()")
	}
}

func TestApplyFourTimesIsIdentity(t *testing.T) {
	for _, f := range allFaces {
		c := Solved()
		for i := 0; i < 4; i++ {
			c = c.Apply(Move{Face: f, Direction: Single})
		}
		if !c.IsSolved() {
			t.Errorf("four %s turns did not return to solved", f)
		}
	}
}

func TestApplyThenReverseIsIdentity(t *testing.T) {
	moves, err := ParseSequence("R U F L D B R2 U' F2")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	c := Solved().ApplyAll(moves)
	c = c.ApplyAll(InverseSeq(moves))
	if !c.IsSolved() {
		t.Fatal("scramble followed by its inverse did not return to solved")
	}
}

func TestDoubleEqualsTwoSingles(t *testing.T) {
	for _, f := range allFaces {
		viaDouble := Solved().Apply(Move{Face: f, Direction: Double})
		viaSingles := Solved().Apply(Move{Face: f, Direction: Single}).Apply(Move{Face: f, Direction: Single})
		if viaDouble != viaSingles {
			t.Errorf("%s2 != %s %s", f, f, f)
		}
	}
}

func TestApplyChangesOnlyAdjacentFaces(t *testing.T) {
	c := Solved().Apply(Move{Face: Right, Direction: Single})
	if c == Solved() {
		t.Fatal("Apply(R) left the cube solved")
	}
	// A Right turn never touches the Left face.
	if FaceGrid(c, Left) != FaceGrid(Solved(), Left) {
		t.Error("Apply(R) modified the Left face")
	}
}

func TestSetFaceGridRoundTripsFaceGrid(t *testing.T) {
	c := Solved().ApplyAll(mustParse(t, "R U2 F' D L B2"))
	for _, f := range allFaces {
		grid := FaceGrid(c, f)
		var rebuilt Cube
		rebuilt.SetFaceGrid(f, grid)
		if FaceGrid(rebuilt, f) != grid {
			t.Errorf("SetFaceGrid/FaceGrid round trip failed for face %s", f)
		}
	}
}

func mustParse(t *testing.T, s string) []Move {
	t.Helper()
	moves, err := ParseSequence(s)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", s, err)
	}
	return moves
}
