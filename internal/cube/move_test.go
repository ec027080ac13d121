package cube

import "testing"

func TestParseMove(t *testing.T) {
	testCases := []struct {
		token   string
		want    Move
		wantErr bool
	}{
		{"R", Move{Right, Single}, false},
		{"R'", Move{Right, Reverse}, false},
		{"R2", Move{Right, Double}, false},
		{"u", Move{Up, Single}, false},
		{"", Move{}, true},
		{"R3", Move{}, true},
		{"X", Move{}, true},
	}

	for _, tc := range testCases {
		got, err := ParseMove(tc.token)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMove(%q) expected error, got %v", tc.token, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.token, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestParseSequenceAndFormatSequenceRoundTrip(t *testing.T) {
	const scramble = "R U R' U' F2 L D2 B'"
	moves, err := ParseSequence(scramble)
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if got := FormatSequence(moves); got != scramble {
		t.Errorf("FormatSequence(ParseSequence(%q)) = %q, want %q", scramble, got, scramble)
	}
}

func TestParseSequenceEmpty(t *testing.T) {
	moves, err := ParseSequence("")
	if err != nil {
		t.Fatalf("ParseSequence(\"\"): %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("ParseSequence(\"\") = %v, want empty", moves)
	}
}

func TestMoveReverse(t *testing.T) {
	testCases := []struct {
		m, want Move
	}{
		{Move{Right, Single}, Move{Right, Reverse}},
		{Move{Right, Reverse}, Move{Right, Single}},
		{Move{Right, Double}, Move{Right, Double}},
	}
	for _, tc := range testCases {
		if got := tc.m.Reverse(); got != tc.want {
			t.Errorf("%v.Reverse() = %v, want %v", tc.m, got, tc.want)
		}
	}
}

func TestInverseSeqUndoesSequence(t *testing.T) {
	moves := mustParse(t, "R U R' U'")
	inv := InverseSeq(moves)
	if got := FormatSequence(inv); got != "U R U' R'" {
		t.Errorf("InverseSeq(R U R' U') = %q, want %q", got, "U R U' R'")
	}
}

func TestCouldFollowRejectsSameFaceRepeat(t *testing.T) {
	if CouldFollow(Move{Right, Single}, Move{Right, Single}) {
		t.Error("CouldFollow allowed a same-face repeat")
	}
}

func TestCouldFollowOrdersOppositeFacePairsCanonically(t *testing.T) {
	a, b := Move{Right, Single}, Move{Left, Single}
	if CouldFollow(a, b) == CouldFollow(b, a) {
		t.Error("CouldFollow should admit exactly one order for an opposite-face pair")
	}
}
