package cube

import "testing"

func TestOptimizeScramble(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple doubling - R R", "R R", "R2"},
		{"Triple move - R R R", "R R R", "R'"},
		{"Quadruple move - R R R R", "R R R R", ""},
		{"Canceling moves - R R'", "R R'", ""},
		{"Canceling moves reverse - R' R", "R' R", ""},
		{"Double move canceling - R2 R2", "R2 R2", ""},
		{"Double plus single - R2 R", "R2 R", "R'"},
		{"Double plus counter - R2 R'", "R2 R'", "R"},
		{"No optimization possible", "R U R' U'", "R U R' U'"},
		{"Mixed optimization", "R R U U' F F F", "R2 F'"},
		{"Adjacent same-face only", "R U R R U' F F'", "R U R2 U'"},
		{"Empty sequence", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := OptimizeScramble(tc.input)
			if err != nil {
				t.Fatalf("OptimizeScramble(%q): %v", tc.input, err)
			}
			if result != tc.expected {
				t.Errorf("OptimizeScramble(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestCombineSameFaceMoves(t *testing.T) {
	testCases := []struct {
		first, second Move
		wantOK        bool
		want          Move
	}{
		{Move{Right, Single}, Move{Right, Single}, true, Move{Right, Double}},
		{Move{Right, Single}, Move{Right, Double}, true, Move{Right, Reverse}},
		{Move{Right, Single}, Move{Right, Reverse}, false, Move{}},
		{Move{Right, Double}, Move{Right, Double}, false, Move{}},
	}

	for _, tc := range testCases {
		got, ok := combineSameFaceMoves(tc.first, tc.second)
		if ok != tc.wantOK {
			t.Errorf("combineSameFaceMoves(%v, %v) ok = %v, want %v", tc.first, tc.second, ok, tc.wantOK)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("combineSameFaceMoves(%v, %v) = %v, want %v", tc.first, tc.second, got, tc.want)
		}
	}
}

func TestIsCancellingSequence(t *testing.T) {
	testCases := []struct {
		name     string
		sequence string
		expected bool
	}{
		{"Canceling pair", "R R'", true},
		{"Canceling quadruple", "R R R R", true},
		{"Double canceling", "R2 R2", true},
		{"Non-canceling", "R U R' U'", false},
		{"Empty sequence", "", true},
		{"Single move", "R", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			moves, err := ParseSequence(tc.sequence)
			if err != nil {
				t.Fatalf("ParseSequence(%q): %v", tc.sequence, err)
			}
			if got := IsCancellingSequence(moves); got != tc.expected {
				t.Errorf("IsCancellingSequence(%q) = %v, want %v", tc.sequence, got, tc.expected)
			}
		})
	}
}

func TestGetMoveCount(t *testing.T) {
	testCases := []struct {
		name     string
		sequence string
		expected int
	}{
		{"Simple optimization", "R R", 1},
		{"Complete cancellation", "R R'", 0},
		{"No optimization", "R U", 2},
		{"Mixed sequence", "R R U U'", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			moves, err := ParseSequence(tc.sequence)
			if err != nil {
				t.Fatalf("ParseSequence(%q): %v", tc.sequence, err)
			}
			if got := GetMoveCount(moves); got != tc.expected {
				t.Errorf("GetMoveCount(%q) = %d, want %d", tc.sequence, got, tc.expected)
			}
		})
	}
}
