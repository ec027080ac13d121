package cfen

import (
	"testing"

	"github.com/behrlich/cubecost/internal/cube"
)

func TestGenerateSolved(t *testing.T) {
	solved := cube.Solved()
	s, err := Generate(&solved)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := "UF|U9/R9/F9/D9/L9/B9"
	if s != want {
		t.Errorf("Generate(solved) = %q, want %q", s, want)
	}
}

func TestParseRoundTripsSolved(t *testing.T) {
	solved := cube.Solved()
	s, err := Generate(&solved)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	state, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}

	got, err := state.ToCube()
	if err != nil {
		t.Fatalf("ToCube: %v", err)
	}
	if *got != solved {
		t.Errorf("round trip did not reproduce the solved cube")
	}
}

func TestParseRoundTripsScrambled(t *testing.T) {
	seq, err := cube.ParseSequence("R U R' U' F2 L D2")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	scrambled := cube.Solved().ApplyAll(seq)

	s, err := Generate(&scrambled)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	state, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}

	got, err := state.ToCube()
	if err != nil {
		t.Fatalf("ToCube: %v", err)
	}
	if *got != scrambled {
		t.Errorf("round trip did not reproduce the scrambled cube")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{
		"UF",                                     // missing '|'
		"U|U9/R9/F9/D9/L9/B9",                    // orientation not 2 letters
		"UF|U9/R9/F9/D9/L9",                      // only 5 faces
		"UF|U8/R9/F9/D9/L9/B9",                   // face with 8 facelets
		"UF|U10/R9/F9/D9/L9/B9",                  // face with 10 facelets
		"UF|X9/R9/F9/D9/L9/B9",                   // unknown facelet letter
		"QF|U9/R9/F9/D9/L9/B9",                   // unknown orientation letter
	}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q) = nil error, want error", c)
		}
	}
}

func TestMatchesWithWildcards(t *testing.T) {
	solved := cube.Solved()
	pattern, err := Parse("UF|????????U/R9/F9/D9/L9/B9")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	ok, err := pattern.Matches(&solved)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if !ok {
		t.Errorf("Matches(solved) = false, want true (all non-wildcards agree)")
	}

	seq, err := cube.ParseSequence("R")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	scrambled := solved.ApplyAll(seq)
	ok, err = pattern.Matches(&scrambled)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if ok {
		t.Errorf("Matches(scrambled) = true, want false (R moves a corner sticker on U's right ring)")
	}
}

func TestToCubeRejectsNonCanonicalOrientation(t *testing.T) {
	state, err := Parse("DF|U9/R9/F9/D9/L9/B9")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := state.ToCube(); err == nil {
		t.Errorf("ToCube() with non-canonical orientation = nil error, want error")
	}
}

func TestToCubeRejectsWildcards(t *testing.T) {
	state, err := Parse("UF|?9/R9/F9/D9/L9/B9")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := state.ToCube(); err == nil {
		t.Errorf("ToCube() with a wildcard = nil error, want error")
	}
}

func TestToCubeRejectsBadColorTally(t *testing.T) {
	// Every facelet on the Right face is U instead of R: 18 U stickers, 0 R
	// stickers, still 9 facelets per face so Parse accepts it.
	state, err := Parse("UF|U9/U9/F9/D9/L9/B9")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := state.ToCube(); err == nil {
		t.Errorf("ToCube() with an 18/0 color tally = nil error, want error")
	}
}
