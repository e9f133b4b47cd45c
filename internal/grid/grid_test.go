package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func shapes(cands []Candidate) [][2]int {
	out := make([][2]int, len(cands))
	for i, c := range cands {
		out[i] = [2]int{c.Rows, c.Cols}
	}
	return out
}

func contains(cands []Candidate, r, c int) bool {
	for _, cand := range cands {
		if cand.Rows == r && cand.Cols == c {
			return true
		}
	}
	return false
}

func TestCandidates_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		if _, err := Candidates(n, Options{}); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Candidates(%d): got %v, want ErrInvalidInput", n, err)
		}
	}
}

func TestCandidates_ExactPairs(t *testing.T) {
	cands, err := Candidates(6, Options{})
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}

	for _, want := range [][2]int{{2, 3}, {3, 2}, {1, 6}, {6, 1}} {
		if !contains(cands, want[0], want[1]) {
			t.Errorf("missing exact pair %dx%d", want[0], want[1])
		}
	}
	for _, c := range cands {
		if c.Rows*c.Cols != 6 {
			t.Errorf("exact-only enumeration returned %v with product %d", c, c.Rows*c.Cols)
		}
		if !c.Exact || c.Blanks != 0 {
			t.Errorf("%v should be exact with 0 blanks", c)
		}
	}
}

func TestCandidates_Ordering(t *testing.T) {
	cands, err := Candidates(6, Options{})
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}

	// Closest to square first, smaller row count breaking ties.
	want := [][2]int{{2, 3}, {3, 2}, {1, 6}, {6, 1}}
	if diff := cmp.Diff(want, shapes(cands)); diff != "" {
		t.Errorf("ordering mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidates_PartialHoldsAllTiles(t *testing.T) {
	const n = 7
	cands, err := Candidates(n, Options{Partial: true})
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}

	for _, c := range cands {
		if c.Rows*c.Cols < n {
			t.Errorf("%v cannot hold %d tiles", c, n)
		}
		if c.Blanks != c.Rows*c.Cols-n {
			t.Errorf("%v: blanks inconsistent", c)
		}
		if c.Blanks >= c.Cols && c.Blanks > 0 {
			t.Errorf("%v: last row would be empty (%d blanks, %d cols)", c, c.Blanks, c.Cols)
		}
	}

	// 7 is prime, so partial mode is what makes e.g. 2x4 or 3x3 available.
	if !contains(cands, 2, 4) {
		t.Error("missing partial candidate 2x4")
	}
	if !contains(cands, 3, 3) {
		t.Error("missing partial candidate 3x3")
	}
}

func TestCandidates_PartialPrefersExact(t *testing.T) {
	cands, err := Candidates(6, Options{Partial: true})
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if !cands[0].Exact {
		t.Errorf("first candidate %v should be exact", cands[0])
	}
	if cands[0].Rows != 2 || cands[0].Cols != 3 {
		t.Errorf("best candidate: got %v, want 2x3", cands[0])
	}
}

func TestCandidates_RowHint(t *testing.T) {
	cands, err := Candidates(6, Options{Rows: 2})
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	for _, c := range cands {
		if c.Rows != 2 {
			t.Errorf("row hint ignored: got %v", c)
		}
	}
	if !contains(cands, 2, 3) {
		t.Error("missing hinted candidate 2x3")
	}
}

func TestCandidates_HintSynthesis(t *testing.T) {
	// 4 rows never divides 6 evenly and 4x2's blanks (2) exceed no row,
	// so the minimal complement 4x2 must be synthesized.
	cands, err := Candidates(6, Options{Rows: 4})
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if len(cands) == 0 {
		t.Fatal("no candidates for rows hint 4")
	}
	if cands[0].Rows != 4 || cands[0].Cols != 2 {
		t.Errorf("synthesized candidate: got %v, want 4x2", cands[0])
	}
	if cands[0].Blanks != 2 {
		t.Errorf("blanks: got %d, want 2", cands[0].Blanks)
	}
}

func TestCandidates_ImpossibleHint(t *testing.T) {
	_, err := Candidates(10, Options{Rows: 2, Cols: 2})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput for a 2x2 grid of 10 tiles", err)
	}
}

func TestCandidates_One(t *testing.T) {
	cands, err := Candidates(1, Options{Partial: true})
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if !contains(cands, 1, 1) {
		t.Error("missing 1x1 for a single tile")
	}
}
