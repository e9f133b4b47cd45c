// Package grid enumerates row×column layouts for a given tile count.
package grid

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidInput reports an unusable tile count or layout hint.
var ErrInvalidInput = errors.New("invalid input")

// Candidate is one possible grid shape. Rows*Cols is always >= the tile
// count it was enumerated for; Blanks counts the unused cells.
type Candidate struct {
	Rows   int
	Cols   int
	Blanks int
	Exact  bool
}

func (c Candidate) String() string {
	return fmt.Sprintf("%dx%d (%d blank)", c.Rows, c.Cols, c.Blanks)
}

// Options filters and extends the enumeration.
type Options struct {
	// Rows pins the row count; 0 means unconstrained.
	Rows int
	// Cols pins the column count; 0 means unconstrained.
	Cols int
	// Partial also admits grids whose last row is short: rows*cols >= n
	// with fewer blanks than one full row.
	Partial bool
}

// Candidates enumerates grid shapes for n tiles, best fit first: fewest
// blank cells, then closest to square, then fewer rows.
func Candidates(n int, opts Options) ([]Candidate, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: tile count %d, need at least 1", ErrInvalidInput, n)
	}
	if opts.Rows < 0 || opts.Cols < 0 {
		return nil, fmt.Errorf("%w: negative layout hint", ErrInvalidInput)
	}

	seen := make(map[[2]int]bool)
	var out []Candidate
	add := func(r, c int) {
		key := [2]int{r, c}
		if seen[key] {
			return
		}
		seen[key] = true
		blanks := r*c - n
		out = append(out, Candidate{Rows: r, Cols: c, Blanks: blanks, Exact: blanks == 0})
	}

	// Exact divisor pairs.
	for r := 1; r <= n; r++ {
		if n%r == 0 {
			add(r, n/r)
		}
	}

	if opts.Partial {
		// Last row may be incomplete, but not emptier than one row:
		// r*c >= n and r*c - n < c.
		for c := 1; c <= n; c++ {
			r := (n + c - 1) / c
			if r*c >= n && r*c-n < c {
				add(r, c)
			}
		}
	}

	out = filterHints(out, opts)

	// A hint that survived no candidate still deserves a workable grid:
	// complete it with the minimal complementary dimension.
	if len(out) == 0 && (opts.Rows > 0 || opts.Cols > 0) {
		r, c := opts.Rows, opts.Cols
		if r > 0 && c == 0 {
			c = (n + r - 1) / r
		}
		if c > 0 && r == 0 {
			r = (n + c - 1) / c
		}
		if r*c < n {
			return nil, fmt.Errorf("%w: %dx%d grid cannot hold %d tiles", ErrInvalidInput, r, c, n)
		}
		blanks := r*c - n
		out = append(out, Candidate{Rows: r, Cols: c, Blanks: blanks, Exact: blanks == 0})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Blanks != b.Blanks {
			return a.Blanks < b.Blanks
		}
		da, db := absInt(a.Rows-a.Cols), absInt(b.Rows-b.Cols)
		if da != db {
			return da < db
		}
		return a.Rows < b.Rows
	})

	return out, nil
}

func filterHints(cands []Candidate, opts Options) []Candidate {
	if opts.Rows == 0 && opts.Cols == 0 {
		return cands
	}
	kept := cands[:0]
	for _, c := range cands {
		if opts.Rows > 0 && c.Rows != opts.Rows {
			continue
		}
		if opts.Cols > 0 && c.Cols != opts.Cols {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
