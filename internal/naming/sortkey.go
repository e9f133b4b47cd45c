package naming

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^(\d+)\b`)

// segment is one run of a natural-order key: either a number or a
// case-folded text chunk.
type segment struct {
	numeric bool
	num     int
	text    string
}

// splitSegments breaks a name into alternating digit and non-digit runs.
func splitSegments(name string) []segment {
	var segs []segment
	i := 0
	for i < len(name) {
		j := i
		if name[i] >= '0' && name[i] <= '9' {
			for j < len(name) && name[j] >= '0' && name[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(name[i:j])
			if err != nil {
				// Run too long for int; fall back to text comparison.
				segs = append(segs, segment{text: name[i:j]})
			} else {
				segs = append(segs, segment{numeric: true, num: n})
			}
		} else {
			for j < len(name) && (name[j] < '0' || name[j] > '9') {
				j++
			}
			segs = append(segs, segment{text: name[i:j]})
		}
		i = j
	}
	return segs
}

// Less reports whether path a sorts before path b. Base names starting with
// an integer compare numerically and precede all other names; the rest
// compare by natural order.
func Less(a, b string) bool {
	na := filepath.Base(a)
	nb := filepath.Base(b)

	ma := leadingNumber.FindStringSubmatch(na)
	mb := leadingNumber.FindStringSubmatch(nb)
	if ma != nil && mb != nil {
		ia, _ := strconv.Atoi(ma[1])
		ib, _ := strconv.Atoi(mb[1])
		if ia != ib {
			return ia < ib
		}
		return na < nb
	}
	if ma != nil {
		return true
	}
	if mb != nil {
		return false
	}

	sa := splitSegments(strings.ToLower(na))
	sb := splitSegments(strings.ToLower(nb))
	for i := 0; i < len(sa) && i < len(sb); i++ {
		x, y := sa[i], sb[i]
		switch {
		case x.numeric && y.numeric:
			if x.num != y.num {
				return x.num < y.num
			}
		case !x.numeric && !y.numeric:
			if x.text != y.text {
				return x.text < y.text
			}
		default:
			// Numbers sort before text at the same position.
			return x.numeric
		}
	}
	return len(sa) < len(sb)
}

// SortPaths orders paths in place using the tile sort order.
func SortPaths(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool { return Less(paths[i], paths[j]) })
}
