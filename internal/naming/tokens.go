package naming

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// tilePrefix matches the numbering tool's prefix: an integer followed by
// whitespace at the start of the name.
var tilePrefix = regexp.MustCompile(`^(\d+)\s`)

// stemNumber matches the last digit run in a filename stem, catching
// names like "tile_4.png" or "page-12.tif".
var stemNumber = regexp.MustCompile(`(\d+)\D*$`)

// TileNumber extracts the tile number from a file name: the numeric
// prefix when present ("42 scan.png" -> 42), otherwise the last digit run
// in the stem ("tile_4.png" -> 4).
func TileNumber(path string) (int, bool) {
	name := filepath.Base(path)
	m := tilePrefix.FindStringSubmatch(name)
	if m == nil {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		m = stemNumber.FindStringSubmatch(stem)
	}
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// TileNumbers collects the numeric prefixes present in paths, in input order.
// Paths without a prefix are skipped.
func TileNumbers(paths []string) []int {
	var nums []int
	for _, p := range paths {
		if n, ok := TileNumber(p); ok {
			nums = append(nums, n)
		}
	}
	return nums
}

// FormatRanges collapses numbers into a compact token string. Contiguous
// runs become "a-b", singles stay "a", all joined by underscores:
// [1 2 4 7 8 9] -> "1-2_4_7-9". Duplicates are dropped. Empty input yields "".
func FormatRanges(numbers []int) string {
	if len(numbers) == 0 {
		return ""
	}

	uniq := make([]int, 0, len(numbers))
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if !seen[n] {
			seen[n] = true
			uniq = append(uniq, n)
		}
	}
	sort.Ints(uniq)

	var parts []string
	start, end := uniq[0], uniq[0]
	flush := func() {
		if start == end {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, strconv.Itoa(start)+"-"+strconv.Itoa(end))
		}
	}
	for _, n := range uniq[1:] {
		if n == end+1 {
			end = n
			continue
		}
		flush()
		start, end = n, n
	}
	flush()

	return strings.Join(parts, "_")
}
