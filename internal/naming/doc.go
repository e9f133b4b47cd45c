// Package naming derives output filenames for stitched images and defines
// the sort order used for input tiles.
//
// Tile files produced by the numbering tool carry a leading integer prefix
// ("7 page.png"). This package extracts those numbers, collapses them into
// compact range strings ("1-2_4_7-9"), and builds collision-free output
// paths next to the input files.
//
// # Sort Order
//
// Files with a leading integer sort numerically before everything else, so
// "2 b.png" comes before "10 a.png". Remaining files sort in natural order:
// digit runs compare numerically, text runs compare case-folded.
package naming
