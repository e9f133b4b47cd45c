package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputExt is the container the stitchers write. TIFF keeps the originals'
// pixel data lossless and matches what downstream tooling expects.
const OutputExt = ".tif"

// StitchedName builds the base output name for a linear stitch in dir.
// Tile tokens, when present, are embedded as a range string:
//
//	stitched_horizontal_1-2_4.tif
//	stitched_vertical.tif
func StitchedName(dir, direction string, tokens []int) string {
	base := "stitched_" + direction
	if ts := FormatRanges(tokens); ts != "" {
		base += "_" + ts
	}
	return filepath.Join(dir, base+OutputExt)
}

// GridName builds the base output name for a rows×cols grid stitch in dir.
func GridName(dir string, rows, cols int, tokens []int) string {
	base := fmt.Sprintf("stitched_grid_%dx%d", rows, cols)
	if ts := FormatRanges(tokens); ts != "" {
		base += "_" + ts
	}
	return filepath.Join(dir, base+OutputExt)
}

// Unique returns path if no file exists there, otherwise the first free
// "_1", "_2", ... variant inserted before the extension.
func Unique(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
