package cli

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tilestitch/tilestitch/internal/config"
	"github.com/tilestitch/tilestitch/internal/grid"
	"github.com/tilestitch/tilestitch/internal/imaging"
	"github.com/tilestitch/tilestitch/internal/naming"
)

// selectInputs filters the positional paths through the extension filter
// and puts them in tile order.
func selectInputs(cfg *config.Config) ([]string, error) {
	var paths []string
	for _, p := range cfg.Paths {
		if cfg.Extensions.Match(filepath.Base(p)) {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no files matching the extension filter", config.ErrUsage)
	}
	naming.SortPaths(paths)
	return paths, nil
}

func composeOptions(cfg *config.Config) (imaging.ComposeOptions, error) {
	bg, err := imaging.ParseColor(cfg.Background)
	if err != nil {
		return imaging.ComposeOptions{}, fmt.Errorf("%w: %v", config.ErrUsage, err)
	}
	return imaging.ComposeOptions{
		Background: bg,
		Center:     cfg.Center,
		Uniform:    cfg.Uniform,
		FitCells:   cfg.FitCells,
	}, nil
}

// runLinear stitches the inputs along one axis and writes a single output
// file beside them.
func runLinear(cfg *config.Config, dir imaging.Direction) error {
	paths, err := selectInputs(cfg)
	if err != nil {
		return err
	}
	opts, err := composeOptions(cfg)
	if err != nil {
		return err
	}
	// Linear stitches never use grid cells.
	opts.Uniform = false

	tiles, err := imaging.LoadTiles(paths)
	if err != nil {
		return err
	}

	canvas, err := imaging.Compose(imaging.LinearLayout(dir, tiles), opts)
	if err != nil {
		return err
	}
	canvas = imaging.Scale(canvas, cfg.Scale)

	outDir := filepath.Dir(paths[0])
	out := naming.Unique(naming.StitchedName(outDir, string(dir), naming.TileNumbers(paths)))
	if err := imaging.SaveStitched(canvas, out); err != nil {
		return err
	}

	log.Printf("stitched %d file(s) %s -> %s", len(tiles), dir, filepath.Base(out))
	return nil
}

// runGrid stitches the inputs into the best candidate grid, a hinted grid,
// or every candidate grid with --all.
func runGrid(cfg *config.Config) error {
	paths, err := selectInputs(cfg)
	if err != nil {
		return err
	}
	opts, err := composeOptions(cfg)
	if err != nil {
		return err
	}

	tiles, err := imaging.LoadTiles(paths)
	if err != nil {
		return err
	}

	cands, err := grid.Candidates(len(tiles), grid.Options{
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		Partial: cfg.Partial,
	})
	if err != nil {
		return err
	}

	outDir := filepath.Dir(paths[0])
	tokens := naming.TileNumbers(paths)

	if !cfg.All {
		best := cands[0]
		return stitchOneGrid(tiles, best.Rows, best.Cols, outDir, tokens, opts, cfg.Scale)
	}

	// Stitch every candidate and its swapped orientation, deduplicated.
	shapes := make(map[[2]int]bool)
	for _, c := range cands {
		shapes[[2]int{c.Rows, c.Cols}] = true
		shapes[[2]int{c.Cols, c.Rows}] = true
	}
	ordered := make([][2]int, 0, len(shapes))
	for s := range shapes {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i][0] != ordered[j][0] {
			return ordered[i][0] < ordered[j][0]
		}
		return ordered[i][1] < ordered[j][1]
	})

	var failures []string
	done := 0
	for _, s := range ordered {
		if s[0]*s[1] < len(tiles) {
			// Swapped orientation of a partial grid may not hold every tile.
			continue
		}
		if err := stitchOneGrid(tiles, s[0], s[1], outDir, tokens, opts, cfg.Scale); err != nil {
			failures = append(failures, fmt.Sprintf("%dx%d: %v", s[0], s[1], err))
			continue
		}
		done++
	}

	if len(failures) > 0 {
		return fmt.Errorf("stitched %d grid(s), %d failed:\n  %s",
			done, len(failures), strings.Join(failures, "\n  "))
	}
	log.Printf("stitched all %d grid combination(s)", done)
	return nil
}

func stitchOneGrid(tiles []imaging.Tile, rows, cols int, outDir string, tokens []int, opts imaging.ComposeOptions, scale float64) error {
	canvas, err := imaging.Compose(imaging.GridLayout(tiles, rows, cols), opts)
	if err != nil {
		return err
	}
	canvas = imaging.Scale(canvas, scale)

	out := naming.Unique(naming.GridName(outDir, rows, cols, tokens))
	if err := imaging.SaveStitched(canvas, out); err != nil {
		return err
	}

	blanks := rows*cols - len(tiles)
	if blanks > 0 {
		log.Printf("stitched %d file(s) into %dx%d grid (%d blank) -> %s",
			len(tiles), rows, cols, blanks, filepath.Base(out))
	} else {
		log.Printf("stitched %d file(s) into %dx%d grid -> %s",
			len(tiles), rows, cols, filepath.Base(out))
	}
	return nil
}
