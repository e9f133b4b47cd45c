package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// Direction selects the stitch axis for linear layouts.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Layout is an ordered arrangement of tiles in rows. Every row has the
// same tile count except possibly the last, which may be short.
type Layout struct {
	Rows [][]Tile
}

// LinearLayout arranges tiles in a single row (horizontal) or a single
// column (vertical).
func LinearLayout(dir Direction, tiles []Tile) Layout {
	if dir == Horizontal {
		return Layout{Rows: [][]Tile{tiles}}
	}
	rows := make([][]Tile, len(tiles))
	for i, t := range tiles {
		rows[i] = []Tile{t}
	}
	return Layout{Rows: rows}
}

// GridLayout arranges tiles row-major into a rows×cols grid. Tiles beyond
// rows*cols are dropped; the last row may be short.
func GridLayout(tiles []Tile, rows, cols int) Layout {
	var out [][]Tile
	for i := 0; i < len(tiles) && i < rows*cols; i += cols {
		end := i + cols
		if end > len(tiles) {
			end = len(tiles)
		}
		out = append(out, tiles[i:end])
	}
	return Layout{Rows: out}
}

// TileCount returns the number of tiles across all rows.
func (l Layout) TileCount() int {
	n := 0
	for _, row := range l.Rows {
		n += len(row)
	}
	return n
}

// ComposeOptions control canvas geometry and fill.
type ComposeOptions struct {
	// Background fills uncovered canvas area. Zero value means opaque white.
	Background color.NRGBA
	// Center aligns tiles centered on the cross axis instead of top/left.
	Center bool
	// Uniform sizes every grid cell to the largest tile's dimensions,
	// the fixed-cell layout the grid stitcher historically produced.
	Uniform bool
	// FitCells upscales undersized tiles to fill their uniform cell.
	// Only meaningful together with Uniform.
	FitCells bool
}

// Compose renders the layout onto a background-filled canvas, fully in
// memory. Row heights are the max tile height per row, row widths the sum
// of tile widths; the canvas is sized to hold every row.
func Compose(layout Layout, opts ComposeOptions) (*image.NRGBA, error) {
	if layout.TileCount() == 0 {
		return nil, ErrNoTiles
	}

	bg := opts.Background
	if bg == (color.NRGBA{}) {
		bg = White
	}

	if opts.Uniform {
		return composeUniform(layout, bg, opts)
	}

	canvasW, canvasH := 0, 0
	rowHeights := make([]int, len(layout.Rows))
	for i, row := range layout.Rows {
		w, h := 0, 0
		for _, t := range row {
			w += t.Width
			if t.Height > h {
				h = t.Height
			}
		}
		rowHeights[i] = h
		if w > canvasW {
			canvasW = w
		}
		canvasH += h
	}

	canvas := imaging.New(canvasW, canvasH, bg)

	y := 0
	for i, row := range layout.Rows {
		rowW := 0
		for _, t := range row {
			rowW += t.Width
		}
		x := 0
		if opts.Center {
			x = (canvasW - rowW) / 2
		}
		for _, t := range row {
			ty := y
			if opts.Center {
				ty += (rowHeights[i] - t.Height) / 2
			}
			canvas = imaging.Paste(canvas, t.Image, image.Pt(x, ty))
			x += t.Width
		}
		y += rowHeights[i]
	}

	return canvas, nil
}

// composeUniform lays every tile into a fixed maxW×maxH cell.
func composeUniform(layout Layout, bg color.NRGBA, opts ComposeOptions) (*image.NRGBA, error) {
	var all []Tile
	cols := 0
	for _, row := range layout.Rows {
		all = append(all, row...)
		if len(row) > cols {
			cols = len(row)
		}
	}
	cellW, cellH := MaxDimensions(all)

	canvas := imaging.New(cols*cellW, len(layout.Rows)*cellH, bg)

	for r, row := range layout.Rows {
		for c, t := range row {
			var img image.Image = t.Image
			x := c * cellW
			y := r * cellH
			if opts.FitCells && (t.Width < cellW || t.Height < cellH) {
				img = transform.Resize(t.Image, cellW, cellH, transform.Linear)
			} else if opts.Center {
				x += (cellW - t.Width) / 2
				y += (cellH - t.Height) / 2
			}
			canvas = imaging.Paste(canvas, img, image.Pt(x, y))
		}
	}

	return canvas, nil
}

// Scale resizes a composed canvas by factor using Lanczos resampling.
// Factors <= 0 or exactly 1 return the canvas unchanged.
func Scale(canvas *image.NRGBA, factor float64) *image.NRGBA {
	if factor <= 0 || factor == 1.0 {
		return canvas
	}
	b := canvas.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 || h < 1 {
		return canvas
	}
	return imaging.Resize(canvas, w, h, imaging.Lanczos)
}

// SaveStitched writes the canvas to path in one call; the encoder is
// chosen by file extension.
func SaveStitched(canvas *image.NRGBA, path string) error {
	if err := imaging.Save(canvas, path); err != nil {
		return fmt.Errorf("failed to save stitched image: %w", err)
	}
	return nil
}
