package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// ErrUnsupportedFormat reports a file that could not be decoded as an image.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrNoTiles reports a stitch request with no usable input images.
var ErrNoTiles = errors.New("no input images")

// Tile is one input image participating in a stitch: the decoded pixels
// plus the source path used for ordering and output naming.
type Tile struct {
	Image  *image.NRGBA
	Path   string
	Name   string
	Width  int
	Height int
}

// LoadTile decodes one image file and normalizes it to NRGBA.
func LoadTile(path string) (Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tile{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Tile{}, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, filepath.Base(path), err)
	}

	norm := imaging.Clone(img)
	b := norm.Bounds()
	return Tile{
		Image:  norm,
		Path:   path,
		Name:   filepath.Base(path),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// LoadTiles decodes every path in order. Any failure aborts the whole
// load; a stitch never proceeds with a subset of its inputs.
func LoadTiles(paths []string) ([]Tile, error) {
	if len(paths) == 0 {
		return nil, ErrNoTiles
	}
	tiles := make([]Tile, 0, len(paths))
	for _, p := range paths {
		t, err := LoadTile(p)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// MaxDimensions returns the largest width and height over all tiles.
func MaxDimensions(tiles []Tile) (maxW, maxH int) {
	for _, t := range tiles {
		if t.Width > maxW {
			maxW = t.Width
		}
		if t.Height > maxH {
			maxH = t.Height
		}
	}
	return maxW, maxH
}
