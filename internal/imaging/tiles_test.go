package imaging

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// writeTestPNG writes a solid-color PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{128, 64, 32, 255})
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
	return path
}

func TestLoadTile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "7 scan.png", 40, 25)

	tile, err := LoadTile(path)
	if err != nil {
		t.Fatalf("LoadTile failed: %v", err)
	}

	if tile.Width != 40 || tile.Height != 25 {
		t.Errorf("dimensions: got %dx%d, want 40x25", tile.Width, tile.Height)
	}
	if tile.Name != "7 scan.png" {
		t.Errorf("Name: got %q, want %q", tile.Name, "7 scan.png")
	}
	if tile.Image == nil {
		t.Fatal("Image is nil")
	}
}

func TestLoadTile_Missing(t *testing.T) {
	_, err := LoadTile(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Error("LoadTile should fail for a missing file")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Error("missing file should be an open error, not ErrUnsupportedFormat")
	}
}

func TestLoadTile_NotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(path, []byte("definitely not a PNG"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadTile(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadTiles_AbortsOnFirstFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeTestPNG(t, dir, "1 a.png", 10, 10)
	bad := filepath.Join(dir, "2 b.png")
	if err := os.WriteFile(bad, []byte("broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadTiles([]string{good, bad})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadTiles_Empty(t *testing.T) {
	_, err := LoadTiles(nil)
	if !errors.Is(err, ErrNoTiles) {
		t.Errorf("got %v, want ErrNoTiles", err)
	}
}

func TestMaxDimensions(t *testing.T) {
	tiles := []Tile{
		createTile("a", 30, 5, color.NRGBA{}),
		createTile("b", 10, 50, color.NRGBA{}),
	}
	w, h := MaxDimensions(tiles)
	if w != 30 || h != 50 {
		t.Errorf("got %dx%d, want 30x50", w, h)
	}
}
