// Package config holds runtime configuration: defaults, CLI flag parsing,
// and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Action is the operation requested on the command line.
type Action string

const (
	ActionHorizontal Action = "horizontal" // Linear stitch, left to right.
	ActionVertical   Action = "vertical"   // Linear stitch, top to bottom.
	ActionGrid       Action = "grid"       // Grid stitch.
	ActionNumber     Action = "number"     // Add sequential filename prefixes.
	ActionUnnumber   Action = "unnumber"   // Strip numeric filename prefixes.
	ActionMark       Action = "mark"       // Toggle the "z" marker suffix.
)

// ErrUsage reports bad command-line input (unknown action, missing paths,
// malformed flag values).
var ErrUsage = errors.New("invalid usage")

// ExtFilter is the set of file extensions a batch accepts, lowercase with
// leading dot.
type ExtFilter map[string]bool

// Match reports whether name passes the filter. An empty filter accepts
// everything.
func (f ExtFilter) Match(name string) bool {
	if len(f) == 0 {
		return true
	}
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return false
	}
	return f[strings.ToLower(name[i:])]
}

// ParseExtFilter builds a filter from a comma-separated list like
// ".png,.tif" (dots optional).
func ParseExtFilter(spec string) ExtFilter {
	f := make(ExtFilter)
	for _, part := range strings.Split(spec, ",") {
		ext := strings.ToLower(strings.TrimSpace(part))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f[ext] = true
	}
	return f
}

// Config holds all runtime settings. It is populated by DefaultConfig,
// adjusted from the environment by ApplyEnv, and finally mutated by
// ParseFlags before being passed (by pointer) to the CLI runner.
type Config struct {
	Action Action
	Paths  []string // Positional file arguments, absolute or relative.

	// Stitch settings.
	Background string  // Hex background color. Default: "#FFFFFF".
	Scale      float64 // Output resize factor. Default: 1.0 (no resize).
	Center     bool    // Center tiles on the cross axis.

	// Grid settings.
	Rows     int  // Row hint; 0 means unconstrained.
	Cols     int  // Column hint; 0 means unconstrained.
	All      bool // Stitch every candidate grid, swapped orientations included.
	Partial  bool // Default: true. Admit grids with a short last row.
	Uniform  bool // Default: true. Fixed-size cells (largest tile's dimensions).
	FitCells bool // Upscale undersized tiles to fill their cell.

	// File selection.
	Extensions ExtFilter // Default: .png, .tif, .tiff.
}

// Environment variable names.
const (
	EnvBackground = "TILESTITCH_BACKGROUND"
	EnvExtensions = "TILESTITCH_EXTENSIONS"
	EnvLogLevel   = "TILESTITCH_LOG_LEVEL"
)

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Background: "#FFFFFF",
		Scale:      1.0,
		Partial:    true,
		Uniform:    true,
		Extensions: ParseExtFilter(".png,.tif,.tiff"),
	}
}

// ApplyEnv overlays environment overrides onto cfg.
func (cfg *Config) ApplyEnv() {
	if v := os.Getenv(EnvBackground); v != "" {
		cfg.Background = v
	}
	if v := os.Getenv(EnvExtensions); v != "" {
		cfg.Extensions = ParseExtFilter(v)
	}
}

// Validate checks cross-field constraints after parsing.
func (cfg *Config) Validate() error {
	switch cfg.Action {
	case ActionHorizontal, ActionVertical, ActionGrid,
		ActionNumber, ActionUnnumber, ActionMark:
	default:
		return fmt.Errorf("%w: unknown action %q", ErrUsage, cfg.Action)
	}
	if len(cfg.Paths) == 0 {
		return fmt.Errorf("%w: no input paths given", ErrUsage)
	}
	if cfg.Scale <= 0 {
		return fmt.Errorf("%w: --scale must be > 0, got %g", ErrUsage, cfg.Scale)
	}
	if cfg.Rows < 0 || cfg.Cols < 0 {
		return fmt.Errorf("%w: row/column hints must be >= 0", ErrUsage)
	}
	return nil
}
