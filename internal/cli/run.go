// Package cli wires the configured action to the stitching and renaming
// components and maps failures to process exit codes.
package cli

import (
	"errors"
	"flag"

	"github.com/tilestitch/tilestitch/internal/config"
	"github.com/tilestitch/tilestitch/internal/grid"
	"github.com/tilestitch/tilestitch/internal/imaging"
	"github.com/tilestitch/tilestitch/internal/rename"
)

// Exit codes, one per error kind.
const (
	ExitOK            = 0
	ExitError         = 1 // generic I/O or save failure
	ExitInvalidInput  = 2
	ExitBadFormat     = 3
	ExitConflict      = 4
	ExitPartialRename = 5
)

// Run executes the configured action. The returned error has already been
// classified; pass it to ExitCode for the process exit status.
func Run(cfg *config.Config) error {
	switch cfg.Action {
	case config.ActionHorizontal:
		return runLinear(cfg, imaging.Horizontal)
	case config.ActionVertical:
		return runLinear(cfg, imaging.Vertical)
	case config.ActionGrid:
		return runGrid(cfg)
	case config.ActionNumber:
		return runRename(cfg, rename.ActionNumber)
	case config.ActionUnnumber:
		return runRename(cfg, rename.ActionUnnumber)
	case config.ActionMark:
		return runRename(cfg, rename.ActionMark)
	default:
		// Unreachable after config.Validate, kept for direct callers.
		return config.ErrUsage
	}
}

// ExitCode maps an error from Run (or ParseFlags) to a process exit code.
func ExitCode(err error) int {
	var partial *rename.PartialError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.As(err, &partial):
		return ExitPartialRename
	case errors.Is(err, rename.ErrConflict):
		return ExitConflict
	case errors.Is(err, imaging.ErrUnsupportedFormat):
		return ExitBadFormat
	case errors.Is(err, config.ErrUsage),
		errors.Is(err, grid.ErrInvalidInput),
		errors.Is(err, imaging.ErrNoTiles):
		return ExitInvalidInput
	default:
		return ExitError
	}
}
