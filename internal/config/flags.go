package config

// This file implements CLI flag parsing and help text. The first
// positional argument is the action keyword; the remainder are file paths,
// typically injected by a file-manager context menu.

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses args (without the program name) into cfg. The action
// keyword comes first, then flags, then file paths:
//
//	tilestitch grid --rows 2 /path/a.png /path/b.png
//
// It returns flag.ErrHelp when help was requested.
func ParseFlags(cfg *Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tilestitch", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { printUsage(fs, out) }

	fs.StringVar(&cfg.Background, "background", cfg.Background, "Canvas background color (hex, e.g. #FFFFFF or #00000000)")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "Resize the stitched output by this factor")
	fs.BoolVar(&cfg.Center, "center", cfg.Center, "Center tiles on the cross axis instead of top/left alignment")

	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "Grid row hint (0 = choose automatically)")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "Grid column hint (0 = choose automatically)")
	fs.BoolVar(&cfg.All, "all", cfg.All, "Stitch every candidate grid, swapped orientations included")
	noPartial := fs.Bool("exact", false, "Only accept grids that divide the tile count exactly")
	noUniform := fs.Bool("packed", false, "Size each grid row independently instead of uniform cells")
	fs.BoolVar(&cfg.FitCells, "fit", cfg.FitCells, "Upscale undersized tiles to fill their grid cell")

	extSpec := fs.String("ext", "", "Comma-separated extension filter (default \".png,.tif,.tiff\")")

	if len(args) == 0 {
		printUsage(fs, out)
		return fmt.Errorf("%w: missing action", ErrUsage)
	}
	if args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(fs, out)
		return flag.ErrHelp
	}
	cfg.Action = Action(args[0])

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	// Negated flags are applied after Parse so defaults hold unless set.
	if *noPartial {
		cfg.Partial = false
	}
	if *noUniform {
		cfg.Uniform = false
	}
	if *extSpec != "" {
		cfg.Extensions = ParseExtFilter(*extSpec)
	}

	cfg.Paths = fs.Args()

	return cfg.Validate()
}

func printUsage(fs *flag.FlagSet, out io.Writer) {
	fmt.Fprintln(out, "Usage: tilestitch <action> [flags] <paths...>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Actions:")
	fmt.Fprintln(out, "  horizontal   Stitch images left to right")
	fmt.Fprintln(out, "  vertical     Stitch images top to bottom")
	fmt.Fprintln(out, "  grid         Stitch images into a rows x columns grid")
	fmt.Fprintln(out, "  number       Prefix files with \"1 \", \"2 \", ... in sorted order")
	fmt.Fprintln(out, "  unnumber     Strip numeric filename prefixes")
	fmt.Fprintln(out, "  mark         Toggle a trailing \"z\" marker on the filename stem")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fs.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment variables:")
	fmt.Fprintf(out, "  %s   Default background color\n", EnvBackground)
	fmt.Fprintf(out, "  %s   Default extension filter\n", EnvExtensions)
	fmt.Fprintf(out, "  %s=debug   Enable debug logging\n", EnvLogLevel)
}
