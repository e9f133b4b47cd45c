package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tilestitch/tilestitch/internal/config"
	"github.com/tilestitch/tilestitch/internal/rename"
)

// resolveBatch turns the positional paths into (dir, names) for one rename
// batch. A single directory argument selects every matching entry inside
// it; explicit files must all live in the same directory.
func resolveBatch(cfg *config.Config) (string, []string, error) {
	if len(cfg.Paths) == 1 {
		info, err := os.Stat(cfg.Paths[0])
		if err != nil {
			return "", nil, fmt.Errorf("cannot access %q: %w", cfg.Paths[0], err)
		}
		if info.IsDir() {
			return listDir(cfg.Paths[0], cfg.Extensions)
		}
	}

	dir := filepath.Dir(cfg.Paths[0])
	names := make([]string, 0, len(cfg.Paths))
	for _, p := range cfg.Paths {
		if filepath.Dir(p) != dir {
			return "", nil, fmt.Errorf("%w: files span multiple directories (%q vs %q)",
				config.ErrUsage, dir, filepath.Dir(p))
		}
		if !cfg.Extensions.Match(filepath.Base(p)) {
			continue
		}
		names = append(names, filepath.Base(p))
	}
	if len(names) == 0 {
		return "", nil, fmt.Errorf("%w: no files matching the extension filter", config.ErrUsage)
	}
	return dir, names, nil
}

func listDir(dir string, exts config.ExtFilter) (string, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", nil, fmt.Errorf("cannot read directory %q: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !exts.Match(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return "", nil, fmt.Errorf("%w: no files matching the extension filter in %q", config.ErrUsage, dir)
	}
	return dir, names, nil
}

// runRename plans and applies one rename batch.
func runRename(cfg *config.Config, action rename.Action) error {
	dir, names, err := resolveBatch(cfg)
	if err != nil {
		return err
	}

	entries, err := rename.Run(dir, names, action)
	if err != nil {
		if partial, ok := err.(*rename.PartialError); ok {
			reportPartial(partial)
		}
		return err
	}

	changed := 0
	for _, e := range entries {
		if !e.NoOp() {
			changed++
		}
	}
	log.Printf("%s: renamed %d of %d file(s) in %s", action, changed, len(entries), dir)
	return nil
}

// reportPartial lists exactly which files changed and which did not, since
// a mid-batch failure is not rolled back.
func reportPartial(p *rename.PartialError) {
	for _, e := range p.Applied {
		log.Printf("renamed: %q -> %q", e.Name, e.Target)
	}
	log.Printf("FAILED:  %q -> %q: %v", p.Failed.Name, p.Failed.Target, p.Err)
	for _, e := range p.Remaining {
		log.Printf("skipped: %q (unchanged)", e.Name)
	}
}
