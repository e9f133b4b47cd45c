// Package rename implements the sequential numbering tool: it assigns,
// strips, or toggles filename prefixes for whole batches of files.
//
// Every batch is planned and validated before anything touches the
// filesystem. Duplicate targets, or targets that would overwrite an
// unrelated existing file, abort the batch with ErrConflict and leave the
// directory untouched. The apply phase renames file-by-file without
// rollback; a mid-batch failure is reported as a *PartialError naming the
// files that changed and the files that did not.
package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrConflict reports a rename batch whose targets collide. Nothing has
// been renamed when this is returned.
var ErrConflict = errors.New("rename conflict")

// numberPrefix matches the sequencer's own prefix: digits then whitespace.
var numberPrefix = regexp.MustCompile(`^(\d+)\s`)

// Action selects what a batch does to each name.
type Action string

const (
	// ActionNumber prepends "1 ", "2 ", ... in alphabetical order.
	ActionNumber Action = "number"
	// ActionUnnumber strips one leading numeric prefix.
	ActionUnnumber Action = "unnumber"
	// ActionMark toggles a trailing "z" on the filename stem.
	ActionMark Action = "mark"
)

// Entry is one planned rename. Prefix holds the numeric prefix detected on
// the current name, if any.
type Entry struct {
	Name   string
	Prefix int
	HasNum bool
	Target string
}

// NoOp reports whether the entry leaves the name unchanged.
func (e Entry) NoOp() bool { return e.Name == e.Target }

// PartialError reports a batch that failed partway through the apply
// phase. Applied lists entries already renamed (not rolled back), Failed
// is the entry that errored, Remaining lists entries left untouched.
type PartialError struct {
	Applied   []Entry
	Failed    Entry
	Remaining []Entry
	Err       error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("renamed %d file(s), then %q failed: %v (%d file(s) unchanged)",
		len(e.Applied), e.Failed.Name, e.Err, len(e.Remaining)+1)
}

func (e *PartialError) Unwrap() error { return e.Err }

// Plan computes the target name for every file in names (relative to dir),
// sorted by byte order, and validates the whole batch.
func Plan(dir string, names []string, action Action) ([]Entry, error) {
	if len(names) == 0 {
		return nil, nil
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	entries := make([]Entry, 0, len(sorted))
	for i, name := range sorted {
		e := Entry{Name: name}
		if m := numberPrefix.FindStringSubmatch(name); m != nil {
			e.Prefix, _ = strconv.Atoi(m[1])
			e.HasNum = true
		}
		switch action {
		case ActionNumber:
			// Strip any existing prefix first so renumbering is stable.
			bare := numberPrefix.ReplaceAllString(name, "")
			e.Target = strconv.Itoa(i+1) + " " + bare
		case ActionUnnumber:
			e.Target = numberPrefix.ReplaceAllString(name, "")
		case ActionMark:
			e.Target = toggleMark(name)
		default:
			return nil, fmt.Errorf("unknown rename action %q", action)
		}
		entries = append(entries, e)
	}

	if err := validate(dir, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// toggleMark flips a trailing "z" on the stem: "07 page.png" <-> "07 pagez.png".
func toggleMark(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if strings.HasSuffix(stem, "z") {
		return strings.TrimSuffix(stem, "z") + ext
	}
	return stem + "z" + ext
}

// validate rejects duplicate targets and targets that would overwrite a
// pre-existing file outside the batch.
func validate(dir string, entries []Entry) error {
	inBatch := make(map[string]bool, len(entries))
	for _, e := range entries {
		inBatch[e.Name] = true
	}

	targets := make(map[string]string, len(entries))
	for _, e := range entries {
		if prev, dup := targets[e.Target]; dup {
			return fmt.Errorf("%w: %q and %q both map to %q", ErrConflict, prev, e.Name, e.Target)
		}
		targets[e.Target] = e.Name

		if e.NoOp() || inBatch[e.Target] {
			// Renaming onto another batch member is fine as long as that
			// member is itself moving away; the duplicate check above
			// catches the case where it is not.
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, e.Target)); err == nil {
			return fmt.Errorf("%w: %q would overwrite existing file %q", ErrConflict, e.Name, e.Target)
		}
	}

	// Apply runs in plan order, so a target equal to a batch name that
	// renames later would clobber that file before it moves away.
	for i, e := range entries {
		if e.NoOp() {
			continue
		}
		for j := i + 1; j < len(entries); j++ {
			if entries[j].Name == e.Target && !entries[j].NoOp() {
				return fmt.Errorf("%w: %q maps to %q which is renamed later in the batch", ErrConflict, e.Name, e.Target)
			}
		}
	}

	return nil
}

// Apply renames the planned entries in dir, file by file. No-op entries are
// skipped. On the first failure it stops and returns a *PartialError; files
// already renamed stay renamed.
func Apply(dir string, entries []Entry) error {
	var applied []Entry
	for i, e := range entries {
		if e.NoOp() {
			continue
		}
		if err := os.Rename(filepath.Join(dir, e.Name), filepath.Join(dir, e.Target)); err != nil {
			return &PartialError{
				Applied:   applied,
				Failed:    e,
				Remaining: remaining(entries[i+1:]),
				Err:       err,
			}
		}
		applied = append(applied, e)
	}
	return nil
}

func remaining(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if !e.NoOp() {
			out = append(out, e)
		}
	}
	return out
}

// Run plans and applies one batch.
func Run(dir string, names []string, action Action) ([]Entry, error) {
	entries, err := Plan(dir, names, action)
	if err != nil {
		return nil, err
	}
	return entries, Apply(dir, entries)
}
