package catalog

import (
	"cmp"
	"fmt"
	"os"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/quellex/greb/internal/pattern"
)

// Catalog is a set of named patterns loaded from CUE, sorted by name.
type Catalog struct {
	Entries []Entry
}

// Entry is one named pattern in a catalog. Mode defaults to exact
// matching when the CUE entry does not set it.
type Entry struct {
	Name        string
	Pattern     string
	Description string
	Mode        pattern.Mode
	Examples    Examples

	pos token.Pos
}

// Examples are the self-checks attached to an entry: inputs the pattern
// must accept and inputs it must reject.
type Examples struct {
	Match   []string
	NoMatch []string
}

// Load loads the CUE package in dir, unifies its files, and compiles the
// top-level patterns struct into a catalog.
//
// Uses CUE SDK's Go API directly (not CLI subprocess).
func Load(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog path is not a directory: %s", dir)
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances in %s", dir)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("loading CUE files: %w", inst.Err)
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, formatCUEError("catalog", err)
	}

	return CompileValue(value)
}

// CompileValue compiles a catalog from an already-built CUE value.
// The value must carry a top-level patterns struct.
func CompileValue(v cue.Value) (*Catalog, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError("catalog", err)
	}

	patternsVal := v.LookupPath(cue.ParsePath("patterns"))
	if !patternsVal.Exists() {
		return nil, &EntryError{Entry: "catalog", Message: "top-level patterns struct is required", Pos: v.Pos()}
	}

	iter, err := patternsVal.Fields()
	if err != nil {
		return nil, formatCUEError("patterns", err)
	}

	cat := &Catalog{}
	for iter.Next() {
		entry, err := compileEntry(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		cat.Entries = append(cat.Entries, entry)
	}

	// Field order is source order; sort by name so catalogs split across
	// files list deterministically.
	slices.SortFunc(cat.Entries, func(a, b Entry) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return cat, nil
}

// compileEntry parses a single catalog entry struct.
func compileEntry(name string, v cue.Value) (Entry, error) {
	entry := Entry{Name: name, Mode: pattern.ModeExact, pos: v.Pos()}

	// Parse pattern (required)
	patternVal := v.LookupPath(cue.ParsePath("pattern"))
	if !patternVal.Exists() {
		return entry, &EntryError{Entry: name, Message: "pattern is required", Pos: v.Pos()}
	}
	src, err := patternVal.String()
	if err != nil {
		return entry, formatCUEError(name, err)
	}
	entry.Pattern = src

	// Parse description (optional)
	descVal := v.LookupPath(cue.ParsePath("description"))
	if descVal.Exists() {
		desc, err := descVal.String()
		if err != nil {
			return entry, formatCUEError(name, err)
		}
		entry.Description = desc
	}

	// Parse mode (optional, defaults to exact)
	modeVal := v.LookupPath(cue.ParsePath("mode"))
	if modeVal.Exists() {
		modeStr, err := modeVal.String()
		if err != nil {
			return entry, formatCUEError(name, err)
		}
		mode, err := pattern.ParseMode(modeStr)
		if err != nil {
			return entry, &EntryError{Entry: name, Message: err.Error(), Pos: modeVal.Pos()}
		}
		entry.Mode = mode
	}

	// Parse examples (optional)
	examplesVal := v.LookupPath(cue.ParsePath("examples"))
	if examplesVal.Exists() {
		entry.Examples.Match, err = stringList(name, examplesVal.LookupPath(cue.ParsePath("match")))
		if err != nil {
			return entry, err
		}
		entry.Examples.NoMatch, err = stringList(name, examplesVal.LookupPath(cue.ParsePath("nomatch")))
		if err != nil {
			return entry, err
		}
	}

	return entry, nil
}

// stringList reads an optional CUE list of strings.
func stringList(entry string, v cue.Value) ([]string, error) {
	if !v.Exists() {
		return nil, nil
	}

	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(entry, err)
	}

	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(entry, err)
		}
		out = append(out, s)
	}
	return out, nil
}
