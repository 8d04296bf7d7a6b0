package catalog

import (
	"context"
	"fmt"

	"github.com/quellex/greb/internal/engine"
	"github.com/quellex/greb/internal/pattern"
)

// Verify compiles every entry's pattern and runs its examples, in entry
// order. Returns one *EntryError per failing entry; a nil slice means the
// whole catalog checks out.
//
// An entry stops at its first failure so a broken pattern reports once,
// not once per example.
func (c *Catalog) Verify(ctx context.Context) []error {
	var errs []error
	for _, entry := range c.Entries {
		if err := verifyEntry(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// verifyEntry compiles one entry and checks its examples.
func verifyEntry(ctx context.Context, e Entry) error {
	expr, err := pattern.Compile(e.Pattern, e.Mode)
	if err != nil {
		return &EntryError{
			Entry:   e.Name,
			Message: fmt.Sprintf("pattern %q: %v", e.Pattern, err),
			Pos:     e.pos,
		}
	}

	m := engine.NewMatcher(expr)
	for _, input := range e.Examples.Match {
		res, err := m.Run(ctx, input)
		if err != nil {
			return &EntryError{Entry: e.Name, Message: fmt.Sprintf("example %q: %v", input, err), Pos: e.pos}
		}
		if !res.Matched {
			return &EntryError{
				Entry:   e.Name,
				Message: fmt.Sprintf("example %q should match %q", input, e.Pattern),
				Pos:     e.pos,
			}
		}
	}
	for _, input := range e.Examples.NoMatch {
		res, err := m.Run(ctx, input)
		if err != nil {
			return &EntryError{Entry: e.Name, Message: fmt.Sprintf("example %q: %v", input, err), Pos: e.pos}
		}
		if res.Matched {
			return &EntryError{
				Entry:   e.Name,
				Message: fmt.Sprintf("example %q should not match %q", input, e.Pattern),
				Pos:     e.pos,
			}
		}
	}
	return nil
}
