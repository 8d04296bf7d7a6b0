package catalog

import (
	"errors"
	"fmt"

	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// EntryError describes a problem with one catalog entry: a malformed
// definition, a pattern that does not compile, or a failing example.
// Entry names the offending entry, or "catalog" for file-level problems.
type EntryError struct {
	Entry   string
	Message string
	Pos     token.Pos
}

func (e *EntryError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Entry, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Entry, e.Message)
}

// IsEntryError reports whether err is or wraps an *EntryError.
func IsEntryError(err error) bool {
	var entryErr *EntryError
	return errors.As(err, &entryErr)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(entry string, err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := cueerrors.Positions(firstErr)
	if len(positions) > 0 {
		return &EntryError{
			Entry:   entry,
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
