package engine

import (
	"errors"
	"fmt"
)

// Limits bounds a matching run. A zero value for either field disables
// that bound.
//
// MaxSteps caps the number of derivative steps, which equals the number of
// input symbols consumed. MaxSize caps the node count of the current
// expression after each step; it is the guard against derivative blow-up,
// where intersection and negation make expressions grow under repeated
// derivation.
type Limits struct {
	MaxSteps int
	MaxSize  int
}

// QuotaErrorCode categorizes quota errors.
type QuotaErrorCode string

const (
	// ErrCodeStepsExceeded indicates the run consumed more input symbols
	// than MaxSteps allows.
	ErrCodeStepsExceeded QuotaErrorCode = "STEPS_EXCEEDED"

	// ErrCodeSizeExceeded indicates the expression grew past MaxSize.
	ErrCodeSizeExceeded QuotaErrorCode = "SIZE_EXCEEDED"
)

// QuotaError is returned when a matching run trips a limit.
//
// The run terminates with no verdict: a run that ran out of quota neither
// matched nor failed to match.
type QuotaError struct {
	Code  QuotaErrorCode
	Steps int // derivative steps taken when the limit tripped
	Size  int // expression node count when the limit tripped
	Limit int // the bound that tripped
}

// Error implements the error interface.
func (e *QuotaError) Error() string {
	switch e.Code {
	case ErrCodeStepsExceeded:
		return fmt.Sprintf("%s: %d steps > %d limit", e.Code, e.Steps, e.Limit)
	case ErrCodeSizeExceeded:
		return fmt.Sprintf("%s: expression size %d > %d limit after %d steps", e.Code, e.Size, e.Limit, e.Steps)
	}
	return fmt.Sprintf("%s: steps=%d size=%d limit=%d", e.Code, e.Steps, e.Size, e.Limit)
}

// IsQuotaError reports whether err is a quota error.
// Uses errors.As to handle wrapped errors.
func IsQuotaError(err error) bool {
	var qe *QuotaError
	return errors.As(err, &qe)
}
