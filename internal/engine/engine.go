package engine

import (
	"context"

	"github.com/quellex/greb/internal/regex"
)

// Matcher runs derivative matching over one canonical expression.
//
// A Matcher is immutable after construction and safe to reuse across runs
// and goroutines: each Run works on its own local expression state, and
// the shared clock is atomic.
type Matcher struct {
	expr   regex.Regex
	limits Limits
	trace  bool
	clock  *Clock
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLimits bounds runs of this matcher. Zero fields stay unlimited.
func WithLimits(l Limits) Option {
	return func(m *Matcher) {
		m.limits = l
	}
}

// WithTrace captures a TraceEvent for every derivative step.
func WithTrace() Option {
	return func(m *Matcher) {
		m.trace = true
	}
}

// WithClock stamps trace events from the given clock instead of a fresh
// one. Used when continuing a recorded trace.
func WithClock(c *Clock) Option {
	return func(m *Matcher) {
		m.clock = c
	}
}

// NewMatcher creates a Matcher for the given canonical expression.
func NewMatcher(expr regex.Regex, opts ...Option) *Matcher {
	m := &Matcher{
		expr:  expr,
		clock: NewClock(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run consumes the input one symbol at a time, taking one derivative step
// per symbol, and reports the final verdict.
//
// The context is checked between steps, so a hung pathological run can be
// cancelled. Quota violations return a *QuotaError and no Result.
func (m *Matcher) Run(ctx context.Context, input string) (*Result, error) {
	expr := m.expr
	res := &Result{}
	for _, sym := range input {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if m.limits.MaxSteps > 0 && res.Steps+1 > m.limits.MaxSteps {
			return nil, &QuotaError{
				Code:  ErrCodeStepsExceeded,
				Steps: res.Steps + 1,
				Size:  regex.Size(expr),
				Limit: m.limits.MaxSteps,
			}
		}
		before := expr
		expr = regex.Derive(expr, sym)
		res.Steps++

		size := regex.Size(expr)
		if m.trace {
			res.Trace = append(res.Trace, TraceEvent{
				Seq:      m.clock.Next(),
				Symbol:   string(sym),
				Before:   before.String(),
				After:    expr.String(),
				Size:     size,
				Nullable: regex.Nullable(expr),
			})
		}
		if m.limits.MaxSize > 0 && size > m.limits.MaxSize {
			return nil, &QuotaError{
				Code:  ErrCodeSizeExceeded,
				Steps: res.Steps,
				Size:  size,
				Limit: m.limits.MaxSize,
			}
		}
	}
	res.Matched = regex.Nullable(expr)
	res.Final = expr.String()
	res.FinalSize = regex.Size(expr)
	return res, nil
}
