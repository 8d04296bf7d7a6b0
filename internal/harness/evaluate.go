package harness

import (
	"context"
	"fmt"

	"github.com/quellex/greb/internal/engine"
	"github.com/quellex/greb/internal/pattern"
)

// Report is the outcome of evaluating a suite.
type Report struct {
	// Suite is the name declared in the suite file.
	Suite string `json:"suite"`

	// Cases counts the cases that actually ran. Cases belonging to a
	// pattern that failed to compile are not counted.
	Cases int `json:"cases"`

	// Pass indicates overall success. False if any failure was recorded.
	Pass bool `json:"pass"`

	// Failures lists every failed case and unbuildable pattern.
	Failures []Failure `json:"failures,omitempty"`
}

// Failure describes one failed case, or a pattern block that could not
// be compiled at all.
type Failure struct {
	Block   string `json:"block"`
	Input   string `json:"input,omitempty"`
	Message string `json:"message"`
}

// addFailure records a failure and marks the report as failed.
func (r *Report) addFailure(f Failure) {
	r.Failures = append(r.Failures, f)
	r.Pass = false
}

// Evaluate runs every case in the suite and collects failures into a
// Report. A pattern that fails to compile produces a single failure for
// its block and its cases are skipped. The returned error is reserved
// for execution faults such as context cancellation; expectation
// mismatches only appear in the report.
func Evaluate(ctx context.Context, suite *Suite) (*Report, error) {
	report := &Report{Suite: suite.Name, Pass: true, Failures: []Failure{}}

	for _, block := range suite.Patterns {
		mode, err := block.mode()
		if err != nil {
			report.addFailure(Failure{Block: block.Name, Message: err.Error()})
			continue
		}

		expr, err := pattern.Compile(block.Pattern, mode)
		if err != nil {
			report.addFailure(Failure{
				Block:   block.Name,
				Message: fmt.Sprintf("compile pattern %q: %v", block.Pattern, err),
			})
			continue
		}

		m := engine.NewMatcher(expr)
		for _, c := range block.Cases {
			res, err := m.Run(ctx, c.Input)
			if err != nil {
				return nil, fmt.Errorf("run %s against %q: %w", block.Name, c.Input, err)
			}
			report.Cases++
			if res.Matched != c.Match {
				report.addFailure(Failure{
					Block: block.Name,
					Input: c.Input,
					Message: fmt.Sprintf("pattern %q against %q: got %v, want %v",
						block.Pattern, c.Input, res.Matched, c.Match),
				})
			}
		}
	}

	return report, nil
}
