package harness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/quellex/greb/internal/engine"
	"github.com/quellex/greb/internal/pattern"
)

// TraceSnapshot captures one traced run for golden comparison. The JSON
// rendering is deterministic: field order is fixed by the struct and the
// trace is emitted in sequence order.
type TraceSnapshot struct {
	Pattern string         `json:"pattern"`
	Mode    string         `json:"mode"`
	Input   string         `json:"input"`
	Result  *engine.Result `json:"result"`
}

// Snapshot compiles a pattern, runs it over input with tracing enabled,
// and captures the outcome.
func Snapshot(ctx context.Context, src string, mode pattern.Mode, input string) (TraceSnapshot, error) {
	expr, err := pattern.Compile(src, mode)
	if err != nil {
		return TraceSnapshot{}, fmt.Errorf("compile pattern %q: %w", src, err)
	}

	res, err := engine.NewMatcher(expr, engine.WithTrace()).Run(ctx, input)
	if err != nil {
		return TraceSnapshot{}, err
	}

	return TraceSnapshot{
		Pattern: src,
		Mode:    mode.String(),
		Input:   input,
		Result:  res,
	}, nil
}

// AssertGolden compares the snapshot's JSON rendering against the golden
// file testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, snap TraceSnapshot) {
	t.Helper()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // keep |, & and ! readable in expressions
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}
