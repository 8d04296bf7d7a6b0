package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quellex/greb/internal/regex"
)

func TestRunVerdicts(t *testing.T) {
	ab := regex.Concat(regex.Class('a'), regex.Class('b'))
	tests := []struct {
		name    string
		expr    regex.Regex
		input   string
		matched bool
		final   string
	}{
		{"match consumes all input", ab, "ab", true, "ε"},
		{"mismatch dies to the empty language", ab, "ax", false, "∅"},
		{"short input leaves a remainder", ab, "a", false, "[b]"},
		{"empty input asks nullability", regex.Star(regex.Class('a')), "", true, "[a]*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewMatcher(tt.expr).Run(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, res.Matched)
			assert.Equal(t, tt.final, res.Final)
			assert.Len(t, tt.input, res.Steps)
			assert.Empty(t, res.Trace)
		})
	}
}

func TestRunTrace(t *testing.T) {
	ab := regex.Concat(regex.Class('a'), regex.Class('b'))
	res, err := NewMatcher(ab, WithTrace()).Run(context.Background(), "ab")
	require.NoError(t, err)

	require.Len(t, res.Trace, 2)
	assert.Equal(t, TraceEvent{
		Seq: 1, Symbol: "a", Before: "[a][b]", After: "[b]", Size: 1, Nullable: false,
	}, res.Trace[0])
	assert.Equal(t, TraceEvent{
		Seq: 2, Symbol: "b", Before: "[b]", After: "ε", Size: 1, Nullable: true,
	}, res.Trace[1])
	assert.True(t, res.Matched)
	assert.Equal(t, 2, res.Steps)
	assert.Equal(t, 1, res.FinalSize)
}

func TestRunSharedClockOrdersAcrossRuns(t *testing.T) {
	clock := NewClockAt(100)
	m := NewMatcher(regex.Star(regex.Class('a')), WithTrace(), WithClock(clock))

	first, err := m.Run(context.Background(), "a")
	require.NoError(t, err)
	second, err := m.Run(context.Background(), "a")
	require.NoError(t, err)

	assert.Equal(t, int64(101), first.Trace[0].Seq)
	assert.Equal(t, int64(102), second.Trace[0].Seq)
	assert.Equal(t, int64(102), clock.Current())
}

func TestRunStepQuota(t *testing.T) {
	m := NewMatcher(regex.Star(regex.Class('a')), WithLimits(Limits{MaxSteps: 2}))

	res, err := m.Run(context.Background(), "aa")
	require.NoError(t, err)
	assert.True(t, res.Matched)

	_, err = m.Run(context.Background(), "aaa")
	require.Error(t, err)
	require.True(t, IsQuotaError(err))

	var qe *QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, ErrCodeStepsExceeded, qe.Code)
	assert.Equal(t, 3, qe.Steps)
	assert.Equal(t, 2, qe.Limit)
}

func TestRunSizeQuota(t *testing.T) {
	// Deriving this restricted complement by a member symbol yields an
	// intersection of the empty string with a negation, node count 4.
	notA := regex.Intersect(regex.AnyChar(), regex.Complement(regex.Class('a')))
	m := NewMatcher(notA, WithLimits(Limits{MaxSize: 3}))

	_, err := m.Run(context.Background(), "a")
	require.Error(t, err)

	var qe *QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, ErrCodeSizeExceeded, qe.Code)
	assert.Equal(t, 1, qe.Steps)
	assert.Equal(t, 4, qe.Size)
	assert.Equal(t, 3, qe.Limit)

	// The same expression fits under a looser bound.
	res, err := NewMatcher(notA, WithLimits(Limits{MaxSize: 10})).Run(context.Background(), "b")
	require.NoError(t, err)
	assert.True(t, res.Matched)
}

func TestRunContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMatcher(regex.Star(regex.AnyChar())).Run(ctx, "abc")
	require.ErrorIs(t, err, context.Canceled)
}
