package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quellex/greb/internal/engine"
	"github.com/quellex/greb/internal/pattern"
	"github.com/quellex/greb/internal/regex"
	"github.com/quellex/greb/internal/store"
)

// ExplainOptions holds flags for the explain command.
type ExplainOptions struct {
	*RootOptions
	Search   bool
	Database string
	MaxSteps int
	MaxSize  int
}

// ExplainResult is the output payload of the explain command.
type ExplainResult struct {
	Pattern     string              `json:"pattern"`
	Fingerprint string              `json:"fingerprint"`
	Mode        string              `json:"mode"`
	Input       string              `json:"input"`
	Matched     bool                `json:"matched"`
	Steps       int                 `json:"steps"`
	Final       string              `json:"final"`
	FinalSize   int                 `json:"final_size"`
	Trace       []engine.TraceEvent `json:"trace"`
	RunID       string              `json:"run_id,omitempty"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExplainOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "explain <pattern> <string>",
		Short: "Show the derivative taken for each input symbol",
		Long: `Show the full derivation of a matching run, one derivative per
input symbol, with the expression before and after each step.

With --db the run and its trace are recorded for later inspection with
the history command. --max-steps and --max-size bound the run; a run
that trips a bound stops without a verdict.

Exit codes:
  0 - Input matches
  1 - Input does not match, or a quota was exceeded
  2 - Command error (bad pattern, database failure)

Examples:
  greb explain 'ab*c' abbbc
  greb explain --search 'nee+dle' 'a needle in a haystack'
  greb explain 'a{2,4}' aaa --db runs.db
  greb explain '(a|b)*c' abababab --max-steps 4`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Search, "search", false, "match any substring instead of the whole input")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite database")
	cmd.Flags().IntVar(&opts.MaxSteps, "max-steps", 0, "abort after this many derivative steps (0 = unlimited)")
	cmd.Flags().IntVar(&opts.MaxSize, "max-size", 0, "abort when the expression exceeds this node count (0 = unlimited)")

	return cmd
}

func runExplain(opts *ExplainOptions, patternSrc, input string, cmd *cobra.Command) error {
	mode := pattern.ModeExact
	if opts.Search {
		mode = pattern.ModeSearch
	}

	expr, err := pattern.Compile(normalize(patternSrc), mode)
	if err != nil {
		return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeParse, err.Error(), nil)
	}
	input = normalize(input)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	m := engine.NewMatcher(expr,
		engine.WithTrace(),
		engine.WithLimits(engine.Limits{MaxSteps: opts.MaxSteps, MaxSize: opts.MaxSize}),
	)

	res, err := m.Run(ctx, input)
	if err != nil {
		var qe *engine.QuotaError
		if errors.As(err, &qe) {
			details := map[string]interface{}{
				"code":  qe.Code,
				"steps": qe.Steps,
				"size":  qe.Size,
				"limit": qe.Limit,
			}
			return reportError(opts.RootOptions, cmd, ExitFailure, errCodeQuota, qe.Error(), details)
		}
		return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeInput, err.Error(), nil)
	}

	result := ExplainResult{
		Pattern:     patternSrc,
		Fingerprint: regex.Fingerprint(expr),
		Mode:        mode.String(),
		Input:       input,
		Matched:     res.Matched,
		Steps:       res.Steps,
		Final:       res.Final,
		FinalSize:   res.FinalSize,
		Trace:       res.Trace,
	}

	if opts.Database != "" {
		runID, err := recordRun(ctx, opts.Database, result, res)
		if err != nil {
			return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeStore, err.Error(), nil)
		}
		result.RunID = runID
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		outputExplainText(cmd, result)
	}

	if !res.Matched {
		return NewExitError(ExitFailure, "no match")
	}
	return nil
}

// recordRun opens the database, records the run with its trace, and
// returns the run ID.
func recordRun(ctx context.Context, dbPath string, result ExplainResult, res *engine.Result) (string, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	run := store.NewRun(result.Pattern, result.Fingerprint, result.Mode, result.Input, res)
	if _, err := st.RecordRun(ctx, run, res.Trace); err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}

	slog.Debug("run recorded", "id", run.ID, "db", dbPath)
	return run.ID, nil
}

// outputExplainText renders the derivation as text.
func outputExplainText(cmd *cobra.Command, result ExplainResult) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Pattern: %s (%s)\n", result.Pattern, result.Mode)
	fmt.Fprintf(w, "Input:   %q\n", result.Input)
	fmt.Fprintln(w)

	if len(result.Trace) == 0 {
		fmt.Fprintln(w, "  (empty input, no derivative steps)")
	}
	for _, ev := range result.Trace {
		nullable := ""
		if ev.Nullable {
			nullable = ", nullable"
		}
		fmt.Fprintf(w, "  [%d] %s: %s => %s (size %d%s)\n",
			ev.Seq, ev.Symbol, ev.Before, ev.After, ev.Size, nullable)
	}
	fmt.Fprintln(w)

	verdict := "no match"
	if result.Matched {
		verdict = "match"
	}
	fmt.Fprintf(w, "Verdict: %s (%d steps, final %s, size %d)\n",
		verdict, result.Steps, result.Final, result.FinalSize)

	if result.RunID != "" {
		fmt.Fprintf(w, "Recorded: %s\n", result.RunID)
	}
}
