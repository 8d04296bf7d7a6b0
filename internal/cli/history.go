package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quellex/greb/internal/pattern"
	"github.com/quellex/greb/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Pattern  string
	Mode     string
}

// HistoryResult is the output payload of the history command.
type HistoryResult struct {
	Runs  []store.Run `json:"runs"`
	Total int         `json:"total"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded matching runs",
		Long: `List runs recorded with explain --db, newest first.

Total counts every run matching the filters, regardless of --limit.

Examples:
  greb history --db runs.db
  greb history --db runs.db --limit 5 --pattern 'ab*'
  greb history --db runs.db --mode search --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to list (0 = all)")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", "", "only runs of this pattern source")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "only runs in this mode (exact|search)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	if opts.Mode != "" {
		if _, err := pattern.ParseMode(opts.Mode); err != nil {
			return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeInput, err.Error(), nil)
		}
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeStore,
			fmt.Sprintf("open database: %v", err), nil)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	q := store.RunQuery{
		Pattern: opts.Pattern,
		Mode:    opts.Mode,
		Limit:   opts.Limit,
	}

	runs, err := st.ListRuns(ctx, q)
	if err != nil {
		return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeStore,
			fmt.Sprintf("list runs: %v", err), nil)
	}
	total, err := st.CountRuns(ctx, q)
	if err != nil {
		return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeStore,
			fmt.Sprintf("count runs: %v", err), nil)
	}

	result := HistoryResult{Runs: runs, Total: total}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(result)
	}

	outputHistoryText(cmd, result, opts.Verbose)
	return nil
}

// outputHistoryText renders the run list as text.
func outputHistoryText(cmd *cobra.Command, result HistoryResult, verbose bool) {
	w := cmd.OutOrStdout()

	if len(result.Runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	for _, run := range result.Runs {
		verdict := "no match"
		if run.Matched {
			verdict = "match"
		}
		fmt.Fprintf(w, "  %s  %-6s  %-8s  %3d steps  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"), run.Mode, verdict, run.Steps, run.Pattern)
		if verbose {
			fmt.Fprintf(w, "      id=%s input=%q final=%s\n", run.ID, run.Input, run.FinalExpr)
		}
	}

	fmt.Fprintf(w, "\n%d of %d run(s)\n", len(result.Runs), result.Total)
}
