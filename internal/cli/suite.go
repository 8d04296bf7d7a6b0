package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quellex/greb/internal/harness"
)

// SuiteFileResult pairs a suite file with its evaluation report.
type SuiteFileResult struct {
	File   string          `json:"file"`
	Report *harness.Report `json:"report"`
}

// SuiteRunResult is the output payload of the suite command.
type SuiteRunResult struct {
	Suites []SuiteFileResult `json:"suites"`
	Passed int               `json:"passed"`
	Failed int               `json:"failed"`
	Total  int               `json:"total"`
}

// NewSuiteCommand creates the suite command.
func NewSuiteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suite <file...>",
		Short: "Run YAML match suites",
		Long: `Run YAML match suites outside go test.

Each suite file declares pattern blocks with expected verdicts per
input. Every case runs and every failure is reported; a pattern that
does not compile counts as one failure for its block.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (suite file does not load)

Examples:
  greb suite checks.yaml
  greb suite suites/*.yaml --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runSuites(opts *RootOptions, files []string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result := SuiteRunResult{
		Suites: make([]SuiteFileResult, 0, len(files)),
		Total:  len(files),
	}

	w := cmd.OutOrStdout()
	for _, file := range files {
		suite, err := harness.LoadSuite(file)
		if err != nil {
			return reportError(opts, cmd, ExitCommandError, errCodeInput,
				fmt.Sprintf("load suite %s: %v", file, err), nil)
		}

		report, err := harness.Evaluate(ctx, suite)
		if err != nil {
			return reportError(opts, cmd, ExitCommandError, errCodeInput,
				fmt.Sprintf("run suite %s: %v", file, err), nil)
		}

		result.Suites = append(result.Suites, SuiteFileResult{File: file, Report: report})
		if report.Pass {
			result.Passed++
			if opts.Format != "json" {
				fmt.Fprintf(w, "✓ %s (%d cases)\n", report.Suite, report.Cases)
			}
		} else {
			result.Failed++
			if opts.Format != "json" {
				fmt.Fprintf(w, "✗ %s (%d cases, %d failed)\n", report.Suite, report.Cases, len(report.Failures))
				for _, f := range report.Failures {
					fmt.Fprintf(w, "  [%s] %s\n", f.Block, f.Message)
				}
			}
		}
	}

	if opts.Format == "json" {
		return outputSuiteJSON(cmd, result)
	}

	return outputSuiteText(cmd, result)
}

// outputSuiteJSON outputs the suite run result as JSON.
func outputSuiteJSON(cmd *cobra.Command, result SuiteRunResult) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}

	response := CLIResponse{Status: status, Data: result}
	if result.Failed > 0 {
		response.Error = &CLIError{
			Code:    errCodeSuite,
			Message: fmt.Sprintf("%d suite(s) failed", result.Failed),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d suite(s) failed", result.Failed))
	}
	return nil
}

// outputSuiteText outputs the suite run summary as text.
func outputSuiteText(cmd *cobra.Command, result SuiteRunResult) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Suite Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d suite(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All suites passed")
	return nil
}
