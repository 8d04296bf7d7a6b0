package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quellex/greb/internal/engine"
	"github.com/quellex/greb/internal/pattern"
)

// FilterOptions holds flags for the filter command.
type FilterOptions struct {
	*RootOptions
	Invert bool
}

// FilterResult is the output payload of the filter command in JSON mode.
type FilterResult struct {
	Pattern string   `json:"pattern"`
	Lines   []string `json:"lines"`
	Scanned int      `json:"scanned"`
	Matched int      `json:"matched"`
}

// NewFilterCommand creates the filter command.
func NewFilterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FilterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "filter <pattern> [file...]",
		Short: "Print input lines containing a match",
		Long: `Print every input line containing a match for the pattern.

Lines come from the given files, or from stdin when no files are named.
Matching is substring search, like grep.

Exit codes:
  0 - At least one line matched
  1 - No line matched
  2 - Command error (bad pattern, unreadable file)

Examples:
  greb filter 'err(or)?' service.log
  greb filter --invert '^#' config.ini
  dmesg | greb filter 'usb [0-9]'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Invert, "invert", false, "print lines that do not match")

	return cmd
}

func runFilter(opts *FilterOptions, patternSrc string, files []string, cmd *cobra.Command) error {
	expr, err := pattern.Compile(normalize(patternSrc), pattern.ModeSearch)
	if err != nil {
		return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeParse, err.Error(), nil)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	m := engine.NewMatcher(expr)

	result := FilterResult{Pattern: patternSrc, Lines: []string{}}

	scan := func(r io.Reader) error {
		scanner := lineScanner(r)
		for scanner.Scan() {
			line := normalize(scanner.Text())
			result.Scanned++

			res, err := m.Run(ctx, line)
			if err != nil {
				return err
			}
			if res.Matched == opts.Invert {
				continue
			}
			result.Matched++
			if opts.Format == "json" {
				result.Lines = append(result.Lines, line)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		}
		return scanner.Err()
	}

	if len(files) == 0 {
		if err := scan(cmd.InOrStdin()); err != nil {
			return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeInput, err.Error(), nil)
		}
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeInput,
				fmt.Sprintf("open %s: %v", name, err), nil)
		}
		scanErr := scan(f)
		f.Close()
		if scanErr != nil {
			return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeInput,
				fmt.Sprintf("read %s: %v", name, scanErr), nil)
		}
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		if err := formatter.Success(result); err != nil {
			return err
		}
	}

	if result.Matched == 0 {
		return NewExitError(ExitFailure, "no lines matched")
	}
	return nil
}
