package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quellex/greb/internal/engine"
	"github.com/quellex/greb/internal/pattern"
)

// MatchOptions holds flags for the match command.
type MatchOptions struct {
	*RootOptions
	Search bool
}

// MatchResult is the output payload of the match command.
type MatchResult struct {
	Pattern   string `json:"pattern"`
	Mode      string `json:"mode"`
	Input     string `json:"input"`
	Matched   bool   `json:"matched"`
	Steps     int    `json:"steps"`
	FinalSize int    `json:"final_size"`
}

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "match <pattern> [string]",
		Short: "Test whether a string is in a pattern's language",
		Long: `Test whether a string belongs to the language of a pattern.

The whole input must match. With --search any substring may match,
which is the grep notion of matching. When no string argument is given,
one line is read from stdin.

Exit codes:
  0 - Input matches
  1 - Input does not match
  2 - Command error (bad pattern, unreadable stdin)

Examples:
  greb match 'ab*c' abbbc
  echo abbbc | greb match 'ab*c'
  greb match --search 'nee+dle' 'a needle in a haystack'`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Search, "search", false, "match any substring instead of the whole input")

	return cmd
}

func runMatch(opts *MatchOptions, args []string, cmd *cobra.Command) error {
	mode := pattern.ModeExact
	if opts.Search {
		mode = pattern.ModeSearch
	}

	src := normalize(args[0])
	expr, err := pattern.Compile(src, mode)
	if err != nil {
		return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeParse, err.Error(), nil)
	}

	var input string
	if len(args) == 2 {
		input = args[1]
	} else {
		input, err = readOneLine(cmd.InOrStdin())
		if err != nil {
			return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeInput, err.Error(), nil)
		}
	}
	input = normalize(input)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := engine.NewMatcher(expr).Run(ctx, input)
	if err != nil {
		return reportError(opts.RootOptions, cmd, ExitCommandError, errCodeInput, err.Error(), nil)
	}

	result := MatchResult{
		Pattern:   args[0],
		Mode:      mode.String(),
		Input:     input,
		Matched:   res.Matched,
		Steps:     res.Steps,
		FinalSize: res.FinalSize,
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
		if res.Matched {
			fmt.Fprintln(cmd.OutOrStdout(), "match")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "no match")
		}
		formatter.VerboseLog("%d step(s), final size %d", res.Steps, res.FinalSize)
	}

	if !res.Matched {
		return NewExitError(ExitFailure, "no match")
	}
	return nil
}
