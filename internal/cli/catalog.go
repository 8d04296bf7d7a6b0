package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quellex/greb/internal/catalog"
)

// CatalogEntry is the JSON rendering of one catalog entry.
type CatalogEntry struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Mode        string `json:"mode"`
	Description string `json:"description,omitempty"`
}

// CatalogListResult is the payload of catalog list.
type CatalogListResult struct {
	Entries []CatalogEntry `json:"entries"`
}

// CatalogVerifyResult is the payload of catalog verify.
type CatalogVerifyResult struct {
	Entries int      `json:"entries"`
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors,omitempty"`
}

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with CUE pattern catalogs",
		Long: `Work with pattern catalogs defined in CUE.

A catalog is a directory of .cue files declaring named patterns under a
top-level patterns struct, optionally with modes, descriptions and
match/nomatch examples.`,
	}

	cmd.AddCommand(NewCatalogListCommand(rootOpts))
	cmd.AddCommand(NewCatalogVerifyCommand(rootOpts))

	return cmd
}

// NewCatalogListCommand creates the catalog list command.
func NewCatalogListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list <dir>",
		Short:         "List the entries of a catalog",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCatalogList(opts *RootOptions, dir string, cmd *cobra.Command) error {
	cat, err := catalog.Load(dir)
	if err != nil {
		return reportError(opts, cmd, ExitCommandError, errCodeCatalog, err.Error(), nil)
	}

	result := CatalogListResult{Entries: make([]CatalogEntry, 0, len(cat.Entries))}
	for _, e := range cat.Entries {
		result.Entries = append(result.Entries, CatalogEntry{
			Name:        e.Name,
			Pattern:     e.Pattern,
			Mode:        e.Mode.String(),
			Description: e.Description,
		})
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(result)
	}

	w := cmd.OutOrStdout()
	for _, e := range result.Entries {
		fmt.Fprintf(w, "%s (%s): %s\n", e.Name, e.Mode, e.Pattern)
		if opts.Verbose && e.Description != "" {
			fmt.Fprintf(w, "  %s\n", e.Description)
		}
	}
	fmt.Fprintf(w, "\n%d entr%s\n", len(result.Entries), plural(len(result.Entries), "y", "ies"))
	return nil
}

// NewCatalogVerifyCommand creates the catalog verify command.
func NewCatalogVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <dir>",
		Short: "Check every catalog example against its pattern",
		Long: `Compile every pattern in a catalog and check its match and
nomatch examples.

Exit codes:
  0 - All entries verified
  1 - One or more entries failed
  2 - Command error (catalog does not load)

Examples:
  greb catalog verify ./patterns
  greb catalog verify ./patterns --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogVerify(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCatalogVerify(opts *RootOptions, dir string, cmd *cobra.Command) error {
	cat, err := catalog.Load(dir)
	if err != nil {
		return reportError(opts, cmd, ExitCommandError, errCodeCatalog, err.Error(), nil)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	errs := cat.Verify(ctx)

	result := CatalogVerifyResult{
		Entries: len(cat.Entries),
		Valid:   len(errs) == 0,
	}
	for _, e := range errs {
		result.Errors = append(result.Errors, e.Error())
	}

	if opts.Format == "json" {
		return outputCatalogVerifyJSON(cmd, result)
	}

	w := cmd.OutOrStdout()
	if result.Valid {
		fmt.Fprintf(w, "✓ %d entr%s verified\n", result.Entries, plural(result.Entries, "y", "ies"))
		return nil
	}

	fmt.Fprintln(w, "✗ Catalog verification failed")
	fmt.Fprintln(w)
	for _, msg := range result.Errors {
		fmt.Fprintf(w, "  %s\n", msg)
	}

	return NewExitError(ExitFailure, fmt.Sprintf("%d entr%s failed", len(errs), plural(len(errs), "y", "ies")))
}

// outputCatalogVerifyJSON outputs the verify result as JSON.
func outputCatalogVerifyJSON(cmd *cobra.Command, result CatalogVerifyResult) error {
	status := "ok"
	response := CLIResponse{Status: status, Data: result}

	if !result.Valid {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    errCodeVerify,
			Message: fmt.Sprintf("%d entr%s failed", len(result.Errors), plural(len(result.Errors), "y", "ies")),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d entr%s failed", len(result.Errors), plural(len(result.Errors), "y", "ies")))
	}
	return nil
}

// plural picks a suffix by count.
func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
