package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution, input matched
	ExitFailure      = 1 // Match failure (no match, failed examples, exceeded quota)
	ExitCommandError = 2 // Command error (bad pattern, unreadable file, bad flags)
)

// Error codes carried in JSON output.
const (
	errCodeParse   = "E_PARSE"
	errCodeInput   = "E_INPUT"
	errCodeStore   = "E_STORE"
	errCodeQuota   = "E_QUOTA"
	errCodeCatalog = "E_CATALOG"
	errCodeSuite   = "E_SUITE_FAILED"
	errCodeVerify  = "E_VERIFY_FAILED"
)

// OutputFormatter renders command results as either human-readable text
// or a JSON envelope, depending on the --format flag.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostic writer; falls back to Writer when nil
	Verbose   bool
}

// CLIResponse is the JSON envelope every command emits in json mode.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError carries a stable machine-readable code alongside the message.
type CLIError struct {
	Code    string      `json:"code"`              // "E_PARSE", "E_QUOTA", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

func (f *OutputFormatter) emit(resp CLIResponse) error {
	return json.NewEncoder(f.Writer).Encode(resp)
}

// Success renders a command result. Text mode prints the data value
// directly; json mode wraps it in the envelope.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return f.emit(CLIResponse{Status: "ok", Data: data})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error renders a failure with its error code. Details only reach text
// output in verbose mode; the JSON envelope always carries them.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return f.emit(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message, Details: details},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog prints a diagnostic line when --verbose is set. Goes to
// ErrWriter so json output on Writer stays parseable.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.Writer
	if f.ErrWriter != nil {
		w = f.ErrWriter
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// ExitError is an error that maps to a specific process exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code and context message to an error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps an error to the process exit code. Errors that are
// not ExitErrors count as command faults, not clean no-match results.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// reportError prints a command diagnostic in the configured format and
// returns an ExitError carrying the exit code. Text diagnostics go to
// stderr; JSON envelopes go to stdout where consumers read them. The
// caller's main is expected to exit silently on ExitError, so this is
// the single place a failure gets printed.
func reportError(opts *RootOptions, cmd *cobra.Command, exitCode int, errCode, message string, details interface{}) error {
	w := cmd.ErrOrStderr()
	if opts.Format == "json" {
		w = cmd.OutOrStdout()
	}
	f := &OutputFormatter{Format: opts.Format, Writer: w, Verbose: opts.Verbose}
	_ = f.Error(errCode, message, details)
	return NewExitError(exitCode, message)
}
