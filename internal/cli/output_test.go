package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(errCodeParse, "compilation failed", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, errCodeParse, resp.Error.Code)
	assert.Equal(t, "compilation failed", resp.Error.Message)
}

func TestOutputFormatter_JSONErrorDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	details := map[string]interface{}{"steps": 10, "limit": 5}
	err := formatter.Error(errCodeQuota, "step quota exceeded", details)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, errCodeQuota, resp.Error.Code)
	assert.NotNil(t, resp.Error.Details)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success("operation completed")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "operation completed")
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Error(errCodeInput, "file not found", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E_INPUT]")
	assert.Contains(t, buf.String(), "file not found")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:    "text",
		Writer:    buf,
		ErrWriter: errBuf,
		Verbose:   true,
	}

	formatter.VerboseLog("processed %d items", 3)
	assert.Contains(t, errBuf.String(), "processed 3 items")

	formatter.Verbose = false
	errBuf.Reset()
	formatter.VerboseLog("should not appear")
	assert.Empty(t, errBuf.String())
}

func TestExitError(t *testing.T) {
	err := NewExitError(ExitFailure, "no match")
	assert.Equal(t, "no match", err.Error())
	assert.Equal(t, ExitFailure, err.Code)

	wrapped := WrapExitError(ExitCommandError, "open database", errors.New("boom"))
	assert.Contains(t, wrapped.Error(), "open database")
	assert.Contains(t, wrapped.Error(), "boom")
	assert.Equal(t, "boom", errors.Unwrap(wrapped).Error())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "no match")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad input")))

	// Wrapped ExitErrors still carry their code.
	wrapped := fmt.Errorf("context: %w", NewExitError(ExitFailure, "inner"))
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))

	// Anything unclassified is a command fault.
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("unknown")))
}

func TestReportError_TextGoesToStderr(t *testing.T) {
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewMatchCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)

	err := reportError(rootOpts, cmd, ExitCommandError, errCodeParse, "unbalanced group", nil)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errBuf.String(), "Error [E_PARSE]")
	assert.Empty(t, buf.String())
}

func TestReportError_JSONGoesToStdout(t *testing.T) {
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewMatchCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)

	err := reportError(rootOpts, cmd, ExitFailure, errCodeQuota, "size quota exceeded", nil)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, errCodeQuota, resp.Error.Code)
	assert.Empty(t, errBuf.String())
}
