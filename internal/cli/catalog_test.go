package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogDir(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "patterns.cue"), []byte(content), 0644))
	return dir
}

const validCatalog = `package patterns

patterns: {
	digits: {
		pattern:     "[0-9]+"
		description: "a run of digits"
		examples: {
			match: ["7", "042"]
			nomatch: ["", "x1"]
		}
	}
	answer: {
		pattern: "yes|no"
		mode:    "search"
		examples: {
			match: ["well, yes"]
			nomatch: ["maybe"]
		}
	}
}
`

const failingCatalog = `package patterns

patterns: {
	digits: {
		pattern: "[0-9]+"
		examples: {
			match: ["7", "x"]
		}
	}
}
`

func TestCatalogListCommand(t *testing.T) {
	dir := writeCatalogDir(t, validCatalog)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewCatalogListCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "answer (search): yes|no")
	assert.Contains(t, out, "digits (exact): [0-9]+")
	assert.Contains(t, out, "2 entries")
	// Entries come back sorted by name.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("answer")), bytes.Index(buf.Bytes(), []byte("digits")))
}

func TestCatalogListCommand_Verbose(t *testing.T) {
	dir := writeCatalogDir(t, validCatalog)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Verbose: true}
	cmd := NewCatalogListCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "a run of digits")
}

func TestCatalogListCommand_JSON(t *testing.T) {
	dir := writeCatalogDir(t, validCatalog)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewCatalogListCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp struct {
		Status string            `json:"status"`
		Data   CatalogListResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Entries, 2)
	assert.Equal(t, "answer", resp.Data.Entries[0].Name)
	assert.Equal(t, "search", resp.Data.Entries[0].Mode)
	assert.Equal(t, "digits", resp.Data.Entries[1].Name)
	assert.Equal(t, "a run of digits", resp.Data.Entries[1].Description)
}

func TestCatalogVerifyCommand_Passing(t *testing.T) {
	dir := writeCatalogDir(t, validCatalog)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewCatalogVerifyCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ 2 entries verified")
}

func TestCatalogVerifyCommand_Failing(t *testing.T) {
	dir := writeCatalogDir(t, failingCatalog)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewCatalogVerifyCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "1 entry failed")

	out := buf.String()
	assert.Contains(t, out, "✗ Catalog verification failed")
	assert.Contains(t, out, `example "x" should match "[0-9]+"`)
}

func TestCatalogVerifyCommand_LoadError(t *testing.T) {
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewCatalogVerifyCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errBuf.String(), "Error [E_CATALOG]")
}

func TestCatalogVerifyCommand_FailingJSON(t *testing.T) {
	dir := writeCatalogDir(t, failingCatalog)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewCatalogVerifyCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string              `json:"status"`
		Data   CatalogVerifyResult `json:"data"`
		Error  *CLIError           `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	assert.Equal(t, 1, resp.Data.Entries)
	require.NotNil(t, resp.Error)
	assert.Equal(t, errCodeVerify, resp.Error.Code)
}
