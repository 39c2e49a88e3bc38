package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with the given args and returns the
// combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// decodeResponse parses the JSON envelope emitted with --format json.
func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	return resp
}

func TestRoot_RejectsInvalidFormat(t *testing.T) {
	_, err := runCLI(t, "--format", "xml", "draft", "list", "--db", testDB(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRoot_ListsSubcommands(t *testing.T) {
	out, err := runCLI(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"draft", "validate", "preview", "submit", "replay", "login", "status"} {
		assert.Contains(t, out, name)
	}
}

func TestExitError(t *testing.T) {
	plain := NewExitError(ExitFailure, "validation failed")
	assert.Equal(t, "validation failed", plain.Error())
	assert.Equal(t, ExitFailure, GetExitCode(plain))

	inner := errors.New("disk full")
	wrapped := WrapExitError(ExitCommandError, "open draft database", inner)
	assert.Equal(t, "open draft database: disk full", wrapped.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.ErrorIs(t, wrapped, inner)

	// Non-ExitErrors map to command errors.
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("boom")))
}

func TestOutputFormatter_JSONEnvelope(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}
	require.NoError(t, f.Success(map[string]string{"id": "d1"}))

	resp := decodeResponse(t, buf.String())
	assert.Equal(t, "ok", resp.Status)

	buf.Reset()
	require.NoError(t, f.Error("E001", "it broke", nil))
	resp = decodeResponse(t, buf.String())
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E001", resp.Error.Code)
}

func TestOutputFormatter_VerboseLogGoesToErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	diag := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: out, ErrWriter: diag, Verbose: true}

	f.VerboseLog("checked %d drafts", 3)
	assert.Empty(t, out.String())
	assert.Equal(t, "checked 3 drafts\n", diag.String())

	f.Verbose = false
	diag.Reset()
	f.VerboseLog("silent")
	assert.Empty(t, diag.String())
}
