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

const validYAML = `package: directions
enums:
  - name: Direction
    doc: Compass directions, clockwise from north.
    labels: [NORTH, EAST, SOUTH, WEST]
`

const invalidYAML = `package: directions
enums:
  - name: direction
    labels: [NORTH, NORTH]
`

func writeDefs(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateValidFile(t *testing.T) {
	path := writeDefs(t, "defs.yaml", validYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "✓ All definitions valid")
}

func TestValidateValidFileJSON(t *testing.T) {
	path := writeDefs(t, "defs.yaml", validYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestValidateInvalidFile(t *testing.T) {
	path := writeDefs(t, "defs.yaml", invalidYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	output := buf.String()
	assert.Contains(t, output, "E202") // unexported enum name
	assert.Contains(t, output, "E205") // duplicate label
	assert.Contains(t, output, "✗ 2 validation error(s)")
}

func TestValidateInvalidFileJSON(t *testing.T) {
	path := writeDefs(t, "defs.yaml", invalidYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	// The envelope status agrees with the exit code.
	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E202", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "2 validation error(s)")
	assert.NotNil(t, resp.Error.Details)
}

func TestValidateCUEFile(t *testing.T) {
	path := writeDefs(t, "defs.cue", `{"package": "directions", enums: [{name: "Direction", labels: ["NORTH", "EAST"]}]}`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "✓ All definitions valid")
}

func TestValidateNonExistentFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "E001") // ErrCodeNotFound
	assert.Contains(t, buf.String(), "not found")
}

func TestValidateUnsupportedExtension(t *testing.T) {
	path := writeDefs(t, "defs.toml", "package = 'x'")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E002") // ErrCodeUnsupported
}

func TestValidateMalformedYAML(t *testing.T) {
	path := writeDefs(t, "defs.yaml", "enums: [not: closed")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E003") // ErrCodeParse
}
