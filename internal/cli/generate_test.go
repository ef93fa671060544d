package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToStdout(t *testing.T) {
	path := writeDefs(t, "defs.yaml", validYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "// Code generated by enumgen. DO NOT EDIT.")
	assert.Contains(t, out, "package directions")
	assert.Contains(t, out, "var Direction = enum.MustOf(")
	assert.Contains(t, out, `const DirectionNorth = "NORTH"`)
}

func TestGenerateToFile(t *testing.T) {
	path := writeDefs(t, "defs.yaml", validYAML)
	outPath := filepath.Join(t.TempDir(), "directions.go")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path, "-o", outPath})

	err := cmd.Execute()
	require.NoError(t, err)

	src, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(src), "var Direction = enum.MustOf(")
}

func TestGeneratePackageOverride(t *testing.T) {
	path := writeDefs(t, "defs.yaml", validYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path, "--package", "compass"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "package compass")
}

func TestGenerateFromCUE(t *testing.T) {
	path := writeDefs(t, "defs.cue", `{"package": "directions", enums: [{name: "Direction", labels: ["NORTH", "EAST"]}]}`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `const DirectionEast = "EAST"`)
}

func TestGenerateRefusesInvalidDefinitions(t *testing.T) {
	path := writeDefs(t, "defs.yaml", invalidYAML)

	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, errBuf.String(), "E202")
	assert.NotContains(t, buf.String(), "DO NOT EDIT", "no code is emitted for invalid input")
}

func TestGenerateNonExistentFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
