package enumdef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compassCUE = `
"package": "directions"
enums: [
	{
		name: "Direction"
		doc:  "Compass directions, clockwise from north."
		labels: ["NORTH", "EAST", "SOUTH", "WEST"]
	},
	{
		name: "Tilt"
		labels: ["UP", "DOWN"]
	},
]
`

func TestParseCUE(t *testing.T) {
	f, err := ParseCUE([]byte(compassCUE), "defs.cue")
	require.NoError(t, err)

	assert.Equal(t, "directions", f.Package)
	require.Len(t, f.Enums, 2)

	assert.Equal(t, "Direction", f.Enums[0].Name)
	assert.Equal(t, "Compass directions, clockwise from north.", f.Enums[0].Doc)
	assert.Equal(t, []string{"NORTH", "EAST", "SOUTH", "WEST"}, f.Enums[0].Labels)

	assert.Equal(t, "Tilt", f.Enums[1].Name)
	assert.Empty(t, f.Enums[1].Doc)
	assert.Equal(t, []string{"UP", "DOWN"}, f.Enums[1].Labels)
}

func TestParseCUEMissingPackage(t *testing.T) {
	src := `enums: [{name: "Direction", labels: ["NORTH"]}]`

	_, err := ParseCUE([]byte(src), "defs.cue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package is required")
}

func TestParseCUEMissingEnums(t *testing.T) {
	_, err := ParseCUE([]byte(`"package": "directions"`), "defs.cue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enums is required")
}

func TestParseCUEMissingLabels(t *testing.T) {
	src := `
"package": "directions"
enums: [{name: "Direction"}]
`
	_, err := ParseCUE([]byte(src), "defs.cue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "labels is required")
}

func TestParseCUENonStringLabel(t *testing.T) {
	src := `
"package": "directions"
enums: [{name: "Direction", labels: ["NORTH", 2]}]
`
	_, err := ParseCUE([]byte(src), "defs.cue")
	assert.Error(t, err)
}

func TestParseCUESyntaxError(t *testing.T) {
	_, err := ParseCUE([]byte(`"package": "unterminated`), "defs.cue")
	assert.Error(t, err)
}

func TestLoadCUE(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.cue")
	require.NoError(t, os.WriteFile(path, []byte(compassCUE), 0644))

	f, err := LoadCUE(path)
	require.NoError(t, err)
	assert.Equal(t, "directions", f.Package)
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "defs.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("package: p\nenums:\n  - name: E\n    labels: [A]\n"), 0644))
	cuePath := filepath.Join(dir, "defs.cue")
	require.NoError(t, os.WriteFile(cuePath, []byte(`{"package": "p", enums: [{name: "E", labels: ["A"]}]}`), 0644))

	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	fromCUE, err := Load(cuePath)
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromCUE)

	_, err = Load(filepath.Join(dir, "defs.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported definitions format")
}
