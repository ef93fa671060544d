package enumdef

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads a definitions file, dispatching on the file extension.
// Supported extensions: .yaml, .yml, .cue.
func Load(path string) (*File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".cue":
		return LoadCUE(path)
	default:
		return nil, fmt.Errorf("unsupported definitions format %q (want .yaml, .yml, or .cue)", filepath.Ext(path))
	}
}
