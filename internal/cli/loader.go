package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/enumset/internal/enumdef"
)

// Loader error codes (E001-E099)
const (
	ErrCodeNotFound    = "E001" // definitions file not found
	ErrCodeUnsupported = "E002" // unsupported file extension
	ErrCodeParse       = "E003" // definitions file failed to parse
	ErrCodeWrite       = "E004" // output file could not be written
	ErrCodeGenerate    = "E005" // code generation failed
)

// LoadError represents an error that occurred while loading a
// definitions file.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadDefinitions loads a definitions file for a CLI command, mapping
// failures to coded LoadErrors.
func LoadDefinitions(path string) (*enumdef.File, *LoadError) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("definitions file not found: %s", path)}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".cue":
		// handled by enumdef.Load
	default:
		return nil, &LoadError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported definitions format %q (want .yaml, .yml, or .cue)", filepath.Ext(path)),
		}
	}

	f, err := enumdef.Load(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: err.Error()}
	}
	return f, nil
}
