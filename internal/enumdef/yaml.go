package enumdef

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a definitions file from r.
//
// Expected shape:
//
//	package: directions
//	enums:
//	  - name: Direction
//	    doc: Compass directions, clockwise from north.
//	    labels: [NORTH, EAST, SOUTH, WEST]
//
// Unknown keys are rejected so typos surface as parse errors instead of
// silently dropped fields.
func ParseYAML(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing YAML definitions: %w", err)
	}
	return &f, nil
}

// LoadYAML reads and decodes a YAML definitions file from path.
func LoadYAML(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening definitions file: %w", err)
	}
	defer r.Close()
	return ParseYAML(r)
}
