package enumdef

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseCUE compiles CUE source into a definitions file.
// Uses the CUE SDK's Go API directly (not a CLI subprocess).
//
// Expected shape:
//
//	"package": "directions"
//	enums: [
//		{name: "Direction", labels: ["NORTH", "EAST", "SOUTH", "WEST"]},
//	]
//
// The package label is quoted because package is a CUE keyword.
// filename is used for error positions only.
func ParseCUE(src []byte, filename string) (*File, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling CUE definitions: %w", err)
	}

	f := &File{}

	// MakePath rather than ParsePath: package is a CUE keyword.
	pkgVal := v.LookupPath(cue.MakePath(cue.Str("package")))
	if !pkgVal.Exists() {
		return nil, fmt.Errorf("CUE definitions: %s: package is required", filename)
	}
	pkg, err := pkgVal.String()
	if err != nil {
		return nil, fmt.Errorf("CUE definitions: package: %w", err)
	}
	f.Package = pkg

	enumsVal := v.LookupPath(cue.ParsePath("enums"))
	if !enumsVal.Exists() {
		return nil, fmt.Errorf("CUE definitions: %s: enums is required", filename)
	}
	iter, err := enumsVal.List()
	if err != nil {
		return nil, fmt.Errorf("CUE definitions: enums must be a list: %w", err)
	}
	for iter.Next() {
		def, err := parseDefinition(iter.Value())
		if err != nil {
			return nil, err
		}
		f.Enums = append(f.Enums, def)
	}

	return f, nil
}

// LoadCUE reads and compiles a CUE definitions file from path.
func LoadCUE(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definitions file: %w", err)
	}
	return ParseCUE(src, path)
}

// parseDefinition extracts one enum definition from a CUE struct value.
func parseDefinition(v cue.Value) (Definition, error) {
	var def Definition

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return def, fmt.Errorf("CUE definitions: enum entry is missing name")
	}
	name, err := nameVal.String()
	if err != nil {
		return def, fmt.Errorf("CUE definitions: name: %w", err)
	}
	def.Name = name

	// doc is optional
	if docVal := v.LookupPath(cue.ParsePath("doc")); docVal.Exists() {
		doc, err := docVal.String()
		if err != nil {
			return def, fmt.Errorf("CUE definitions: %s: doc: %w", name, err)
		}
		def.Doc = doc
	}

	labelsVal := v.LookupPath(cue.ParsePath("labels"))
	if !labelsVal.Exists() {
		return def, fmt.Errorf("CUE definitions: %s: labels is required", name)
	}
	labelIter, err := labelsVal.List()
	if err != nil {
		return def, fmt.Errorf("CUE definitions: %s: labels must be a list: %w", name, err)
	}
	for labelIter.Next() {
		label, err := labelIter.Value().String()
		if err != nil {
			return def, fmt.Errorf("CUE definitions: %s: labels must be strings: %w", name, err)
		}
		def.Labels = append(def.Labels, label)
	}

	return def, nil
}
