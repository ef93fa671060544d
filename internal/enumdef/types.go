// Package enumdef loads and validates enum definition files.
//
// Definitions describe named label sets as data (YAML or CUE) so constant
// sets can live next to specs and be generated into Go source by enumgen.
// Loading and validation are separate steps: Load parses a file into a
// *File, Validate checks it against the schema rules and returns every
// violation it finds.
package enumdef

// File represents one parsed definitions file.
type File struct {
	// Package is the Go package name for generated output.
	Package string `yaml:"package" json:"package"`

	// Enums lists the definitions in declaration order. Order is
	// significant: it becomes the label order of the generated enums.
	Enums []Definition `yaml:"enums" json:"enums"`
}

// Definition represents one named enum.
type Definition struct {
	// Name is the exported Go identifier for the generated variable.
	Name string `yaml:"name" json:"name"`

	// Doc is an optional one-line description, emitted as the doc
	// comment of the generated variable.
	Doc string `yaml:"doc,omitempty" json:"doc,omitempty"`

	// Labels lists the member labels in order.
	Labels []string `yaml:"labels" json:"labels"`
}
