package enumdef

import (
	"fmt"
	"regexp"
)

// Validation error codes (E200-E299)
const (
	ErrEnumNameEmpty     = "E201" // enum name is required
	ErrEnumNameInvalid   = "E202" // enum name is not a valid exported Go identifier
	ErrEnumNoLabels      = "E203" // enum must have at least one label
	ErrLabelEmpty        = "E204" // label must be non-empty
	ErrLabelDuplicate    = "E205" // label repeats within one enum
	ErrEnumNameDuplicate = "E206" // enum name repeats within the file
	ErrPackageInvalid    = "E207" // missing or invalid package name
	ErrNoEnums           = "E208" // file must define at least one enum
)

// ValidationError represents one schema violation in a definitions file.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

var (
	exportedIdent = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)
	packageIdent  = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// Validate checks a definitions file against the schema rules.
// Returns all errors found (does not fail-fast).
func Validate(f *File) []ValidationError {
	var errs []ValidationError

	// E207: package name must be a plausible Go package identifier
	if !packageIdent.MatchString(f.Package) {
		errs = append(errs, ValidationError{
			Field:   "package",
			Message: fmt.Sprintf("package name %q must be a lower-case Go identifier", f.Package),
			Code:    ErrPackageInvalid,
		})
	}

	// E208: an empty file has nothing to generate
	if len(f.Enums) == 0 {
		errs = append(errs, ValidationError{
			Field:   "enums",
			Message: "at least one enum is required",
			Code:    ErrNoEnums,
		})
	}

	seenNames := make(map[string]bool)
	for i, def := range f.Enums {
		field := fmt.Sprintf("enums[%d]", i)

		// E201/E202: name required, must be exported
		switch {
		case def.Name == "":
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: "enum name is required",
				Code:    ErrEnumNameEmpty,
			})
		case !exportedIdent.MatchString(def.Name):
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("enum name %q must be an exported Go identifier", def.Name),
				Code:    ErrEnumNameInvalid,
			})
		}

		// E206: enum names unique within the file
		if def.Name != "" {
			if seenNames[def.Name] {
				errs = append(errs, ValidationError{
					Field:   field + ".name",
					Message: fmt.Sprintf("enum %q is defined more than once", def.Name),
					Code:    ErrEnumNameDuplicate,
				})
			}
			seenNames[def.Name] = true
		}

		// E203: at least one label
		if len(def.Labels) == 0 {
			errs = append(errs, ValidationError{
				Field:   field + ".labels",
				Message: "at least one label is required",
				Code:    ErrEnumNoLabels,
			})
		}

		seenLabels := make(map[string]bool)
		for j, label := range def.Labels {
			labelField := fmt.Sprintf("%s.labels[%d]", field, j)

			// E204: labels non-empty
			if label == "" {
				errs = append(errs, ValidationError{
					Field:   labelField,
					Message: "label must be non-empty",
					Code:    ErrLabelEmpty,
				})
				continue
			}

			// E205: labels distinct within one enum
			if seenLabels[label] {
				errs = append(errs, ValidationError{
					Field:   labelField,
					Message: fmt.Sprintf("label %q repeats", label),
					Code:    ErrLabelDuplicate,
				})
			}
			seenLabels[label] = true
		}
	}

	return errs
}
