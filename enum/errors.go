package enum

import (
	"errors"
	"fmt"
	"strings"
)

// TypeValidationError reports constructor arguments that are not strings.
//
// Values holds every offending value, deduplicated by rendered form, in
// the order first encountered. Type validation runs before duplicate
// validation, so a construction attempt never reports both.
type TypeValidationError struct {
	Values []any
}

// Error implements the error interface.
func (e *TypeValidationError) Error() string {
	rendered := make([]string, len(e.Values))
	for i, v := range e.Values {
		rendered[i] = fmt.Sprintf("%#v", v)
	}
	return fmt.Sprintf("enum: labels must be strings, got: %s", strings.Join(rendered, ", "))
}

// DuplicateValueError reports constructor arguments that occur more than
// once.
//
// Values holds every repeated label, deduplicated, in the order its
// repetition was first encountered.
type DuplicateValueError struct {
	Values []string
}

// Error implements the error interface.
func (e *DuplicateValueError) Error() string {
	rendered := make([]string, len(e.Values))
	for i, v := range e.Values {
		rendered[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("enum: labels must be unique, repeated: %s", strings.Join(rendered, ", "))
}

// ErrEmptyReduce is returned by Reduce when the enum is empty and no
// initial value exists to seed the fold.
var ErrEmptyReduce = errors.New("enum: reduce of empty enum with no initial value")

// IsTypeValidationError reports whether err is a *TypeValidationError.
// Uses errors.As to handle wrapped errors.
func IsTypeValidationError(err error) bool {
	var te *TypeValidationError
	return errors.As(err, &te)
}

// IsDuplicateValueError reports whether err is a *DuplicateValueError.
// Uses errors.As to handle wrapped errors.
func IsDuplicateValueError(err error) bool {
	var de *DuplicateValueError
	return errors.As(err, &de)
}
