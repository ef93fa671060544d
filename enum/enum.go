// Package enum provides an immutable, ordered, uniquified collection of
// string labels - an enumeration type for code that needs named constant
// sets (directions, states, roles) without the boilerplate of hand-rolled
// const blocks.
//
// An Enum is built once, validated once, and never changes:
//
//	compass := enum.MustOf("NORTH", "EAST", "SOUTH", "WEST")
//	compass.Next("EAST")          // "SOUTH", true
//	compass.Has("UP")             // false
//	compass.Compare("NORTH", "WEST") // -3, true
//
// Construction is atomic: either every invariant holds (all labels are
// strings, all labels are distinct) and a frozen instance is returned, or
// nothing is returned and a validation error describes every offending
// value. After construction all operations are pure reads, so an Enum is
// safe to share across goroutines without synchronization.
//
// Absent-value cases (lookup misses, out-of-range positions, neighbors of
// boundary elements) are reported through a comma-ok second return, never
// through panics or errors. Callers must check the bool.
package enum

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Enum is an ordered set of distinct string labels, frozen at
// construction. The zero value is not useful; build instances with New,
// Of, or MustOf.
//
// Order is significant and defines all positional semantics (First, Last,
// Next, Previous, IndexOf, Compare). Labels compare by value.
type Enum struct {
	labels []string
	index  map[string]int
}

// New constructs an Enum from the given values.
//
// Validation runs in two stages, in order:
//  1. Every value must be a string. Otherwise New returns a
//     *TypeValidationError listing each offending value.
//  2. All strings must be pairwise distinct. Otherwise New returns a
//     *DuplicateValueError listing each value that repeats.
//
// On success the labels are stored in argument order. New never returns a
// partially built Enum: the result is nil whenever the error is non-nil.
func New(values ...any) (*Enum, error) {
	var wrong []any
	// Keyed by rendered form: arbitrary values may not be hashable.
	wrongSeen := make(map[string]bool)
	for _, v := range values {
		if _, ok := v.(string); ok {
			continue
		}
		key := fmt.Sprintf("%#v", v)
		if !wrongSeen[key] {
			wrongSeen[key] = true
			wrong = append(wrong, v)
		}
	}
	if len(wrong) > 0 {
		return nil, &TypeValidationError{Values: wrong}
	}

	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = v.(string)
	}

	index := make(map[string]int, len(labels))
	var dups []string
	dupSeen := make(map[string]bool)
	for i, l := range labels {
		if _, ok := index[l]; ok {
			if !dupSeen[l] {
				dupSeen[l] = true
				dups = append(dups, l)
			}
			continue
		}
		index[l] = i
	}
	if len(dups) > 0 {
		return nil, &DuplicateValueError{Values: dups}
	}

	return &Enum{labels: labels, index: index}, nil
}

// Of is a named factory equivalent to New. It exists for call sites that
// read better with a noun, e.g. enum.Of("LOW", "MEDIUM", "HIGH").
func Of(values ...any) (*Enum, error) {
	return New(values...)
}

// MustOf is like Of but panics on validation failure. Intended for
// package-level variable declarations and generated code, where the label
// list is a literal and a validation error is a programming bug.
func MustOf(values ...any) *Enum {
	e, err := New(values...)
	if err != nil {
		panic(fmt.Sprintf("enum: MustOf: %v", err))
	}
	return e
}

// Len returns the number of labels.
func (e *Enum) Len() int {
	return len(e.labels)
}

// First returns the label at position 0. The second return is false when
// the enum is empty.
func (e *Enum) First() (string, bool) {
	return e.At(0)
}

// Last returns the label at the final position. The second return is
// false when the enum is empty.
func (e *Enum) Last() (string, bool) {
	return e.At(len(e.labels) - 1)
}

// At returns the label at position i. Out-of-range positions report
// ("", false) rather than panicking.
func (e *Enum) At(i int) (string, bool) {
	if i < 0 || i >= len(e.labels) {
		return "", false
	}
	return e.labels[i], true
}

// Has reports whether v is one of the labels.
func (e *Enum) Has(v string) bool {
	_, ok := e.index[v]
	return ok
}

// IndexOf returns the zero-based position of v, or -1 if v is absent.
func (e *Enum) IndexOf(v string) int {
	i, ok := e.index[v]
	if !ok {
		return -1
	}
	return i
}

// Next returns the label immediately following v. The second return is
// false when v is absent or v is the last label.
func (e *Enum) Next(v string) (string, bool) {
	i, ok := e.index[v]
	if !ok {
		return "", false
	}
	return e.At(i + 1)
}

// Previous returns the label immediately preceding v. The second return
// is false when v is absent or v is the first label.
func (e *Enum) Previous(v string) (string, bool) {
	i, ok := e.index[v]
	if !ok {
		return "", false
	}
	return e.At(i - 1)
}

// Compare returns position(a) - position(b). The second return is false
// when either label is absent, in which case the int is 0 and carries no
// meaning.
//
// Compare is NOT a total-order comparator safe for generic sort
// callbacks: absent inputs yield the false case instead of a number, and
// callers must handle that explicitly.
func (e *Enum) Compare(a, b string) (int, bool) {
	ia, ok := e.index[a]
	if !ok {
		return 0, false
	}
	ib, ok := e.index[b]
	if !ok {
		return 0, false
	}
	return ia - ib, true
}

// IsFirst reports whether v is the label at position 0. It is plain
// false, not an absent-value case, when the enum is empty or v is absent.
func (e *Enum) IsFirst(v string) bool {
	i, ok := e.index[v]
	return ok && i == 0
}

// IsLast reports whether v is the label at the final position. It is
// plain false, not an absent-value case, when the enum is empty or v is
// absent.
func (e *Enum) IsLast(v string) bool {
	i, ok := e.index[v]
	return ok && i == len(e.labels)-1
}

// Random returns one label chosen via a uniform random index. The second
// return is false when the enum is empty.
func (e *Enum) Random() (string, bool) {
	if len(e.labels) == 0 {
		return "", false
	}
	return e.labels[rand.IntN(len(e.labels))], true
}

// Values returns a copy of the labels in stored order. Mutating the
// returned slice does not affect the enum.
func (e *Enum) Values() []string {
	out := make([]string, len(e.labels))
	copy(out, e.labels)
	return out
}

// String renders the enum as Enum("a", "b", ...) with each label quoted.
// The rendering is for debugging and logs, not for round-trip parsing.
func (e *Enum) String() string {
	var b strings.Builder
	b.WriteString("Enum(")
	for i, l := range e.labels {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", l)
	}
	b.WriteString(")")
	return b.String()
}
