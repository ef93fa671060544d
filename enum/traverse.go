package enum

import "fmt"

// Filter returns a new Enum containing only the labels for which pred
// returns true, in stored order. The receiver is unchanged.
//
// The result is built through the normal constructor. A subset of
// distinct strings is always distinct strings, so the revalidation cannot
// fail.
func (e *Enum) Filter(pred func(string) bool) *Enum {
	kept := make([]any, 0, len(e.labels))
	for _, l := range e.labels {
		if pred(l) {
			kept = append(kept, l)
		}
	}
	out, err := New(kept...)
	if err != nil {
		panic(fmt.Sprintf("enum: Filter: revalidation of a valid subset failed: %v", err))
	}
	return out
}

// Some reports whether pred returns true for at least one label. It
// short-circuits on the first match and is false for an empty enum.
func (e *Enum) Some(pred func(string) bool) bool {
	for _, l := range e.labels {
		if pred(l) {
			return true
		}
	}
	return false
}

// Every reports whether pred returns true for all labels. It
// short-circuits on the first miss and is true for an empty enum.
func (e *Enum) Every(pred func(string) bool) bool {
	for _, l := range e.labels {
		if !pred(l) {
			return false
		}
	}
	return true
}

// ForEach invokes fn once per label, in stored order, for side effects
// only.
func (e *Enum) ForEach(fn func(string)) {
	for _, l := range e.labels {
		fn(l)
	}
}

// Reduce folds the labels left to right with no initial value: the first
// label seeds the accumulator and folding starts from the second. On an
// empty enum there is nothing to seed with and Reduce returns
// ErrEmptyReduce.
//
// For a fold with an explicit initial value, or an accumulator of a type
// other than string, use the package-level Reduce function.
func (e *Enum) Reduce(fn func(acc, v string) string) (string, error) {
	if len(e.labels) == 0 {
		return "", ErrEmptyReduce
	}
	acc := e.labels[0]
	for _, l := range e.labels[1:] {
		acc = fn(acc, l)
	}
	return acc, nil
}

// Map returns fn applied to each label, in stored order, as a plain
// slice. The result is deliberately not wrapped in an Enum: mapped values
// need not be unique strings.
//
// Map is a package function rather than a method because Go methods
// cannot introduce type parameters.
func Map[T any](e *Enum, fn func(string) T) []T {
	out := make([]T, len(e.labels))
	for i, l := range e.labels {
		out[i] = fn(l)
	}
	return out
}

// Reduce folds the labels left to right, seeding the accumulator with
// init. An empty enum returns init unchanged.
func Reduce[A any](e *Enum, init A, fn func(A, string) A) A {
	acc := init
	for _, l := range e.labels {
		acc = fn(acc, l)
	}
	return acc
}
