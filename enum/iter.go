package enum

import "iter"

// All returns an iterator over the labels in stored order.
//
// The sequence is lazy, finite, and restartable: each call to All (and
// each range over the returned Seq) walks the same immutable backing
// slice from the start, so independent passes never interfere.
func (e *Enum) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range e.labels {
			if !yield(l) {
				return
			}
		}
	}
}

// Indexed returns an iterator over (position, label) pairs in stored
// order. Restartable, like All.
func (e *Enum) Indexed() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, l := range e.labels {
			if !yield(i, l) {
				return
			}
		}
	}
}
