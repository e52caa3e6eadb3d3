package sequence

import "iter"

// Sequence is the contract shared by every producer in this module: a lazy
// stream of items, pulled one at a time until exhaustion. Sequences are
// single-pass; once a traversal ends, later traversals observe an exhausted
// stream unless the concrete type documents otherwise.
type Sequence[E any] interface {
	All() iter.Seq[E]
}

// List is a slice-backed Sequence. It is the cheapest way to lift in-memory
// data into the combinators and is used heavily in tests and examples.
type List[E any] struct {
	items []E
}

// NewList returns a List yielding the given items in order.
func NewList[E any](items ...E) *List[E] {
	return &List[E]{items: items}
}

func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Adapted lifts a raw iter.Seq into the Sequence interface.
type Adapted[E any] struct {
	seq iter.Seq[E]
}

// FromSeq adapts a raw iter.Seq so it can be handed to adapters that take a
// Sequence. The single-pass nature of the underlying seq is preserved as-is.
func FromSeq[E any](seq iter.Seq[E]) *Adapted[E] {
	return &Adapted[E]{seq: seq}
}

func (a *Adapted[E]) All() iter.Seq[E] {
	return a.seq
}

// Span is a half-open integer range [Start, Stop).
type Span struct {
	start, stop int
}

// Range returns a Sequence of the integers start, start+1, ..., stop-1.
func Range(start, stop int) *Span {
	return &Span{start: start, stop: stop}
}

func (s *Span) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := s.start; i < s.stop; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Runes yields the runes of a string in order.
type Runes string

func (r Runes) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, c := range string(r) {
			if !yield(c) {
				return
			}
		}
	}
}
