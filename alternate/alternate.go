package alternate

import (
	"iter"

	"github.com/davidvella/seqx/sequence"
)

// Alternate merges two sequences by strict turn-taking: the first source
// supplies item one, the second item two, and so on. The merge finishes the
// moment either source is found exhausted on its turn; the other source is
// never drained afterward. Alternate is itself a sequence.Sequence and can
// feed any combinator or another adapter.
type Alternate[E any] struct {
	first  sequence.Sequence[E]
	second sequence.Sequence[E]

	nextFirst  func() (E, bool)
	nextSecond func() (E, bool)
	stopFirst  func()
	stopSecond func()

	odd      bool
	finished bool
}

// New returns an Alternate that owns both sources. Neither source may be
// used elsewhere once handed over.
func New[E any](first, second sequence.Sequence[E]) *Alternate[E] {
	return &Alternate[E]{first: first, second: second}
}

// Next pulls one item from whichever source's turn it is. The turn flips on
// every pull, including the pull that discovers exhaustion. Once a source
// comes up empty the adapter is finished: Next reports exhaustion forever
// and issues no further pulls to either source.
func (a *Alternate[E]) Next() (E, bool) {
	if a.finished {
		var zero E
		return zero, false
	}
	if a.nextFirst == nil {
		a.nextFirst, a.stopFirst = iter.Pull(a.first.All())
		a.nextSecond, a.stopSecond = iter.Pull(a.second.All())
	}

	var v E
	var ok bool
	if a.odd {
		v, ok = a.nextSecond()
	} else {
		v, ok = a.nextFirst()
	}
	a.odd = !a.odd

	if !ok {
		a.finished = true
		a.stopFirst()
		a.stopSecond()
	}
	return v, ok
}

// All traverses the merge from its current state. The finished state is
// sticky: a second traversal after exhaustion yields nothing.
func (a *Alternate[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := a.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
