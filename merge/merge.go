package merge

import (
	"iter"

	"github.com/davidvella/seqx/sequence"
)

// Tree merges any number of sorted sequences into one sorted sequence using
// a tournament (loser) tree, after bboreham/go-loser. The tree is laid out
// in an array: with M sources, leaves occupy positions M..2M-1 and internal
// slots 1..M-1; each internal slot records the loser of the contest between
// its children, so the overall winner surfaces at slot 0 with O(log M)
// comparisons per item.
type Tree[E any] struct {
	maxVal  E
	slots   []slot[E]
	sources []sequence.Sequence[E]
	less    func(E, E) bool
}

type slot[E any] struct {
	index int              // loser of this contest; winner for slot 0; -1 once the source is spent
	value E                // value held by that source, or maxVal once spent
	next  func() (E, bool) // leaf slots only
}

// New builds a merge tree over the given sources. maxVal must compare
// greater-or-equal to every value any source can yield; less defines the
// sort order the sources already follow.
func New[E any](sources []sequence.Sequence[E], maxVal E, less func(E, E) bool) *Tree[E] {
	return &Tree[E]{
		maxVal:  maxVal,
		slots:   make([]slot[E], len(sources)*2),
		sources: sources,
		less:    less,
	}
}

// All traverses the merged output in sort order. Each source is pulled
// lazily, one item ahead of what has been yielded.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.slots) == 0 {
			return
		}
		for i, src := range t.sources {
			next, stop := iter.Pull(src.All())
			t.slots[i+len(t.sources)].next = next
			//nolint:gocritic // bounded by the number of sources, not the stream.
			defer stop()
			t.advance(i + len(t.sources))
		}
		t.seed()
		for t.slots[t.slots[0].index].index != -1 &&
			yield(t.slots[0].value) {
			t.advance(t.slots[0].index)
			t.replay(t.slots[0].index)
		}
	}
}

// advance pulls the next value into leaf slot index, marking the slot spent
// when its source is exhausted.
func (t *Tree[E]) advance(index int) bool {
	s := &t.slots[index]
	if v, ok := s.next(); ok {
		s.value = v
		return true
	}
	s.value = t.maxVal
	s.index = -1
	return false
}

// seed runs the initial tournament and installs the winner at slot 0.
func (t *Tree[E]) seed() {
	winner := t.contest(1)
	t.slots[0].index = winner
	t.slots[0].value = t.slots[winner].value
}

// contest finds the winner of the subtree rooted at pos, recording losers in
// the internal slots on the way up. pos must be >= 1 and < len(t.slots).
func (t *Tree[E]) contest(pos int) int {
	slots := t.slots
	if pos >= len(slots)/2 {
		return pos
	}
	left := t.contest(pos * 2)
	right := t.contest(pos*2 + 1)
	var loser, winner int
	if t.less(slots[left].value, slots[right].value) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	slots[pos].index = loser
	slots[pos].value = slots[loser].value
	return winner
}

// replay re-runs the contests from leaf pos up to the root after that leaf
// took a new value, then installs the winner at slot 0.
func (t *Tree[E]) replay(pos int) {
	slots := t.slots
	winningValue := slots[pos].value
	for n := parent(pos); n != 0; n = parent(n) {
		s := &slots[n]
		if t.less(s.value, winningValue) {
			// The incumbent loser beats the challenger: swap them.
			s.index, pos = pos, s.index
			s.value, winningValue = winningValue, s.value
		}
	}
	slots[0].index = pos
	slots[0].value = winningValue
}

func parent(i int) int { return i >> 1 }
