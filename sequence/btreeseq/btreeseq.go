package btreeseq

import (
	"iter"

	"github.com/google/btree"
)

// Tree is an ascending view over a *btree.BTreeG, exposed as a lazy
// sequence. The tree is read, never modified; mutating it during a
// traversal is the caller's bug.
type Tree[E any] struct {
	tree *btree.BTreeG[E]
	ge   *E
	lt   *E
}

// New returns a sequence over every item in t, in ascending order.
func New[E any](t *btree.BTreeG[E]) *Tree[E] {
	return &Tree[E]{tree: t}
}

// NewRange returns a sequence over the items of t in [ge, lt), in ascending
// order.
func NewRange[E any](t *btree.BTreeG[E], ge, lt E) *Tree[E] {
	return &Tree[E]{tree: t, ge: &ge, lt: &lt}
}

func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if t.ge != nil {
			t.tree.AscendRange(*t.ge, *t.lt, func(item E) bool {
				return yield(item)
			})
			return
		}
		t.tree.Ascend(func(item E) bool {
			return yield(item)
		})
	}
}
