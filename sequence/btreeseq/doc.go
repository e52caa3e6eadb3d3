// Package btreeseq adapts google/btree B-trees to the sequence contract, so
// container-held sorted data can feed the combinators without being copied
// into a slice first.
//
// Basic usage:
//
//	tree := btree.NewG[int](2, func(a, b int) bool { return a < b })
//	tree.ReplaceOrInsert(3)
//	tree.ReplaceOrInsert(1)
//	tree.ReplaceOrInsert(2)
//
//	quantify.Exactly(btreeseq.New(tree).All(), 1, func(v int) bool {
//	    return v%2 == 0
//	}) // true
//
// NewRange restricts the traversal to [ge, lt), matching the tree's own
// AscendRange bounds.
package btreeseq
