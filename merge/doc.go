// Package merge implements a lazy k-way ordered merge of sorted sequences
// using a tournament tree (loser tree), based on the work by Bryan Boreham
// (https://github.com/bboreham/go-loser).
//
// Where package alternate interleaves two sequences by position, merge
// combines any number of sequences by value: the sources must already be
// sorted, and the output is their sorted union, produced with O(log k)
// comparisons per item and one item of lookahead per source.
//
// Basic usage:
//
//	tree := merge.New(
//	    []sequence.Sequence[int]{
//	        sequence.NewList(1, 4, 7),
//	        sequence.NewList(2, 5, 8),
//	        sequence.NewList(3, 6, 9),
//	    },
//	    math.MaxInt,
//	    func(a, b int) bool { return a < b },
//	)
//	for v := range tree.All() {
//	    fmt.Println(v) // 1 through 9
//	}
//
// The maxVal sentinel must sort greater-or-equal to anything a source can
// yield; it marks spent sources inside the tree and is never emitted.
package merge
