// Package quantify implements terminal, predicate-counting queries over lazy
// sequences. Each combinator drives its sequence exactly as far as the
// verdict requires and no further, which makes the short-circuiting
// combinators safe over unbounded sequences.
//
// Key features:
//   - AtLeast / AtMost: threshold checks with early exit at the deciding match
//   - Exactly / ExactlyBoth: exact-count checks that fail fast on overshoot
//   - AllOrNone: uniformity check, false at the first mixed evidence
//   - PerfectlyBalanced: even split check (full traversal by necessity)
//   - Predicates may be stateful closures; invocation order and count are
//     part of each combinator's contract
//
// Basic usage:
//
//	evens := func(v int) bool { return v%2 == 0 }
//
//	quantify.AtLeast(sequence.NewList(2, 3, 2, 4).All(), 3, evens)  // true
//	quantify.Exactly(sequence.NewList(1, 2, 3).All(), 1, evens)     // true
//	quantify.PerfectlyBalanced(sequence.Range(0, 10).All(), evens)  // true
//
// Every combinator consumes its sequence: after a call returns, the sequence
// must not be reused, even when the combinator returned before exhaustion.
package quantify
