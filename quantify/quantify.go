package quantify

import "iter"

// Predicate reports whether an item counts as a match. A predicate may close
// over mutable state: every combinator in this package invokes it in
// sequence order, exactly once per item inspected, and stops invoking it the
// moment the verdict is decided.
type Predicate[E any] func(E) bool

// AtLeast reports whether seq contains at least n items matching p.
// Consumption stops as soon as the n-th match is found, so AtLeast
// terminates on an unbounded sequence whenever n matches exist. With n <= 0
// the answer is true without pulling a single item.
func AtLeast[E any](seq iter.Seq[E], n int, p Predicate[E]) bool {
	if n <= 0 {
		return true
	}
	count := 0
	for v := range seq {
		if p(v) {
			count++
			if count == n {
				return true
			}
		}
	}
	return false
}

// AtMost reports whether seq contains no more than n items matching p.
// Consumption stops as soon as the (n+1)-th match is found; otherwise the
// whole sequence is drained to confirm no further match exists.
func AtMost[E any](seq iter.Seq[E], n int, p Predicate[E]) bool {
	count := 0
	for v := range seq {
		if p(v) {
			count++
			if count > n {
				return false
			}
		}
	}
	return true
}

// Exactly reports whether seq contains exactly n items matching p. It fails
// fast the instant the running match count exceeds n; reaching the verdict
// true always requires draining the sequence.
func Exactly[E any](seq iter.Seq[E], n int, p Predicate[E]) bool {
	count := 0
	for v := range seq {
		if p(v) {
			count++
			if count > n {
				return false
			}
		}
	}
	return count == n
}

// ExactlyBoth reports whether seq contains exactly m items matching pm and,
// simultaneously, exactly n items matching pn. Both predicates are applied
// to every item inspected, pm first then pn, even once one count has reached
// its target. The instant either running count exceeds its threshold the
// remaining items are left unconsumed and the answer is false.
func ExactlyBoth[E any](seq iter.Seq[E], m int, pm Predicate[E], n int, pn Predicate[E]) bool {
	mCount, nCount := 0, 0
	for v := range seq {
		if pm(v) {
			mCount++
		}
		if pn(v) {
			nCount++
		}
		if mCount > m || nCount > n {
			return false
		}
	}
	return mCount == m && nCount == n
}

// AllOrNone reports whether every item in seq matches p or no item does.
// The empty sequence is vacuously true. Consumption stops the instant both
// a match and a non-match have been seen.
func AllOrNone[E any](seq iter.Seq[E], p Predicate[E]) bool {
	var pass, fail bool
	for v := range seq {
		if p(v) {
			pass = true
		} else {
			fail = true
		}
		if pass && fail {
			return false
		}
	}
	return true
}

// PerfectlyBalanced reports whether seq has an even number of items and
// exactly half of them match p. The verdict is unknowable before
// exhaustion, so the sequence is always fully drained; do not call this on
// a sequence that may never terminate. The empty sequence is balanced.
func PerfectlyBalanced[E any](seq iter.Seq[E], p Predicate[E]) bool {
	total, matches := 0, 0
	for v := range seq {
		total++
		if p(v) {
			matches++
		}
	}
	return total%2 == 0 && matches == total/2
}
