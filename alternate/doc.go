// Package alternate implements a two-source merge that interleaves items in
// strict turns: first, second, first, second. It models paired alternation
// rather than a length-preserving zip — the merge ends at the first
// exhausted pull from either source, leaving the longer source undrained.
//
// Key features:
//   - Alternation always starts with the first source
//   - Terminates at the first exhaustion encountered, on either side
//   - Exhaustion is sticky: once finished, the adapter stays finished and
//     never pulls from either source again
//   - Satisfies sequence.Sequence, so the result composes with package
//     quantify and with other adapters
//
// Basic usage:
//
//	merged := alternate.New(
//	    sequence.NewList(1, 3),
//	    sequence.NewList(2, 4),
//	)
//	for v := range merged.All() {
//	    fmt.Println(v) // 1, 2, 3, 4
//	}
//
// With sources of unequal length the output stops two items after the last
// paired item: alternate.New(NewList(1), NewList(2, 4, 6)) yields 1, 2 and
// then finishes, because the first source is found exhausted on its second
// turn.
package alternate
