// Package sequence defines the lazy, single-pass sequence contract shared by
// the rest of the module, along with a handful of in-memory sources.
//
// A Sequence produces items one at a time through Go's iter.Seq and supports
// one full traversal. Sequences may be finite or unbounded; consumers that
// can short-circuit (see package quantify) are safe to run over unbounded
// sources.
//
// Key features:
//   - Sequence[E] interface: All() iter.Seq[E]
//   - List: slice-backed source for in-memory data
//   - Range: half-open integer range source
//   - Runes: rune source over a string
//   - FromSeq: adapt a raw iter.Seq to the interface
//   - Once: enforce the single-pass contract across traversals
//
// Basic usage:
//
//	seq := sequence.NewList(1, 2, 3)
//	for v := range seq.All() {
//	    fmt.Println(v)
//	}
//
// Sources backed by external containers and storage live in the
// subpackages btreeseq and pebbleseq.
package sequence
