// Package pebbleseq exposes a Pebble keyspace as a lazy sequence of
// key-value entries, so counting queries can run against on-disk data
// without materializing it.
//
// Key features:
//   - Entries are yielded in key order, one at a time
//   - Optional [LowerBound, UpperBound) scan bounds
//   - Keys and values are copied out of the iterator's buffers, so entries
//     outlive the pull that produced them
//   - Short-circuiting consumers (package quantify) close the iterator as
//     soon as their verdict is decided
//
// Basic usage:
//
//	scan := pebbleseq.New(db, &pebbleseq.Options{
//	    LowerBound: []byte("user/"),
//	    UpperBound: []byte("user0"),
//	})
//	tombstoned := func(e pebbleseq.Entry) bool { return len(e.Value) == 0 }
//	ok := quantify.AtMost(scan.All(), 10, tombstoned)
//	if err := scan.Err(); err != nil {
//	    // iterator failure, verdict unreliable
//	}
//
// A Scan is single-pass in spirit: each All traversal opens a fresh
// iterator, so reuse reads the store again rather than resuming.
package pebbleseq
