package pebbleseq

import (
	"bytes"
	"iter"

	"github.com/cockroachdb/pebble"
)

// Entry is one key-value pair read from the store. Key and Value are copies
// and remain valid after the traversal moves on.
type Entry struct {
	Key   []byte
	Value []byte
}

// Options bounds a scan. Both bounds are optional; LowerBound is inclusive,
// UpperBound exclusive, matching pebble.IterOptions.
type Options struct {
	LowerBound []byte
	UpperBound []byte
}

// Scan is a lazy, single-pass sequence of entries in key order. The
// underlying iterator is opened on first pull and closed when the traversal
// ends; check Err afterward for iterator failures.
type Scan struct {
	db   *pebble.DB
	opts Options
	err  error
}

// New returns a scan over db. A nil opts scans the whole keyspace.
func New(db *pebble.DB, opts *Options) *Scan {
	s := &Scan{db: db}
	if opts != nil {
		s.opts = *opts
	}
	return s
}

func (s *Scan) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		it, err := s.db.NewIter(&pebble.IterOptions{
			LowerBound: s.opts.LowerBound,
			UpperBound: s.opts.UpperBound,
		})
		if err != nil {
			s.err = err
			return
		}
		defer it.Close()

		for it.First(); it.Valid(); it.Next() {
			entry := Entry{
				Key:   bytes.Clone(it.Key()),
				Value: bytes.Clone(it.Value()),
			}
			if !yield(entry) {
				return
			}
		}
		s.err = it.Error()
	}
}

// Err reports the first error encountered by a finished traversal. It is
// nil while a traversal is still in flight and nil after a clean one.
func (s *Scan) Err() error {
	return s.err
}
