package sequence

import "iter"

// Once wraps a source so the single-pass contract holds across traversals:
// items are pulled from the source exactly once, and after the source is
// exhausted every later pull and traversal reports exhaustion. A partial
// traversal may be resumed by ranging over All again; the wrapper picks up
// where the previous traversal stopped.
type Once[E any] struct {
	src  Sequence[E]
	next func() (E, bool)
	stop func()
	done bool
}

// NewOnce returns a single-pass view over src.
func NewOnce[E any](src Sequence[E]) *Once[E] {
	return &Once[E]{src: src}
}

// Next pulls the next item from the source. The second return is false once
// the source is exhausted, and stays false on every later call.
func (o *Once[E]) Next() (E, bool) {
	if o.done {
		var zero E
		return zero, false
	}
	if o.next == nil {
		o.next, o.stop = iter.Pull(o.src.All())
	}
	v, ok := o.next()
	if !ok {
		o.done = true
		o.stop()
	}
	return v, ok
}

func (o *Once[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := o.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
