package stream

import (
	"iter"

	"github.com/amp-labs/amp-collate/compare"
)

// pulled is one step of a fallible sequence.
type pulled[T any] struct {
	value T
	err   error
	ok    bool
}

func pull2[T any](seq iter.Seq2[T, error]) (func() pulled[T], func()) {
	next, stop := iter.Pull2(seq)

	return func() pulled[T] {
		v, err, ok := next()

		return pulled[T]{value: v, err: err, ok: ok}
	}, stop
}

// TryMerge is Merge over fallible sequences. The first error read from either
// input is yielded with the zero value and ends the output.
func TryMerge[T any](c compare.Comparator[T], left, right iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		nextLeft, stopLeft := pull2(left)
		defer stopLeft()

		nextRight, stopRight := pull2(right)
		defer stopRight()

		l, r := nextLeft(), nextRight()

		for l.ok || r.ok {
			if l.ok && l.err != nil {
				yield(zero, l.err)

				return
			}

			if r.ok && r.err != nil {
				yield(zero, r.err)

				return
			}

			switch {
			case !r.ok:
				if !yield(l.value, nil) {
					return
				}

				l = nextLeft()
			case !l.ok:
				if !yield(r.value, nil) {
					return
				}

				r = nextRight()
			default:
				switch c.Compare(l.value, r.value) {
				case compare.Equal:
					if !yield(l.value, nil) {
						return
					}

					l, r = nextLeft(), nextRight()
				case compare.Less:
					if !yield(l.value, nil) {
						return
					}

					l = nextLeft()
				default:
					if !yield(r.value, nil) {
						return
					}

					r = nextRight()
				}
			}
		}
	}
}

// TryDiff is Diff over fallible sequences. The first error read from either
// input is yielded with the zero value and ends the output. Once left is
// exhausted right is not read any further.
func TryDiff[T any](c compare.Comparator[T], left, right iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		nextLeft, stopLeft := pull2(left)
		defer stopLeft()

		nextRight, stopRight := pull2(right)
		defer stopRight()

		l, r := nextLeft(), nextRight()

		for l.ok {
			if l.err != nil {
				yield(zero, l.err)

				return
			}

			if r.ok && r.err != nil {
				yield(zero, r.err)

				return
			}

			if !r.ok {
				if !yield(l.value, nil) {
					return
				}

				l = nextLeft()

				continue
			}

			switch c.Compare(l.value, r.value) {
			case compare.Equal:
				l, r = nextLeft(), nextRight()
			case compare.Less:
				if !yield(l.value, nil) {
					return
				}

				l = nextLeft()
			default:
				r = nextRight()
			}
		}
	}
}
