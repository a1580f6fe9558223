// Package stream combines collated sequences: the union (Merge) and difference
// (Diff) of two streams that are each sorted under the same comparator.
//
// Both inputs must be sorted ascending under the comparator. If either is not,
// the order of the output is unspecified. Inputs are consumed lazily, one value at
// a time, so the streams may be arbitrarily long.
//
// A *collate.Collator[T] is a compare.Comparator[[]T], so streams of rows merge
// with the same ordering the collator bisects them with.
package stream

import (
	"iter"

	"github.com/amp-labs/amp-collate/compare"
)

// Merge returns the sorted union of left and right. When two values compare Equal
// only the one from left is emitted, so duplicates shared by both sides collapse
// while duplicates within one side are kept.
func Merge[T any](c compare.Comparator[T], left, right iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		nextLeft, stopLeft := iter.Pull(left)
		defer stopLeft()

		nextRight, stopRight := iter.Pull(right)
		defer stopRight()

		l, okLeft := nextLeft()
		r, okRight := nextRight()

		for okLeft && okRight {
			switch c.Compare(l, r) {
			case compare.Equal:
				if !yield(l) {
					return
				}

				l, okLeft = nextLeft()
				r, okRight = nextRight()
			case compare.Less:
				if !yield(l) {
					return
				}

				l, okLeft = nextLeft()
			default:
				if !yield(r) {
					return
				}

				r, okRight = nextRight()
			}
		}

		for ; okLeft; l, okLeft = nextLeft() {
			if !yield(l) {
				return
			}
		}

		for ; okRight; r, okRight = nextRight() {
			if !yield(r) {
				return
			}
		}
	}
}

// Diff returns the values of left that have no Equal counterpart in right.
// Each value of right cancels at most one value of left.
func Diff[T any](c compare.Comparator[T], left, right iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		nextLeft, stopLeft := iter.Pull(left)
		defer stopLeft()

		nextRight, stopRight := iter.Pull(right)
		defer stopRight()

		l, okLeft := nextLeft()
		r, okRight := nextRight()

		for okLeft {
			if !okRight {
				if !yield(l) {
					return
				}

				l, okLeft = nextLeft()

				continue
			}

			switch c.Compare(l, r) {
			case compare.Equal:
				// present on the right, drop it
				l, okLeft = nextLeft()
				r, okRight = nextRight()
			case compare.Less:
				if !yield(l) {
					return
				}

				l, okLeft = nextLeft()
			default:
				// the right side may still catch up
				r, okRight = nextRight()
			}
		}
	}
}
