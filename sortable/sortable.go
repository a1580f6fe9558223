package sortable

import (
	"github.com/amp-labs/amp-collate/compare"
)

// Sortable is implemented by element types that carry their own ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator returns the comparator strategy that orders T by its own
// Equals and LessThan methods. Equals is consulted first, so a type whose
// Equals is coarser than its LessThan still yields a consistent Equal.
func Comparator[T Sortable[T]]() compare.Comparator[T] { //nolint:ireturn
	return compare.Func[T](func(a, b T) compare.Ordering {
		switch {
		case a.Equals(b):
			return compare.Equal
		case a.LessThan(b):
			return compare.Less
		default:
			return compare.Greater
		}
	})
}
