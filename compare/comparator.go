package compare

import (
	"cmp"
)

// Comparator is a strategy for ordering two values of type T.
//
// Implementations must be deterministic and define a total order: for every a, b and c,
// exactly one of Less, Equal or Greater holds for (a, b), Compare(a, b) is the reverse of
// Compare(b, a), and the relation is transitive. Bisection over data that was ordered with a
// comparator violating these rules yields unspecified (but never out-of-range) results.
//
// Comparators hold no per-call state, so a single instance may be shared by any number of
// collators and goroutines.
type Comparator[T any] interface {
	Compare(a, b T) Ordering
}

// Func adapts an ordinary function to the Comparator interface.
type Func[T any] func(a, b T) Ordering

// Compile-time check that Func implements Comparator.
var _ Comparator[int] = Func[int](nil)

// Compare calls f(a, b).
func (f Func[T]) Compare(a, b T) Ordering {
	return f(a, b)
}

// Natural returns the comparator that uses the intrinsic ordering of T.
// Floating point NaN values sort before every other value and compare equal to each other.
func Natural[T cmp.Ordered]() Comparator[T] { //nolint:ireturn
	return Func[T](func(a, b T) Ordering {
		return FromInt(cmp.Compare(a, b))
	})
}

// FromCmp adapts a three-way comparison function such as strings.Compare,
// bytes.Compare or a slices.SortFunc callback.
func FromCmp[T any](fn func(a, b T) int) Comparator[T] { //nolint:ireturn
	return Func[T](func(a, b T) Ordering {
		return FromInt(fn(a, b))
	})
}

// FromLess builds a comparator from a strict "less than" predicate.
// Two values are Equal when neither is less than the other.
func FromLess[T any](less func(a, b T) bool) Comparator[T] { //nolint:ireturn
	return Func[T](func(a, b T) Ordering {
		switch {
		case less(a, b):
			return Less
		case less(b, a):
			return Greater
		default:
			return Equal
		}
	})
}

type reversed[T any] struct {
	inner Comparator[T]
}

func (r reversed[T]) Compare(a, b T) Ordering {
	return r.inner.Compare(a, b).Reverse()
}

// Reverse returns a comparator that orders values the opposite way to c.
// Reversing a reversed comparator returns the original one.
func Reverse[T any](c Comparator[T]) Comparator[T] { //nolint:ireturn
	if r, ok := c.(reversed[T]); ok {
		return r.inner
	}

	return reversed[T]{inner: c}
}

// Then returns a comparator that orders by primary and falls back to the
// secondary comparators, in order, whenever the previous ones report Equal.
func Then[T any](primary Comparator[T], secondary ...Comparator[T]) Comparator[T] { //nolint:ireturn
	if len(secondary) == 0 {
		return primary
	}

	chain := append([]Comparator[T]{primary}, secondary...)

	return Func[T](func(a, b T) Ordering {
		for _, c := range chain {
			if o := c.Compare(a, b); o != Equal {
				return o
			}
		}

		return Equal
	})
}

// By orders values of type T by a key derived from each of them.
//
// Example:
//
//	byLength := compare.By(func(s string) int { return len(s) }, compare.Natural[int]())
func By[T, K any](key func(T) K, c Comparator[K]) Comparator[T] { //nolint:ireturn
	return Func[T](func(a, b T) Ordering {
		return c.Compare(key(a), key(b))
	})
}
