package compare

import (
	"go.uber.org/atomic"
)

// Counting wraps a comparator and counts how many times it has been invoked.
// It is safe for concurrent use; the counter is shared by every goroutine using it.
//
// Counting is mostly useful in tests and benchmarks, to assert on the number of
// element comparisons an algorithm performs.
type Counting[T any] struct {
	inner Comparator[T]
	calls atomic.Int64
}

// Compile-time check that Counting implements Comparator.
var _ Comparator[int] = (*Counting[int])(nil)

// NewCounting returns a Counting wrapper around c.
func NewCounting[T any](c Comparator[T]) *Counting[T] {
	return &Counting[T]{inner: c}
}

// Compare increments the call counter and delegates to the wrapped comparator.
func (c *Counting[T]) Compare(a, b T) Ordering {
	c.calls.Inc()

	return c.inner.Compare(a, b)
}

// Calls returns the number of comparisons performed so far.
func (c *Counting[T]) Calls() int64 {
	return c.calls.Load()
}

// Reset sets the call counter back to zero.
func (c *Counting[T]) Reset() {
	c.calls.Store(0)
}
