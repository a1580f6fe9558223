package collate

import (
	"cmp"

	"github.com/amp-labs/amp-collate/assert"
	"github.com/amp-labs/amp-collate/compare"
)

// Side selects which end of a run of matching rows a bisection returns.
type Side uint8

const (
	// Left is the insertion point before any rows matching the key.
	Left Side = iota
	// Right is the insertion point after any rows matching the key.
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Left {
		return "left"
	}

	return "right"
}

// Collator orders sequences of T using an element comparator.
// The zero value is not usable; construct one with New or Default.
type Collator[T any] struct {
	cmp     compare.Comparator[T]
	name    string
	metrics *collatorMetrics
}

// Compile-time check that a Collator can itself serve as a comparator of rows.
var _ compare.Comparator[[]int] = (*Collator[int])(nil)

// New returns a Collator that orders elements with the given comparator.
// It panics if c is nil, unless assertions are compiled out.
func New[T any](c compare.Comparator[T], opts ...Option) *Collator[T] {
	assert.NotNil(c, "collate: nil comparator")

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.name != "" && o.comparisonMetrics {
		c = compare.Instrument(o.name, c)
	}

	return &Collator[T]{
		cmp:     c,
		name:    o.name,
		metrics: newCollatorMetrics(o.name),
	}
}

// Default returns a Collator using the natural ordering of T.
func Default[T cmp.Ordered](opts ...Option) *Collator[T] {
	return New(compare.Natural[T](), opts...)
}

// Name returns the label given with WithName, or the empty string.
func (c *Collator[T]) Name() string {
	return c.name
}

// Comparator returns the element comparator this collator was built with.
func (c *Collator[T]) Comparator() compare.Comparator[T] { //nolint:ireturn
	return c.cmp
}

// CompareElements orders two single elements.
func (c *Collator[T]) CompareElements(a, b T) compare.Ordering {
	return c.cmp.Compare(a, b)
}

// Compare orders two sequences lexicographically. The first pair of elements that
// differ decides; if one sequence is exhausted first, the shorter one is Less.
// Two empty sequences are Equal.
func (c *Collator[T]) Compare(a, b []T) compare.Ordering {
	n := min(len(a), len(b))

	for i := range n {
		if o := c.cmp.Compare(a[i], b[i]); o != compare.Equal {
			return o
		}
	}

	return compare.FromInt(cmp.Compare(len(a), len(b)))
}

// compareToKey orders a row relative to a key over the key's length. A row that
// starts with the key is Equal to it, and a row that is a strict prefix of the key
// is Less. Since truncating every row of a sorted collection to the same length
// keeps it sorted, this is a valid probe for binary search.
func (c *Collator[T]) compareToKey(row, key []T) compare.Ordering {
	for i := range key {
		if i >= len(row) {
			return compare.Less
		}

		if o := c.cmp.Compare(row[i], key[i]); o != compare.Equal {
			return o
		}
	}

	return compare.Equal
}

// CompareToKey exposes the key-relative ordering used by bisection: rows that
// start with key compare Equal to it.
func (c *Collator[T]) CompareToKey(row, key []T) compare.Ordering {
	return c.compareToKey(row, key)
}

// bisect returns the first index in [0, rows.Len()] whose row is not "before" the key,
// where a row is before the key when it compares Less (left) or not Greater (right).
func (c *Collator[T]) bisect(rows Collection[T], key []T, side Side) int {
	c.metrics.observe(side)

	lo, hi := 0, rows.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) //nolint:gosec

		o := c.compareToKey(rows.At(mid), key)
		if o == compare.Less || (side == Right && o == compare.Equal) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// BisectLeft returns the smallest index i such that every row before i compares
// Less than key and every row from i on starts with key or sorts after it.
// The result is in [0, rows.Len()]; rows.Len() means the key belongs after all rows.
//
// rows must be sorted under this collator. The search performs O(log n) row
// comparisons and neither allocates nor mutates rows.
func (c *Collator[T]) BisectLeft(rows Collection[T], key []T) int {
	return c.bisect(rows, key, Left)
}

// BisectRight returns the smallest index i such that every row before i compares
// Less than key or starts with it, and every row from i on sorts after key.
// This is the insertion point after the run of rows matching key.
func (c *Collator[T]) BisectRight(rows Collection[T], key []T) int {
	return c.bisect(rows, key, Right)
}

// Bisect dispatches to BisectLeft or BisectRight.
func (c *Collator[T]) Bisect(rows Collection[T], key []T, side Side) int {
	return c.bisect(rows, key, side)
}

// EqualRange returns the half-open span [lo, hi) of rows that start with key.
func (c *Collator[T]) EqualRange(rows Collection[T], key []T) (int, int) {
	lo := c.BisectLeft(rows, key)
	hi := lo + c.BisectRight(sliceFrom(rows, lo), key)

	return lo, hi
}

// Count returns the number of rows that start with key (including rows equal to it).
func (c *Collator[T]) Count(rows Collection[T], key []T) int {
	lo, hi := c.EqualRange(rows, key)

	return hi - lo
}

// Search returns the index of the first row exactly equal to key under Compare,
// and whether such a row exists.
func (c *Collator[T]) Search(rows Collection[T], key []T) (int, bool) {
	idx := c.BisectLeft(rows, key)
	if idx < rows.Len() && c.Compare(rows.At(idx), key) == compare.Equal {
		return idx, true
	}

	return idx, false
}

// offset views the tail of a collection starting at from.
type offset[T any] struct {
	inner Collection[T]
	from  int
}

func (o offset[T]) Len() int {
	return o.inner.Len() - o.from
}

func (o offset[T]) At(i int) []T {
	return o.inner.At(o.from + i)
}

func sliceFrom[T any](rows Collection[T], from int) Collection[T] { //nolint:ireturn
	if from == 0 {
		return rows
	}

	if r, ok := rows.(Rows[T]); ok {
		return r[from:]
	}

	return offset[T]{inner: rows, from: from}
}
