package collate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/amp-labs/amp-collate/compare"
	"github.com/amp-labs/amp-collate/errors"
)

// BoundKind says whether a range endpoint is open, closed or absent.
type BoundKind uint8

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one endpoint of a Range.
type Bound[T any] struct {
	kind  BoundKind
	value T
}

// Unbound returns the absent endpoint.
func Unbound[T any]() Bound[T] {
	return Bound[T]{kind: Unbounded}
}

// Incl returns an endpoint that includes value.
func Incl[T any](value T) Bound[T] {
	return Bound[T]{kind: Included, value: value}
}

// Excl returns an endpoint that excludes value.
func Excl[T any](value T) Bound[T] {
	return Bound[T]{kind: Excluded, value: value}
}

func (b Bound[T]) Kind() BoundKind {
	return b.kind
}

// Value returns the endpoint value, and false for an unbounded endpoint.
func (b Bound[T]) Value() (T, bool) { //nolint:ireturn
	return b.value, b.kind != Unbounded
}

// Range selects the rows that start with a fixed prefix and whose next element,
// the one right after the prefix, lies between start and end.
//
// With both bounds absent the range is a plain prefix match.
type Range[T any] struct {
	prefix []T
	start  Bound[T]
	end    Bound[T]
}

// WithPrefix returns the range of every row starting with prefix.
func WithPrefix[T any](prefix []T) Range[T] {
	return Range[T]{prefix: prefix}
}

// NewRange returns the range of rows starting with prefix whose next element lies
// within [start, end] (honouring each bound's kind). It returns an error wrapping
// errors.ErrInvalidRange if start sorts after end under c.
func NewRange[T any](c compare.Comparator[T], prefix []T, start, end Bound[T]) (Range[T], error) {
	lo, hasLo := start.Value()
	hi, hasHi := end.Value()

	if hasLo && hasHi && c.Compare(lo, hi) == compare.Greater {
		return Range[T]{}, fmt.Errorf("%w: start %v sorts after end %v", errors.ErrInvalidRange, lo, hi)
	}

	return Range[T]{prefix: prefix, start: start, end: end}, nil
}

// HasBounds returns false if both the start and the end bound are absent.
func (r Range[T]) HasBounds() bool {
	return r.start.kind != Unbounded || r.end.kind != Unbounded
}

// Len is the number of leading row positions the range constrains.
func (r Range[T]) Len() int {
	if r.HasBounds() {
		return len(r.prefix) + 1
	}

	return len(r.prefix)
}

func (r Range[T]) Prefix() []T {
	return r.prefix
}

func (r Range[T]) Start() Bound[T] {
	return r.start
}

func (r Range[T]) End() Bound[T] {
	return r.end
}

// String renders the range in interval notation, e.g. "[1 2] [3, 5)".
func (r Range[T]) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%v ", r.prefix)

	switch r.start.kind {
	case Included:
		fmt.Fprintf(&sb, "[%v", r.start.value)
	case Excluded:
		fmt.Fprintf(&sb, "(%v", r.start.value)
	default:
		sb.WriteString("(")
	}

	sb.WriteString(", ")

	switch r.end.kind {
	case Included:
		fmt.Fprintf(&sb, "%v]", r.end.value)
	case Excluded:
		fmt.Fprintf(&sb, "%v)", r.end.value)
	default:
		sb.WriteString(")")
	}

	return sb.String()
}

// Contains reports whether every row selected by other is also selected by r.
func (r Range[T]) Contains(other Range[T], c compare.Comparator[T]) bool {
	if len(other.prefix) < len(r.prefix) {
		return false
	}

	for i := range r.prefix {
		if c.Compare(r.prefix[i], other.prefix[i]) != compare.Equal {
			return false
		}
	}

	if len(other.prefix) > len(r.prefix) {
		// other pins the element r constrains to a single value.
		value := other.prefix[len(r.prefix)]

		return startAdmits(r.start, value, c) && endAdmits(r.end, value, c)
	}

	return startContains(r.start, other.start, c) && endContains(r.end, other.end, c)
}

func startAdmits[T any](b Bound[T], value T, c compare.Comparator[T]) bool {
	switch b.kind {
	case Included:
		return c.Compare(value, b.value) != compare.Less
	case Excluded:
		return c.Compare(value, b.value) == compare.Greater
	default:
		return true
	}
}

func endAdmits[T any](b Bound[T], value T, c compare.Comparator[T]) bool {
	switch b.kind {
	case Included:
		return c.Compare(value, b.value) != compare.Greater
	case Excluded:
		return c.Compare(value, b.value) == compare.Less
	default:
		return true
	}
}

// startContains reports whether the start bound inner is at or after outer.
func startContains[T any](outer, inner Bound[T], c compare.Comparator[T]) bool {
	if outer.kind == Unbounded {
		return true
	}

	if inner.kind == Unbounded {
		return false
	}

	o := c.Compare(inner.value, outer.value)
	if outer.kind == Excluded && inner.kind == Included {
		return o == compare.Greater
	}

	return o != compare.Less
}

// endContains reports whether the end bound inner is at or before outer.
func endContains[T any](outer, inner Bound[T], c compare.Comparator[T]) bool {
	if outer.kind == Unbounded {
		return true
	}

	if inner.kind == Unbounded {
		return false
	}

	o := c.Compare(inner.value, outer.value)
	if outer.kind == Excluded && inner.kind == Included {
		return o == compare.Less
	}

	return o != compare.Greater
}

// BisectRange returns the half-open index span [lo, hi) of the rows selected by r.
// Rows equal to the bare prefix are only selected when the start bound is absent.
func (c *Collator[T]) BisectRange(rows Collection[T], r Range[T]) (int, int) {
	var lo, hi int

	switch r.start.kind {
	case Included:
		lo = c.BisectLeft(rows, extend(r.prefix, r.start.value))
	case Excluded:
		lo = c.BisectRight(rows, extend(r.prefix, r.start.value))
	default:
		lo = c.BisectLeft(rows, r.prefix)
	}

	switch r.end.kind {
	case Included:
		hi = c.BisectRight(rows, extend(r.prefix, r.end.value))
	case Excluded:
		hi = c.BisectLeft(rows, extend(r.prefix, r.end.value))
	default:
		hi = c.BisectRight(rows, r.prefix)
	}

	return lo, max(lo, hi)
}

func extend[T any](prefix []T, value T) []T {
	return append(slices.Clip(prefix), value)
}
