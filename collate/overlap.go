package collate

import (
	"github.com/amp-labs/amp-collate/assert"
	"github.com/amp-labs/amp-collate/compare"
)

// Overlap is the result of comparing two intervals, the interval counterpart of
// compare.Ordering.
type Overlap uint8

const (
	// OverlapLess means the interval lies entirely before the other one.
	OverlapLess Overlap = iota
	// OverlapGreater means the interval lies entirely after the other one.
	OverlapGreater
	// OverlapEqual means both intervals have the same endpoints.
	OverlapEqual
	// OverlapNarrow means the interval lies within the other one.
	OverlapNarrow
	// OverlapWide means the interval covers the other one.
	OverlapWide
	// OverlapWideLess means the intervals intersect and this one starts and ends first.
	OverlapWideLess
	// OverlapWideGreater means the intervals intersect and this one starts and ends last.
	OverlapWideGreater
)

// Reverse returns the overlap seen from the other interval's side.
func (o Overlap) Reverse() Overlap {
	switch o {
	case OverlapLess:
		return OverlapGreater
	case OverlapGreater:
		return OverlapLess
	case OverlapNarrow:
		return OverlapWide
	case OverlapWide:
		return OverlapNarrow
	case OverlapWideLess:
		return OverlapWideGreater
	case OverlapWideGreater:
		return OverlapWideLess
	default:
		return o
	}
}

func (o Overlap) String() string {
	switch o {
	case OverlapLess:
		return "Less"
	case OverlapGreater:
		return "Greater"
	case OverlapEqual:
		return "Equal"
	case OverlapNarrow:
		return "Narrow"
	case OverlapWide:
		return "Wide"
	case OverlapWideLess:
		return "WideLess"
	case OverlapWideGreater:
		return "WideGreater"
	default:
		return "Overlap(invalid)"
	}
}

// Interval is the half-open span [Start, End). End must not sort before Start.
type Interval[T any] struct {
	Start T
	End   T
}

// Overlaps classifies how i relates to other under c.
//
//	[0, 1) vs [2, 5) -> Less
//	[0, 1) vs [0, 1) -> Equal
//	[2, 3) vs [0, 2) -> Greater
//	[3, 5) vs [1, 7) -> Narrow
//	[1, 7) vs [3, 5) -> Wide
//	[1, 4) vs [3, 5) -> WideLess
//	[3, 5) vs [1, 4) -> WideGreater
func (i Interval[T]) Overlaps(other Interval[T], c compare.Comparator[T]) Overlap {
	assert.False(c.Compare(i.End, i.Start) == compare.Less, "interval end %v sorts before start %v", i.End, i.Start)
	assert.False(c.Compare(other.End, other.Start) == compare.Less,
		"interval end %v sorts before start %v", other.End, other.Start)

	start := c.Compare(i.Start, other.Start)
	end := c.Compare(i.End, other.End)

	switch {
	case start == compare.Equal && end == compare.Equal:
		return OverlapEqual
	case start != compare.Less && end != compare.Greater:
		return OverlapNarrow
	case start != compare.Greater && end != compare.Less:
		return OverlapWide
	case start == compare.Greater:
		// Both endpoints are after the other interval's.
		if c.Compare(i.Start, other.End) == compare.Less {
			return OverlapWideGreater
		}

		return OverlapGreater
	default:
		// Both endpoints are before the other interval's.
		if c.Compare(i.End, other.Start) == compare.Greater {
			return OverlapWideLess
		}

		return OverlapLess
	}
}

// Contains reports whether other lies entirely within i.
func (i Interval[T]) Contains(other Interval[T], c compare.Comparator[T]) bool {
	switch i.Overlaps(other, c) {
	case OverlapWide, OverlapEqual:
		return true
	default:
		return false
	}
}

// ContainsPartial reports whether other lies at least partially within i.
func (i Interval[T]) ContainsPartial(other Interval[T], c compare.Comparator[T]) bool {
	switch i.Overlaps(other, c) {
	case OverlapLess, OverlapGreater:
		return false
	default:
		return true
	}
}
