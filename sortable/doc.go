// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so that they can be ordered by a collator without
// supplying a separate comparator.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and ready-to-use
// implementations for common primitive types: [Int], [Byte], [Float64] and [String].
// [Comparator] turns any Sortable type into a [compare.Comparator], which is what
// [github.com/amp-labs/amp-collate/collate.New] expects.
//
// The Sortable interface extends [compare.Comparable] by adding a LessThan method,
// providing both equality comparison and ordering.
//
// # Usage
//
//	c := collate.New(sortable.Comparator[sortable.Int]())
//	rows := collate.Rows[sortable.Int]{{1, 2}, {1, 3}, {2, 0}}
//	idx := c.BisectLeft(rows, []sortable.Int{1, 3}) // 1
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Version struct {
//	    Major int
//	    Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// LessThan must be a strict order consistent with Equals, otherwise bisection
// over rows of that type gives unspecified results.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently safe
// for concurrent reads.
package sortable
