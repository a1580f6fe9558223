package sortable

import (
	"cmp"
)

// Float64 is a sortable wrapper type for float64.
// NaN sorts before every other value and equals any other NaN, which keeps the
// order total; the plain == and < operators would make NaN incomparable.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if both values are equal, or both are NaN.
func (f Float64) Equals(other Float64) bool {
	return cmp.Compare(f, other) == 0
}

// LessThan returns true if f sorts strictly before other.
func (f Float64) LessThan(other Float64) bool {
	return cmp.Less(f, other)
}
