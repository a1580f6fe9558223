package compare

// Ordering is the result of comparing two values, two sequences or a row against a key.
type Ordering int8

const (
	// Less means the left operand sorts before the right one.
	Less Ordering = -1
	// Equal means neither operand sorts before the other.
	Equal Ordering = 0
	// Greater means the left operand sorts after the right one.
	Greater Ordering = 1
)

// FromInt folds a three-way integer result (as returned by cmp.Compare, strings.Compare
// or bytes.Compare) into an Ordering. Only the sign of v matters.
func FromInt(v int) Ordering {
	switch {
	case v < 0:
		return Less
	case v > 0:
		return Greater
	default:
		return Equal
	}
}

// Reverse swaps Less and Greater. Equal is unchanged.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Int returns -1, 0 or 1, which is what slices.SortFunc and friends expect.
func (o Ordering) Int() int {
	return int(o)
}

func (o Ordering) IsLess() bool {
	return o == Less
}

func (o Ordering) IsEqual() bool {
	return o == Equal
}

func (o Ordering) IsGreater() bool {
	return o == Greater
}

// String returns a human-readable representation of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(invalid)"
	}
}
