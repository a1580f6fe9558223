package compare

import (
	"cmp"
)

// Complex128 orders complex numbers by their squared magnitude (norm).
// Complex numbers have no natural ordering, so numbers on the same circle around
// the origin compare Equal: 1+0i, 0+1i and -1+0i are all equivalent under it.
func Complex128() Comparator[complex128] { //nolint:ireturn
	return Func[complex128](func(a, b complex128) Ordering {
		return FromInt(cmp.Compare(normSquared(a), normSquared(b)))
	})
}

// Complex64 is the complex64 counterpart of Complex128.
func Complex64() Comparator[complex64] { //nolint:ireturn
	return Func[complex64](func(a, b complex64) Ordering {
		return FromInt(cmp.Compare(normSquared(complex128(a)), normSquared(complex128(b))))
	})
}

func normSquared(c complex128) float64 {
	re, im := real(c), imag(c)

	return re*re + im*im
}
