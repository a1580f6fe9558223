package sortable

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

var _ Sortable[Byte] = (*Byte)(nil)

func (b Byte) Equals(other Byte) bool {
	return b == other
}

func (b Byte) LessThan(other Byte) bool {
	return b < other
}

// Bytes converts a byte slice into a row of sortable values, so that
// byte keys can be bisected element by element.
func Bytes(data []byte) []Byte {
	out := make([]Byte, len(data))
	for i, b := range data {
		out[i] = Byte(b)
	}

	return out
}
