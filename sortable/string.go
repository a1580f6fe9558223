package sortable

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}
