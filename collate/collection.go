package collate

// Collection is an ordered, randomly indexable list of rows.
// Implementations must return the same row for the same index for as long
// as a bisect call is using the collection.
type Collection[T any] interface {
	Len() int
	At(i int) []T
}

// Rows is the plain slice-of-slices Collection.
type Rows[T any] [][]T

// Compile-time check that Rows implements Collection.
var _ Collection[int] = Rows[int](nil)

func (r Rows[T]) Len() int {
	return len(r)
}

func (r Rows[T]) At(i int) []T {
	return r[i]
}

type projection[E, T any] struct {
	items []E
	key   func(E) []T
}

func (p projection[E, T]) Len() int {
	return len(p.items)
}

func (p projection[E, T]) At(i int) []T {
	return p.key(p.items[i])
}

// Project exposes a slice of records as a Collection of their keys, without
// copying. This is the usual way to bisect an index whose entries carry more
// than the key itself.
//
// Example:
//
//	type entry struct {
//	    key   []string
//	    value int
//	}
//
//	idx := c.BisectLeft(collate.Project(entries, func(e entry) []string { return e.key }), probe)
func Project[E, T any](items []E, key func(E) []T) Collection[T] { //nolint:ireturn
	return projection[E, T]{items: items, key: key}
}
