// Package errors holds the sentinel errors shared by the collation packages,
// plus a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrUnsorted is returned by validators when a collection is not in ascending
	// order under the collator's comparator.
	ErrUnsorted = errors.New("collection is not sorted")

	// ErrInvalidRange is returned when a range's start bound sorts after its end bound.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnknownStrategy is returned when a configuration names a comparator
	// strategy that does not exist.
	ErrUnknownStrategy = errors.New("unknown collation strategy")

	// ErrInvalidConfig is returned when a collation configuration cannot be used.
	ErrInvalidConfig = errors.New("invalid collation config")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
