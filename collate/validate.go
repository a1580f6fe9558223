package collate

import (
	"fmt"

	"github.com/amp-labs/amp-collate/compare"
	"github.com/amp-labs/amp-collate/errors"
)

// IsSorted reports whether rows are in ascending (non-decreasing) order under
// Compare. It costs O(n) row comparisons and is never called by the bisect methods.
func (c *Collator[T]) IsSorted(rows Collection[T]) bool {
	return c.firstUnsorted(rows) < 0
}

// CheckSorted is IsSorted with a descriptive error: it wraps errors.ErrUnsorted and
// names the first row that sorts before its predecessor.
func (c *Collator[T]) CheckSorted(rows Collection[T]) error {
	idx := c.firstUnsorted(rows)
	if idx < 0 {
		return nil
	}

	return fmt.Errorf("%w: row %d %v sorts before row %d %v",
		errors.ErrUnsorted, idx, rows.At(idx), idx-1, rows.At(idx-1))
}

func (c *Collator[T]) firstUnsorted(rows Collection[T]) int {
	for i := 1; i < rows.Len(); i++ {
		if c.Compare(rows.At(i-1), rows.At(i)) == compare.Greater {
			return i
		}
	}

	return -1
}
