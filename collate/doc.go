// Package collate orders sequences of values under a pluggable comparator and
// locates insertion points for full or partial (prefix) keys inside sorted
// collections of such sequences.
//
// # Overview
//
// A [Collator] pairs a [compare.Comparator] for single elements with
// sequence-level operations:
//
//   - [Collator.Compare] orders two sequences lexicographically; when one runs out
//     before a difference is found, the shorter one is Less.
//   - [Collator.BisectLeft] and [Collator.BisectRight] binary-search a sorted
//     [Collection] for the first and one-past-last row matching a key.
//
// Bisection compares each probed row against the key over the key's length only,
// so a key shorter than the rows acts as a "starts with" probe:
//
//	c := collate.Default[int]()
//	rows := collate.Rows[int]{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}
//
//	c.BisectLeft(rows, []int{1})  // 0
//	c.BisectRight(rows, []int{1}) // 1, after the row starting with 1
//	c.BisectLeft(rows, []int{4})  // 3
//	c.BisectLeft(rows, nil)       // 0, the empty key is a prefix of every row
//
// # Preconditions
//
// Collections must already be sorted ascending under the collator; nothing here
// sorts, copies or mutates them. An unsorted collection or an inconsistent
// comparator yields an unspecified (but always in-range) index. [Collator.CheckSorted]
// can be used to validate data outside the hot path.
//
// # Thread Safety
//
// A Collator is immutable once built and may be shared freely between goroutines.
// The collection passed to a bisect call must not be mutated while the call runs.
package collate
