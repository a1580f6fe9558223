package collate

// Option is a function that configures a Collator.
// Options follow the functional options pattern for flexible configuration.
type Option func(*options)

type options struct {
	name              string // Label used for metrics; empty disables them
	comparisonMetrics bool   // Count element comparisons under the collator's name
}

// WithName labels the collator. Named collators record bisect calls in the
// collate_bisect_total counter.
//
// Example:
//
//	c := collate.New(compare.Natural[string](), collate.WithName("users_by_email"))
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithComparisonMetrics additionally counts every element comparison made by a
// named collator in collate_comparisons_total. It has a per-comparison cost, so it
// is off by default. It has no effect without WithName.
func WithComparisonMetrics() Option {
	return func(o *options) {
		o.comparisonMetrics = true
	}
}
