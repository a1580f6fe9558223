package compare

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var comparisons = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "collate_comparisons_total",
	Help: "The total number of element comparisons performed",
}, []string{"comparator"})

type instrumented[T any] struct {
	inner   Comparator[T]
	counter prometheus.Counter
}

func (i instrumented[T]) Compare(a, b T) Ordering {
	i.counter.Inc()

	return i.inner.Compare(a, b)
}

// Instrument wraps c so that every comparison increments the
// collate_comparisons_total counter labelled with the given name.
func Instrument[T any](name string, c Comparator[T]) Comparator[T] { //nolint:ireturn
	return instrumented[T]{
		inner:   c,
		counter: comparisons.WithLabelValues(name),
	}
}
