package collate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var bisectCalls = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "collate_bisect_total",
	Help: "The total number of bisect calls made by named collators",
}, []string{"collator", "side"})

// collatorMetrics holds counters resolved once per named collator, so the
// bisect hot path only pays for an atomic add.
type collatorMetrics struct {
	left  prometheus.Counter
	right prometheus.Counter
}

func newCollatorMetrics(name string) *collatorMetrics {
	if name == "" {
		return nil
	}

	return &collatorMetrics{
		left:  bisectCalls.WithLabelValues(name, Left.String()),
		right: bisectCalls.WithLabelValues(name, Right.String()),
	}
}

func (m *collatorMetrics) observe(side Side) {
	if m == nil {
		return
	}

	if side == Left {
		m.left.Inc()
	} else {
		m.right.Inc()
	}
}
