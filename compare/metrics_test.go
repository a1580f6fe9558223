package compare

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrument(t *testing.T) {
	t.Parallel()

	c := Instrument("instrument_test", Natural[int]())

	assert.Equal(t, Less, c.Compare(1, 2))
	assert.Equal(t, Greater, c.Compare(2, 1))
	assert.Equal(t, Equal, c.Compare(3, 3))

	assert.InDelta(t, 3.0, testutil.ToFloat64(comparisons.WithLabelValues("instrument_test")), 0)
}
