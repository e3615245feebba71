package metrics_test

import (
	"testing"

	"github.com/lucax88x/datetoday/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCounters(t *testing.T) {
	m := metrics.New()

	m.Ticks.Inc()
	m.FormatFailures.WithLabelValues("InvalidPattern").Inc()
	m.Commits.WithLabelValues("committed").Add(2)

	assert.InDelta(t, 1, testutil.ToFloat64(m.Ticks), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.FormatFailures.WithLabelValues("InvalidPattern")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.Commits.WithLabelValues("committed")), 0)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}
