package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestMetricsCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIngestMetrics(reg)

	m.ObservePresign(OutcomeIssued)
	m.ObservePresign(OutcomeIssued)
	m.ObservePresign(OutcomeRejected)
	m.AddReadURLs(3)
	m.AddReadURLs(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.presign.WithLabelValues(OutcomeIssued)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.presign.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.readURLs))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 2)
}

func TestIngestMetricsNilRegistererIsNoop(t *testing.T) {
	m := NewIngestMetrics(nil)

	assert.NotPanics(t, func() {
		m.ObservePresign(OutcomeFailed)
		m.AddReadURLs(1)
	})

	var nilMetrics *IngestMetrics
	assert.NotPanics(t, func() {
		nilMetrics.ObservePresign(OutcomeFailed)
	})
}
