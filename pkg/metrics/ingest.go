package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeIssued   = "issued"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// IngestMetrics counts presigned upload URL requests and signed read URLs.
type IngestMetrics struct {
	presign  *prometheus.CounterVec
	readURLs prometheus.Counter
}

// NewIngestMetrics registers the ingestion counters on reg. A nil registerer
// yields a no-op instance.
func NewIngestMetrics(reg prometheus.Registerer) *IngestMetrics {
	if reg == nil {
		return &IngestMetrics{}
	}
	presign := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "image_ingest",
		Name:      "presign_requests_total",
		Help:      "Presigned upload URL requests by outcome.",
	}, []string{"outcome"})
	readURLs := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "image_ingest",
		Name:      "read_urls_signed_total",
		Help:      "CDN read URLs signed.",
	})
	reg.MustRegister(presign, readURLs)
	return &IngestMetrics{
		presign:  presign,
		readURLs: readURLs,
	}
}

// ObservePresign increments the presign counter for outcome.
func (m *IngestMetrics) ObservePresign(outcome string) {
	if m == nil || m.presign == nil {
		return
	}
	m.presign.WithLabelValues(outcome).Inc()
}

// AddReadURLs adds n signed read URLs.
func (m *IngestMetrics) AddReadURLs(n int) {
	if m == nil || m.readURLs == nil || n <= 0 {
		return
	}
	m.readURLs.Add(float64(n))
}
