package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the API's Prometheus collectors.
type Metrics struct {
	AssessmentsTotal *prometheus.CounterVec
	AnalyzeDuration  prometheus.Histogram
}

// NewMetrics registers the API collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AssessmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stresslens_assessments_total",
			Help: "Completed assessments by predicted stress level.",
		}, []string{"stress_level"}),
		AnalyzeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "stresslens_analyze_duration_seconds",
			Help:    "End-to-end latency of the analyze pipeline.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
