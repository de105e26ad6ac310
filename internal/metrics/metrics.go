package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors exported on /metrics
type Metrics struct {
	// RequestsTotal counts handled requests
	RequestsTotal *prometheus.CounterVec
	// RequestDuration tracks request latency in seconds
	RequestDuration *prometheus.HistogramVec
	// ImportRecords counts hospitals written by the bulk file endpoints
	ImportRecords *prometheus.CounterVec
}

// New registers the collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hospital_api_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hospital_api_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ImportRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hospital_api_import_records_total",
				Help: "Total number of hospital records written from the data file",
			},
			[]string{"operation"},
		),
	}
}

// RecordImport adds n records written by operation ("import" or "update")
func (m *Metrics) RecordImport(operation string, n int) {
	if m == nil {
		return
	}
	m.ImportRecords.WithLabelValues(operation).Add(float64(n))
}
