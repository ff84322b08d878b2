package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_call_latency_ms",
			Help:    "Generation model call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	EmailsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emails_created_total",
			Help: "Total number of emails persisted",
		},
	)

	GenerationFallback = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_fallback_total",
			Help: "Total number of generations that fell back to default content",
		},
		[]string{"category"},
	)
)

// RecordGenerationLatency records one generation model call.
func RecordGenerationLatency(endpoint, status string, duration time.Duration) {
	GenerationCallLatency.WithLabelValues(endpoint, status).Observe(float64(duration.Milliseconds()))
}

// RecordHTTPRequestDuration records one served HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementEmailsCreated counts a persisted email.
func IncrementEmailsCreated() {
	EmailsCreated.Inc()
}

// IncrementGenerationFallback counts a fallback substitution for a category.
func IncrementGenerationFallback(category string) {
	GenerationFallback.WithLabelValues(category).Inc()
}
