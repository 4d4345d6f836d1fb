package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce         sync.Once
	requestsTotal        *prometheus.CounterVec
	latencySeconds       *prometheus.HistogramVec
	contentRequestsTotal *prometheus.CounterVec
	uploadLatencySeconds prometheus.Histogram
	uploadRejectedTotal  *prometheus.CounterVec
	authAttemptsTotal    *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the portal.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		contentRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_content_requests_total",
			Help: "Content listing calls by resource and outcome.",
		}, []string{"resource", "status"})

		uploadLatencySeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "portal_upload_latency_seconds",
			Help:    "Latency distribution for blob upload batches.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		})

		uploadRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_upload_rejected_total",
			Help: "Uploads rejected before completion, by reason.",
		}, []string{"reason"})

		authAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_auth_attempts_total",
			Help: "Admin login attempts by outcome.",
		}, []string{"result"})

		prometheus.MustRegister(requestsTotal, latencySeconds, contentRequestsTotal, uploadLatencySeconds, uploadRejectedTotal, authAttemptsTotal)
	})
}

// Requests exposes the counter for API requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the latency histogram for API requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// ContentRequests exposes the counter for content listing calls.
func ContentRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return contentRequestsTotal
}

// UploadLatency exposes the upload batch latency histogram.
func UploadLatency() prometheus.Histogram {
	RegisterMetrics()
	return uploadLatencySeconds
}

// UploadRejected exposes the counter for rejected uploads.
func UploadRejected() *prometheus.CounterVec {
	RegisterMetrics()
	return uploadRejectedTotal
}

// AuthAttempts exposes the counter for admin login attempts.
func AuthAttempts() *prometheus.CounterVec {
	RegisterMetrics()
	return authAttemptsTotal
}
