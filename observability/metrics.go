package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "almanac"

// Metrics holds the Prometheus collectors for the HTTP API and the
// scheduled reports.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec   // labels: route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: route
	ConversionErrors    *prometheus.CounterVec   // labels: operation
	ReportsRun          *prometheus.CounterVec   // labels: report, outcome

	// Unix time at which the loaded leap second list expires, 0 if unknown.
	LeapSecondsExpiry prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"route"}),
		ConversionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversion_errors_total",
			Help:      "Rejected conversions by operation.",
		}, []string{"operation"}),
		ReportsRun: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Scheduled reports by kind and outcome.",
		}, []string{"report", "outcome"}),
		LeapSecondsExpiry: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "leap_seconds_expiry_timestamp_seconds",
			Help:      "Expiry of the loaded leap second list as a unix timestamp.",
		}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.ConversionErrors,
		m.ReportsRun,
		m.LeapSecondsExpiry,
	)

	return m
}

// NewMetricsForTesting creates Metrics that are not registered, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total"}, []string{"route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds"}, []string{"route"}),
		ConversionErrors:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "conversion_errors_total"}, []string{"operation"}),
		ReportsRun:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "reports_total"}, []string{"report", "outcome"}),
		LeapSecondsExpiry:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "leap_seconds_expiry_timestamp_seconds"}),
	}
}
