package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "detection_map"

// Metrics collects HTTP, viewport and feature source metrics. It satisfies
// viewport.Observer and source.Observer.
type Metrics struct {
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	viewportFits      *prometheus.CounterVec
	malformedGeometry *prometheus.CounterVec

	sourceFetches       *prometheus.CounterVec
	sourceFetchDuration *prometheus.HistogramVec
	breakerState        *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		}, []string{"method", "route", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),

		viewportFits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "viewport",
			Name:      "fits_total",
			Help:      "Viewport computations by outcome",
		}, []string{"outcome", "animated"}),

		malformedGeometry: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "viewport",
			Name:      "malformed_geometry_total",
			Help:      "Features skipped because their geometry could not be read",
		}, []string{"geometry_type"}),

		sourceFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "fetches_total",
			Help:      "Feature source fetches by source and outcome",
		}, []string{"source", "outcome"}),

		sourceFetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of feature source fetches",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}, []string{"source"}),

		breakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		}, []string{"name"}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveFit(outcome string, animated bool) {
	a := "false"
	if animated {
		a = "true"
	}
	m.viewportFits.WithLabelValues(outcome, a).Inc()
}

func (m *Metrics) ObserveMalformedGeometry(geometryType string) {
	m.malformedGeometry.WithLabelValues(geometryType).Inc()
}

func (m *Metrics) ObserveSourceFetch(source, outcome string, elapsed time.Duration) {
	m.sourceFetches.WithLabelValues(source, outcome).Inc()
	m.sourceFetchDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveBreakerState(name, state string) {
	var v float64
	switch state {
	case "half-open":
		v = 1
	case "open":
		v = 2
	}
	m.breakerState.WithLabelValues(name).Set(v)
}
