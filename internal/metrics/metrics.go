package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Hangar
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	ComponentsCreatedTotal  prometheus.CounterVec
	ComponentsRecycledTotal prometheus.Counter
	InstallsTotal           prometheus.CounterVec
	UninstallsTotal         prometheus.Counter
	AircraftProducedTotal   prometheus.CounterVec
	InstallConflictsTotal   prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangar_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hangar_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hangar_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Business Metrics
		ComponentsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangar_components_created_total",
				Help: "Components registered into inventory by category",
			},
			[]string{"category"},
		),
		ComponentsRecycledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "hangar_components_recycled_total",
				Help: "Components permanently destroyed through recycle batches",
			},
		),
		InstallsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangar_installs_total",
				Help: "Successful component installations by aircraft model",
			},
			[]string{"model"},
		),
		UninstallsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "hangar_uninstalls_total",
				Help: "Components released back to inventory",
			},
		),
		AircraftProducedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangar_aircraft_produced_total",
				Help: "Aircraft that reached fully-produced state by model",
			},
			[]string{"model"},
		),
		InstallConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangar_install_conflicts_total",
				Help: "Install attempts rejected by ledger invariants, by conflict kind",
			},
			[]string{"kind"},
		),
	}
}
