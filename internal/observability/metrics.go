// Package observability defines the Prometheus metrics of the map server.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quakemap"

// Metrics holds the counters, histograms and gauges for overlay loading.
type Metrics struct {
	OverlayFetches       *prometheus.CounterVec   // labels: overlay, outcome={success,error,cancelled}
	OverlayFetchDuration *prometheus.HistogramVec // labels: overlay
	OverlayFeatures      *prometheus.GaugeVec     // labels: overlay
	OverlayReady         *prometheus.GaugeVec     // labels: overlay
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.OverlayFetches,
		m.OverlayFetchDuration,
		m.OverlayFeatures,
		m.OverlayReady,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests
// can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		OverlayFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overlay_fetch_total",
			Help:      "Overlay feed fetches by overlay and outcome.",
		}, []string{"overlay", "outcome"}),
		OverlayFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "overlay_fetch_duration_seconds",
			Help:      "Time from request to rendered overlay.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"overlay"}),
		OverlayFeatures: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "overlay_features",
			Help:      "Number of rendered features per overlay.",
		}, []string{"overlay"}),
		OverlayReady: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "overlay_ready",
			Help:      "1 once the overlay has been filled, 0 before.",
		}, []string{"overlay"}),
	}
}
