package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the Prometheus collectors for chart preparation.
type Registry struct {
	ChartsPrepared  *prometheus.CounterVec
	ChartDuration   *prometheus.HistogramVec
	DayAheadOverlay *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry builds the collectors and registers them on a fresh registry.
func NewRegistry() *Registry {
	r := &Registry{
		ChartsPrepared: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_charts_prepared_total",
				Help: "Charts prepared, by chart type and result status",
			},
			[]string{"chart", "status"},
		),
		ChartDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_chart_duration_seconds",
				Help:    "Time spent resolving, loading and analyzing data for one chart",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"chart"},
		),
		DayAheadOverlay: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_day_ahead_overlay_total",
				Help: "Day-ahead overlay attempts, by outcome (added, absent, skipped, failed)",
			},
			[]string{"outcome"},
		),
		registry: prometheus.NewRegistry(),
	}
	r.registry.MustRegister(r.ChartsPrepared, r.ChartDuration, r.DayAheadOverlay)
	return r
}

// Gatherer exposes the registry for promhttp.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// ObserveChart records one prepared chart.
func (r *Registry) ObserveChart(chart, status string, elapsed time.Duration) {
	r.ChartsPrepared.WithLabelValues(chart, status).Inc()
	r.ChartDuration.WithLabelValues(chart).Observe(elapsed.Seconds())
}

// ObserveOverlay records the outcome of a day-ahead overlay lookup.
func (r *Registry) ObserveOverlay(outcome string) {
	r.DayAheadOverlay.WithLabelValues(outcome).Inc()
}
