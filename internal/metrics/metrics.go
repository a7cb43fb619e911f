// Package metrics exposes Prometheus instrumentation for the analytics
// engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	executionsProcessed prometheus.Counter
	tradesDerived       prometheus.Counter
	openPositions       prometheus.Gauge
	analysisTotal       prometheus.Counter
	analysisDuration    prometheus.Histogram
	archiveWrites       *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		executionsProcessed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "novacore_executions_processed_total",
				Help: "Total number of executions fed through the matcher",
			},
		),
		tradesDerived: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "novacore_trades_derived_total",
				Help: "Total number of round-trip trades derived",
			},
		),
		openPositions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "novacore_open_positions",
				Help: "Open positions remaining after the last analysis",
			},
		),
		analysisTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "novacore_analyses_total",
				Help: "Total number of analysis runs",
			},
		),
		analysisDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "novacore_analysis_duration_seconds",
				Help:    "Analysis run duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		archiveWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "novacore_archive_writes_total",
				Help: "Total number of archive writes",
			},
			[]string{"backend", "status"},
		),
	}

	reg.MustRegister(r.executionsProcessed)
	reg.MustRegister(r.tradesDerived)
	reg.MustRegister(r.openPositions)
	reg.MustRegister(r.analysisTotal)
	reg.MustRegister(r.analysisDuration)
	reg.MustRegister(r.archiveWrites)

	return r
}

// ObserveAnalysis records the outcome of one analysis run.
func (r *Registry) ObserveAnalysis(executions, trades, open int, elapsed time.Duration) {
	r.executionsProcessed.Add(float64(executions))
	r.tradesDerived.Add(float64(trades))
	r.openPositions.Set(float64(open))
	r.analysisTotal.Inc()
	r.analysisDuration.Observe(elapsed.Seconds())
}

// ObserveArchiveWrite records an archive write attempt.
func (r *Registry) ObserveArchiveWrite(backend string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.archiveWrites.WithLabelValues(backend, status).Inc()
}
