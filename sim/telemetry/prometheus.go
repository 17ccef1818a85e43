// Package telemetry exports mission statistics as Prometheus metrics.
package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cargosim/cargosim/sim"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "cargosim"

// PrometheusRecorder implements sim.Recorder on a dedicated registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	attempts   *prometheus.CounterVec
	trials     *prometheus.CounterVec
	trialCost  *prometheus.HistogramVec
	trialTries *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the mission collectors under namespace.
// An empty namespace uses DefaultNamespace.
func NewPrometheusRecorder(namespace string) *PrometheusRecorder {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "attempts_total",
				Help:      "Launch/land attempts by vehicle variant and outcome.",
			},
			[]string{"variant", "outcome"},
		),
		trials: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "trials_total",
				Help:      "Completed Monte Carlo trials by vehicle variant.",
			},
			[]string{"variant"},
		),
		trialCost: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "trial_cost",
				Help:      "Total mission cost per trial.",
				Buckets:   prometheus.ExponentialBuckets(10, 10, 12),
			},
			[]string{"variant"},
		),
		trialTries: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "trial_failed_attempts",
				Help:      "Failed attempts per trial.",
				Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
			},
			[]string{"variant"},
		),
	}
	r.registry.MustRegister(r.attempts, r.trials, r.trialCost, r.trialTries)
	return r
}

// Registry exposes the underlying registry for gathering or serving.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *PrometheusRecorder) ObserveAttempt(a sim.Attempt) {
	r.attempts.WithLabelValues(a.Variant.String(), string(a.Outcome)).Inc()
}

func (r *PrometheusRecorder) ObserveTrial(_ int, v sim.Variant, report sim.MissionReport) {
	r.trials.WithLabelValues(v.String()).Inc()
	r.trialCost.WithLabelValues(v.String()).Observe(report.TotalCost)
	r.trialTries.WithLabelValues(v.String()).Observe(float64(report.Failures()))
}

// WriteTextfile writes the current metrics in the text exposition format,
// suitable for the node_exporter textfile collector.
func (r *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
