// Package metrics exports solver activity as Prometheus metrics.
//
// A Recorder owns its own registry, so several can live in one process
// (tests, repeated CLI runs) without colliding on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/garlicgarrison/marble-solitaire/solitaire"
	"github.com/garlicgarrison/marble-solitaire/trials"
)

const namespace = "solitaire"

type Recorder struct {
	registry *prometheus.Registry

	// Expansions counts nodes moved to the closed set.
	Expansions prometheus.Counter

	// Restarts counts iterative-deepening restarts.
	Restarts prometheus.Counter

	// Ceiling is the most recent iterative-deepening ceiling.
	Ceiling prometheus.Gauge

	// Solves counts finished solves. Labels: strategy, outcome (solved, exhausted)
	Solves *prometheus.CounterVec

	// SolveSeconds measures Solve duration. Labels: strategy
	SolveSeconds *prometheus.HistogramVec

	// SolutionDepth records the depth of each solution found. Labels: strategy
	SolutionDepth *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expansions_total",
			Help:      "Nodes expanded across all solves",
		}),
		Restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deepening_restarts_total",
			Help:      "Iterative deepening restarts from the root",
		}),
		Ceiling: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "deepening_ceiling",
			Help:      "Current iterative deepening depth ceiling",
		}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Finished solves by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		SolveSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Solve duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
		}, []string{"strategy"}),
		SolutionDepth: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solution_depth",
			Help:      "Depth of the solutions found",
			Buckets:   prometheus.LinearBuckets(0, 10, 10),
		}, []string{"strategy"}),
	}

	r.registry.MustRegister(r.Expansions, r.Restarts, r.Ceiling, r.Solves, r.SolveSeconds, r.SolutionDepth)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Expanded implements solitaire.Observer.
func (r *Recorder) Expanded(*solitaire.Node) {
	r.Expansions.Inc()
}

// Restarted implements solitaire.Observer.
func (r *Recorder) Restarted(ceiling int) {
	r.Restarts.Inc()
	r.Ceiling.Set(float64(ceiling))
}

// ObserveTrial implements trials.Recorder.
func (r *Recorder) ObserveTrial(strategy solitaire.Strategy, t trials.Trial) {
	label := strategy.String()
	outcome := "exhausted"
	if t.Solved {
		outcome = "solved"
		r.SolutionDepth.WithLabelValues(label).Observe(float64(t.Depth))
	}
	r.Solves.WithLabelValues(label, outcome).Inc()
	r.SolveSeconds.WithLabelValues(label).Observe(t.Elapsed.Seconds())
}

// WriteFile dumps every metric in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
