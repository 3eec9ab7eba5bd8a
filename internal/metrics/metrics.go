// Package metrics records search runs as Prometheus metrics.
//
// Collectors live on a private registry, so several Recorders can coexist in
// one process (tests, parallel CLI invocations). A Recorder implements
// search.Observer and can be passed to search.WithObserver directly.
package metrics

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvpath/search"
)

// Run outcomes, used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeAborted     = "aborted"
	OutcomeError       = "error"
)

// Recorder holds the search collectors.
type Recorder struct {
	reg *prometheus.Registry

	// RunsTotal counts runs. Labels: strategy, outcome.
	RunsTotal *prometheus.CounterVec

	// DurationSeconds measures wall time per run. Labels: strategy.
	DurationSeconds *prometheus.HistogramVec

	// Expansions observes accepted pops of completed runs. Labels: strategy.
	Expansions *prometheus.HistogramVec

	// PathCost observes the cost of found paths. Labels: strategy.
	PathCost *prometheus.HistogramVec
}

var _ search.Observer = (*Recorder)(nil)

// New registers the collectors under namespace on a fresh registry.
func New(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		RunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_runs_total",
				Help:      "Search runs by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		DurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Search wall time in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"strategy"},
		),
		Expansions: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_expansions",
				Help:      "Node expansions per completed search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"strategy"},
		),
		PathCost: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_path_cost",
				Help:      "Total cost of found paths",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"strategy"},
		),
	}
}

// Registry exposes the private registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveRun implements search.Observer.
func (r *Recorder) ObserveRun(strategy search.Strategy, res *search.Result, err error, elapsed time.Duration) {
	s := strategy.String()
	r.RunsTotal.WithLabelValues(s, Outcome(res, err)).Inc()
	r.DurationSeconds.WithLabelValues(s).Observe(elapsed.Seconds())
	if res == nil {
		return
	}
	r.Expansions.WithLabelValues(s).Observe(float64(res.Stats.Expansions))
	if res.Reachable {
		r.PathCost.WithLabelValues(s).Observe(float64(res.Cost))
	}
}

// Outcome classifies a finished run.
func Outcome(res *search.Result, err error) string {
	switch {
	case err != nil && search.IsAbort(err):
		return OutcomeAborted
	case err != nil:
		return OutcomeError
	case res == nil:
		return OutcomeError
	case res.Reachable:
		return OutcomeFound
	default:
		return OutcomeUnreachable
	}
}

// WriteText dumps every registered family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	var errs []error
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			errs = append(errs, err)
		}
	}
	if err = errors.Join(errs...); err != nil {
		return fmt.Errorf("metrics: write: %w", err)
	}

	return nil
}
