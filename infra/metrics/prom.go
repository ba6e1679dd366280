package metrics

import (
	"strconv"

	coremetrics "github.com/chrissuu/elastisched/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records search observability events in Prometheus metrics.
type PromSink struct {
	iterations *prometheus.CounterVec
	cost       *prometheus.GaugeVec
	accepted   *prometheus.CounterVec
	bestCost   prometheus.Gauge
	runs       prometheus.Counter
}

// NewPromSink registers scheduler metrics on the default Prometheus
// registerer. The Prometheus HTTP server should be started separately.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer. A
// nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	iterations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "elastisched_iterations_total",
		Help: "Total number of annealing iterations evaluated",
	}, []string{"accepted"})
	cost := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "elastisched_schedule_cost",
		Help: "Cost of the current schedule during a search",
	}, []string{"kind"})
	accepted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "elastisched_accepted_total",
		Help: "Total number of accepted candidate schedules",
	}, []string{"is_new_best"})
	bestCost := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "elastisched_best_cost",
		Help: "Best schedule cost found by the most recent completed search",
	})
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "elastisched_runs_total",
		Help: "Total number of completed scheduling runs",
	})

	if err := reg.Register(iterations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			iterations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(cost); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			cost = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(accepted); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			accepted = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(bestCost); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			bestCost = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}

	return &PromSink{iterations: iterations, cost: cost, accepted: accepted, bestCost: bestCost, runs: runs}, nil
}

// Close is a no-op: Prometheus collectors stay registered for the process
// lifetime so a running scrape endpoint keeps serving them.
func (s *PromSink) Close() error { return nil }

// RecordIteration increments the iteration counter and updates the current
// candidate/current cost gauges.
func (s *PromSink) RecordIteration(ev coremetrics.IterationEvent) error {
	s.iterations.WithLabelValues("false").Inc()
	s.cost.WithLabelValues("candidate").Set(ev.CandidateCost)
	s.cost.WithLabelValues("current").Set(ev.CurrentCost)
	return nil
}

// RecordAccepted increments the accepted counter, labeled by whether the
// acceptance was a new best.
func (s *PromSink) RecordAccepted(ev coremetrics.AcceptedEvent) error {
	s.accepted.WithLabelValues(strconv.FormatBool(ev.IsNewBest)).Inc()
	if ev.IsNewBest {
		s.bestCost.Set(ev.Cost)
	}
	return nil
}

// RecordRunCompleted increments the completed-run counter and sets the
// final best-cost gauge.
func (s *PromSink) RecordRunCompleted(ev coremetrics.RunCompletedEvent) error {
	s.runs.Inc()
	s.bestCost.Set(ev.BestCost)
	return nil
}
