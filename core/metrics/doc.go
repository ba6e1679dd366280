// Package metrics defines interfaces and implementations for observing an
// annealing search: sinks like PromSink and InfluxSink record per-iteration
// and per-run facts and can be combined with NewMultiSink. The factory
// helpers return a MultiSink automatically when multiple sinks are
// configured. Helper functions in infra/metrics bridge core/events onto a
// sink via the internal event bus.
package metrics
