package metrics

// IterationEvent is the metrics-facing shape of one annealing iteration.
type IterationEvent struct {
	Iteration     int
	Temperature   float64
	CandidateCost float64
	CurrentCost   float64
}

// IterationRecorder records a per-iteration observation of the search.
type IterationRecorder interface {
	RecordIteration(ev IterationEvent) error
}

// AcceptedEvent is the metrics-facing shape of an accepted candidate.
type AcceptedEvent struct {
	Iteration int
	Cost      float64
	IsNewBest bool
}

// AcceptedRecorder records that a candidate schedule was accepted.
type AcceptedRecorder interface {
	RecordAccepted(ev AcceptedEvent) error
}

// RunCompletedEvent summarizes a finished search.
type RunCompletedEvent struct {
	JobCount   int
	Iterations int
	BestCost   float64
}

// RunCompletedRecorder records the outcome of a finished search.
type RunCompletedRecorder interface {
	RecordRunCompleted(ev RunCompletedEvent) error
}

// MetricsSink is the minimal surface every sink implementation must
// provide. Individual sinks may additionally implement IterationRecorder,
// AcceptedRecorder and/or RunCompletedRecorder; callers type-assert for the
// narrower interface they need, the same pattern MultiSink itself uses.
type MetricsSink interface {
	Close() error
}

// NopSink implements MetricsSink and every narrow recorder interface with
// no-op methods. It is the default sink when none is configured.
type NopSink struct{}

func (NopSink) Close() error { return nil }

func (NopSink) RecordIteration(IterationEvent) error       { return nil }
func (NopSink) RecordAccepted(AcceptedEvent) error         { return nil }
func (NopSink) RecordRunCompleted(RunCompletedEvent) error { return nil }
