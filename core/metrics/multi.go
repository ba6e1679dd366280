package metrics

// MultiSink fans a single recorded fact out to every wrapped sink that
// implements the matching narrow recorder interface. A sink that does not
// implement a given interface is silently skipped for that call.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink wraps the given sinks into one MetricsSink.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// Close closes every wrapped sink, returning the first error encountered.
func (m *MultiSink) Close() error {
	var firstErr error
	for _, s := range m.Sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RecordIteration forwards to every wrapped sink that implements
// IterationRecorder, returning the first error encountered.
func (m *MultiSink) RecordIteration(ev IterationEvent) error {
	var firstErr error
	for _, s := range m.Sinks {
		if r, ok := s.(IterationRecorder); ok {
			if err := r.RecordIteration(ev); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// RecordAccepted forwards to every wrapped sink that implements
// AcceptedRecorder, returning the first error encountered.
func (m *MultiSink) RecordAccepted(ev AcceptedEvent) error {
	var firstErr error
	for _, s := range m.Sinks {
		if r, ok := s.(AcceptedRecorder); ok {
			if err := r.RecordAccepted(ev); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// RecordRunCompleted forwards to every wrapped sink that implements
// RunCompletedRecorder, returning the first error encountered.
func (m *MultiSink) RecordRunCompleted(ev RunCompletedEvent) error {
	var firstErr error
	for _, s := range m.Sinks {
		if r, ok := s.(RunCompletedRecorder); ok {
			if err := r.RecordRunCompleted(ev); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
