// Package events defines the observability events the scheduler's
// optimizer publishes onto an internal/eventbus.EventBus while it runs.
// They are diagnostic only: nothing in the search itself ever subscribes
// to or depends on these events.
package events

// IterationEvent is published once per annealing iteration.
type IterationEvent struct {
	Iteration     int
	Temperature   float64
	CandidateCost float64
	CurrentCost   float64
}

// AcceptedEvent is published whenever a candidate schedule is accepted,
// whether because it was strictly better or because it won the
// probabilistic acceptance draw.
type AcceptedEvent struct {
	Iteration int
	Cost      float64
	IsNewBest bool
}

// CompletedEvent is published once, after the search finishes.
type CompletedEvent struct {
	Iterations int
	BestCost   float64
}
