package metrics

import (
	"context"

	"github.com/chrissuu/elastisched/core/events"
	coremetrics "github.com/chrissuu/elastisched/core/metrics"
	"github.com/chrissuu/elastisched/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and forwards
// core/events values onto sink's matching recorder interfaces. It stops
// when the context is canceled or the bus is closed.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.MetricsSink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.IterationEvent:
					if r, ok := sink.(coremetrics.IterationRecorder); ok {
						_ = r.RecordIteration(coremetrics.IterationEvent{
							Iteration:     e.Iteration,
							Temperature:   e.Temperature,
							CandidateCost: e.CandidateCost,
							CurrentCost:   e.CurrentCost,
						})
					}
				case events.AcceptedEvent:
					if r, ok := sink.(coremetrics.AcceptedRecorder); ok {
						_ = r.RecordAccepted(coremetrics.AcceptedEvent{
							Iteration: e.Iteration,
							Cost:      e.Cost,
							IsNewBest: e.IsNewBest,
						})
					}
				case events.CompletedEvent:
					if r, ok := sink.(coremetrics.RunCompletedRecorder); ok {
						_ = r.RecordRunCompleted(coremetrics.RunCompletedEvent{
							Iterations: e.Iterations,
							BestCost:   e.BestCost,
						})
					}
				}
			}
		}
	}()
}
