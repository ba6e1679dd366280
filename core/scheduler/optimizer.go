package scheduler

import (
	"math"
	"math/rand"

	"github.com/chrissuu/elastisched/core/events"
	"github.com/chrissuu/elastisched/internal/eventbus"
)

// CostFunc scores a state; lower is better.
type CostFunc[S any] func(S) float64

// NeighborFunc proposes a random perturbation of a state.
type NeighborFunc[S any] func(S) S

// CoolingFunc returns the temperature at the given iteration, given the
// initial temperature. DefaultCoolingSchedule implements the geometric
// schedule the original engine uses.
type CoolingFunc func(initial float64, iteration int) float64

// DefaultCoolingSchedule implements T(iter) = T0 * 0.95^iter.
func DefaultCoolingSchedule(initial float64, iteration int) float64 {
	return initial * math.Pow(0.95, float64(iteration))
}

// AnnealingOptimizer runs simulated annealing over states of type S: at
// each iteration it proposes a neighbor, accepts it unconditionally if it
// is better, and otherwise accepts it with probability exp(-delta/temp).
// It tracks the best state seen and returns it once temperature drops below
// FinalTemperature or the iteration budget is exhausted.
type AnnealingOptimizer[S any] struct {
	Cost     CostFunc[S]
	Neighbor NeighborFunc[S]
	Cooling  CoolingFunc

	InitialTemperature float64
	FinalTemperature   float64
	MaxIterations      int

	Rand *rand.Rand

	// Events, when non-nil, receives IterationEvent and AcceptedEvent
	// values as the search progresses. Publishing is non-blocking and
	// never affects the search's accept/reject decisions.
	Events eventbus.EventBus
}

// Result is the outcome of a completed annealing run.
type Result[S any] struct {
	Best        S
	BestCost    float64
	Iterations  int
	CostHistory []float64
}

// Optimize runs the search starting from initial and returns the best state
// found along with the cost observed at every iteration.
func (o *AnnealingOptimizer[S]) Optimize(initial S) Result[S] {
	cooling := o.Cooling
	if cooling == nil {
		cooling = DefaultCoolingSchedule
	}

	current := initial
	currentCost := o.Cost(current)

	best := current
	bestCost := currentCost

	history := make([]float64, 0, o.MaxIterations)
	history = append(history, currentCost)

	iter := 0
	for ; iter < o.MaxIterations; iter++ {
		temp := cooling(o.InitialTemperature, iter)
		if temp < o.FinalTemperature {
			break
		}

		candidate := o.Neighbor(current)
		candidateCost := o.Cost(candidate)
		delta := candidateCost - currentCost

		accepted := delta < 0 || o.Rand.Float64() < math.Exp(-delta/temp)

		o.publish(events.IterationEvent{
			Iteration:     iter,
			Temperature:   temp,
			CandidateCost: candidateCost,
			CurrentCost:   currentCost,
		})

		if accepted {
			current = candidate
			currentCost = candidateCost
			isNewBest := currentCost < bestCost-CostEpsilon
			if isNewBest {
				best = current
				bestCost = currentCost
			}
			o.publish(events.AcceptedEvent{Iteration: iter, Cost: currentCost, IsNewBest: isNewBest})
		}

		history = append(history, currentCost)
	}

	o.publish(events.CompletedEvent{Iterations: iter, BestCost: bestCost})

	return Result[S]{
		Best:        best,
		BestCost:    bestCost,
		Iterations:  iter,
		CostHistory: history,
	}
}

func (o *AnnealingOptimizer[S]) publish(e eventbus.Event) {
	if o.Events == nil {
		return
	}
	o.Events.Publish(e)
}
