package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chrissuu/elastisched/core/events"
	"github.com/chrissuu/elastisched/core/model"
	"github.com/chrissuu/elastisched/core/scheduler/tracelog"
	"github.com/chrissuu/elastisched/internal/eventbus"
)

// SchedulerFacade is the single entry point to the scheduling engine: give
// it a job set and it returns a placement for every job's segments. It
// owns wiring the cost evaluator, neighbor generator and annealing
// optimizer together; callers never construct those directly.
type SchedulerFacade struct {
	Granularity model.Time

	// Rand overrides the PRNG used for the search. When nil, a fresh
	// *rand.Rand seeded via ResolveRNGSeed is used.
	Rand *rand.Rand

	// Events, when set, receives IterationEvent/AcceptedEvent/CompletedEvent
	// values published during the search. Optional.
	Events eventbus.EventBus

	// Trace, when set, receives a Record for each iteration event delivered
	// to its bus subscription. The bus drops events for a subscriber whose
	// buffer is full, so the trace may omit iterations. Optional; when set
	// without Events, the facade creates its own internal bus to bridge
	// optimizer events to the trace logger.
	Trace *tracelog.JSONLLogger
}

// NewSchedulerFacade builds a SchedulerFacade for the given granularity.
func NewSchedulerFacade(granularity model.Time) *SchedulerFacade {
	return &SchedulerFacade{Granularity: granularity}
}

// Schedule runs ScheduleJobs with the engine's default temperature schedule
// and iteration budget.
func (f *SchedulerFacade) Schedule(jobs []model.Job) (Result[model.Schedule], error) {
	return f.ScheduleJobs(jobs, DefaultInitialTemperature, DefaultFinalTemperature, DefaultIterations)
}

// ScheduleJobs pins every rigid job to its schedulable range, places every
// flexible job at a random initial position, then runs simulated annealing
// from that initial schedule down to finalTemp or maxIterations, whichever
// comes first.
func (f *SchedulerFacade) ScheduleJobs(jobs []model.Job, initialTemp, finalTemp float64, maxIterations int) (Result[model.Schedule], error) {
	if len(jobs) == 0 {
		return Result[model.Schedule]{Best: model.NewSchedule(nil)}, nil
	}

	rng := f.Rand
	if rng == nil {
		rng = NewRNG()
	}
	neighborGen := NewNeighborGenerator(f.Granularity, rng)

	initialJobs := make([]model.Job, len(jobs))
	for i, j := range jobs {
		jj := j
		var seg model.Interval[model.Time]
		if jj.IsRigid() {
			seg = jj.SchedulableRange
		} else {
			placed, ok := neighborGen.placeSingleSegment(jj)
			if !ok {
				return Result[model.Schedule]{}, fmt.Errorf("scheduler: job %s: %w", jj.ID, model.ErrInvalidWindow)
			}
			seg = placed
		}
		if err := jj.SetSegments([]model.Interval[model.Time]{seg}); err != nil {
			return Result[model.Schedule]{}, fmt.Errorf("scheduler: job %s: %w", jj.ID, err)
		}
		initialJobs[i] = jj
	}
	initial := model.NewSchedule(initialJobs)

	bus := f.Events
	var ownBus *eventbus.Bus
	if bus == nil && f.Trace != nil {
		ownBus = eventbus.New()
		bus = ownBus
	}

	var traceDone chan struct{}
	var untrace func()
	if f.Trace != nil && bus != nil {
		traceDone, untrace = f.bridgeTrace(bus)
	}

	evaluator := NewCostEvaluator(f.Granularity)
	optimizer := &AnnealingOptimizer[model.Schedule]{
		Cost:               evaluator.Cost,
		Neighbor:           neighborGen.Propose,
		InitialTemperature: initialTemp,
		FinalTemperature:   finalTemp,
		MaxIterations:      maxIterations,
		Rand:               rng,
		Events:             bus,
	}

	result := optimizer.Optimize(initial)

	if ownBus != nil {
		ownBus.Close()
	} else if untrace != nil {
		untrace()
	}
	if traceDone != nil {
		<-traceDone
	}

	return result, nil
}

// bridgeTrace subscribes to bus and forwards every IterationEvent and
// AcceptedEvent it sees to f.Trace, pairing acceptance onto the iteration
// record it followed. The returned channel closes once the subscription is
// drained and closed; the returned func unsubscribes, which triggers that.
func (f *SchedulerFacade) bridgeTrace(bus eventbus.EventBus) (chan struct{}, func()) {
	sub := bus.Subscribe()
	done := make(chan struct{})

	go func() {
		defer close(done)
		var pending tracelog.Record
		havePending := false
		flush := func() {
			if havePending {
				_ = f.Trace.Append(pending)
				havePending = false
			}
		}
		for ev := range sub {
			switch e := ev.(type) {
			case events.IterationEvent:
				flush()
				pending = tracelog.Record{
					Timestamp:     time.Now(),
					Iteration:     e.Iteration,
					Temperature:   e.Temperature,
					CandidateCost: e.CandidateCost,
					CurrentCost:   e.CurrentCost,
				}
				havePending = true
			case events.AcceptedEvent:
				if havePending && e.Iteration == pending.Iteration {
					pending.Accepted = true
					pending.IsNewBest = e.IsNewBest
				}
			}
		}
		flush()
	}()

	return done, func() { bus.Unsubscribe(sub) }
}
