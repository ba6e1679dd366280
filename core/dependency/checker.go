package dependency

import "github.com/chrissuu/elastisched/core/model"

// Violation records that job JobID is scheduled to start before DependsOnID,
// one of its dependencies, has finished.
type Violation struct {
	JobID       string
	DependsOnID string
}

// Result is the outcome of checking a schedule's dependency graph.
type Result struct {
	// HasCycle is true when the dependency graph is not a DAG. When true,
	// Violations is always empty: a cyclic graph has no valid topological
	// order to check precedence against.
	HasCycle bool
	// Violations lists every dependency precedence violation found. Empty
	// when HasCycle is true or when every dependency is honored.
	Violations []Violation
}

// HasViolations reports whether the schedule violates its dependency graph
// in any way, cyclic or not.
func (r Result) HasViolations() bool {
	return r.HasCycle || len(r.Violations) > 0
}

// Check runs Kahn's algorithm over the schedule's job dependency graph to
// detect cycles, then checks precedence for every dependency edge: job must
// not start before all of its dependencies have finished.
func Check(sched model.Schedule) Result {
	jobs := sched.Jobs()

	inDegree := make(map[string]int, len(jobs))
	dependents := make(map[string][]string, len(jobs))
	for _, j := range jobs {
		if _, ok := inDegree[j.ID]; !ok {
			inDegree[j.ID] = 0
		}
		for depID := range j.Dependencies {
			if _, ok := sched.JobByID(depID); !ok {
				continue
			}
			inDegree[j.ID]++
			dependents[depID] = append(dependents[depID], j.ID)
		}
	}

	queue := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if inDegree[j.ID] == 0 {
			queue = append(queue, j.ID)
		}
	}

	order := make([]string, 0, len(jobs))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, next := range dependents[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != len(jobs) {
		return Result{HasCycle: true}
	}

	var violations []Violation
	for _, j := range jobs {
		earliest, ok := earliestStart(j.Segments)
		if !ok {
			continue
		}
		for depID := range j.Dependencies {
			dep, ok := sched.JobByID(depID)
			if !ok {
				continue
			}
			latest, ok := latestEnd(dep.Segments)
			if !ok {
				continue
			}
			if latest > earliest {
				violations = append(violations, Violation{JobID: j.ID, DependsOnID: depID})
			}
		}
	}

	return Result{Violations: violations}
}

func earliestStart(segments []model.Interval[model.Time]) (model.Time, bool) {
	if len(segments) == 0 {
		return 0, false
	}
	min := segments[0].Low
	for _, s := range segments[1:] {
		if s.Low < min {
			min = s.Low
		}
	}
	return min, true
}

func latestEnd(segments []model.Interval[model.Time]) (model.Time, bool) {
	if len(segments) == 0 {
		return 0, false
	}
	max := segments[0].High
	for _, s := range segments[1:] {
		if s.High > max {
			max = s.High
		}
	}
	return max, true
}
