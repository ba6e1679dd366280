package dependency

import (
	"testing"

	"github.com/chrissuu/elastisched/core/model"
)

func jobWithSegments(t *testing.T, id string, low, high model.Time, deps ...string) model.Job {
	t.Helper()
	j, err := model.NewJob(id, high-low, model.MustInterval(low, high), model.DefaultPolicy())
	if err != nil {
		t.Fatalf("NewJob(%s): %v", id, err)
	}
	if err := j.SetSegments([]model.Interval[model.Time]{model.MustInterval(low, high)}); err != nil {
		t.Fatalf("SetSegments(%s): %v", id, err)
	}
	for _, d := range deps {
		j.AddDependency(d)
	}
	return j
}

func TestCheckNoViolations(t *testing.T) {
	a := jobWithSegments(t, "a", 0, 10)
	b := jobWithSegments(t, "b", 10, 20, "a")
	sched := model.NewSchedule([]model.Job{a, b})

	result := Check(sched)
	if result.HasViolations() {
		t.Fatalf("expected no violations, got %+v", result)
	}
}

func TestCheckDetectsPrecedenceViolation(t *testing.T) {
	a := jobWithSegments(t, "a", 10, 20)
	b := jobWithSegments(t, "b", 0, 10, "a")
	sched := model.NewSchedule([]model.Job{a, b})

	result := Check(sched)
	if result.HasCycle {
		t.Fatal("did not expect a cycle")
	}
	if len(result.Violations) != 1 || result.Violations[0].JobID != "b" || result.Violations[0].DependsOnID != "a" {
		t.Fatalf("unexpected violations: %+v", result.Violations)
	}
}

func TestCheckDetectsCycle(t *testing.T) {
	a := jobWithSegments(t, "a", 0, 10, "b")
	b := jobWithSegments(t, "b", 10, 20, "a")
	sched := model.NewSchedule([]model.Job{a, b})

	result := Check(sched)
	if !result.HasCycle {
		t.Fatal("expected a cycle to be detected")
	}
	if len(result.Violations) != 0 {
		t.Fatalf("expected no violations reported alongside a cycle, got %+v", result.Violations)
	}
}

func TestCheckIgnoresUnscheduledJobs(t *testing.T) {
	a, err := model.NewJob("a", 5, model.MustInterval[model.Time](0, 10), model.DefaultPolicy())
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	b := jobWithSegments(t, "b", 0, 10, "a")
	sched := model.NewSchedule([]model.Job{a, b})

	result := Check(sched)
	if result.HasViolations() {
		t.Fatalf("expected no violations when a dependency has no segments yet, got %+v", result)
	}
}

func TestCheckIgnoresUnknownDependencyID(t *testing.T) {
	a := jobWithSegments(t, "a", 0, 10, "ghost")
	sched := model.NewSchedule([]model.Job{a})

	result := Check(sched)
	if result.HasViolations() {
		t.Fatalf("expected a dependency on an absent id to be silently ignored, got %+v", result)
	}
}

func TestCheckMultipleIndependentChains(t *testing.T) {
	a := jobWithSegments(t, "a", 0, 10)
	b := jobWithSegments(t, "b", 10, 20, "a")
	c := jobWithSegments(t, "c", 20, 30, "b")
	x := jobWithSegments(t, "x", 0, 5)
	sched := model.NewSchedule([]model.Job{a, b, c, x})

	result := Check(sched)
	if result.HasViolations() {
		t.Fatalf("expected no violations, got %+v", result)
	}
}
