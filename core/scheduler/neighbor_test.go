package scheduler

import (
	"math/rand"
	"testing"

	"github.com/chrissuu/elastisched/core/model"
)

func TestRandomRangeWithinRespectsGrid(t *testing.T) {
	gen := NewNeighborGenerator(5, rand.New(rand.NewSource(1)))
	window := model.MustInterval[model.Time](0, 100)
	for i := 0; i < 50; i++ {
		seg, ok := gen.randomRangeWithin(window, 20)
		if !ok {
			t.Fatal("expected placement to succeed")
		}
		if seg.Low%5 != 0 {
			t.Fatalf("start %d not aligned to granularity", seg.Low)
		}
		if !window.Contains(seg) {
			t.Fatalf("segment %v not contained in window %v", seg, window)
		}
		if seg.Length() != 20 {
			t.Fatalf("segment length = %d, want 20", seg.Length())
		}
	}
}

func TestRandomRangeWithinFailsWhenTooLarge(t *testing.T) {
	gen := NewNeighborGenerator(5, rand.New(rand.NewSource(1)))
	window := model.MustInterval[model.Time](0, 10)
	if _, ok := gen.randomRangeWithin(window, 20); ok {
		t.Fatal("expected placement to fail when duration exceeds window")
	}
}

func TestProposeLeavesRigidJobsAlone(t *testing.T) {
	gen := NewNeighborGenerator(1, rand.New(rand.NewSource(1)))
	rigid := withSeg(t, mustJob(t, "r", 10, 0, 10, model.DefaultPolicy()), model.MustInterval[model.Time](0, 10))
	flexible := withSeg(t, mustJob(t, "f", 10, 0, 100, model.DefaultPolicy()), model.MustInterval[model.Time](0, 10))
	sched := model.NewSchedule([]model.Job{rigid, flexible})

	for i := 0; i < 20; i++ {
		next := gen.Propose(sched)
		r, _ := next.JobByID("r")
		if len(r.Segments) != 1 || r.Segments[0] != model.MustInterval[model.Time](0, 10) {
			t.Fatalf("rigid job was moved: %v", r.Segments)
		}
		sched = next
	}
}

func TestProposeNoFlexibleJobsReturnsUnchanged(t *testing.T) {
	gen := NewNeighborGenerator(1, rand.New(rand.NewSource(1)))
	rigid := withSeg(t, mustJob(t, "r", 10, 0, 10, model.DefaultPolicy()), model.MustInterval[model.Time](0, 10))
	sched := model.NewSchedule([]model.Job{rigid})

	next := gen.Propose(sched)
	r, _ := next.JobByID("r")
	if r.Segments[0] != model.MustInterval[model.Time](0, 10) {
		t.Fatal("expected schedule to be unchanged with no flexible jobs")
	}
}

func TestGenerateSplitDurationsSumsToTotal(t *testing.T) {
	gen := NewNeighborGenerator(5, rand.New(rand.NewSource(7)))
	j := mustJob(t, "s", 100, 0, 200, model.Policy{Splittable: true, MaxSplits: 4, RoundToGranularity: true})

	durations, ok := gen.generateSplitDurations(j, 3)
	if !ok {
		t.Fatal("expected split durations to succeed")
	}
	var total model.Time
	for _, d := range durations {
		total += d
		if d%5 != 0 {
			t.Fatalf("duration %d not aligned to granularity", d)
		}
	}
	if total != 100 {
		t.Fatalf("total split duration = %d, want 100", total)
	}
}

func TestGenerateSplitDurationsFailsWhenTooSmall(t *testing.T) {
	gen := NewNeighborGenerator(5, rand.New(rand.NewSource(7)))
	j := mustJob(t, "s", 10, 0, 200, model.Policy{Splittable: true, MaxSplits: 10, MinSplitDuration: 20})

	if _, ok := gen.generateSplitDurations(j, 2); ok {
		t.Fatal("expected split to fail when MinSplitDuration exceeds achievable segment size")
	}
}

func TestPlaceSplitSegmentsNoInternalOverlap(t *testing.T) {
	gen := NewNeighborGenerator(1, rand.New(rand.NewSource(3)))
	j := mustJob(t, "s", 30, 0, 200, model.Policy{Splittable: true, MaxSplits: 5})

	segments, ok := gen.placeSplitSegments(j, []model.Time{10, 10, 10})
	if !ok {
		t.Fatal("expected placement to succeed")
	}
	for i := 1; i < len(segments); i++ {
		if segments[i-1].Overlaps(segments[i]) {
			t.Fatalf("segments overlap: %v and %v", segments[i-1], segments[i])
		}
		if segments[i-1].Low > segments[i].Low {
			t.Fatal("expected segments sorted by start time")
		}
	}
}

func TestProposeCanSplitAndMerge(t *testing.T) {
	gen := NewNeighborGenerator(1, rand.New(rand.NewSource(42)))
	j := withSeg(t, mustJob(t, "s", 20, 0, 200, model.Policy{Splittable: true, MaxSplits: 4}),
		model.MustInterval[model.Time](0, 20))
	sched := model.NewSchedule([]model.Job{j})

	sawSplit, sawMerge := false, false
	for i := 0; i < 200 && !sawMerge; i++ {
		sched = gen.Propose(sched)
		cur, _ := sched.JobByID("s")
		if cur.IsSplit() {
			sawSplit = true
		} else if sawSplit {
			sawMerge = true
		}
	}
	if !sawSplit {
		t.Fatal("expected at least one split to occur over many proposals")
	}
	if !sawMerge {
		t.Fatal("expected a split job to be merged back into one segment over many proposals")
	}
}
