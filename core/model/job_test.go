package model

import "testing"

func TestNewJobAssignsID(t *testing.T) {
	j, err := NewJob("", 10, MustInterval[Time](0, 100), DefaultPolicy())
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if j.ID == "" {
		t.Fatal("expected a generated ID")
	}
}

func TestNewJobRejectsOversizedDuration(t *testing.T) {
	_, err := NewJob("j1", 200, MustInterval[Time](0, 100), DefaultPolicy())
	if err == nil {
		t.Fatal("expected error for duration exceeding window")
	}
}

func TestJobIsRigid(t *testing.T) {
	rigid, err := NewJob("j1", 100, MustInterval[Time](0, 100), DefaultPolicy())
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if !rigid.IsRigid() {
		t.Error("expected job with duration == window length to be rigid")
	}

	flexible, err := NewJob("j2", 50, MustInterval[Time](0, 100), DefaultPolicy())
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if flexible.IsRigid() {
		t.Error("expected job with slack to not be rigid")
	}
}

func TestJobSetSegmentsRejectsEmpty(t *testing.T) {
	j, _ := NewJob("j1", 10, MustInterval[Time](0, 100), DefaultPolicy())
	if err := j.SetSegments(nil); err != ErrInvalidSegments {
		t.Fatalf("expected ErrInvalidSegments, got %v", err)
	}
}

func TestJobDependencies(t *testing.T) {
	j, _ := NewJob("j1", 10, MustInterval[Time](0, 100), DefaultPolicy())
	j.AddDependency("j0")
	if !j.DependsOn("j0") {
		t.Error("expected job to depend on j0")
	}
	if j.DependsOn("jx") {
		t.Error("did not expect dependency on jx")
	}
}

func TestJobIsSplit(t *testing.T) {
	j, _ := NewJob("j1", 10, MustInterval[Time](0, 100), DefaultPolicy())
	_ = j.SetSegments([]Interval[Time]{MustInterval[Time](0, 10)})
	if j.IsSplit() {
		t.Error("single segment should not be split")
	}
	_ = j.SetSegments([]Interval[Time]{MustInterval[Time](0, 5), MustInterval[Time](50, 55)})
	if !j.IsSplit() {
		t.Error("two segments should be split")
	}
	if got := j.TotalSegmentDuration(); got != 10 {
		t.Errorf("total segment duration = %d, want 10", got)
	}
}
