package model

import (
	"fmt"

	"github.com/google/uuid"
)

// NewJobID returns a fresh, randomly generated job identifier. The original
// engine's Python/C++ bindings generate ids at the language-binding layer;
// here that convenience lives directly on the Go side.
func NewJobID() string {
	return uuid.NewString()
}

// Job is a unit of work the scheduler places into one or more segments
// within its SchedulableRange.
type Job struct {
	ID               string
	Duration         Time
	SchedulableRange Interval[Time]
	Segments         []Interval[Time]
	Policy           Policy
	Dependencies     map[string]struct{}
	Tags             TagSet
}

// NewJob builds a Job, assigning a fresh ID if id is empty, and validates
// that Duration fits within SchedulableRange.
func NewJob(id string, duration Time, schedulableRange Interval[Time], policy Policy) (Job, error) {
	if id == "" {
		id = NewJobID()
	}
	if duration > schedulableRange.Length() {
		return Job{}, fmt.Errorf("job %s: %w", id, ErrInvalidWindow)
	}
	return Job{
		ID:               id,
		Duration:         duration,
		SchedulableRange: schedulableRange,
		Policy:           policy,
		Dependencies:     make(map[string]struct{}),
		Tags:             NewTagSet(),
	}, nil
}

// IsRigid reports whether the job's duration exactly fills its schedulable
// range, leaving no freedom in where it can be placed.
func (j Job) IsRigid() bool {
	return j.Duration == j.SchedulableRange.Length()
}

// TotalSegmentDuration sums the length of every segment currently assigned
// to the job.
func (j Job) TotalSegmentDuration() Time {
	var total Time
	for _, seg := range j.Segments {
		total += seg.Length()
	}
	return total
}

// IsSplit reports whether the job currently occupies more than one segment.
func (j Job) IsSplit() bool {
	return len(j.Segments) > 1
}

// SetSegments replaces the job's segments. An empty slice is rejected: a
// job must occupy at least one segment once scheduled.
func (j *Job) SetSegments(segments []Interval[Time]) error {
	if len(segments) == 0 {
		return ErrInvalidSegments
	}
	j.Segments = segments
	return nil
}

// AddDependency marks this job as depending on the job identified by id:
// this job may not start scheduling before that job's segments complete.
func (j *Job) AddDependency(id string) {
	if j.Dependencies == nil {
		j.Dependencies = make(map[string]struct{})
	}
	j.Dependencies[id] = struct{}{}
}

// DependsOn reports whether this job lists id as a dependency.
func (j Job) DependsOn(id string) bool {
	_, ok := j.Dependencies[id]
	return ok
}

// AddTag attaches a tag to the job, keyed by name.
func (j *Job) AddTag(t Tag) {
	if j.Tags == nil {
		j.Tags = NewTagSet()
	}
	j.Tags.Add(t)
}

// HasTag reports whether the job carries a tag with the given name.
func (j Job) HasTag(name string) bool {
	return j.Tags.Has(name)
}
