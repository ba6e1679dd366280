package model

// Schedule is an ordered collection of Jobs together with their current
// segment placements. It is the state the annealing search mutates: each
// neighbor is a Schedule with one job's segments changed.
type Schedule struct {
	jobs []Job
	byID map[string]int
}

// NewSchedule builds a Schedule from the given jobs. Jobs are copied by
// value; mutating the returned Schedule never affects the input slice.
func NewSchedule(jobs []Job) Schedule {
	s := Schedule{
		jobs: make([]Job, len(jobs)),
		byID: make(map[string]int, len(jobs)),
	}
	for i, j := range jobs {
		s.jobs[i] = j
		s.byID[j.ID] = i
	}
	return s
}

// Jobs returns the schedule's jobs in insertion order. The returned slice
// shares no backing array with the schedule's internal state.
func (s Schedule) Jobs() []Job {
	out := make([]Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Len returns the number of jobs in the schedule.
func (s Schedule) Len() int {
	return len(s.jobs)
}

// JobAt returns the job at position i and whether i is in range.
func (s Schedule) JobAt(i int) (Job, bool) {
	if i < 0 || i >= len(s.jobs) {
		return Job{}, false
	}
	return s.jobs[i], true
}

// JobByID looks up a job by its ID.
func (s Schedule) JobByID(id string) (Job, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Job{}, false
	}
	return s.jobs[i], true
}

// Clone deep-copies the schedule: every job's Segments slice is copied so
// that mutating one schedule's segments never affects another.
func (s Schedule) Clone() Schedule {
	clone := Schedule{
		jobs: make([]Job, len(s.jobs)),
		byID: make(map[string]int, len(s.byID)),
	}
	for i, j := range s.jobs {
		cj := j
		if j.Segments != nil {
			cj.Segments = make([]Interval[Time], len(j.Segments))
			copy(cj.Segments, j.Segments)
		}
		clone.jobs[i] = cj
		clone.byID[cj.ID] = i
	}
	return clone
}

// WithSegments returns a clone of the schedule with job id's segments
// replaced. The original schedule is left untouched, matching the
// optimizer's expectation that neighbor generation never mutates its input.
func (s Schedule) WithSegments(id string, segments []Interval[Time]) (Schedule, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Schedule{}, false
	}
	out := s.Clone()
	out.jobs[i].Segments = append([]Interval[Time]{}, segments...)
	return out, true
}
