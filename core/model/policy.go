package model

// Policy controls how a Job may be placed within its schedulable range.
//
// The original engine packs these flags into a bitfield on the Job struct;
// that is a C++ struct-layout detail, not part of the contract, so here it
// is a plain struct of named fields.
type Policy struct {
	// Splittable allows the job's duration to be divided across more than
	// one disjoint segment.
	Splittable bool
	// Overlappable allows the job's segments to overlap other jobs'
	// segments without incurring the illegal-schedule cost.
	Overlappable bool
	// Invisible is opaque metadata surfaced for callers (e.g. a UI that
	// hides certain jobs from a calendar view). It has no effect on any
	// cost or mutation logic in the core: an invisible job is scheduled,
	// overlap-checked and split-costed exactly like any other job.
	Invisible bool
	// RoundToGranularity constrains split segment durations to multiples of
	// the scheduler's granularity when the job's Duration is itself a
	// multiple of the granularity; otherwise it has no effect.
	RoundToGranularity bool
	// MaxSplits caps the number of additional segments Splittable may
	// produce: a split job has at most MaxSplits+1 segments. Zero means
	// unsplittable in practice even if Splittable is set.
	MaxSplits int
	// MinSplitDuration is the smallest duration any single segment may take
	// when the job is split.
	MinSplitDuration Time
}

// DefaultPolicy returns the policy of a non-splittable, non-overlapping,
// visible job: all flags false, MaxSplits zero. Whether a job is rigid
// depends on its duration and schedulable range, not on its policy.
func DefaultPolicy() Policy {
	return Policy{}
}

// AllowsSplit reports whether the policy permits splitting into more than
// one segment at all.
func (p Policy) AllowsSplit() bool {
	return p.Splittable && p.MaxSplits >= 1
}
