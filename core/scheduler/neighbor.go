package scheduler

import (
	"math/rand"
	"sort"

	"github.com/chrissuu/elastisched/core/model"
)

// NeighborGenerator proposes small, random perturbations to a Schedule: it
// picks one non-rigid job and either moves it as a whole, merges its
// segments back into one, or splits it into several, always respecting the
// job's own Policy and schedulable range.
//
// Every random draw happens in a fixed order so that seeding the underlying
// *rand.Rand deterministically reproduces the exact same sequence of
// proposals: pick the job, then (if currently split) the merge decision,
// then (if not split but splittable) the split decision and segment count,
// then the split durations, then the placement of each segment.
type NeighborGenerator struct {
	Granularity model.Time
	Rand        *rand.Rand
}

// NewNeighborGenerator builds a NeighborGenerator over the given granularity
// and PRNG. Callers that need determinism should pass a *rand.Rand seeded
// via ResolveRNGSeed.
func NewNeighborGenerator(granularity model.Time, rng *rand.Rand) *NeighborGenerator {
	return &NeighborGenerator{Granularity: granularity, Rand: rng}
}

// Propose returns a neighboring Schedule: a copy of sched with exactly one
// flexible job's segments changed. If sched has no flexible (non-rigid) job,
// or every placement attempt fails, Propose returns sched unchanged.
func (g *NeighborGenerator) Propose(sched model.Schedule) model.Schedule {
	flexible := flexibleJobs(sched)
	if len(flexible) == 0 {
		return sched
	}
	job := flexible[g.Rand.Intn(len(flexible))]

	if job.IsSplit() && g.Rand.Float64() < mergeProbability {
		if seg, ok := g.placeSingleSegment(job); ok {
			next, _ := sched.WithSegments(job.ID, []model.Interval[model.Time]{seg})
			return next
		}
		return sched
	}

	if !job.IsSplit() && job.Policy.AllowsSplit() {
		possible := g.maxPossibleSegments(job)
		if possible >= 2 && g.Rand.Float64() < splitProbability {
			k := 2 + g.Rand.Intn(possible-1)
			if segments, ok := g.trySplit(job, k); ok {
				next, _ := sched.WithSegments(job.ID, segments)
				return next
			}
		}
	}

	segments, ok := g.forcedMove(job)
	if !ok {
		return sched
	}
	next, _ := sched.WithSegments(job.ID, segments)
	return next
}

// flexibleJobs returns every job in sched whose duration leaves it room to
// move within its schedulable range.
func flexibleJobs(sched model.Schedule) []model.Job {
	var out []model.Job
	for _, j := range sched.Jobs() {
		if !j.IsRigid() {
			out = append(out, j)
		}
	}
	return out
}

// forcedMove re-places job as a whole, or (if it is currently split) at the
// same number of segments, retrying placement rather than giving up after a
// single failed draw.
func (g *NeighborGenerator) forcedMove(job model.Job) ([]model.Interval[model.Time], bool) {
	if job.IsSplit() {
		return g.trySplit(job, len(job.Segments))
	}
	seg, ok := g.placeSingleSegment(job)
	if !ok {
		return nil, false
	}
	return []model.Interval[model.Time]{seg}, true
}

// trySplit generates k split durations for job and attempts to place them,
// retrying the whole generate+place pass once on failure before giving up.
func (g *NeighborGenerator) trySplit(job model.Job, k int) ([]model.Interval[model.Time], bool) {
	for attempt := 0; attempt < 2; attempt++ {
		durations, ok := g.generateSplitDurations(job, k)
		if !ok {
			continue
		}
		segments, ok := g.placeSplitSegments(job, durations)
		if ok {
			return segments, true
		}
	}
	return nil, false
}

// maxPossibleSegments returns the largest number of segments job could be
// split into while respecting MinSplitDuration and MaxSplits.
func (g *NeighborGenerator) maxPossibleSegments(job model.Job) int {
	minSplit := job.Policy.MinSplitDuration
	if minSplit == 0 {
		minSplit = g.Granularity
	}
	if minSplit == 0 {
		minSplit = 1
	}
	possible := int(job.Duration / minSplit)
	if job.Policy.MaxSplits > 0 && possible > job.Policy.MaxSplits+1 {
		possible = job.Policy.MaxSplits + 1
	}
	return possible
}

// placeSingleSegment draws a random placement of job's full duration inside
// its schedulable range, aligned to the granularity grid.
func (g *NeighborGenerator) placeSingleSegment(job model.Job) (model.Interval[model.Time], bool) {
	return g.randomRangeWithin(job.SchedulableRange, job.Duration)
}

// randomRangeWithin draws a uniformly random, granularity-aligned interval
// of the given duration inside window. It mirrors the original engine's
// generate_random_time_range_within: earliest_start rounds up to the next
// grid line, latest_start rounds down, and the draw is uniform over every
// grid-aligned start between them inclusive.
func (g *NeighborGenerator) randomRangeWithin(window model.Interval[model.Time], duration model.Time) (model.Interval[model.Time], bool) {
	granularity := g.Granularity
	if granularity == 0 {
		granularity = 1
	}
	if duration > window.Length() {
		return model.Interval[model.Time]{}, false
	}

	earliestStart := ceilToGrid(window.Low, granularity)
	latestStart := floorToGrid(window.High-duration, granularity)
	if latestStart < earliestStart {
		return model.Interval[model.Time]{}, false
	}

	steps := int((latestStart-earliestStart)/granularity) + 1
	start := earliestStart + model.Time(g.Rand.Intn(steps))*granularity
	return model.MustInterval(start, start+duration), true
}

func ceilToGrid(v, granularity model.Time) model.Time {
	if granularity == 0 {
		return v
	}
	return ((v + granularity - 1) / granularity) * granularity
}

func floorToGrid(v, granularity model.Time) model.Time {
	if granularity == 0 {
		return v
	}
	return (v / granularity) * granularity
}

// generateSplitDurations divides job.Duration into k segment durations, each
// at least MinSplitDuration (defaulting to the granularity), rounded to the
// granularity grid when the job's policy requires it. It returns false if
// the duration cannot be divided into k segments under those constraints.
func (g *NeighborGenerator) generateSplitDurations(job model.Job, k int) ([]model.Time, bool) {
	if k < 2 {
		return nil, false
	}
	minSplit := job.Policy.MinSplitDuration
	if minSplit == 0 {
		minSplit = g.Granularity
	}
	if minSplit == 0 {
		minSplit = 1
	}

	unit := model.Time(1)
	if job.Policy.RoundToGranularity && g.Granularity > 0 && job.Duration%g.Granularity == 0 {
		unit = g.Granularity
	}

	totalUnits := job.Duration / unit
	if model.Time(k) > totalUnits {
		return nil, false
	}

	base := totalUnits / model.Time(k)
	remainder := int(totalUnits % model.Time(k))

	minUnits := (minSplit + unit - 1) / unit
	if minUnits == 0 {
		minUnits = 1
	}
	if base < minUnits {
		return nil, false
	}

	durations := make([]model.Time, k)
	for i := range durations {
		durations[i] = base * unit
	}
	// distribute the remainder one grid unit at a time across randomly
	// chosen segments. Each draw picks a segment uniformly with replacement,
	// so one segment may receive several extra units.
	for remainder > 0 {
		idx := g.Rand.Intn(k)
		durations[idx] += unit
		remainder--
	}
	return durations, true
}

// placeSplitSegments places each of the given durations somewhere inside
// job's schedulable range such that no two of job's own segments overlap,
// retrying each segment's placement up to maxPlacementAttempts times before
// giving up on the whole split. The durations are shuffled first so that
// which duration lands in which slot is also randomized. Segments are
// returned sorted by start time.
func (g *NeighborGenerator) placeSplitSegments(job model.Job, durations []model.Time) ([]model.Interval[model.Time], bool) {
	shuffled := append([]model.Time{}, durations...)
	g.Rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	var placed []model.Interval[model.Time]
	for _, d := range shuffled {
		ok := false
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			candidate, okPlace := g.randomRangeWithin(job.SchedulableRange, d)
			if !okPlace {
				break
			}
			if !overlapsAny(candidate, placed) {
				placed = append(placed, candidate)
				ok = true
				break
			}
		}
		if !ok {
			return nil, false
		}
	}

	sortIntervalsByLow(placed)
	return placed, true
}

func overlapsAny(candidate model.Interval[model.Time], existing []model.Interval[model.Time]) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}

func sortIntervalsByLow(segments []model.Interval[model.Time]) {
	sort.Slice(segments, func(i, j int) bool { return segments[i].Low < segments[j].Low })
}
