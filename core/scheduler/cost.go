package scheduler

import (
	"github.com/chrissuu/elastisched/core/dependency"
	"github.com/chrissuu/elastisched/core/intervalindex"
	"github.com/chrissuu/elastisched/core/model"
)

// CostEvaluator computes the scalar cost of a Schedule: a large constant
// the instant any hard constraint is broken, plus a continuous penalty for
// overlap and for splitting jobs into more segments than necessary.
type CostEvaluator struct {
	Granularity model.Time
}

// NewCostEvaluator builds a CostEvaluator for the given granularity, used to
// normalize overlap length into a cost.
func NewCostEvaluator(granularity model.Time) *CostEvaluator {
	return &CostEvaluator{Granularity: granularity}
}

// Cost returns the total cost of sched: IllegalScheduleCost the instant any
// job falls outside its schedulable range, any two non-overlappable jobs
// overlap, or the dependency graph is broken, plus the continuous overlap
// and split costs otherwise.
func (c *CostEvaluator) Cost(sched model.Schedule) float64 {
	if illegal := c.IllegalCost(sched); illegal > 0 {
		return illegal
	}
	return c.OverlapCost(sched) + c.SplitCost(sched)
}

// IllegalCost returns IllegalScheduleCost if sched violates any hard
// constraint, or 0 if it is legal. It short-circuits on the first violation
// found: out-of-range segment, disallowed overlap, or a broken dependency
// graph (cycle or precedence violation).
func (c *CostEvaluator) IllegalCost(sched model.Schedule) float64 {
	jobs := sched.Jobs()

	for _, j := range jobs {
		for _, seg := range j.Segments {
			if !j.SchedulableRange.Contains(seg) {
				return IllegalScheduleCost
			}
		}
	}

	idx := intervalindex.New[model.Time, string]()
	for _, j := range jobs {
		if j.Policy.Overlappable {
			continue
		}
		for _, seg := range j.Segments {
			for _, hit := range idx.AllOverlapping(seg) {
				if hit.Value != j.ID {
					return IllegalScheduleCost
				}
			}
			idx.Insert(seg, j.ID)
		}
	}

	if dependency.Check(sched).HasViolations() {
		return IllegalScheduleCost
	}

	return 0
}

// OverlapCost sums, across every pair of overlapping segments, the overlap
// length normalized by granularity. It applies regardless of whether the
// overlap is legal (Overlappable): overlap is discouraged even where it is
// permitted.
func (c *CostEvaluator) OverlapCost(sched model.Schedule) float64 {
	granularity := c.Granularity
	if granularity == 0 {
		granularity = 1
	}

	var total float64
	idx := intervalindex.New[model.Time, string]()
	for _, j := range sched.Jobs() {
		for _, seg := range j.Segments {
			for _, hit := range idx.AllOverlapping(seg) {
				overlap := seg.OverlapLength(hit.Interval)
				total += float64(overlap) / float64(granularity)
			}
			idx.Insert(seg, j.ID)
		}
	}
	return total
}

// SplitCost sums (k-1)*SplitCostFactor over every job with k segments,
// penalizing splits beyond the first segment.
func (c *CostEvaluator) SplitCost(sched model.Schedule) float64 {
	var total float64
	for _, j := range sched.Jobs() {
		if k := len(j.Segments); k > 1 {
			total += float64(k-1) * SplitCostFactor
		}
	}
	return total
}
