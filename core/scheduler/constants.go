package scheduler

// IllegalScheduleCost is added, once, to a schedule's cost the instant any
// hard constraint is violated: an out-of-range segment, a non-overlappable
// overlap, or a broken dependency graph. It dwarfs every other cost
// component so the optimizer always prefers a legal schedule over an
// illegal one, regardless of how good the illegal one otherwise looks.
const IllegalScheduleCost = 1e12

// SplitCostFactor is the per-extra-segment cost penalty: a job split into k
// segments costs (k-1) * SplitCostFactor.
const SplitCostFactor = 10.0

// CostEpsilon is the smallest cost delta the optimizer treats as an
// improvement; deltas smaller than this are treated as ties when deciding
// whether to update the best-known schedule.
const CostEpsilon = 1e-5

// DefaultInitialTemperature, DefaultFinalTemperature and DefaultIterations
// are the defaults used by SchedulerFacade.Schedule when the caller does not
// override them.
const (
	DefaultInitialTemperature = 10.0
	DefaultFinalTemperature   = 1e-4
	DefaultIterations         = 1_000_000
)

// mergeProbability is the chance, when the chosen job is currently split,
// that the neighbor generator proposes merging it back into one segment
// instead of re-splitting it differently.
const mergeProbability = 0.3

// splitProbability is the chance, when the chosen job is not currently
// split but is splittable, that the neighbor generator proposes splitting
// it instead of moving it as a whole.
const splitProbability = 0.5

// maxPlacementAttempts bounds how many times placeSplitSegments retries
// placing each of a job's split segments before giving up on the split.
const maxPlacementAttempts = 50
