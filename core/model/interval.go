package model

// Ordinal is the set of numeric types an Interval may be instantiated over.
// The scheduler itself only ever uses Time (uint64 seconds); the constraint
// is kept generic so tests can exercise Interval with plain ints.
type Ordinal interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Time is the integral time unit the scheduler operates on: seconds since
// an arbitrary epoch chosen by the caller.
type Time = uint64

// Interval is a closed-open range [Low, High) over any Ordinal type. A
// degenerate interval (Low == High) represents a single point in time and
// overlaps any interval that strictly contains that point.
type Interval[T Ordinal] struct {
	Low  T
	High T
}

// NewInterval builds an Interval, returning ErrInvalidInterval if high < low.
func NewInterval[T Ordinal](low, high T) (Interval[T], error) {
	if high < low {
		return Interval[T]{}, ErrInvalidInterval
	}
	return Interval[T]{Low: low, High: high}, nil
}

// MustInterval is NewInterval but panics on an invalid range. Useful for
// constants and tests where the range is known to be valid.
func MustInterval[T Ordinal](low, high T) Interval[T] {
	iv, err := NewInterval(low, high)
	if err != nil {
		panic(err)
	}
	return iv
}

// Point returns a degenerate interval representing the single instant t.
func Point[T Ordinal](t T) Interval[T] {
	return Interval[T]{Low: t, High: t}
}

// Overlaps reports whether the two intervals share at least one instant.
// A degenerate interval [p,p) overlaps [a,b) iff a <= p < b.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	if iv.Low == iv.High {
		return other.Low <= iv.Low && iv.Low < other.High
	}
	if other.Low == other.High {
		return iv.Low <= other.Low && other.Low < iv.High
	}
	return !(iv.High <= other.Low || other.High <= iv.Low)
}

// Contains reports whether other lies entirely within iv.
func (iv Interval[T]) Contains(other Interval[T]) bool {
	return iv.Low <= other.Low && other.High <= iv.High
}

// OverlapLength returns the length of the overlap between iv and other, or
// zero if they do not overlap.
func (iv Interval[T]) OverlapLength(other Interval[T]) T {
	if !iv.Overlaps(other) {
		return 0
	}
	start := iv.Low
	if other.Low > start {
		start = other.Low
	}
	end := iv.High
	if other.High < end {
		end = other.High
	}
	if end > start {
		return end - start
	}
	return 0
}

// Length returns High - Low.
func (iv Interval[T]) Length() T {
	return iv.High - iv.Low
}
