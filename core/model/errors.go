package model

import "errors"

// ErrInvalidInterval is returned when constructing an Interval with high < low.
var ErrInvalidInterval = errors.New("model: interval high must be >= low")

// ErrInvalidWindow is returned when a job's duration cannot fit inside its
// schedulable range at the requested granularity.
var ErrInvalidWindow = errors.New("model: schedulable range too small for duration at this granularity")

// ErrInvalidSegments is returned when a caller attempts to assign an empty
// segment list to a job.
var ErrInvalidSegments = errors.New("model: segments list must not be empty")
