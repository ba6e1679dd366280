// Package model defines the entities the scheduling engine operates on:
// Interval, Tag, Policy, Job and Schedule. It holds no scheduling logic —
// that lives in core/intervalindex, core/dependency and core/scheduler —
// only the invariants of the data itself.
package model
