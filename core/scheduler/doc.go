// Package scheduler implements the constrained, multi-objective calendar
// scheduling engine: a cost function over Schedules, a neighbor generator
// that proposes small perturbations to a Schedule, and a simulated
// annealing optimizer that drives the two together to produce a placement
// of every job's segments.
package scheduler
