// Package dependency checks a Schedule's job dependency graph for cycles
// and for precedence violations: a job whose segments start before all of
// its dependencies' segments have finished.
package dependency
