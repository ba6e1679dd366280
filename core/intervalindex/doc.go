// Package intervalindex implements an augmented binary search tree keyed on
// interval low endpoints, each node storing the maximum high endpoint across
// its subtree. It answers "does anything overlap this interval" and "what
// overlaps this interval" queries in better than linear time without
// requiring the tree to stay balanced.
//
// The tree never needs a delete operation: the scheduler builds a fresh
// index per cost evaluation pass rather than mutating one in place.
package intervalindex
