// Package notify defines a side-channel for announcing that a scheduling
// run has finished. It is never a source of truth for a Schedule: nothing
// reads a Summary back into the engine.
package notify

import "context"

// Summary is the small JSON-friendly payload published after a run.
type Summary struct {
	JobCount   int     `json:"job_count"`
	FinalCost  float64 `json:"final_cost"`
	Iterations int     `json:"iterations"`
}

// Notifier publishes a run Summary to some external system.
type Notifier interface {
	Notify(ctx context.Context, summary Summary) error
}

// NopNotifier discards every summary. It is the default when no notifier is
// configured.
type NopNotifier struct{}

// Notify implements Notifier by doing nothing.
func (NopNotifier) Notify(context.Context, Summary) error { return nil }
