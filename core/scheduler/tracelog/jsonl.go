// Package tracelog appends a JSONL record per annealing iteration to a
// file, for offline inspection of a completed search. It is bookkeeping,
// not persistence: nothing reads a trace log back into a Schedule.
package tracelog

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// Record is one line of a trace log: the outcome of a single annealing
// iteration.
type Record struct {
	Timestamp     time.Time `json:"timestamp"`
	Iteration     int       `json:"iteration"`
	Temperature   float64   `json:"temperature"`
	CandidateCost float64   `json:"candidate_cost"`
	CurrentCost   float64   `json:"current_cost"`
	Accepted      bool      `json:"accepted"`
	IsNewBest     bool      `json:"is_new_best"`
}

// JSONLLogger appends Records to a file, one JSON object per line.
type JSONLLogger struct {
	path string
	mu   sync.Mutex
}

// NewJSONLLogger creates (or truncates) path and returns a logger ready to
// append to it.
func NewJSONLLogger(path string) (*JSONLLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return &JSONLLogger{path: path}, nil
}

// Append writes rec as a single JSON line.
func (l *JSONLLogger) Append(rec Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return json.NewEncoder(f).Encode(rec)
}

// Close is a no-op; JSONLLogger opens and closes the file on every Append
// rather than holding a handle open for the logger's lifetime.
func (l *JSONLLogger) Close() error { return nil }
