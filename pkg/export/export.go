// Package export renders a completed model.Schedule to a writer in either
// JSON or CSV, grounded on the teacher's pkg/export effacement-plan writers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/chrissuu/elastisched/core/model"
)

// jobRecord is the on-wire shape of a scheduled job: plain, serializable
// fields instead of model.Job's internal map-based Dependencies/Tags.
type jobRecord struct {
	ID           string          `json:"id"`
	Segments     []segmentRecord `json:"segments"`
	Dependencies []string        `json:"dependencies,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
}

type segmentRecord struct {
	Start model.Time `json:"start"`
	End   model.Time `json:"end"`
}

func toRecord(j model.Job) jobRecord {
	segs := make([]segmentRecord, len(j.Segments))
	for i, seg := range j.Segments {
		segs[i] = segmentRecord{Start: seg.Low, End: seg.High}
	}
	deps := make([]string, 0, len(j.Dependencies))
	for id := range j.Dependencies {
		deps = append(deps, id)
	}
	return jobRecord{ID: j.ID, Segments: segs, Dependencies: deps, Tags: j.Tags.Names()}
}

// WriteJSON writes the schedule to w as a JSON array of job records.
func WriteJSON(w io.Writer, sched model.Schedule) error {
	records := make([]jobRecord, sched.Len())
	for i, j := range sched.Jobs() {
		records[i] = toRecord(j)
	}
	enc := json.NewEncoder(w)
	return enc.Encode(records)
}

// WriteCSV writes one row per scheduled segment: job_id, segment_start,
// segment_end. A split job occupies multiple rows.
func WriteCSV(w io.Writer, sched model.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"job_id", "segment_start", "segment_end"}); err != nil {
		return err
	}
	for _, j := range sched.Jobs() {
		for _, seg := range j.Segments {
			rec := []string{
				j.ID,
				strconv.FormatUint(uint64(seg.Low), 10),
				strconv.FormatUint(uint64(seg.High), 10),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
