package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chrissuu/elastisched/core/model"
)

func testJob(t *testing.T, id string, low, high model.Time) model.Job {
	t.Helper()
	window := model.MustInterval(low, high)
	job, err := model.NewJob(id, high-low, window, model.DefaultPolicy())
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	if err := job.SetSegments([]model.Interval[model.Time]{window}); err != nil {
		t.Fatalf("set segments: %v", err)
	}
	return job
}

func TestWriteJSON(t *testing.T) {
	sched := model.NewSchedule([]model.Job{testJob(t, "a", 0, 10)})
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sched); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if !strings.Contains(buf.String(), `"id":"a"`) {
		t.Errorf("output missing job id: %s", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	sched := model.NewSchedule([]model.Job{testJob(t, "a", 0, 10)})
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sched); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines: %v", len(lines), lines)
	}
	if !strings.Contains(lines[1], "a,0,10") {
		t.Errorf("unexpected row: %s", lines[1])
	}
}

func TestWriteCSVMultiSegment(t *testing.T) {
	job := testJob(t, "b", 0, 20)
	segs := []model.Interval[model.Time]{model.MustInterval(model.Time(0), model.Time(5)), model.MustInterval(model.Time(10), model.Time(15))}
	if err := job.SetSegments(segs); err != nil {
		t.Fatalf("set segments: %v", err)
	}
	sched := model.NewSchedule([]model.Job{job})
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sched); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %v", len(lines), lines)
	}
}
