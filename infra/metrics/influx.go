package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	corelogger "github.com/chrissuu/elastisched/core/logger"
	coremetrics "github.com/chrissuu/elastisched/core/metrics"
	"github.com/chrissuu/elastisched/infra/logger"
)

// InfluxSink writes search observability events to an InfluxDB instance
// using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      corelogger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB
// endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails, so a misconfigured metrics backend
// never blocks a scheduling run.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// Close flushes and closes the underlying InfluxDB client.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}

// RecordIteration writes one annealing iteration as a line protocol point.
func (s *InfluxSink) RecordIteration(ev coremetrics.IterationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("scheduler_iteration").
		AddTag("iteration", strconv.Itoa(ev.Iteration)).
		AddField("temperature", round3(ev.Temperature)).
		AddField("candidate_cost", round3(ev.CandidateCost)).
		AddField("current_cost", round3(ev.CurrentCost)).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordAccepted writes an accepted-candidate event.
func (s *InfluxSink) RecordAccepted(ev coremetrics.AcceptedEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("scheduler_accepted").
		AddTag("is_new_best", strconv.FormatBool(ev.IsNewBest)).
		AddField("iteration", ev.Iteration).
		AddField("cost", round3(ev.Cost)).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordRunCompleted writes the summary of a finished search.
func (s *InfluxSink) RecordRunCompleted(ev coremetrics.RunCompletedEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("scheduler_run_completed").
		AddField("job_count", ev.JobCount).
		AddField("iterations", ev.Iterations).
		AddField("best_cost", round3(ev.BestCost)).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
