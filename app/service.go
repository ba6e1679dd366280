package app

import (
	"context"
	"fmt"

	"github.com/chrissuu/elastisched/config"
	coremetrics "github.com/chrissuu/elastisched/core/metrics"
	"github.com/chrissuu/elastisched/core/model"
	"github.com/chrissuu/elastisched/core/notify"
	"github.com/chrissuu/elastisched/core/scheduler"
	"github.com/chrissuu/elastisched/core/scheduler/tracelog"
	"github.com/chrissuu/elastisched/infra/logger"
	"github.com/chrissuu/elastisched/infra/metrics"
	infranotify "github.com/chrissuu/elastisched/infra/notify"
	"github.com/chrissuu/elastisched/internal/eventbus"
)

// Service runs a single scheduling search end to end from an already loaded
// config: wire up observability, invoke the facade, publish a summary. Unlike the teacher's
// long-running dispatch service, elastisched's domain is a one-shot batch
// job, so there is no Run loop blocking on a context until shutdown.
type Service struct {
	cfg      *config.Config
	log      logger.Logger
	sink     coremetrics.MetricsSink
	notifier notify.Notifier
}

// New wires a Service from the loaded configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.MQTT.Enabled() {
		client, err := infranotify.NewClient(infranotify.Config{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Topic:    cfg.MQTT.Topic,
		}, logg)
		if err != nil {
			return nil, fmt.Errorf("notify client: %w", err)
		}
		notifier = client
	}

	return &Service{cfg: cfg, log: logg, sink: sink, notifier: notifier}, nil
}

// Run executes the search over the given jobs, publishes a summary, and
// returns the resulting schedule.
func (s *Service) Run(ctx context.Context, jobs []model.Job) (scheduler.Result[model.Schedule], error) {
	bus := eventbus.New()
	defer bus.Close()
	metrics.StartEventCollector(ctx, bus, s.sink)

	facade := &scheduler.SchedulerFacade{
		Granularity: model.Time(s.cfg.Granularity),
		Events:      bus,
	}
	if s.cfg.Logging.Enabled {
		trace, err := tracelog.NewJSONLLogger(s.cfg.Logging.Path)
		if err != nil {
			return scheduler.Result[model.Schedule]{}, fmt.Errorf("trace log: %w", err)
		}
		facade.Trace = trace
	}

	result, err := facade.ScheduleJobs(jobs, s.cfg.InitialTemp, s.cfg.FinalTemp, s.cfg.NumIters)
	if err != nil {
		return result, fmt.Errorf("schedule: %w", err)
	}

	summary := notify.Summary{
		JobCount:   result.Best.Len(),
		FinalCost:  result.BestCost,
		Iterations: result.Iterations,
	}
	if err := s.notifier.Notify(ctx, summary); err != nil {
		s.log.Warnf("notify: %v", err)
	}

	return result, nil
}

// Close releases resources held by the service, such as a live MQTT
// connection or a registered metrics sink.
func (s *Service) Close() error {
	if client, ok := s.notifier.(*infranotify.Client); ok {
		client.Close()
	}
	if s.sink != nil {
		return s.sink.Close()
	}
	return nil
}
