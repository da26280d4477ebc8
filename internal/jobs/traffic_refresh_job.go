package jobs

import (
	"context"
	"log/slog"
	"sync"

	"speedial/internal/core/application/advisor"

	"github.com/robfig/cron/v3"
)

// DefaultTrafficSchedule refreshes the traffic report every minute.
const DefaultTrafficSchedule = "0 * * * * *"

// TrafficRefresher produces a new traffic report and caches it.
type TrafficRefresher interface {
	RefreshTraffic(ctx context.Context) advisor.TrafficReport
}

// TrafficRefreshJob keeps the cached traffic report current.
type TrafficRefreshJob struct {
	refresher TrafficRefresher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewTrafficRefreshJob(refresher TrafficRefresher, schedule string, logger *slog.Logger) *TrafficRefreshJob {
	if schedule == "" {
		schedule = DefaultTrafficSchedule
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &TrafficRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "traffic_refresh_job"),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start schedules the refresh. The first report is requested right away.
func (j *TrafficRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		j.run()
	}()
	j.logger.InfoContext(j.ctx, "Traffic refresh job started", "schedule", j.schedule)
	return nil
}

func (j *TrafficRefreshJob) run() {
	report := j.refresher.RefreshTraffic(j.ctx)
	j.logger.DebugContext(j.ctx, "Traffic refreshed",
		"ABUJA", report.Abuja, "KADUNA", report.Kaduna, "KANO", report.Kano)
}

// Stop unschedules the refresh, cancels a request in flight and waits for it
// to return.
func (j *TrafficRefreshJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.wg.Wait()
	j.logger.Info("Traffic refresh job stopped")
}
