package jobs

import (
	"context"
	"log/slog"

	"speedial/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultTickSchedule moves couriers every two seconds.
const DefaultTickSchedule = "*/2 * * * * *"

// MoveCouriersHandler runs one simulation tick.
type MoveCouriersHandler interface {
	Handle(ctx context.Context, cmd commands.MoveCouriersCommand) error
}

// CourierMovementJob drives the position simulator on a schedule.
type CourierMovementJob struct {
	handler  MoveCouriersHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewCourierMovementJob creates the job. An empty schedule means
// DefaultTickSchedule.
func NewCourierMovementJob(handler MoveCouriersHandler, schedule string, logger *slog.Logger) *CourierMovementJob {
	if schedule == "" {
		schedule = DefaultTickSchedule
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &CourierMovementJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "courier_movement_job"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start schedules the tick.
func (j *CourierMovementJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Courier movement job started", "schedule", j.schedule)
	return nil
}

func (j *CourierMovementJob) run() {
	if err := j.handler.Handle(j.ctx, commands.NewMoveCouriersCommand()); err != nil {
		j.logger.ErrorContext(j.ctx, "Courier movement job failed", "error", err)
	}
}

// Stop unschedules the tick and waits for a running tick to finish.
func (j *CourierMovementJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.Info("Courier movement job stopped")
}
