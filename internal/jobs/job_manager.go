package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	courierMovementJob *CourierMovementJob
	trafficRefreshJob  *TrafficRefreshJob
}

// NewJobManager creates the movement and traffic jobs. Empty schedules fall
// back to the job defaults.
func NewJobManager(
	moveCouriersHandler MoveCouriersHandler,
	trafficRefresher TrafficRefresher,
	tickSchedule string,
	trafficSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		courierMovementJob: NewCourierMovementJob(moveCouriersHandler, tickSchedule, logger),
		trafficRefreshJob:  NewTrafficRefreshJob(trafficRefresher, trafficSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierMovementJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier movement job: %w", err)
	}

	if err := jm.trafficRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.courierMovementJob.Stop()
		return fmt.Errorf("failed to start traffic refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.courierMovementJob.Stop()
	jm.trafficRefreshJob.Stop()
}
