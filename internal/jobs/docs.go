// Package jobs provides the scheduled background tasks of the dispatch
// simulator.
//
// Jobs are cron driven (github.com/robfig/cron/v3, with a seconds field) and
// are managed together by JobManager:
//
//	jobManager := jobs.NewJobManager(moveCouriersHandler, advisor, cfg.TickSchedule, cfg.TrafficSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
//  1. CourierMovementJob moves every courier one step (default every 2 seconds).
//  2. TrafficRefreshJob asks the advisor for a new traffic report (default every minute).
//
// # Error Handling
//
// A failed run is logged and the next run goes ahead. If a job fails to start,
// the jobs already started are stopped.
package jobs
