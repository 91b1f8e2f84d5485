// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatching.
//
// # Available Jobs
//
// 1. OrderDispatchJob - Periodically runs an assignment pass for every
// registered courier, handing out eligible orders from the unassigned pool.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignOrdersHandler, courierIDsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job ignores expected business outcomes (an empty pool, a
// courier with nothing to take) and logs everything else.
package jobs
