// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionCleanupJob - Runs every minute to expire viewing sessions that
// have been idle longer than the configured time to live
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sessionRepository, sessionTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Cleanup runs are best effort; an empty run logs nothing, and eviction
// counts are logged so operators can spot abandoned sessions piling up.
package jobs
