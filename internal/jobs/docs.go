// Package jobs provides scheduled background tasks for the checkout service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// SessionExpiryJob runs on SESSION_EXPIRY_SCHEDULE (default every minute) and
// deletes checkout sessions that nobody touched for SESSION_IDLE_TIMEOUT.
// Customers who come back after that start a new checkout.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&expireHandler, jobs.JobsConfig{
//		SessionExpirySchedule: "0 * * * * *",
//		SessionIdleTimeout:    30 * time.Minute,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. An invalid schedule
// or a non-positive idle timeout fails StartAll.
package jobs
