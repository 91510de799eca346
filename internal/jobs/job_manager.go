package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionExpiryJob *SessionExpiryJob
}

// JobsConfig carries the scheduling parameters of the jobs.
type JobsConfig struct {
	SessionExpirySchedule string
	SessionIdleTimeout    time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireCheckoutsHandler ExpireCheckoutsHandler,
	cfg JobsConfig,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionExpiryJob: NewSessionExpiryJob(
			expireCheckoutsHandler,
			cfg.SessionExpirySchedule,
			cfg.SessionIdleTimeout,
			logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start session expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionExpiryJob.Stop()
}
