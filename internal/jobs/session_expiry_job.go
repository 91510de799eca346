package jobs

import (
	"context"
	"log/slog"
	"time"

	"checkout/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpireCheckoutsHandler runs one expiry pass. It is satisfied by
// *commands.ExpireCheckoutsCommandHandler.
type ExpireCheckoutsHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireCheckoutsCommand) (int64, error)
}

// SessionExpiryJob discards checkout sessions that have been idle for
// longer than idleFor. The schedule is a six-field cron expression.
type SessionExpiryJob struct {
	handler  ExpireCheckoutsHandler
	schedule string
	idleFor  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionExpiryJob creates the job. Nothing runs until Start.
func NewSessionExpiryJob(
	handler ExpireCheckoutsHandler,
	schedule string,
	idleFor time.Duration,
	logger *slog.Logger,
) *SessionExpiryJob {
	return &SessionExpiryJob{
		handler:  handler,
		schedule: schedule,
		idleFor:  idleFor,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_expiry_job"),
	}
}

// Start registers the expiry pass on the schedule and starts the scheduler.
func (j *SessionExpiryJob) Start() error {
	if _, err := commands.NewExpireCheckoutsCommand(j.idleFor); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started",
		"schedule", j.schedule, "idle_for", j.idleFor.String())
	return nil
}

// RunOnce performs a single expiry pass and logs its outcome.
func (j *SessionExpiryJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewExpireCheckoutsCommand(j.idleFor)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job misconfigured", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job failed", "error", err)
		return
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired idle checkout sessions", "removed", removed)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}
