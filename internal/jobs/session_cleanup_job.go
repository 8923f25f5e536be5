package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fulfillment/internal/core/ports"
)

// SessionCleanupJob expires idle viewing sessions. Runs every minute and
// removes sessions not touched within the configured time to live.
type SessionCleanupJob struct {
	sessions ports.SessionRepository
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a job evicting sessions idle longer than ttl.
func NewSessionCleanupJob(sessions ports.SessionRepository, ttl time.Duration, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		ttl:      ttl,
		cron:     cron.New(),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the session cleanup job to run every minute.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		removed := j.sessions.DeleteIdleBefore(ctx, time.Now().Add(-j.ttl))
		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired idle sessions", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)")
	return nil
}

// Stop stops the session cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
