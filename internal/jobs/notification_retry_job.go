package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// NotificationRetrier re-attempts notifications that could not be
// delivered on the first try. Implemented by the notification dispatcher.
type NotificationRetrier interface {
	RetryPending(ctx context.Context)
	PendingCount() int
}

// NotificationRetryJob flushes the dispatcher's retry queue once a minute.
// Notifications that keep failing are dropped by the dispatcher itself, so
// the job only has to trigger the sweep.
type NotificationRetryJob struct {
	retrier NotificationRetrier
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRetryJob creates the retry job over the given retrier.
func NewNotificationRetryJob(retrier NotificationRetrier, logger *slog.Logger) *NotificationRetryJob {
	return &NotificationRetryJob{
		retrier: retrier,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_retry_job"),
	}
}

// Start schedules the retry sweep to run at the top of every minute.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		pending := j.retrier.PendingCount()
		if pending == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Retrying pending notifications", "pending", pending)
		j.retrier.RetryPending(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started (running every minute)")
	return nil
}

// Stop stops the retry job.
func (j *NotificationRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}
