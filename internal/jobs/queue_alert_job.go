package jobs

import (
	"context"
	"log/slog"

	"comanda/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// waitingAlertMinutes is how long an order may sit in the kitchen queue
// before the job flags it.
const waitingAlertMinutes = 30

// QueueAlertJob watches the kitchen queue and logs a warning for every
// order that has been waiting longer than the alert threshold, so stalled
// tickets surface in monitoring instead of only on the kitchen display.
type QueueAlertJob struct {
	handler queries.GetKitchenQueueQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQueueAlertJob creates the kitchen queue watchdog job.
func NewQueueAlertJob(handler queries.GetKitchenQueueQueryHandler, logger *slog.Logger) *QueueAlertJob {
	return &QueueAlertJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "queue_alert_job"),
	}
}

// Start schedules the job at the top of every minute.
func (j *QueueAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		entries, err := j.handler.Handle(ctx, queries.NewGetKitchenQueueQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue alert job failed", "error", err)
			return
		}

		for _, entry := range entries {
			if entry.WaitingMinutes < waitingAlertMinutes {
				continue
			}
			j.logger.WarnContext(ctx, "Order waiting too long in kitchen queue",
				"order_number", entry.Number,
				"status", entry.Status,
				"waiting_minutes", entry.WaitingMinutes,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue alert job started (running every minute)")
	return nil
}

// Stop stops the queue alert job.
func (j *QueueAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue alert job stopped")
}
