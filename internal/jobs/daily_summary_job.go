package jobs

import (
	"context"
	"log/slog"
	"time"

	"comanda/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DailySummaryJob closes out the cashbox shortly after midnight by logging
// the previous day's settled totals per payment method and channel.
type DailySummaryJob struct {
	handler queries.GetDailySummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailySummaryJob creates the end-of-day summary job.
func NewDailySummaryJob(handler queries.GetDailySummaryQueryHandler, logger *slog.Logger) *DailySummaryJob {
	return &DailySummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_summary_job"),
	}
}

// Start schedules the job five seconds past midnight every day.
func (j *DailySummaryJob) Start() error {
	_, err := j.cron.AddFunc("5 0 0 * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetDailySummaryQuery(time.Now().AddDate(0, 0, -1))
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily summary job failed to build query", "error", err)
			return
		}

		summary, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily summary job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Cashbox day closed",
			"day", summary.Day.Format("2006-01-02"),
			"orders_paid", summary.OrdersPaid,
			"total", summary.Total.String(),
		)
		for method, bucket := range summary.ByMethod {
			j.logger.InfoContext(ctx, "Cashbox method total",
				"day", summary.Day.Format("2006-01-02"),
				"method", method,
				"count", bucket.Count,
				"amount", bucket.Amount.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily summary job started (running at midnight)")
	return nil
}

// Stop stops the daily summary job.
func (j *DailySummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily summary job stopped")
}
