package jobs

import (
	"context"
	"log/slog"
	"time"

	"blip/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StalePendingOrdersJob periodically counts orders stuck in PENDING beyond
// the configured age and logs a warning when any exist. It is purely an
// observability aid: it never mutates orders.
type StalePendingOrdersJob struct {
	handler queries.CountStalePendingOrdersQueryHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalePendingOrdersJob creates a watchdog for orders nobody has acted on.
// maxAge is how long an order may stay PENDING before it counts as stale.
func NewStalePendingOrdersJob(
	handler queries.CountStalePendingOrdersQueryHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StalePendingOrdersJob {
	return &StalePendingOrdersJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_pending_orders_job"),
	}
}

// Start begins the watchdog, running once per minute.
func (j *StalePendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewCountStalePendingOrdersQuery(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale pending orders job misconfigured", "error", err)
			return
		}

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale pending orders job failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.WarnContext(ctx, "Orders stuck in PENDING",
				"count", count,
				"older_than", j.maxAge.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending orders job started (running every minute)")
	return nil
}

// Stop stops the watchdog.
func (j *StalePendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending orders job stopped")
}
