package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
)

// AnalyticsRefreshJob rebuilds every customer's lifetime order aggregate.
type AnalyticsRefreshJob struct {
	refresher RollupRefresher
	logger    *slog.Logger
}

func NewAnalyticsRefreshJob(refresher RollupRefresher, logger *slog.Logger) *AnalyticsRefreshJob {
	return &AnalyticsRefreshJob{refresher: refresher, logger: logger}
}

// Handle processes TaskAnalyticsRefresh tasks.
func (j *AnalyticsRefreshJob) Handle(ctx context.Context, _ *asynq.Task) error {
	n, err := j.refresher.RefreshRollups(ctx)
	if err != nil {
		if j.logger != nil {
			j.logger.Error("refresh user analytics", slog.Any("error", err))
		}
		return err
	}
	if j.logger != nil {
		j.logger.Info("refreshed user analytics",
			slog.String("job", "analytics_refresh"),
			slog.Int64("rows", n))
	}
	return nil
}
