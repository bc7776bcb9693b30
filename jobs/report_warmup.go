package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/farmstore/farmstore/internal/reports"
)

// NewReportWarmupHandler returns the handler for TaskReportWarmup. Querying
// through the service populates the redis cache as a side effect, so the
// first dashboard report of the day is served warm.
func NewReportWarmupHandler(logger *slog.Logger, svc *reports.Service) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ReportWarmupPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}

		start, end := payload.Start, payload.End
		if start == "" || end == "" {
			today := time.Now().Format("2006-01-02")
			start, end = today, today
		}

		report, err := svc.Query(ctx, start, end)
		if err != nil {
			return err
		}
		logger.Info("report cache warmed",
			slog.String("start", start),
			slog.String("end", end),
			slog.Int("lines", len(report.Lines)),
		)
		return nil
	}
}
