package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/farmstore/farmstore/internal/products"
)

// NewLowStockScanHandler returns the handler for TaskLowStockScan. Products
// at or below threshold are logged so the store owner can restock.
func NewLowStockScanHandler(logger *slog.Logger, svc *products.Service, threshold int) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload LowStockScanPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}

		low, err := svc.ListBelowThreshold(ctx, threshold)
		if err != nil {
			return err
		}
		for _, p := range low {
			logger.Warn("low stock",
				slog.Int64("product_id", p.ID),
				slog.String("name", p.Name),
				slog.Int("stock", p.Stock),
				slog.Int("threshold", threshold),
			)
		}
		logger.Info("low stock scan finished", slog.Int("flagged", len(low)))
		return nil
	}
}
