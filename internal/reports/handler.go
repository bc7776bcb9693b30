package reports

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/farmstore/farmstore/internal/platform/httpx"
)

// Handler serves the /api/reports endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	group   singleflight.Group
}

// NewHandler constructs Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers report routes on r.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales", h.Sales)
}

// Sales answers GET /api/reports/sales?start=&end=. Identical in-flight
// queries collapse onto one database read.
func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	result, err, _ := h.singleflightQuery(r.Context(), start+":"+end, start, end)
	if err != nil {
		h.logger.Warn("sales report", slog.String("start", start), slog.String("end", end), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) singleflightQuery(ctx context.Context, key, start, end string) (SalesReport, error, bool) {
	resultChan := h.group.DoChan(key, func() (interface{}, error) {
		return h.service.Query(ctx, start, end)
	})
	select {
	case <-ctx.Done():
		return SalesReport{}, ctx.Err(), false
	case res := <-resultChan:
		report, _ := res.Val.(SalesReport)
		return report, res.Err, res.Shared
	}
}
