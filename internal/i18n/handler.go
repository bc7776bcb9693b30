package i18n

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/farmstore/farmstore/internal/platform/httpx"
)

// Handler serves locale dictionaries to the browser client.
type Handler struct{}

// NewHandler constructs Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// MountRoutes registers i18n routes on r.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{locale}", h.Dictionary)
}

func (h *Handler) Dictionary(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	httpx.JSON(w, http.StatusOK, map[string]any{
		"locale":  Resolve(locale),
		"entries": Dictionary(locale),
	})
}
