package i18n

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestDictionaryEndpoint(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/api/i18n", NewHandler().MountRoutes)

	req := httptest.NewRequest(http.MethodGet, "/api/i18n/zh-CN", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Locale  string            `json:"locale"`
		Entries map[string]string `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "zh", payload.Locale)
	require.Equal(t, "农场商店管理系统", payload.Entries["header.title"])
}
