package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekpi/internal/services"
	"weekpi/internal/shared/testutil"
)

func TestHealthHandler(t *testing.T) {
	logger, _ := testutil.NewTestLogger()
	datasets := services.NewDatasetService(0, logger)
	kpiService := services.NewKPIService(datasets, nil, logger)
	h := NewHealthHandler("1.2.0", datasets, kpiService)

	t.Run("health check", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "1.2.0", body["version"])
		assert.NotEmpty(t, body["uptime"])
		assert.Equal(t, float64(0), body["datasets"].(map[string]any)["count"])
		assert.Contains(t, body, "kpi_cache")
	})

	t.Run("liveness", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.LivenessCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health/live", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alive", decodeBody(t, rec)["status"])
	})

	t.Run("version", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Version(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1.2.0", decodeBody(t, rec)["version"])
	})
}
