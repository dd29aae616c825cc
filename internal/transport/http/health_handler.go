package http

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"weekpi/internal/services"
)

// HealthHandler handles health and version requests.
type HealthHandler struct {
	version    string
	startedAt  time.Time
	datasets   *services.DatasetService
	kpiService *services.KPIService
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(version string, datasets *services.DatasetService, kpiService *services.KPIService) *HealthHandler {
	return &HealthHandler{
		version:    version,
		startedAt:  time.Now(),
		datasets:   datasets,
		kpiService: kpiService,
	}
}

// HealthCheck handles GET /api/health.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	hits, misses, size := h.kpiService.CacheStats()
	render.JSON(w, r, map[string]interface{}{
		"status":  "healthy",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).String(),
		"datasets": map[string]interface{}{
			"count": len(h.datasets.List()),
		},
		"kpi_cache": map[string]interface{}{
			"hits":   hits,
			"misses": misses,
			"size":   size,
		},
	})
}

// LivenessCheck handles GET /api/health/live.
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"status": "alive"})
}

// Version handles GET /api/version.
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"version": h.version})
}
