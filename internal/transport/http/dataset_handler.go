package http

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "weekpi/internal/errors"
	"weekpi/internal/services"
)

// DatasetHandler handles dataset import and lifecycle requests.
type DatasetHandler struct {
	service        *services.DatasetService
	kpiService     *services.KPIService
	maxUploadBytes int64
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
}

// NewDatasetHandler creates a dataset handler.
func NewDatasetHandler(service *services.DatasetService, kpiService *services.KPIService, maxUploadBytes int64, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DatasetHandler {
	return &DatasetHandler{
		service:        service,
		kpiService:     kpiService,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With(slog.String("component", "dataset_handler")),
		errorHandler:   errorHandler,
	}
}

// Routes returns the dataset routes.
func (h *DatasetHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/", h.Import)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)

	return r
}

// Import handles POST /api/datasets. The upload is a multipart form with a
// "file" part; the format is inferred from the filename extension.
func (h *DatasetHandler) Import(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "Upload must be a multipart form within the size limit"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "A \"file\" form part is required"))
		return
	}
	defer file.Close()

	format := services.FormatCSV
	if strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		format = services.FormatXLSX
	}
	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	h.logger.InfoContext(r.Context(), "importing dataset",
		slog.String("request_id", reqID),
		slog.String("filename", header.Filename),
		slog.String("format", string(format)),
		slog.Int64("size", header.Size))

	summary, err := h.service.Import(file, format, name)
	if err != nil {
		h.logger.WarnContext(r.Context(), "import rejected",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID))

		if errors.Is(err, services.ErrNoValidRows) {
			h.errorHandler.HandleError(w, r, apierrors.ImportRejectedError(summary))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

// List handles GET /api/datasets.
func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	datasets := h.service.List()
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   datasets,
		"count":  len(datasets),
	})
}

// Get handles GET /api/datasets/{id}.
func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ds, ok := h.service.Get(id)
	if !ok {
		h.errorHandler.HandleError(w, r, apierrors.DatasetNotFoundError(id))
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   ds,
	})
}

// Delete handles DELETE /api/datasets/{id}. Cached KPI results are
// invalidated so later computations do not serve stale data.
func (h *DatasetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.service.Delete(id) {
		h.errorHandler.HandleError(w, r, apierrors.DatasetNotFoundError(id))
		return
	}
	h.kpiService.InvalidateCache()

	h.logger.InfoContext(r.Context(), "dataset deleted",
		slog.String("request_id", requestID(r)),
		slog.String("dataset_id", id))

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
	})
}
