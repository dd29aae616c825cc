package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "weekpi/internal/errors"
	"weekpi/internal/kpi"
	"weekpi/internal/services"
)

// KPIHandler handles KPI computation requests.
type KPIHandler struct {
	service      *services.KPIService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewKPIHandler creates a KPI handler.
func NewKPIHandler(service *services.KPIService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *KPIHandler {
	return &KPIHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "kpi_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the KPI routes.
func (h *KPIHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/increment", h.Increment)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Compute)
		r.Get("/groups", h.Groups)
	})

	return r
}

// Compute handles GET /api/kpi/{id}. Targets and the current week can be
// overridden with query parameters; otherwise configured defaults apply.
func (h *KPIHandler) Compute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	opts, apiErr := optionsFromQuery(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	h.logger.InfoContext(r.Context(), "computing kpi report",
		slog.String("request_id", requestID(r)),
		slog.String("dataset_id", id))

	report, err := h.service.Compute(id, opts)
	if err != nil {
		h.handleServiceError(w, r, id, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   report,
	})
}

// incrementRequest is the POST /api/kpi/increment body.
type incrementRequest struct {
	CurrentID         string   `json:"current_id"`
	PreviousID        string   `json:"previous_id,omitempty"`
	CurrentWeekNumber *int     `json:"current_week_number,omitempty"`
	PremiumTarget     *float64 `json:"premium_target,omitempty"`
	PolicyCountTarget *float64 `json:"policy_count_target,omitempty"`
}

// Increment handles POST /api/kpi/increment.
func (h *KPIHandler) Increment(w http.ResponseWriter, r *http.Request) {
	var req incrementRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}
	if req.CurrentID == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("current_id", "current_id is required"))
		return
	}

	h.logger.InfoContext(r.Context(), "computing increment report",
		slog.String("request_id", requestID(r)),
		slog.String("current_id", req.CurrentID),
		slog.String("previous_id", req.PreviousID))

	report, err := h.service.ComputeIncrement(req.CurrentID, req.PreviousID, kpi.Options{
		CurrentWeekNumber: req.CurrentWeekNumber,
		PremiumTarget:     req.PremiumTarget,
		PolicyCountTarget: req.PolicyCountTarget,
	})
	if err != nil {
		h.handleServiceError(w, r, req.CurrentID, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   report,
	})
}

// Groups handles GET /api/kpi/{id}/groups.
func (h *KPIHandler) Groups(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dim := kpi.GroupDimension(r.URL.Query().Get("dim"))
	switch dim {
	case kpi.GroupByThirdLevelOrg, kpi.GroupByCustomerCategory, kpi.GroupByBusinessType, kpi.GroupByRenewalStatus:
	case "":
		dim = kpi.GroupByThirdLevelOrg
	default:
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("dim", fmt.Sprintf("Unknown group dimension: %s", dim)))
		return
	}

	topN := 0
	if s := r.URL.Query().Get("top"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("top", "top must be a positive number"))
			return
		}
		topN = n
	}

	opts, apiErr := optionsFromQuery(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	groups, err := h.service.Groups(id, dim, topN, opts)
	if err != nil {
		h.handleServiceError(w, r, id, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   groups,
		"count":  len(groups),
		"dim":    dim,
	})
}

func (h *KPIHandler) handleServiceError(w http.ResponseWriter, r *http.Request, id string, err error) {
	h.logger.ErrorContext(r.Context(), "kpi computation failed",
		slog.String("error", err.Error()),
		slog.String("request_id", requestID(r)),
		slog.String("dataset_id", id))

	if errors.Is(err, services.ErrDatasetNotFound) {
		h.errorHandler.HandleError(w, r, apierrors.DatasetNotFoundError(id))
		return
	}
	h.errorHandler.HandleError(w, r, err)
}

// optionsFromQuery parses the optional week and target overrides shared by
// the GET endpoints.
func optionsFromQuery(r *http.Request) (kpi.Options, *apierrors.APIError) {
	var opts kpi.Options

	if s := r.URL.Query().Get("week"); s != "" {
		week, err := strconv.Atoi(s)
		if err != nil {
			return opts, apierrors.ErrValidation("week", "week must be a number")
		}
		opts.CurrentWeekNumber = &week
	}
	if s := r.URL.Query().Get("premium_target"); s != "" {
		target, err := strconv.ParseFloat(s, 64)
		if err != nil || target <= 0 {
			return opts, apierrors.ErrValidation("premium_target", "premium_target must be a positive number")
		}
		opts.PremiumTarget = &target
	}
	if s := r.URL.Query().Get("policy_count_target"); s != "" {
		target, err := strconv.ParseFloat(s, 64)
		if err != nil || target <= 0 {
			return opts, apierrors.ErrValidation("policy_count_target", "policy_count_target must be a positive number")
		}
		opts.PolicyCountTarget = &target
	}

	return opts, nil
}
