package http

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"everest-finance/domain"
	"everest-finance/service"
)

type ProjectionHandler struct {
	projections *service.ProjectionService
	schedule    *service.ScheduleService
	comparison  *service.TierComparisonService
	advisor     *service.AdvisorService
	logger      *zap.Logger
}

func NewProjectionHandler(
	projections *service.ProjectionService,
	schedule *service.ScheduleService,
	comparison *service.TierComparisonService,
	advisor *service.AdvisorService,
	logger *zap.Logger,
) *ProjectionHandler {
	return &ProjectionHandler{
		projections: projections,
		schedule:    schedule,
		comparison:  comparison,
		advisor:     advisor,
		logger:      logger,
	}
}

type calculateResponse struct {
	Result  domain.ProjectionResult `json:"result"`
	Summary string                  `json:"summary"`
}

func (h *ProjectionHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.ProjectionRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	result, err := h.projections.Calculate(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Calculate already validated req.
	input, _ := h.projections.Resolve(req)
	writeJSON(w, calculateResponse{
		Result:  result,
		Summary: h.advisor.Summarize(r.Context(), input, result),
	}, h.logger)
}

func (h *ProjectionHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req domain.ProjectionRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	points, err := h.schedule.Yearly(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, points, h.logger)
}

func (h *ProjectionHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req domain.ProjectionRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	cmp, err := h.comparison.Compare(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, cmp, h.logger)
}

func (h *ProjectionHandler) Tiers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.projections.Tiers(), h.logger)
}

func (h *ProjectionHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.projections.History(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to read projection history", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, records, h.logger)
}
