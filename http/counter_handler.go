package http

import (
	"net/http"

	"go.uber.org/zap"

	"everest-finance/domain"
	"everest-finance/service"
)

type CounterHandler struct {
	service *service.CounterService
	logger  *zap.Logger
}

func NewCounterHandler(service *service.CounterService, logger *zap.Logger) *CounterHandler {
	return &CounterHandler{service: service, logger: logger}
}

func (h *CounterHandler) Frames(w http.ResponseWriter, r *http.Request) {
	var req domain.CounterRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	preview, err := h.service.Frames(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, preview, h.logger)
}
