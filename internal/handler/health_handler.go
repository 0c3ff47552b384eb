package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.DB == nil {
		WriteSuccess(w, HealthResponse{Status: "degraded", Database: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.HealthCheck(ctx); err != nil {
		h.logger().Warn("database health check failed", zap.Error(err))
		WriteSuccess(w, HealthResponse{Status: "degraded", Database: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, HealthResponse{Status: "ok", Database: "ok"}, http.StatusOK)
}
