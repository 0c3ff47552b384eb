package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"blogapp/internal/apperror"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError writes the {"error": message} body used by every failure.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeAppError maps err to its status code. Internal errors are logged and
// answered with fallback.
func (h *Handlers) writeAppError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		h.logger().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	WriteError(w, apperror.Message(err, fallback), apperror.HTTPStatus(kind))
}
