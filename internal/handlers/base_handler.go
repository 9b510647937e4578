package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// respondServiceError maps service errors onto HTTP statuses and logs the
// unexpected ones.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		h.respondError(w, status, "internal server error")
		return
	}
	h.respondError(w, status, err.Error())
}

// statusForError distinguishes the well-known service error messages from
// genuine failures.
func statusForError(err error) int {
	msg := err.Error()
	switch {
	case strings.HasSuffix(msg, "not found"):
		return http.StatusNotFound
	case strings.HasSuffix(msg, "is required"),
		strings.HasPrefix(msg, "you need at least"),
		strings.HasPrefix(msg, "you can only"),
		strings.HasPrefix(msg, "unknown"),
		strings.HasPrefix(msg, "invalid"),
		strings.HasSuffix(msg, "already answered"),
		strings.HasSuffix(msg, "already finished"),
		strings.HasSuffix(msg, "already won"),
		strings.HasSuffix(msg, "not answered yet"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
