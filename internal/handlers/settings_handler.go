package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arabicvocab/backend/internal/models"
)

// SettingsService is the interface that wraps methods for settings operations
type SettingsService interface {
	// Get loads the settings including the derived available-language list.
	Get(ctx context.Context) (*models.Settings, error)
	// Update normalizes and persists a settings change, returning the stored truth.
	Update(ctx context.Context, req *models.SettingsRequest) (*models.Settings, error)
}

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	BaseHandler
	service SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(svc SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all settings handler routes
// Note: This assumes the router is already scoped to /api
func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
	})
}

// Get handles GET /settings
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings "Settings"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, settings)
}

// Update handles PUT /settings
// @Summary Update settings
// @Description Persist the display-language selection; at most two languages may be active
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body models.SettingsRequest true "Settings payload"
// @Success 200 {object} models.Settings "Stored settings"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.service.Update(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, settings)
}
