package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ThemeStore wraps the locally persisted theme preference.
type ThemeStore interface {
	Load() (string, error)
	Save(theme string) error
}

// ThemeHandler handles theme preference HTTP requests. The theme lives in a
// local file rather than the database so it survives dataset imports.
type ThemeHandler struct {
	BaseHandler
	store ThemeStore
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(store ThemeStore, logger *zap.Logger) *ThemeHandler {
	return &ThemeHandler{
		store:       store,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all theme handler routes
// Note: This assumes the router is already scoped to /api
func (h *ThemeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/theme", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
	})
}

// Get handles GET /theme
// @Summary Get the theme preference
// @Tags theme
// @Produce json
// @Success 200 {object} map[string]string "Theme, light or dark"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /theme [get]
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	theme, err := h.store.Load()
	if err != nil {
		h.logger.Error("failed to load theme", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

// Update handles PUT /theme
// @Summary Save the theme preference
// @Tags theme
// @Accept json
// @Produce json
// @Param theme body map[string]string true "Theme payload, e.g. {\"theme\": \"dark\"}"
// @Success 200 {object} map[string]string "Stored theme"
// @Failure 400 {object} map[string]string "Unknown theme"
// @Router /theme [put]
func (h *ThemeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.store.Save(req.Theme); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"theme": req.Theme})
}
