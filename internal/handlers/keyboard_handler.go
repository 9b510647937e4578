package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arabicvocab/backend/internal/keyboard"
)

// KeyboardHandler serves the Arabic virtual keyboard layout
type KeyboardHandler struct {
	BaseHandler
	layout keyboard.Layout
}

// NewKeyboardHandler creates a new keyboard handler
func NewKeyboardHandler(logger *zap.Logger) *KeyboardHandler {
	return &KeyboardHandler{
		layout:      keyboard.DefaultLayout(),
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all keyboard handler routes
// Note: This assumes the router is already scoped to /api
func (h *KeyboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/keyboard", h.Get)
}

// Get handles GET /keyboard
// @Summary Get the Arabic keyboard layout
// @Description Letter rows plus the diacritic palette used by the on-screen keyboard
// @Tags keyboard
// @Produce json
// @Success 200 {object} keyboard.Layout "Keyboard layout"
// @Router /keyboard [get]
func (h *KeyboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.layout)
}
