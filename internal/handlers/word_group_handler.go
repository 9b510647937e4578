package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WordGroupsService is the interface that wraps methods for word group operations
type WordGroupsService interface {
	// List returns every known group sorted alphabetically.
	List(ctx context.Context) ([]string, error)
	// Add registers a group and returns its trimmed form.
	Add(ctx context.Context, name string) (string, error)
}

// WordGroupsHandler handles word group HTTP requests
type WordGroupsHandler struct {
	BaseHandler
	service WordGroupsService
}

// NewWordGroupsHandler creates a new word group handler
func NewWordGroupsHandler(svc WordGroupsService, logger *zap.Logger) *WordGroupsHandler {
	return &WordGroupsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all word group handler routes
// Note: This assumes the router is already scoped to /api
func (h *WordGroupsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/word-groups", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Add)
	})
}

// List handles GET /word-groups
// @Summary List word groups
// @Tags word-groups
// @Produce json
// @Success 200 {array} string "List of word groups"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /word-groups [get]
func (h *WordGroupsHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, groups)
}

// Add handles POST /word-groups
// @Summary Register a word group
// @Tags word-groups
// @Accept json
// @Produce json
// @Param group body map[string]string true "Group payload, e.g. {\"group\": \"verbs\"}"
// @Success 201 {object} map[string]string "Registered group"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /word-groups [post]
func (h *WordGroupsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Group string `json:"group"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	group, err := h.service.Add(r.Context(), req.Group)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{"group": group})
}
