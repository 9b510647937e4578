package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TagsService is the interface that wraps methods for tag registry operations
type TagsService interface {
	// List returns every known tag sorted alphabetically.
	List(ctx context.Context) ([]string, error)
	// Add registers a tag and returns its normalized form.
	Add(ctx context.Context, name string) (string, error)
	// Delete removes a tag and strips it from every word carrying it.
	Delete(ctx context.Context, name string) error
}

// TagsHandler handles tag registry HTTP requests
type TagsHandler struct {
	BaseHandler
	service TagsService
}

// NewTagsHandler creates a new tag handler
func NewTagsHandler(svc TagsService, logger *zap.Logger) *TagsHandler {
	return &TagsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all tag handler routes
// Note: This assumes the router is already scoped to /api
func (h *TagsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/tags", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Add)
		r.Delete("/{name}", h.Delete)
	})
}

// List handles GET /tags
// @Summary List tags
// @Description Get every known tag, registered or carried by a word
// @Tags tags
// @Produce json
// @Success 200 {array} string "List of tags"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tags [get]
func (h *TagsHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, tags)
}

// Add handles POST /tags
// @Summary Register a tag
// @Description Register a new tag; names are stored lower-cased
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body map[string]string true "Tag payload, e.g. {\"tag\": \"school\"}"
// @Success 201 {object} map[string]string "Registered tag"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tags [post]
func (h *TagsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tag string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tag, err := h.service.Add(r.Context(), req.Tag)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{"tag": tag})
}

// Delete handles DELETE /tags/{name}
// @Summary Delete a tag
// @Description Remove a tag from the registry and from every word carrying it
// @Tags tags
// @Produce json
// @Param name path string true "Tag name (URL-escaped)"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 404 {object} map[string]string "Tag not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tags/{name} [delete]
func (h *TagsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	if err := h.service.Delete(r.Context(), name); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
